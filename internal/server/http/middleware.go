package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
)

// userIDKey is the gin context key the authenticated user id is stored under.
const userIDKey = "userID"

// accessTokenMiddleware guards a route group with bearer-token checks.
// Missing header, wrong scheme and bad or expired tokens all get the same
// response.
func accessTokenMiddleware(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)

		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, secretKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// requestLogger logs one line per handled request, tagged with a random
// request id.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID, err := common.MakeRandHexString(8)
		if err != nil {
			requestID = "unknown"
		}

		c.Next()

		logger.Info(c.Request.Context(), "Request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
