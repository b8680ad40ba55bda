// Package http exposes the authentication API over HTTP using gin.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
)

// shutdownTimeout bounds how long in-flight requests may drain after the
// root context is cancelled.
const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address string
	logger  logging.Logger
	engine  *gin.Engine
}

// NewHTTPServer assembles the gin engine: recovery, request logging, CORS,
// the public routes and the token-guarded group.
func NewHTTPServer(cfg *config.Config, l logging.Logger, us UserService) (*HTTPServer, error) {
	logger := l.With("module", "http_server")

	gin.SetMode(cfg.GinMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	engine.Use(cors.New(corsConfig))

	h := newHandlers(us, logger)

	engine.GET("/health", h.health)
	engine.POST("/register/", h.register)
	engine.POST("/login/", h.login)

	secure := engine.Group("/secure")
	secure.Use(accessTokenMiddleware([]byte(cfg.SecretKey)))
	secure.GET("/", h.secure)

	return &HTTPServer{address: cfg.RunAddress, logger: logger, engine: engine}, nil
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.engine}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
