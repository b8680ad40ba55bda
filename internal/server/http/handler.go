package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/users"
)

// UserService is the slice of the users service the transport needs.
type UserService interface {
	Register(ctx context.Context, userName string, password string, email string) (*users.User, error)
	Login(ctx context.Context, userName string, password string) (string, error)
}

type handlers struct {
	users  UserService
	logger logging.Logger
}

func newHandlers(us UserService, l logging.Logger) *handlers {
	return &handlers{users: us, logger: l}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// register handles POST /register/.
func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	_, err := h.users.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		case errors.Is(err, common.ErrorAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		default:
			h.logger.Error(c.Request.Context(), "Registration failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// login handles POST /login/. Unknown usernames and wrong passwords get the
// same response.
func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both username and password are required"})
		return
	}

	h.logger.Info(c.Request.Context(), "Attempting login", "username", req.Username)

	token, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		h.logger.Error(c.Request.Context(), "Login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// secure handles GET /secure/. The access token middleware has already
// authenticated the caller by the time it runs.
func (h *handlers) secure(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "You have access to this secure endpoint!"})
}

// health handles GET /health.
func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
