// Package auth guards the admin surface with env-configured credentials
// and a session cookie.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"numbers-dictation-platform/backend/internal/logging"
)

const sessionCookieName = "admin_session_token"

// Config holds the admin credentials, loaded from the environment at
// startup and passed in explicitly.
type Config struct {
	Username string
	Password string
}

// Service validates admin logins and issues session cookies. The token
// is minted per process start, so restarts invalidate every session.
type Service struct {
	cfg          Config
	sessionToken string
	log          *logging.Logger
}

// NewService builds the auth service. Missing credentials are allowed
// but logged; every login then fails with a server configuration error.
func NewService(cfg Config, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewNop()
	}
	if cfg.Username == "" {
		log.Warn("ADMIN_USERNAME is not set; admin login disabled")
	}
	if cfg.Password == "" {
		log.Warn("ADMIN_PASSWORD is not set; admin login disabled")
	}
	return &Service{
		cfg:          cfg,
		sessionToken: uuid.New().String(),
		log:          log,
	}
}

// LoginPayload defines the expected JSON structure for login requests.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler checks credentials and sets the admin session cookie.
func (s *Service) LoginHandler(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if s.cfg.Username == "" || s.cfg.Password == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin credentials not configured on server"})
		return
	}

	if payload.Username != s.cfg.Username || payload.Password != s.cfg.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// MaxAge one hour; HttpOnly always; Secure stays off for local dev
	// without HTTPS.
	c.SetCookie(sessionCookieName, s.sessionToken, 3600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   s.sessionToken,
	})
}

// LogoutHandler clears the session cookie.
func (s *Service) LogoutHandler(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Middleware rejects requests that lack a valid admin session cookie.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(sessionCookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Missing session token"})
			c.Abort()
			return
		}
		if cookie != s.sessionToken {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid session token"})
			c.Abort()
			return
		}
		c.Next()
	}
}
