package auth

import (
	"net/http"
	"strings"

	"condo-maintenance-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Redirect targets for denied requests
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Cookie names used by browser sessions
const (
	AccessTokenCookie  = "auth_token"
	RefreshTokenCookie = "refresh_token"
)

// TokenValidator validates access tokens
type TokenValidator interface {
	ValidateJWT(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// WantsHTML reports whether the client is a browser navigation
func WantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// AbortWithRedirect ends the request with a redirect for browsers and a JSON body
// carrying the redirect target for API clients.
func AbortWithRedirect(c *gin.Context, status int, target, message string) {
	if WantsHTML(c) {
		c.Redirect(http.StatusFound, target)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message, "redirect": target})
}

// tokenFromRequest reads the bearer header, falling back to the session cookie
func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			return ""
		}
		return strings.TrimSpace(token)
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*AuthClaims, error) {
	token := tokenFromRequest(c)
	if token == "" {
		return nil, nil
	}
	return m.service.ValidateJWT(token)
}

func setUserContext(c *gin.Context, claims *AuthClaims) {
	c.Set("user_id", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("auth_claims", claims)
	c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.Email))
}

// RequireAuth admits only requests carrying a valid, non-revoked session
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.authenticate(c)
		if claims == nil {
			msg := "Authentication required"
			if err != nil {
				msg = "Invalid token"
			}
			AbortWithRedirect(c, http.StatusUnauthorized, LoginPath, msg)
			return
		}

		setUserContext(c, claims)
		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, _ := m.authenticate(c); claims != nil {
			setUserContext(c, claims)
		}
		c.Next()
	}
}

// PublicOnly admits only requests without a valid session; signed-in users go home
func (m *AuthMiddleware) PublicOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, _ := m.authenticate(c); claims != nil {
			AbortWithRedirect(c, http.StatusForbidden, HomePath, "Already authenticated")
			return
		}
		c.Next()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
