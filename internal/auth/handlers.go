package auth

import (
	"errors"
	"net/http"

	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidRefreshToken), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "redirect": LoginPath})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "redirect": LoginPath})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsTransient(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable", "retryable": true})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("authentication request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed", "details": err.Error()})
	}
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, resp *AuthResponse) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, resp.AccessToken, int(resp.ExpiresInSeconds), "/", "", h.service.config.CookieSecure, true)
	c.SetCookie(RefreshTokenCookie, resp.RefreshToken, int(h.service.config.RefreshTokenTTL.Seconds()), "/api/auth", "", h.service.config.CookieSecure, true)
}

func (h *AuthHandler) clearSessionCookies(c *gin.Context) {
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", h.service.config.CookieSecure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/api/auth", "", h.service.config.CookieSecure, true)
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Authenticate with email and password and open a session
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse "Session opened"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 503 {object} map[string]interface{} "Temporarily unavailable"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	h.setSessionCookies(c, resp)
	c.JSON(http.StatusOK, resp)
}

// Register handles POST /api/auth/register
// @Summary Sign up
// @Description Create a user profile and open a session. New profiles have no condominium links.
// @Tags authentication
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "New user"
// @Success 201 {object} AuthResponse "User created"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	h.setSessionCookies(c, resp)
	c.JSON(http.StatusCreated, resp)
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh session
// @Description Exchange a refresh token (body or cookie) for a new access token. Refresh tokens are single use.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token; falls back to the refresh_token cookie"
// @Success 200 {object} AuthResponse "Successfully refreshed token"
// @Failure 401 {object} map[string]interface{} "Refresh token invalid, expired or revoked"
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken == "" {
		if cookie, err := c.Cookie(RefreshTokenCookie); err == nil {
			req.RefreshToken = cookie
		}
	}

	resp, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	h.setSessionCookies(c, resp)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
// @Summary Logout user
// @Description Revoke the current session and its refresh tokens
// @Tags authentication
// @Produce json
// @Success 200 {object} AuthLogoutResponse "Successfully logged out"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "redirect": LoginPath})
		return
	}

	h.service.Logout(claims)
	h.clearSessionCookies(c)
	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}

// Session handles GET /api/auth/session
// @Summary Current session
// @Description Return the profile behind the current session
// @Tags authentication
// @Produce json
// @Success 200 {object} SessionResponse "Session is valid"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "redirect": LoginPath})
		return
	}

	resp, err := h.service.Session(c.Request.Context(), claims)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	token := tokenFromRequest(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	claims, err := h.service.ValidateJWT(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
