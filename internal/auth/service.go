package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	SessionID uuid.UUID `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStore is the profile lookup the auth service needs
type UserStore interface {
	Create(ctx context.Context, user *models.UserProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
}

// AuthService issues and validates session tokens
type AuthService struct {
	config    *AuthConfig
	users     UserStore
	hasher    PasswordHasher
	validator *validator.Validate
	now       func() time.Time

	tokenMutex    sync.RWMutex
	refreshTokens map[string]*RefreshTokenData
	// revoked session ids, kept until the longest-lived access token would have expired
	revoked map[uuid.UUID]time.Time

	hookMu   sync.RWMutex
	onLogout []func(userID uuid.UUID)
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uuid.UUID `json:"user_id" example:"3f8a3b8e-6a4e-4d0c-9d8e-0d6c1f7e2a11"`
	Email                string    `json:"email" example:"sindico@condominio.com.br"`
	Name                 string    `json:"name" example:"Maria Souza"`
	SessionID            uuid.UUID `json:"sid"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"sindico@condominio.com.br"`
	Password string `json:"password" validate:"required" example:"s3nha-forte"`
}

// RegisterRequest represents the request body for sign-up
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"nome" validate:"required,min=2,max=200"`
	Phone    string `json:"telefone,omitempty" validate:"max=30"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ProfileResponse is the public view of a user profile
type ProfileResponse struct {
	ID         uuid.UUID         `json:"id"`
	Email      string            `json:"email"`
	Name       string            `json:"nome"`
	GlobalRole models.GlobalRole `json:"role,omitempty"`
}

// AuthResponse is returned by login, register and refresh
type AuthResponse struct {
	AccessToken      string          `json:"accessToken"`
	TokenType        string          `json:"tokenType" example:"Bearer"`
	ExpiresInSeconds int64           `json:"expiresInSeconds" example:"3600"`
	RefreshToken     string          `json:"refreshToken,omitempty"`
	Profile          ProfileResponse `json:"profile"`
}

// SessionResponse describes the current session
type SessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	ExpiresAt     time.Time       `json:"expiresAt"`
	Profile       ProfileResponse `json:"profile"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users UserStore, hasher PasswordHasher) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if hasher == nil {
		hasher = NewArgon2Hasher(nil)
	}
	return &AuthService{
		config:        config,
		users:         users,
		hasher:        hasher,
		validator:     validator.New(),
		now:           time.Now,
		refreshTokens: make(map[string]*RefreshTokenData),
		revoked:       make(map[uuid.UUID]time.Time),
	}, nil
}

// OnLogout registers fn to run after a session is revoked
func (s *AuthService) OnLogout(fn func(userID uuid.UUID)) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// Register creates a profile with no global role and no condominium links
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.UserProfile{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		Phone:        req.Phone,
		PasswordHash: hash,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("user registered")
	return s.issue(user, uuid.New())
}

// Login verifies credentials and opens a new session
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewTransientError("load user", err)
	}
	if !user.Active {
		return nil, apperrors.ErrInvalidCredentials
	}

	ok, err := s.hasher.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user, uuid.New())
}

// RefreshToken rotates a refresh token and issues a new access token for the same session
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	s.tokenMutex.Lock()
	data, exists := s.refreshTokens[refreshToken]
	if exists {
		// single use
		delete(s.refreshTokens, refreshToken)
	}
	s.tokenMutex.Unlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if s.now().After(data.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if s.isRevoked(data.SessionID) {
		return nil, apperrors.ErrSessionRevoked
	}

	user, err := s.users.GetByID(ctx, data.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, apperrors.NewTransientError("load user", err)
	}
	if !user.Active {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	return s.issue(user, data.SessionID)
}

// Session returns the profile behind valid claims
func (s *AuthService) Session(ctx context.Context, claims *AuthClaims) (*SessionResponse, error) {
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionRequired
		}
		return nil, apperrors.NewTransientError("load user", err)
	}
	var expires time.Time
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}
	return &SessionResponse{
		Authenticated: true,
		ExpiresAt:     expires,
		Profile:       toProfile(user),
	}, nil
}

// GenerateJWT creates an access token for the user's session
func (s *AuthService) GenerateJWT(user *models.UserProfile, sessionID uuid.UUID) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates a token and rejects revoked sessions
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("invalid token")
	}
	if s.isRevoked(claims.SessionID) {
		return nil, apperrors.ErrSessionRevoked
	}
	return claims, nil
}

// Logout revokes the session and every refresh token issued for it
func (s *AuthService) Logout(claims *AuthClaims) {
	if claims == nil {
		return
	}

	s.tokenMutex.Lock()
	now := s.now()
	s.revoked[claims.SessionID] = now.Add(s.config.RefreshTokenTTL)
	for token, data := range s.refreshTokens {
		if data.SessionID == claims.SessionID {
			delete(s.refreshTokens, token)
		}
	}
	s.pruneLocked(now)
	s.tokenMutex.Unlock()

	s.hookMu.RLock()
	hooks := append([]func(uuid.UUID){}, s.onLogout...)
	s.hookMu.RUnlock()
	for _, fn := range hooks {
		fn(claims.UserID)
	}
}

func (s *AuthService) issue(user *models.UserProfile, sessionID uuid.UUID) (*AuthResponse, error) {
	access, err := s.GenerateJWT(user, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}
	refresh, err := generateRandomString(48)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := s.now()
	s.tokenMutex.Lock()
	s.refreshTokens[refresh] = &RefreshTokenData{
		UserID:    user.ID,
		SessionID: sessionID,
		ExpiresAt: now.Add(s.config.RefreshTokenTTL),
		CreatedAt: now,
	}
	s.pruneLocked(now)
	s.tokenMutex.Unlock()

	return &AuthResponse{
		AccessToken:      access,
		TokenType:        "Bearer",
		ExpiresInSeconds: int64(s.config.AccessTokenTTL.Seconds()),
		RefreshToken:     refresh,
		Profile:          toProfile(user),
	}, nil
}

func (s *AuthService) isRevoked(sessionID uuid.UUID) bool {
	s.tokenMutex.RLock()
	defer s.tokenMutex.RUnlock()
	_, revoked := s.revoked[sessionID]
	return revoked
}

// pruneLocked drops expired refresh tokens and revocations; caller holds tokenMutex
func (s *AuthService) pruneLocked(now time.Time) {
	for token, data := range s.refreshTokens {
		if now.After(data.ExpiresAt) {
			delete(s.refreshTokens, token)
		}
	}
	for id, until := range s.revoked {
		if now.After(until) {
			delete(s.revoked, id)
		}
	}
}

func toProfile(user *models.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		GlobalRole: user.GlobalRole,
	}
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
