package auth

import (
	"fmt"
	"time"

	"condo-maintenance-backend/internal/config"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret       string
	Issuer          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	// CookieSecure marks session cookies Secure; on in production
	CookieSecure bool
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:       cfg.JWTSecret,
		Issuer:          "condo-maintenance-backend",
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
		CookieSecure:    cfg.IsProduction(),
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access token TTL must be positive")
	}
	if c.RefreshTokenTTL < c.AccessTokenTTL {
		return fmt.Errorf("refresh token TTL must not be shorter than the access token TTL")
	}
	return nil
}
