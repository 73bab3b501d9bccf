package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // e.g. "for this condominium"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// TransientError marks a backend failure the caller may retry.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: temporarily unavailable", e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrCondominiumNotFound       = &NotFoundError{Entity: "condominium"}
	ErrUserNotFound              = &NotFoundError{Entity: "user"}
	ErrCondominiumLinkNotFound   = &NotFoundError{Entity: "condominium link"}
	ErrAssetNotFound             = &NotFoundError{Entity: "asset"}
	ErrMaintenancePlanNotFound   = &NotFoundError{Entity: "maintenance plan"}
	ErrWorkOrderNotFound         = &NotFoundError{Entity: "work order"}
	ErrTicketNotFound            = &NotFoundError{Entity: "ticket"}
	ErrConformityItemNotFound    = &NotFoundError{Entity: "conformity item"}
	ErrChecklistTemplateNotFound = &NotFoundError{Entity: "checklist template"}
	ErrAttachmentNotFound        = &NotFoundError{Entity: "attachment"}
)

// Already Exists Errors
var (
	ErrUserExists            = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrCondominiumLinkExists = &AlreadyExistsError{Entity: "condominium link", Context: "for this user and condominium"}
	ErrWorkOrderExists       = &AlreadyExistsError{Entity: "work order", Context: "for this ticket"}
)

// Business Logic Errors
var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidWorkOrderNumber  = errors.New("invalid work order number")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrUnsupportedEntityType   = errors.New("unsupported attachment entity type")
	ErrFileTooLarge            = errors.New("file exceeds the upload limit")
	ErrNoActiveCondominium     = &AuthorizationError{Message: "no condominium selected"}
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrSessionRequired     = &AuthenticationError{Message: "authentication required"}
	ErrSessionRevoked      = &AuthenticationError{Message: "session has been revoked"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// Authorization Errors
var (
	ErrTenantNotAccessible = &AuthorizationError{Message: "condominium is not accessible to this user"}
	ErrRoleNotAllowed      = &AuthorizationError{Message: "role is not allowed for this resource"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing = &ConfigurationError{Message: "JWT secret is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsTransient checks if an error is a TransientError
func IsTransient(err error) bool {
	var transientErr *TransientError
	return errors.As(err, &transientErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewTransientError wraps err as retryable
func NewTransientError(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}
