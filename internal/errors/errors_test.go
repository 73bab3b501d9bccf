package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "asset"}
		assert.Equal(t, "asset not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "asset"}, &NotFoundError{Entity: "asset"}))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(&NotFoundError{Entity: "asset"}, &NotFoundError{Entity: "ticket"}))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrWorkOrderNotFound, ErrWorkOrderNotFound))
		assert.False(t, errors.Is(ErrWorkOrderNotFound, ErrTicketNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrCondominiumNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrUserNotFound)))
		assert.False(t, IsNotFound(ErrInvalidStatusTransition))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "asset"}
		assert.Equal(t, "asset already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrCondominiumLinkExists))
		assert.False(t, IsAlreadyExists(ErrAssetNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "numero", Message: "invalid format"}
		assert.Equal(t, "validation error: numero - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.False(t, IsValidation(ErrAssetNotFound))
	})
}

func TestAccessErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(fmt.Errorf("login: %w", ErrSessionRevoked)))
	assert.False(t, IsAuthentication(ErrTenantNotAccessible))

	assert.True(t, IsAuthorization(ErrTenantNotAccessible))
	assert.True(t, IsAuthorization(ErrNoActiveCondominium))
	assert.False(t, IsAuthorization(ErrInvalidCredentials))

	assert.True(t, IsConfiguration(ErrJWTSecretMissing))
}

func TestTransientError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := NewTransientError("resolve role", cause)

	assert.True(t, IsTransient(err))
	assert.True(t, IsTransient(fmt.Errorf("guard: %w", err)))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "resolve role: connection reset by peer", err.Error())
	assert.False(t, IsTransient(cause))

	assert.Equal(t, "ping: temporarily unavailable", (&TransientError{Op: "ping"}).Error())
}
