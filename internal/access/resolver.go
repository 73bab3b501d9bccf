// Package access decides whether a user may act inside a condominium.
//
// A global owner or admin passes every check. Everyone else needs a link to the
// active condominium whose role is in the caller's allow-list. Any lookup that
// fails denies access; only failures other than a missing record are reported as
// retryable.
package access

import (
	"context"
	"errors"

	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileReader loads user profiles
type ProfileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
}

// LinkReader loads user-condominium links
type LinkReader interface {
	GetByUserAndCondominium(ctx context.Context, userID, condominiumID uuid.UUID) (*models.CondominiumLink, error)
	GetPrincipal(ctx context.Context, userID uuid.UUID) (*models.CondominiumLink, error)
}

// Kind classifies a resolved identity
type Kind int

const (
	KindUnauthenticated Kind = iota
	KindGlobalAdmin
	KindScoped
	KindNoAccess
)

// Resolution is who the user is with respect to one condominium
type Resolution struct {
	Kind          Kind
	Role          models.Role
	CondominiumID uuid.UUID
}

// Outcome is the tagged result of a guard check
type Outcome int

const (
	Granted Outcome = iota
	Unauthenticated
	Denied
	TransientError
)

func (o Outcome) String() string {
	switch o {
	case Granted:
		return "granted"
	case Unauthenticated:
		return "unauthenticated"
	case Denied:
		return "denied"
	case TransientError:
		return "transient_error"
	}
	return "unknown"
}

// Decision carries the outcome plus what was resolved on the way
type Decision struct {
	Outcome       Outcome
	GlobalAdmin   bool
	Role          models.Role
	CondominiumID uuid.UUID
	Err           error
}

// Resolver implements role resolution over profile and link lookups
type Resolver struct {
	profiles ProfileReader
	links    LinkReader
}

// NewResolver creates a resolver
func NewResolver(profiles ProfileReader, links LinkReader) *Resolver {
	return &Resolver{profiles: profiles, links: links}
}

// Resolve determines the user's standing. requested, when set, names the active
// condominium; otherwise the principal link decides. Lookup errors are returned
// as-is next to a KindNoAccess resolution.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID, requested *uuid.UUID) (Resolution, error) {
	if userID == uuid.Nil {
		return Resolution{Kind: KindUnauthenticated}, nil
	}

	profile, err := r.profiles.GetByID(ctx, userID)
	if err != nil {
		return Resolution{Kind: KindNoAccess}, err
	}
	if profile.GlobalRole.IsGlobalAdmin() {
		res := Resolution{Kind: KindGlobalAdmin}
		if requested != nil {
			res.CondominiumID = *requested
		}
		return res, nil
	}

	var link *models.CondominiumLink
	if requested != nil {
		link, err = r.links.GetByUserAndCondominium(ctx, userID, *requested)
	} else {
		link, err = r.links.GetPrincipal(ctx, userID)
	}
	if err != nil {
		return Resolution{Kind: KindNoAccess}, err
	}
	if link.Role.Normalize() == "" {
		return Resolution{Kind: KindNoAccess, CondominiumID: link.CondominiumID}, nil
	}

	return Resolution{Kind: KindScoped, Role: link.Role.Normalize(), CondominiumID: link.CondominiumID}, nil
}

// Check resolves the user and compares the scoped role against allow. An empty
// allow-list admits global admins only.
func (r *Resolver) Check(ctx context.Context, userID uuid.UUID, requested *uuid.UUID, allow ...models.Role) Decision {
	res, err := r.Resolve(ctx, userID, requested)
	if err != nil {
		if isMissing(err) {
			return Decision{Outcome: Denied, Err: err}
		}
		return Decision{Outcome: TransientError, Err: apperrors.NewTransientError("resolve role", err)}
	}

	switch res.Kind {
	case KindUnauthenticated:
		return Decision{Outcome: Unauthenticated}
	case KindGlobalAdmin:
		return Decision{Outcome: Granted, GlobalAdmin: true, CondominiumID: res.CondominiumID}
	case KindScoped:
		d := Decision{Role: res.Role, CondominiumID: res.CondominiumID}
		if res.Role.In(allow...) {
			d.Outcome = Granted
		} else {
			d.Outcome = Denied
			d.Err = apperrors.ErrRoleNotAllowed
		}
		return d
	}
	return Decision{Outcome: Denied, CondominiumID: res.CondominiumID, Err: apperrors.ErrTenantNotAccessible}
}

func isMissing(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || apperrors.IsNotFound(err)
}
