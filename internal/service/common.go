package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"condo-maintenance-backend/internal/cache"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/events"
	"condo-maintenance-backend/internal/logger"
	"condo-maintenance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cached resource names; also the first segment of every cache key
const (
	resourceAssets      = "ativos"
	resourcePlans       = "manutencoes"
	resourceWorkOrders  = "os"
	resourceTickets     = "chamados"
	resourceConformity  = "conformidade"
	resourceTemplates   = "templates"
	resourceAttachments = "anexos"
	resourceMembers     = "membros"
	resourceDashboard   = "dashboard"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Page is a paginated listing
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// Pagination is the page/page_size pair accepted by list endpoints
type Pagination struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// normalize clamps the pair and returns limit and offset
func (p *Pagination) normalize() (limit, offset int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > maxPageSize {
		p.PageSize = defaultPageSize
	}
	return p.PageSize, (p.Page - 1) * p.PageSize
}

// Clock returns the current time; tests replace it
type Clock func() time.Time

// Deps are shared by every tenant-scoped service
type Deps struct {
	Validator *validator.Validate
	Cache     *cache.QueryCache
	Events    events.Publisher
	Now       Clock
}

func (d Deps) withDefaults() Deps {
	if d.Validator == nil {
		d.Validator = validator.New()
	}
	if d.Events == nil {
		d.Events = events.NoopPublisher{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

func (d Deps) validate(req interface{}) error {
	if err := d.Validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// invalidate drops the cached reads a mutation of resource made stale
func (d Deps) invalidate(ctx context.Context, condominiumID uuid.UUID, resources ...string) {
	if d.Cache == nil {
		return
	}
	dropped := 0
	for _, r := range append(resources, resourceDashboard) {
		dropped += d.Cache.InvalidateResource(condominiumID, r)
	}
	if dropped > 0 {
		logger.WithContext(ctx).WithField("entries", dropped).Debug("query cache invalidated")
	}
}

func (d Deps) publish(ctx context.Context, eventType string, condominiumID, entityID uuid.UUID, payload map[string]any) {
	events.PublishAsync(ctx, d.Events, events.Event{
		Type:          eventType,
		CondominiumID: condominiumID,
		EntityID:      entityID,
		Payload:       payload,
	})
}

// lookup maps a missing record to notFound and wraps everything else
func lookup(err error, notFound error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// checkAsset rejects an asset reference outside the condominium
func checkAsset(ctx context.Context, assets repository.AssetRepositoryInterface, condominiumID uuid.UUID, assetID *uuid.UUID) error {
	if assetID == nil {
		return nil
	}
	if _, err := assets.GetByID(ctx, condominiumID, *assetID); err != nil {
		return lookup(err, apperrors.ErrAssetNotFound, "get asset")
	}
	return nil
}

func optionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
