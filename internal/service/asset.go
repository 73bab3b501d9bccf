package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"condo-maintenance-backend/internal/cache"
	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/repository"

	"github.com/google/uuid"
)

// AssetService manages building equipment
type AssetService struct {
	repo repository.AssetRepositoryInterface
	deps Deps
}

var _ AssetServiceInterface = (*AssetService)(nil)

// NewAssetService creates a new asset service
func NewAssetService(repo repository.AssetRepositoryInterface, deps Deps) *AssetService {
	return &AssetService{repo: repo, deps: deps.withDefaults()}
}

// AssetQuery filters asset listings
type AssetQuery struct {
	Pagination
	Type   string             `form:"tipo"`
	Status models.AssetStatus `form:"status"`
	Search string             `form:"q"`
}

// AssetRequest is the body of asset create and update
type AssetRequest struct {
	Name         string             `json:"nome" validate:"required,max=200"`
	Type         string             `json:"tipo" validate:"required,max=80"`
	Location     string             `json:"localizacao" validate:"max=200"`
	Manufacturer string             `json:"fabricante,omitempty" validate:"max=120"`
	Model        string             `json:"modelo,omitempty" validate:"max=120"`
	SerialNumber string             `json:"numero_serie,omitempty" validate:"max=120"`
	InstalledAt  *time.Time         `json:"data_instalacao,omitempty"`
	Status       models.AssetStatus `json:"status,omitempty"`
	Metadata     json.RawMessage    `json:"metadata,omitempty" swaggertype:"object"`
}

func (r *AssetRequest) check() error {
	if r.Status == "" {
		r.Status = models.AssetStatusActive
	}
	if !r.Status.IsValid() {
		return apperrors.NewValidationError("status", fmt.Sprintf("unknown asset status %q", r.Status))
	}
	return nil
}

func (r *AssetRequest) apply(a *models.Asset) {
	a.Name = r.Name
	a.Type = r.Type
	a.Location = r.Location
	a.Manufacturer = r.Manufacturer
	a.Model = r.Model
	a.SerialNumber = r.SerialNumber
	a.InstalledAt = r.InstalledAt
	a.Status = r.Status
	a.Metadata = r.Metadata
}

// List returns the condominium's assets
func (s *AssetService) List(ctx context.Context, condominiumID uuid.UUID, q AssetQuery) (*Page[models.Asset], error) {
	limit, offset := q.normalize()
	key := cache.Key(resourceAssets, condominiumID, fmt.Sprintf("%s|%s|%s|%d|%d", q.Type, q.Status, q.Search, limit, offset))

	return cache.Fetch(ctx, s.deps.Cache, key, func(ctx context.Context) (*Page[models.Asset], error) {
		assets, total, err := s.repo.List(ctx, condominiumID, repository.AssetFilter{
			Type: q.Type, Status: q.Status, Search: q.Search, Limit: limit, Offset: offset,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list assets: %w", err)
		}
		return &Page[models.Asset]{Items: assets, Total: total, Page: q.Page, PageSize: q.PageSize}, nil
	})
}

// Get returns one asset
func (s *AssetService) Get(ctx context.Context, condominiumID, id uuid.UUID) (*models.Asset, error) {
	asset, err := s.repo.GetByID(ctx, condominiumID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrAssetNotFound, "get asset")
	}
	return asset, nil
}

// Create registers an asset
func (s *AssetService) Create(ctx context.Context, condominiumID uuid.UUID, req *AssetRequest) (*models.Asset, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if err := req.check(); err != nil {
		return nil, err
	}

	asset := &models.Asset{TenantScoped: models.TenantScoped{CondominiumID: condominiumID}}
	req.apply(asset)
	if err := s.repo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.deps.invalidate(ctx, condominiumID, resourceAssets)
	return asset, nil
}

// Update replaces an asset's editable fields
func (s *AssetService) Update(ctx context.Context, condominiumID, id uuid.UUID, req *AssetRequest) (*models.Asset, error) {
	if err := s.deps.validate(req); err != nil {
		return nil, err
	}
	if err := req.check(); err != nil {
		return nil, err
	}

	asset, err := s.Get(ctx, condominiumID, id)
	if err != nil {
		return nil, err
	}
	req.apply(asset)
	if err := s.repo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	s.deps.invalidate(ctx, condominiumID, resourceAssets, resourcePlans)
	return asset, nil
}

// Delete removes an asset
func (s *AssetService) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, condominiumID, id); err != nil {
		return lookup(err, apperrors.ErrAssetNotFound, "delete asset")
	}
	s.deps.invalidate(ctx, condominiumID, resourceAssets, resourcePlans)
	return nil
}
