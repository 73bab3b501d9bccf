package repository

import (
	"context"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetRepository handles database operations for assets
type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create creates a new asset
func (r *AssetRepository) Create(ctx context.Context, asset *models.Asset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

// GetByID retrieves an asset of the given condominium
func (r *AssetRepository) GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.WithContext(ctx).Scopes(inCondominium(condominiumID)).First(&asset, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// List retrieves assets of a condominium with pagination
func (r *AssetRepository) List(ctx context.Context, condominiumID uuid.UUID, filter AssetFilter) ([]models.Asset, int64, error) {
	var assets []models.Asset
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Asset{}).Scopes(inCondominium(condominiumID))
	if filter.Type != "" {
		query = query.Where("tipo = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("nome ILIKE ? OR localizacao ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Scopes(page(filter.Limit, filter.Offset)).Order("nome ASC").Find(&assets).Error; err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

// Update updates an asset
func (r *AssetRepository) Update(ctx context.Context, asset *models.Asset) error {
	return r.db.WithContext(ctx).Save(asset).Error
}

// Delete deletes an asset of the given condominium
func (r *AssetRepository) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	return deleteScoped(r.db.WithContext(ctx), &models.Asset{}, condominiumID, id)
}
