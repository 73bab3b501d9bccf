package repository

import (
	"context"
	"time"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConformityItemRepository handles database operations for conformity items
type ConformityItemRepository struct {
	db *gorm.DB
}

// NewConformityItemRepository creates a new conformity item repository
func NewConformityItemRepository(db *gorm.DB) *ConformityItemRepository {
	return &ConformityItemRepository{db: db}
}

// Create creates a new conformity item
func (r *ConformityItemRepository) Create(ctx context.Context, item *models.ConformityItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetByID retrieves a conformity item
func (r *ConformityItemRepository) GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.ConformityItem, error) {
	var item models.ConformityItem
	err := r.db.WithContext(ctx).Scopes(inCondominium(condominiumID)).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List retrieves conformity items, earliest due first; never-scheduled items go last
func (r *ConformityItemRepository) List(ctx context.Context, condominiumID uuid.UUID, limit, offset int) ([]models.ConformityItem, int64, error) {
	var items []models.ConformityItem
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ConformityItem{}).Scopes(inCondominium(condominiumID))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Scopes(page(limit, offset)).
		Order("proximo_vencimento ASC NULLS LAST").
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update updates a conformity item
func (r *ConformityItemRepository) Update(ctx context.Context, item *models.ConformityItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete deletes a conformity item
func (r *ConformityItemRepository) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	return deleteScoped(r.db.WithContext(ctx), &models.ConformityItem{}, condominiumID, id)
}

// CountOverdue counts items whose due date has passed
func (r *ConformityItemRepository) CountOverdue(ctx context.Context, condominiumID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ConformityItem{}).
		Scopes(inCondominium(condominiumID)).
		Where("proximo_vencimento < ?", now).
		Count(&count).Error
	return count, err
}
