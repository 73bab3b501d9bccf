package repository

import (
	"context"
	"time"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenancePlanRepository handles database operations for maintenance plans
type MaintenancePlanRepository struct {
	db *gorm.DB
}

// NewMaintenancePlanRepository creates a new maintenance plan repository
func NewMaintenancePlanRepository(db *gorm.DB) *MaintenancePlanRepository {
	return &MaintenancePlanRepository{db: db}
}

// Create creates a new maintenance plan
func (r *MaintenancePlanRepository) Create(ctx context.Context, plan *models.MaintenancePlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// GetByID retrieves a plan with its asset
func (r *MaintenancePlanRepository) GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.MaintenancePlan, error) {
	var plan models.MaintenancePlan
	err := r.db.WithContext(ctx).
		Preload("Asset").
		Scopes(inCondominium(condominiumID)).
		First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// List retrieves plans ordered by next execution, soonest first
func (r *MaintenancePlanRepository) List(ctx context.Context, condominiumID uuid.UUID, filter MaintenancePlanFilter) ([]models.MaintenancePlan, int64, error) {
	var plans []models.MaintenancePlan
	var total int64

	query := r.db.WithContext(ctx).Model(&models.MaintenancePlan{}).Scopes(inCondominium(condominiumID))
	if filter.AssetID != nil {
		query = query.Where("ativo_id = ?", *filter.AssetID)
	}
	if filter.DueBefore != nil {
		query = query.Where("ativo AND proxima_execucao <= ?", *filter.DueBefore)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Asset").
		Scopes(page(filter.Limit, filter.Offset)).
		Order("proxima_execucao ASC NULLS LAST").
		Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}

// Update updates a maintenance plan
func (r *MaintenancePlanRepository) Update(ctx context.Context, plan *models.MaintenancePlan) error {
	return r.db.WithContext(ctx).Omit("Asset").Save(plan).Error
}

// Delete deletes a maintenance plan
func (r *MaintenancePlanRepository) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	return deleteScoped(r.db.WithContext(ctx), &models.MaintenancePlan{}, condominiumID, id)
}

// CountDueBefore counts active plans whose next execution is at or before the given time
func (r *MaintenancePlanRepository) CountDueBefore(ctx context.Context, condominiumID uuid.UUID, before time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MaintenancePlan{}).
		Scopes(inCondominium(condominiumID)).
		Where("ativo AND proxima_execucao <= ?", before).
		Count(&count).Error
	return count, err
}
