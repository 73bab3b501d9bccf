package repository

import (
	"context"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChecklistTemplateRepository handles database operations for checklist templates.
// Templates with no condominium are global and visible to everyone.
type ChecklistTemplateRepository struct {
	db *gorm.DB
}

// NewChecklistTemplateRepository creates a new checklist template repository
func NewChecklistTemplateRepository(db *gorm.DB) *ChecklistTemplateRepository {
	return &ChecklistTemplateRepository{db: db}
}

func visibleTo(condominiumID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("condominio_id IS NULL OR condominio_id = ?", condominiumID)
	}
}

// Create creates a new checklist template
func (r *ChecklistTemplateRepository) Create(ctx context.Context, template *models.ChecklistTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

// GetVisible retrieves a template that is global or owned by the condominium
func (r *ChecklistTemplateRepository) GetVisible(ctx context.Context, condominiumID, id uuid.UUID) (*models.ChecklistTemplate, error) {
	var template models.ChecklistTemplate
	err := r.db.WithContext(ctx).Scopes(visibleTo(condominiumID)).First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// ListVisible retrieves global templates plus those owned by the condominium
func (r *ChecklistTemplateRepository) ListVisible(ctx context.Context, condominiumID uuid.UUID) ([]models.ChecklistTemplate, error) {
	var templates []models.ChecklistTemplate
	err := r.db.WithContext(ctx).Scopes(visibleTo(condominiumID)).Order("nbr, nome").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// Delete deletes a template owned by the condominium. Global templates cannot be deleted here.
func (r *ChecklistTemplateRepository) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	return deleteScoped(r.db.WithContext(ctx), &models.ChecklistTemplate{}, condominiumID, id)
}
