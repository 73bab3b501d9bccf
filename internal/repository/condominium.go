package repository

import (
	"context"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CondominiumRepository handles database operations for condominiums
type CondominiumRepository struct {
	db *gorm.DB
}

// NewCondominiumRepository creates a new condominium repository
func NewCondominiumRepository(db *gorm.DB) *CondominiumRepository {
	return &CondominiumRepository{db: db}
}

// Create creates a new condominium
func (r *CondominiumRepository) Create(ctx context.Context, condominium *models.Condominium) error {
	return r.db.WithContext(ctx).Create(condominium).Error
}

// GetByID retrieves a condominium by ID
func (r *CondominiumRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Condominium, error) {
	var condominium models.Condominium
	err := r.db.WithContext(ctx).First(&condominium, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &condominium, nil
}

// GetAll retrieves every condominium ordered by name
func (r *CondominiumRepository) GetAll(ctx context.Context) ([]models.Condominium, error) {
	var condominiums []models.Condominium
	err := r.db.WithContext(ctx).Order("nome").Find(&condominiums).Error
	if err != nil {
		return nil, err
	}
	return condominiums, nil
}

// Update updates a condominium
func (r *CondominiumRepository) Update(ctx context.Context, condominium *models.Condominium) error {
	return r.db.WithContext(ctx).Save(condominium).Error
}

// Delete deletes a condominium and its links
func (r *CondominiumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CondominiumLink{}, "condominio_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.TenantSelection{}, "condominio_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Condominium{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
