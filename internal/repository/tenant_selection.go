package repository

import (
	"context"
	"time"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TenantSelectionRepository stores the condominium each user last selected
type TenantSelectionRepository struct {
	db *gorm.DB
}

// NewTenantSelectionRepository creates a new selection repository
func NewTenantSelectionRepository(db *gorm.DB) *TenantSelectionRepository {
	return &TenantSelectionRepository{db: db}
}

// Get retrieves the persisted selection of a user
func (r *TenantSelectionRepository) Get(ctx context.Context, userID uuid.UUID) (*models.TenantSelection, error) {
	var selection models.TenantSelection
	err := r.db.WithContext(ctx).First(&selection, "usuario_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &selection, nil
}

// Save upserts the selection; the row is overwritten, never cleared
func (r *TenantSelectionRepository) Save(ctx context.Context, userID, condominiumID uuid.UUID) error {
	selection := models.TenantSelection{
		UserID:        userID,
		CondominiumID: condominiumID,
		UpdatedAt:     time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "usuario_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"condominio_id", "updated_at"}),
	}).Create(&selection).Error
}
