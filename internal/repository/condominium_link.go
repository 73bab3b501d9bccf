package repository

import (
	"context"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CondominiumLinkRepository handles database operations for user-condominium links
type CondominiumLinkRepository struct {
	db *gorm.DB
}

// NewCondominiumLinkRepository creates a new link repository
func NewCondominiumLinkRepository(db *gorm.DB) *CondominiumLinkRepository {
	return &CondominiumLinkRepository{db: db}
}

// Create creates a new link. A principal link demotes any previous principal.
func (r *CondominiumLinkRepository) Create(ctx context.Context, link *models.CondominiumLink) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if link.IsPrincipal {
			if err := clearPrincipal(tx, link.UserID); err != nil {
				return err
			}
		}
		return tx.Create(link).Error
	})
}

// GetByID retrieves a link by ID
func (r *CondominiumLinkRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CondominiumLink, error) {
	var link models.CondominiumLink
	err := r.db.WithContext(ctx).First(&link, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByUserAndCondominium retrieves the link between a user and a condominium
func (r *CondominiumLinkRepository) GetByUserAndCondominium(ctx context.Context, userID, condominiumID uuid.UUID) (*models.CondominiumLink, error) {
	var link models.CondominiumLink
	err := r.db.WithContext(ctx).
		First(&link, "usuario_id = ? AND condominio_id = ?", userID, condominiumID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetPrincipal retrieves the user's principal link
func (r *CondominiumLinkRepository) GetPrincipal(ctx context.Context, userID uuid.UUID) (*models.CondominiumLink, error) {
	var link models.CondominiumLink
	err := r.db.WithContext(ctx).
		First(&link, "usuario_id = ? AND is_principal", userID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListByUser retrieves every link of a user with its condominium, oldest first
func (r *CondominiumLinkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CondominiumLink, error) {
	var links []models.CondominiumLink
	err := r.db.WithContext(ctx).
		Preload("Condominium").
		Where("usuario_id = ?", userID).
		Order("created_at").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// ListByCondominium retrieves every member link of a condominium with its user
func (r *CondominiumLinkRepository) ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]models.CondominiumLink, error) {
	var links []models.CondominiumLink
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("condominio_id = ?", condominiumID).
		Order("created_at").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// UpdateRole changes the role on a link
func (r *CondominiumLinkRepository) UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) error {
	res := r.db.WithContext(ctx).Model(&models.CondominiumLink{}).
		Where("id = ?", id).
		Update("papel", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetPrincipal marks linkID as the user's only principal link
func (r *CondominiumLinkRepository) SetPrincipal(ctx context.Context, userID, linkID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link models.CondominiumLink
		if err := tx.First(&link, "id = ? AND usuario_id = ?", linkID, userID).Error; err != nil {
			return err
		}
		if err := clearPrincipal(tx, userID); err != nil {
			return err
		}
		return tx.Model(&models.CondominiumLink{}).
			Where("id = ?", linkID).
			Update("is_principal", true).Error
	})
}

// Delete deletes a link
func (r *CondominiumLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.CondominiumLink{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// clearPrincipal demotes the user's principal link. The user row stays locked
// until the transaction ends, so concurrent principal changes apply one at a
// time and the last one wins.
func clearPrincipal(tx *gorm.DB, userID uuid.UUID) error {
	var locked []uuid.UUID
	if err := tx.Model(&models.UserProfile{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", userID).
		Pluck("id", &locked).Error; err != nil {
		return err
	}
	return tx.Model(&models.CondominiumLink{}).
		Where("usuario_id = ? AND is_principal", userID).
		Update("is_principal", false).Error
}
