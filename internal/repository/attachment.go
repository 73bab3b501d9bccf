package repository

import (
	"context"

	"condo-maintenance-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentRepository handles attachment metadata; file bytes live in storage
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create creates attachment metadata
func (r *AttachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

// GetByID retrieves attachment metadata
func (r *AttachmentRepository) GetByID(ctx context.Context, condominiumID, id uuid.UUID) (*models.Attachment, error) {
	var attachment models.Attachment
	err := r.db.WithContext(ctx).Scopes(inCondominium(condominiumID)).First(&attachment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// ListByEntity retrieves the attachments of one entity
func (r *AttachmentRepository) ListByEntity(ctx context.Context, condominiumID uuid.UUID, entityType string, entityID uuid.UUID) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := r.db.WithContext(ctx).
		Scopes(inCondominium(condominiumID)).
		Where("entidade_tipo = ? AND entidade_id = ?", entityType, entityID).
		Order("created_at").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

// Delete deletes attachment metadata
func (r *AttachmentRepository) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	return deleteScoped(r.db.WithContext(ctx), &models.Attachment{}, condominiumID, id)
}
