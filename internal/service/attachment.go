package service

import (
	"context"
	"fmt"
	"io"

	"condo-maintenance-backend/internal/cache"
	"condo-maintenance-backend/internal/database/models"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/logger"
	"condo-maintenance-backend/internal/repository"
	"condo-maintenance-backend/internal/storage"

	"github.com/google/uuid"
)

// AttachmentService stores files linked to work orders, tickets, assets and conformity items
type AttachmentService struct {
	repo     repository.AttachmentRepositoryInterface
	bucket   storage.Bucket
	maxBytes int64
	deps     Deps
}

var _ AttachmentServiceInterface = (*AttachmentService)(nil)

// NewAttachmentService creates a new attachment service
func NewAttachmentService(repo repository.AttachmentRepositoryInterface, bucket storage.Bucket, maxBytes int64, deps Deps) *AttachmentService {
	return &AttachmentService{repo: repo, bucket: bucket, maxBytes: maxBytes, deps: deps.withDefaults()}
}

// UploadRequest describes one incoming file
type UploadRequest struct {
	EntityType  string
	EntityID    uuid.UUID
	FileName    string
	ContentType string
	UploadedBy  uuid.UUID
	Body        io.Reader
}

// Upload writes the file to the bucket and records it
func (s *AttachmentService) Upload(ctx context.Context, condominiumID uuid.UUID, up UploadRequest) (*models.Attachment, error) {
	if !models.IsAttachmentEntity(up.EntityType) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedEntityType, up.EntityType)
	}
	if up.EntityID == uuid.Nil {
		return nil, apperrors.NewValidationError("entidade_id", "is required")
	}

	id := uuid.New()
	key := storage.ObjectKey(condominiumID, up.EntityType, id, up.FileName)
	size, err := s.bucket.Put(key, up.Body, s.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	att := &models.Attachment{
		BaseModel:    models.BaseModel{ID: id},
		TenantScoped: models.TenantScoped{CondominiumID: condominiumID},
		EntityType:   up.EntityType,
		EntityID:     up.EntityID,
		FileName:     up.FileName,
		ContentType:  up.ContentType,
		Size:         size,
		StorageKey:   key,
		UploadedBy:   up.UploadedBy,
	}
	if err := s.repo.Create(ctx, att); err != nil {
		if derr := s.bucket.Delete(key); derr != nil {
			logger.WithContext(ctx).WithError(derr).WithField("key", key).Warn("orphaned attachment left in bucket")
		}
		return nil, fmt.Errorf("failed to record attachment: %w", err)
	}

	s.deps.invalidate(ctx, condominiumID, resourceAttachments)
	return att, nil
}

// List returns the attachments of one entity
func (s *AttachmentService) List(ctx context.Context, condominiumID uuid.UUID, entityType string, entityID uuid.UUID) ([]models.Attachment, error) {
	if !models.IsAttachmentEntity(entityType) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedEntityType, entityType)
	}
	key := cache.Key(resourceAttachments, condominiumID, entityType+"|"+entityID.String())
	return cache.Fetch(ctx, s.deps.Cache, key, func(ctx context.Context) ([]models.Attachment, error) {
		list, err := s.repo.ListByEntity(ctx, condominiumID, entityType, entityID)
		if err != nil {
			return nil, fmt.Errorf("failed to list attachments: %w", err)
		}
		return list, nil
	})
}

// Open returns the attachment and its content; the caller closes the reader
func (s *AttachmentService) Open(ctx context.Context, condominiumID, id uuid.UUID) (*models.Attachment, io.ReadCloser, error) {
	att, err := s.repo.GetByID(ctx, condominiumID, id)
	if err != nil {
		return nil, nil, lookup(err, apperrors.ErrAttachmentNotFound, "get attachment")
	}
	body, err := s.bucket.Open(att.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return att, body, nil
}

// Delete removes the record, then the file
func (s *AttachmentService) Delete(ctx context.Context, condominiumID, id uuid.UUID) error {
	att, err := s.repo.GetByID(ctx, condominiumID, id)
	if err != nil {
		return lookup(err, apperrors.ErrAttachmentNotFound, "get attachment")
	}
	if err := s.repo.Delete(ctx, condominiumID, id); err != nil {
		return lookup(err, apperrors.ErrAttachmentNotFound, "delete attachment")
	}
	if err := s.bucket.Delete(att.StorageKey); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("key", att.StorageKey).Warn("failed to remove attachment file")
	}

	s.deps.invalidate(ctx, condominiumID, resourceAttachments)
	return nil
}
