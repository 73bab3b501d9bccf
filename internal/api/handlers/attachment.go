package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/logger"
	"condo-maintenance-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttachmentHandler handles file uploads linked to condominium records
type AttachmentHandler struct {
	service  service.AttachmentServiceInterface
	maxBytes int64
}

// NewAttachmentHandler creates a new attachment handler. maxBytes caps the multipart body.
func NewAttachmentHandler(service service.AttachmentServiceInterface, maxBytes int64) *AttachmentHandler {
	return &AttachmentHandler{service: service, maxBytes: maxBytes}
}

// UploadAttachment handles POST /api/v1/anexos
// @Summary Upload attachment
// @Tags anexos
// @Accept multipart/form-data
// @Produce json
// @Param entidade_tipo formData string true "os, chamado, ativo or conformidade"
// @Param entidade_id formData string true "Entity ID (UUID)"
// @Param arquivo formData file true "File"
// @Success 201 {object} models.Attachment
// @Failure 400 {object} map[string]interface{} "Invalid form"
// @Failure 413 {object} map[string]interface{} "File too large"
// @Security BearerAuth
// @Router /anexos [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if h.maxBytes > 0 {
		// room for the multipart envelope
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1<<20)
	}

	entityID, err := uuid.Parse(c.PostForm("entidade_id"))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, apperrors.ErrFileTooLarge, "Failed to upload attachment")
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entidade_id: invalid UUID format"})
		return
	}
	header, err := c.FormFile("arquivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required", "details": err.Error()})
		return
	}
	if h.maxBytes > 0 && header.Size > h.maxBytes {
		respondError(c, apperrors.ErrFileTooLarge, "Failed to upload attachment")
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err, "Failed to read upload")
		return
	}
	defer file.Close()

	att, err := h.service.Upload(c.Request.Context(), condo, service.UploadRequest{
		EntityType:  c.PostForm("entidade_tipo"),
		EntityID:    entityID,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		UploadedBy:  user,
		Body:        file,
	})
	if err != nil {
		respondError(c, err, "Failed to upload attachment")
		return
	}
	c.JSON(http.StatusCreated, att)
}

// ListAttachments handles GET /api/v1/anexos
// @Summary List attachments of an entity
// @Tags anexos
// @Produce json
// @Param entidade_tipo query string true "os, chamado, ativo or conformidade"
// @Param entidade_id query string true "Entity ID (UUID)"
// @Success 200 {array} models.Attachment
// @Security BearerAuth
// @Router /anexos [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	entityID, err := uuid.Parse(c.Query("entidade_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entidade_id: invalid UUID format"})
		return
	}

	list, err := h.service.List(c.Request.Context(), condo, c.Query("entidade_tipo"), entityID)
	if err != nil {
		respondError(c, err, "Failed to list attachments")
		return
	}
	c.JSON(http.StatusOK, list)
}

// DownloadAttachment handles GET /api/v1/anexos/:id
// @Summary Download attachment
// @Tags anexos
// @Produce octet-stream
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{} "Attachment not found"
// @Security BearerAuth
// @Router /anexos/{id} [get]
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "attachment")
	if !ok {
		return
	}

	att, body, err := h.service.Open(c.Request.Context(), condo, id)
	if err != nil {
		respondError(c, err, "Failed to open attachment")
		return
	}
	defer body.Close()

	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": att.FileName}))
	c.Header("Content-Length", strconv.FormatInt(att.Size, 10))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("attachment download interrupted")
	}
}

// DeleteAttachment handles DELETE /api/v1/anexos/:id
// @Summary Delete attachment
// @Tags anexos
// @Param id path string true "Attachment ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /anexos/{id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	condo, ok := activeCondominium(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "attachment")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), condo, id); err != nil {
		respondError(c, err, "Failed to delete attachment")
		return
	}
	c.Status(http.StatusNoContent)
}
