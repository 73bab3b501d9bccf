package models

import "github.com/google/uuid"

// Attachment entity types
const (
	AttachmentEntityWorkOrder  = "os"
	AttachmentEntityTicket     = "chamado"
	AttachmentEntityAsset      = "ativo"
	AttachmentEntityConformity = "conformidade"
)

// Attachment is a file stored in the attachment bucket
type Attachment struct {
	BaseModel
	TenantScoped
	EntityType  string    `json:"entidade_tipo" gorm:"column:entidade_tipo;size:20;not null;index:idx_anexo_entidade"`
	EntityID    uuid.UUID `json:"entidade_id" gorm:"column:entidade_id;type:uuid;not null;index:idx_anexo_entidade"`
	FileName    string    `json:"nome_arquivo" gorm:"column:nome_arquivo;size:255;not null"`
	ContentType string    `json:"content_type" gorm:"size:120"`
	Size        int64     `json:"tamanho" gorm:"column:tamanho"`
	StorageKey  string    `json:"-" gorm:"column:caminho;size:500;not null"`
	UploadedBy  uuid.UUID `json:"enviado_por" gorm:"column:enviado_por;type:uuid"`
}

// TableName returns the table name for Attachment
func (Attachment) TableName() string {
	return "anexos"
}

// IsAttachmentEntity reports whether files may be attached to t
func IsAttachmentEntity(t string) bool {
	switch t {
	case AttachmentEntityWorkOrder, AttachmentEntityTicket, AttachmentEntityAsset, AttachmentEntityConformity:
		return true
	}
	return false
}
