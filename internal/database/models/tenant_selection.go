package models

import (
	"time"

	"github.com/google/uuid"
)

// TenantSelection persists the condominium a user last switched to
type TenantSelection struct {
	UserID        uuid.UUID `json:"usuario_id" gorm:"column:usuario_id;type:uuid;primaryKey"`
	CondominiumID uuid.UUID `json:"condominio_id" gorm:"column:condominio_id;type:uuid;not null"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for TenantSelection
func (TenantSelection) TableName() string {
	return "selecoes_condominio"
}
