package models

import "github.com/google/uuid"

// CondominiumLink associates a user to a condominium with a role.
// At most one link per user carries IsPrincipal.
type CondominiumLink struct {
	BaseModel
	UserID        uuid.UUID    `json:"usuario_id" gorm:"column:usuario_id;type:uuid;not null;uniqueIndex:idx_usuario_condominio"`
	CondominiumID uuid.UUID    `json:"condominio_id" gorm:"column:condominio_id;type:uuid;not null;uniqueIndex:idx_usuario_condominio;index"`
	Role          Role         `json:"papel" gorm:"column:papel;type:varchar(20);not null"`
	IsPrincipal   bool         `json:"is_principal" gorm:"not null;default:false"`
	User          *UserProfile `json:"usuario,omitempty" gorm:"foreignKey:UserID"`
	Condominium   *Condominium `json:"condominio,omitempty" gorm:"foreignKey:CondominiumID"`
}

// TableName returns the table name for CondominiumLink
func (CondominiumLink) TableName() string {
	return "usuarios_condominios"
}
