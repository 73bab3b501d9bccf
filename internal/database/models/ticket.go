package models

import (
	"time"

	"github.com/google/uuid"
)

// Ticket is a maintenance request (chamado)
type Ticket struct {
	BaseModel
	TenantScoped
	AssetID     *uuid.UUID   `json:"ativo_id,omitempty" gorm:"column:ativo_id;type:uuid;index"`
	OpenedBy    uuid.UUID    `json:"aberto_por" gorm:"column:aberto_por;type:uuid;not null;index"`
	Title       string       `json:"titulo" gorm:"column:titulo;not null;size:200"`
	Description string       `json:"descricao" gorm:"column:descricao;type:text"`
	Location    string       `json:"local,omitempty" gorm:"column:local;size:200"`
	Priority    Priority     `json:"prioridade" gorm:"column:prioridade;type:varchar(20);not null;default:'media'"`
	Status      TicketStatus `json:"status" gorm:"type:varchar(20);not null;default:'aberto';index"`
	SLADeadline time.Time    `json:"prazo_sla" gorm:"column:prazo_sla;not null"`
	ResolvedAt  *time.Time   `json:"resolvido_em,omitempty" gorm:"column:resolvido_em"`
}

// TableName returns the table name for Ticket
func (Ticket) TableName() string {
	return "chamados"
}
