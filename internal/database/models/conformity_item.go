package models

import (
	"time"

	"github.com/google/uuid"
)

// ConformityItem tracks one recurring NBR obligation of a condominium
type ConformityItem struct {
	BaseModel
	TenantScoped
	TemplateID     *uuid.UUID `json:"template_id,omitempty" gorm:"type:uuid;index"`
	AssetID        *uuid.UUID `json:"ativo_id,omitempty" gorm:"column:ativo_id;type:uuid;index"`
	NBR            string     `json:"nbr" gorm:"column:nbr;size:40"`
	Description    string     `json:"descricao" gorm:"column:descricao;not null;size:300"`
	PeriodDays     int        `json:"periodicidade_dias" gorm:"column:periodicidade_dias;not null"`
	LastExecutedAt *time.Time `json:"ultima_execucao,omitempty" gorm:"column:ultima_execucao"`
	DueAt          *time.Time `json:"proximo_vencimento,omitempty" gorm:"column:proximo_vencimento;index"`
	Notes          string     `json:"observacoes,omitempty" gorm:"column:observacoes;type:text"`
}

// TableName returns the table name for ConformityItem
func (ConformityItem) TableName() string {
	return "conformidade_itens"
}
