package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ChecklistTemplate describes an NBR checklist. Templates without a
// condominium are global and visible to every tenant.
type ChecklistTemplate struct {
	BaseModel
	CondominiumID *uuid.UUID      `json:"condominio_id,omitempty" gorm:"column:condominio_id;type:uuid;index"`
	Name          string          `json:"nome" gorm:"column:nome;not null;size:200"`
	NBR           string          `json:"nbr" gorm:"column:nbr;size:40;index"`
	Category      string          `json:"categoria,omitempty" gorm:"column:categoria;size:80"`
	PeriodDays    int             `json:"periodicidade_dias" gorm:"column:periodicidade_dias;not null"`
	Items         json.RawMessage `json:"itens" gorm:"column:itens;type:jsonb"`
}

// TableName returns the table name for ChecklistTemplate
func (ChecklistTemplate) TableName() string {
	return "templates_checklist"
}
