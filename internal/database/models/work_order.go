package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkOrder is an OS. Number is generated server side as OS-YYYY-NNNN and
// is unique inside a condominium.
type WorkOrder struct {
	BaseModel
	CondominiumID     uuid.UUID       `json:"condominio_id" gorm:"column:condominio_id;type:uuid;not null;uniqueIndex:idx_os_condominio_numero"`
	Number            string          `json:"numero" gorm:"column:numero;not null;size:20;uniqueIndex:idx_os_condominio_numero"`
	TicketID          *uuid.UUID      `json:"chamado_id,omitempty" gorm:"column:chamado_id;type:uuid;uniqueIndex:idx_os_chamado"`
	AssetID           *uuid.UUID      `json:"ativo_id,omitempty" gorm:"column:ativo_id;type:uuid;index"`
	MaintenancePlanID *uuid.UUID      `json:"manutencao_id,omitempty" gorm:"column:manutencao_id;type:uuid;index"`
	Title             string          `json:"titulo" gorm:"column:titulo;not null;size:200"`
	Description       string          `json:"descricao" gorm:"column:descricao;type:text"`
	Priority          Priority        `json:"prioridade" gorm:"column:prioridade;type:varchar(20);not null;default:'media'"`
	Status            WorkOrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'aberta';index"`
	Assignee          string          `json:"responsavel,omitempty" gorm:"column:responsavel;size:200"`
	ScheduledFor      *time.Time      `json:"data_prevista,omitempty" gorm:"column:data_prevista"`
	CompletedAt       *time.Time      `json:"concluida_em,omitempty" gorm:"column:concluida_em"`
	EstimatedCost     float64         `json:"custo_previsto" gorm:"column:custo_previsto;type:numeric(12,2);default:0"`
	ActualCost        float64         `json:"custo_realizado" gorm:"column:custo_realizado;type:numeric(12,2);default:0"`
}

// TableName returns the table name for WorkOrder
func (WorkOrder) TableName() string {
	return "os"
}

// WorkOrderSequence is the per condominium, per year counter behind OS numbers
type WorkOrderSequence struct {
	CondominiumID uuid.UUID `gorm:"column:condominio_id;type:uuid;primaryKey"`
	Year          int       `gorm:"column:ano;primaryKey;autoIncrement:false"`
	Last          int       `gorm:"column:ultimo;not null"`
}

// TableName returns the table name for WorkOrderSequence
func (WorkOrderSequence) TableName() string {
	return "os_sequencias"
}
