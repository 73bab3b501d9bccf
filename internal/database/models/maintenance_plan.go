package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenancePlan is a preventive maintenance routine, usually for one asset
type MaintenancePlan struct {
	BaseModel
	TenantScoped
	AssetID         *uuid.UUID `json:"ativo_id,omitempty" gorm:"column:ativo_id;type:uuid;index"`
	Title           string     `json:"titulo" gorm:"column:titulo;not null;size:200"`
	Description     string     `json:"descricao,omitempty" gorm:"column:descricao;type:text"`
	PeriodDays      int        `json:"periodicidade_dias" gorm:"column:periodicidade_dias;not null"`
	LastExecutedAt  *time.Time `json:"ultima_execucao,omitempty" gorm:"column:ultima_execucao"`
	NextExecutionAt *time.Time `json:"proxima_execucao,omitempty" gorm:"column:proxima_execucao;index"`
	Responsible     string     `json:"responsavel,omitempty" gorm:"column:responsavel;size:200"`
	Active          bool       `json:"ativo" gorm:"column:ativo;not null;default:true"`
	Asset           *Asset     `json:"ativo,omitempty" gorm:"foreignKey:AssetID"`
}

// TableName returns the table name for MaintenancePlan
func (MaintenancePlan) TableName() string {
	return "manutencoes"
}
