package models

import (
	"encoding/json"
	"time"
)

// Asset is a piece of building equipment (elevator, extinguisher, pump...)
type Asset struct {
	BaseModel
	TenantScoped
	Name         string          `json:"nome" gorm:"column:nome;not null;size:200"`
	Type         string          `json:"tipo" gorm:"column:tipo;not null;size:80;index"`
	Location     string          `json:"localizacao" gorm:"column:localizacao;size:200"`
	Manufacturer string          `json:"fabricante,omitempty" gorm:"column:fabricante;size:120"`
	Model        string          `json:"modelo,omitempty" gorm:"column:modelo;size:120"`
	SerialNumber string          `json:"numero_serie,omitempty" gorm:"column:numero_serie;size:120"`
	InstalledAt  *time.Time      `json:"data_instalacao,omitempty" gorm:"column:data_instalacao"`
	Status       AssetStatus     `json:"status" gorm:"type:varchar(20);not null;default:'ativo'"`
	Metadata     json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Asset
func (Asset) TableName() string {
	return "ativos"
}
