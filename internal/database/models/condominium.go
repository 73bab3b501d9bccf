package models

// Condominium is a tenant
type Condominium struct {
	BaseModel
	Name       string `json:"nome" gorm:"column:nome;not null;size:200" validate:"required,max=200"`
	TaxID      string `json:"cnpj,omitempty" gorm:"column:cnpj;size:20"`
	Address    string `json:"endereco" gorm:"column:endereco;size:300"`
	City       string `json:"cidade" gorm:"column:cidade;size:120"`
	State      string `json:"estado" gorm:"column:estado;size:2"`
	PostalCode string `json:"cep" gorm:"column:cep;size:10"`
}

// TableName returns the table name for Condominium
func (Condominium) TableName() string {
	return "condominios"
}
