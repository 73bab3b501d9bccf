package models

// UserProfile is the application profile behind an authenticated identity
type UserProfile struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name         string     `json:"nome" gorm:"column:nome;not null;size:200" validate:"required,max=200"`
	Phone        string     `json:"telefone,omitempty" gorm:"column:telefone;size:30"`
	PasswordHash string     `json:"-" gorm:"column:senha_hash;not null;size:255"`
	GlobalRole   GlobalRole `json:"role,omitempty" gorm:"column:role;type:varchar(20)"`
	Active       bool       `json:"ativo" gorm:"column:ativo;not null;default:true"`
}

// TableName returns the table name for UserProfile
func (UserProfile) TableName() string {
	return "usuarios"
}
