package models

// Cliente is a repair-shop customer. Keyed by a generated uuid; the CPF is
// just a searchable attribute, older installs used it as the primary key.
type Cliente struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	CPF      string `gorm:"size:14;index" json:"cpf"`
	Nome     string `gorm:"size:255;not null" json:"nome"`
	Telefone string `gorm:"size:50" json:"telefone"`
	Endereco string `gorm:"size:255" json:"endereco"`
}

func (Cliente) TableName() string {
	return "cliente"
}
