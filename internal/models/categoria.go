package models

// Categoria is a read-only lookup row (kind of device under repair).
type Categoria struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"size:100;not null" json:"nome"`
}

func (Categoria) TableName() string {
	return "categoria"
}
