package models

// Status is a read-only lookup row (stage of a service order).
type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"size:100;not null" json:"nome"`
}

func (Status) TableName() string {
	return "status"
}
