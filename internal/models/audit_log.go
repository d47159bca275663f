package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	AdminID string `gorm:"size:36"` // empty on unauthenticated endpoints

	Entity   string `gorm:"size:50;not null"` // "cliente", "ordem", "admin"
	EntityID string `gorm:"size:36"`
	Action   string `gorm:"size:50;not null"` // "create", "update", "register"
	Details  string `gorm:"type:text"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}
