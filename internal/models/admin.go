package models

// Admin is a back-office account. Senha holds the bcrypt hash and is excluded
// from JSON so a stored record can never leak the hash through a response.
type Admin struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Nome  string `gorm:"size:255;not null" json:"nome"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Senha string `gorm:"size:100;not null" json:"-"`
}

func (Admin) TableName() string {
	return "admin"
}
