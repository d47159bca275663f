package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"techfix/internal/models"
)

// Connect opens the managed Postgres instance with a bounded retry loop (the
// database may still be waking up when the server starts). TranslateError is
// on so unique-index violations surface as gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		slog.Info("connecting to database", "attempt", i, "max", maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			slog.Info("connected to database")
			break
		}

		slog.Warn("database connection failed", "err", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
	}

	err = db.AutoMigrate(
		&models.Cliente{},
		&models.Ordem{},
		&models.Categoria{},
		&models.Status{},
		&models.Admin{},
		&models.AuditLog{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seedLookups(db)

	return db, nil
}

// seedLookups fills the read-only categoria/status tables; the API only ever
// reads them.
func seedLookups(db *gorm.DB) {
	categorias := []models.Categoria{
		{ID: 1, Nome: "Celular"},
		{ID: 2, Nome: "Notebook"},
		{ID: 3, Nome: "Desktop"},
		{ID: 4, Nome: "Tablet"},
		{ID: 5, Nome: "Outros"},
	}
	for _, cat := range categorias {
		if err := db.FirstOrCreate(&models.Categoria{}, cat).Error; err != nil {
			slog.Warn("failed to seed categoria", "nome", cat.Nome, "err", err)
		}
	}

	statusList := []models.Status{
		{ID: 1, Nome: "Em análise"},
		{ID: 2, Nome: "Aguardando aprovação"},
		{ID: 3, Nome: "Em reparo"},
		{ID: 4, Nome: "Concluído"},
		{ID: 5, Nome: "Entregue"},
	}
	for _, st := range statusList {
		if err := db.FirstOrCreate(&models.Status{}, st).Error; err != nil {
			slog.Warn("failed to seed status", "nome", st.Nome, "err", err)
		}
	}
}

// SeedAdmin creates a bootstrap admin account when none exists yet, so a
// fresh install can log in without the open registration endpoint.
func SeedAdmin(db *gorm.DB, email, password string) {
	if email == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		slog.Warn("failed to check admin table", "err", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Warn("failed to hash bootstrap admin password", "err", err)
		return
	}

	admin := models.Admin{
		ID:    uuid.NewString(),
		Nome:  "Administrador",
		Email: email,
		Senha: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		slog.Warn("failed to create bootstrap admin", "err", err)
		return
	}
	slog.Info("created bootstrap admin", "email", email)
}
