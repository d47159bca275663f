package store

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"techfix/internal/models"
)

// gormStore implements Store on top of *gorm.DB. The DB must be opened with
// TranslateError so unique-index violations surface as gorm.ErrDuplicatedKey.
type gormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) GetCliente(ctx context.Context, id string) (*models.Cliente, error) {
	var cliente models.Cliente
	err := s.db.WithContext(ctx).First(&cliente, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (s *gormStore) SearchClientes(ctx context.Context, term string) ([]models.Cliente, error) {
	var clientes []models.Cliente
	err := s.db.WithContext(ctx).
		Where("id = ? OR cpf = ? OR nome ILIKE ? OR telefone LIKE ?",
			term, term, "%"+term+"%", "%"+term+"%").
		Order("nome asc").
		Find(&clientes).Error
	if err != nil {
		return nil, err
	}
	return clientes, nil
}

func (s *gormStore) OrdensByCliente(ctx context.Context, clienteID string) ([]models.Ordem, error) {
	var ordens []models.Ordem
	err := s.db.WithContext(ctx).
		Where("fk_cliente_id = ?", clienteID).
		Order("data desc").
		Find(&ordens).Error
	if err != nil {
		return nil, err
	}
	return ordens, nil
}

func (s *gormStore) GetOrdem(ctx context.Context, clienteID, ordemID string) (*models.Ordem, error) {
	var ordem models.Ordem
	err := s.db.WithContext(ctx).
		Where("id = ? AND fk_cliente_id = ?", ordemID, clienteID).
		First(&ordem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ordem, nil
}

func (s *gormStore) OrdensWithClientes(ctx context.Context) ([]models.Ordem, error) {
	var ordens []models.Ordem
	err := s.db.WithContext(ctx).
		Preload("Cliente").
		Order("data desc").
		Find(&ordens).Error
	if err != nil {
		return nil, err
	}
	return ordens, nil
}

// CreateClienteWithOrdem writes both rows in one transaction so a failed
// order insert never leaves an orphaned client behind.
func (s *gormStore) CreateClienteWithOrdem(ctx context.Context, cliente *models.Cliente, ordem *models.Ordem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cliente).Error; err != nil {
			return err
		}
		ordem.FkClienteID = cliente.ID
		return tx.Create(ordem).Error
	})
}

func (s *gormStore) CreateOrdem(ctx context.Context, ordem *models.Ordem) error {
	return s.db.WithContext(ctx).Create(ordem).Error
}

func (s *gormStore) UpdateOrdem(ctx context.Context, clienteID, ordemID string, changes OrdemChanges) (*models.Ordem, error) {
	var ordem models.Ordem
	err := s.db.WithContext(ctx).
		Where("id = ? AND fk_cliente_id = ?", ordemID, clienteID).
		First(&ordem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// Save writes every column, so zero values (cleared solução, zeroed
	// orçamento) land too
	ordem.InfoProduto = changes.InfoProduto
	ordem.Defeito = changes.Defeito
	ordem.Solucao = changes.Solucao
	ordem.Garantia = changes.Garantia
	ordem.Orcamento = changes.Orcamento
	ordem.FkStatusID = changes.FkStatusID

	if err := s.db.WithContext(ctx).Save(&ordem).Error; err != nil {
		return nil, err
	}
	return &ordem, nil
}

func (s *gormStore) ListCategorias(ctx context.Context) ([]models.Categoria, error) {
	var categorias []models.Categoria
	if err := s.db.WithContext(ctx).Order("id asc").Find(&categorias).Error; err != nil {
		return nil, err
	}
	return categorias, nil
}

func (s *gormStore) ListStatus(ctx context.Context) ([]models.Status, error) {
	var status []models.Status
	if err := s.db.WithContext(ctx).Order("id asc").Find(&status).Error; err != nil {
		return nil, err
	}
	return status, nil
}

func (s *gormStore) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.db.WithContext(ctx).Order("nome asc").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (s *gormStore) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).First(&admin, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin relies on the unique index on admin.email: a concurrent
// registration with the same address loses at the store, not at a pre-read.
func (s *gormStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	err := s.db.WithContext(ctx).Create(admin).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *gormStore) WriteAudit(ctx context.Context, entry *models.AuditLog) {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		slog.Warn("audit write failed", "entity", entry.Entity, "action", entry.Action, "err", err)
	}
}
