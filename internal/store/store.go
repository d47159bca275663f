// Package store is the data-access layer over the managed Postgres instance.
// Handlers receive a Store instead of reaching for a package-global DB handle.
package store

import (
	"context"
	"errors"

	"techfix/internal/models"
)

var (
	ErrNotFound       = errors.New("registro não encontrado")
	ErrDuplicateEmail = errors.New("o email já está em uso")
)

// OrdemChanges are the mutable fields of a service order. Every field is
// written on update; the PUT body is a full replacement of these columns.
type OrdemChanges struct {
	InfoProduto string
	Defeito     string
	Solucao     string
	Garantia    *bool
	Orcamento   float64
	FkStatusID  uint
}

type Store interface {
	// Clientes
	GetCliente(ctx context.Context, id string) (*models.Cliente, error)
	SearchClientes(ctx context.Context, term string) ([]models.Cliente, error)

	// Ordens
	OrdensByCliente(ctx context.Context, clienteID string) ([]models.Ordem, error)
	GetOrdem(ctx context.Context, clienteID, ordemID string) (*models.Ordem, error)
	// OrdensWithClientes returns every order joined with its client,
	// sorted by creation date descending (most recent first).
	OrdensWithClientes(ctx context.Context) ([]models.Ordem, error)
	CreateClienteWithOrdem(ctx context.Context, cliente *models.Cliente, ordem *models.Ordem) error
	CreateOrdem(ctx context.Context, ordem *models.Ordem) error
	UpdateOrdem(ctx context.Context, clienteID, ordemID string, changes OrdemChanges) (*models.Ordem, error)

	// Lookups
	ListCategorias(ctx context.Context) ([]models.Categoria, error)
	ListStatus(ctx context.Context) ([]models.Status, error)

	// Admins
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, admin *models.Admin) error

	// WriteAudit appends to the audit trail. Best effort: failures are
	// logged by the implementation, never returned.
	WriteAudit(ctx context.Context, entry *models.AuditLog)
}
