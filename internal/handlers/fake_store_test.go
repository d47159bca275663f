package handlers

import (
	"context"
	"strings"

	"techfix/internal/models"
	"techfix/internal/store"
)

// fakeStore is an in-memory Store for handler tests. When err is set, every
// query returns it, which stands in for a store outage.
type fakeStore struct {
	clientes   map[string]models.Cliente
	ordens     []models.Ordem
	admins     map[string]models.Admin // keyed by email
	categorias []models.Categoria
	statusList []models.Status
	audit      []models.AuditLog
	err        error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clientes: map[string]models.Cliente{},
		admins:   map[string]models.Admin{},
	}
}

func (f *fakeStore) GetCliente(_ context.Context, id string) (*models.Cliente, error) {
	if f.err != nil {
		return nil, f.err
	}
	cliente, ok := f.clientes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &cliente, nil
}

func (f *fakeStore) SearchClientes(_ context.Context, term string) ([]models.Cliente, error) {
	if f.err != nil {
		return nil, f.err
	}
	var found []models.Cliente
	for _, cliente := range f.clientes {
		if cliente.ID == term || cliente.CPF == term ||
			strings.Contains(cliente.Nome, term) || strings.Contains(cliente.Telefone, term) {
			found = append(found, cliente)
		}
	}
	return found, nil
}

func (f *fakeStore) OrdensByCliente(_ context.Context, clienteID string) ([]models.Ordem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var found []models.Ordem
	for _, ordem := range f.ordens {
		if ordem.FkClienteID == clienteID {
			found = append(found, ordem)
		}
	}
	return found, nil
}

func (f *fakeStore) GetOrdem(_ context.Context, clienteID, ordemID string) (*models.Ordem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, ordem := range f.ordens {
		if ordem.ID == ordemID && ordem.FkClienteID == clienteID {
			return &ordem, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) OrdensWithClientes(_ context.Context) ([]models.Ordem, error) {
	if f.err != nil {
		return nil, f.err
	}
	// assumed pre-sorted by the tests, like the store's "order by data desc"
	ordens := make([]models.Ordem, len(f.ordens))
	copy(ordens, f.ordens)
	for i := range ordens {
		if cliente, ok := f.clientes[ordens[i].FkClienteID]; ok {
			c := cliente
			ordens[i].Cliente = &c
		}
	}
	return ordens, nil
}

func (f *fakeStore) CreateClienteWithOrdem(_ context.Context, cliente *models.Cliente, ordem *models.Ordem) error {
	if f.err != nil {
		return f.err
	}
	f.clientes[cliente.ID] = *cliente
	ordem.FkClienteID = cliente.ID
	f.ordens = append(f.ordens, *ordem)
	return nil
}

func (f *fakeStore) CreateOrdem(_ context.Context, ordem *models.Ordem) error {
	if f.err != nil {
		return f.err
	}
	f.ordens = append(f.ordens, *ordem)
	return nil
}

func (f *fakeStore) UpdateOrdem(_ context.Context, clienteID, ordemID string, changes store.OrdemChanges) (*models.Ordem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.ordens {
		if f.ordens[i].ID == ordemID && f.ordens[i].FkClienteID == clienteID {
			f.ordens[i].InfoProduto = changes.InfoProduto
			f.ordens[i].Defeito = changes.Defeito
			f.ordens[i].Solucao = changes.Solucao
			f.ordens[i].Garantia = changes.Garantia
			f.ordens[i].Orcamento = changes.Orcamento
			f.ordens[i].FkStatusID = changes.FkStatusID
			ordem := f.ordens[i]
			return &ordem, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListCategorias(_ context.Context) ([]models.Categoria, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categorias, nil
}

func (f *fakeStore) ListStatus(_ context.Context) ([]models.Status, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.statusList, nil
}

func (f *fakeStore) ListAdmins(_ context.Context) ([]models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	var admins []models.Admin
	for _, admin := range f.admins {
		admins = append(admins, admin)
	}
	return admins, nil
}

func (f *fakeStore) GetAdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	admin, ok := f.admins[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &admin, nil
}

func (f *fakeStore) CreateAdmin(_ context.Context, admin *models.Admin) error {
	if f.err != nil {
		return f.err
	}
	if _, exists := f.admins[admin.Email]; exists {
		return store.ErrDuplicateEmail
	}
	f.admins[admin.Email] = *admin
	return nil
}

func (f *fakeStore) WriteAudit(_ context.Context, entry *models.AuditLog) {
	f.audit = append(f.audit, *entry)
}
