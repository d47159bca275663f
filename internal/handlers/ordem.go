package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"techfix/internal/aggregate"
	"techfix/internal/models"
	"techfix/internal/store"
)

// OrdemHandler serves everything around service orders.
type OrdemHandler struct {
	store store.Store
}

func NewOrdemHandler(s store.Store) *OrdemHandler {
	return &OrdemHandler{store: s}
}

// hoje is the server-assigned creation date, calendar date only.
func hoje() string {
	return time.Now().Format("2006-01-02")
}

// OrdensDoCliente returns a client together with all of its orders.
//
//	GET /produto/:id
func (h *OrdemHandler) OrdensDoCliente(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	ordens, err := h.store.OrdensByCliente(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(ordens) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ordem não encontrada"})
		return
	}

	cliente, err := h.store.GetCliente(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cliente": cliente, "ordens": ordens})
}

// GetOrdem returns one order of one client.
//
//	GET /cliente/:clienteId/ordem/:ordemId
func (h *OrdemHandler) GetOrdem(c *gin.Context) {
	ctx := c.Request.Context()

	cliente, err := h.store.GetCliente(ctx, c.Param("clienteId"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ordem, err := h.store.GetOrdem(ctx, cliente.ID, c.Param("ordemId"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ordem não encontrada para este cliente"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cliente": cliente, "ordem": ordem})
}

// UltimasOrdens returns the most recent order of every client.
//
//	GET /ultimas-ordens
func (h *OrdemHandler) UltimasOrdens(c *gin.Context) {
	ordens, err := h.store.OrdensWithClientes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, aggregate.LatestPerClient(ordens))
}

type ordemBody struct {
	InfoProduto   string  `json:"info_produto"`
	Defeito       string  `json:"defeito"`
	Solucao       string  `json:"solucao"`
	Garantia      *bool   `json:"garantia"`
	FkCategoriaID uint    `json:"fk_categoria_id"`
	FkStatusID    uint    `json:"fk_status_id"`
	Orcamento     float64 `json:"orcamento"`
}

type clienteEOrdemBody struct {
	Nome     string `json:"nome" binding:"required"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
	CPF      string `json:"cpf"`
	ordemBody
}

// CreateClienteEOrdem creates a new client and its first order in a single
// transaction, so neither row survives without the other.
//
//	POST /cliente-e-ordem
func (h *OrdemHandler) CreateClienteEOrdem(c *gin.Context) {
	var req clienteEOrdemBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	ctx := c.Request.Context()

	cliente := models.Cliente{
		ID:       uuid.NewString(),
		CPF:      req.CPF,
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Endereco: req.Endereco,
	}
	ordem := models.Ordem{
		ID:            uuid.NewString(),
		InfoProduto:   req.InfoProduto,
		Defeito:       req.Defeito,
		Solucao:       req.Solucao,
		Garantia:      req.Garantia,
		Data:          hoje(),
		Orcamento:     req.Orcamento,
		FkCategoriaID: req.FkCategoriaID,
		FkStatusID:    req.FkStatusID,
	}

	if err := h.store.CreateClienteWithOrdem(ctx, &cliente, &ordem); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.store.WriteAudit(ctx, &models.AuditLog{
		Entity:   "cliente",
		EntityID: cliente.ID,
		Action:   "create",
		Details:  "criado junto com a ordem " + ordem.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"cliente": cliente, "ordem": ordem})
}

// CreateOrdem creates an order for an existing client.
//
//	POST /cliente/:id/ordem
func (h *OrdemHandler) CreateOrdem(c *gin.Context) {
	var req ordemBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	ctx := c.Request.Context()

	cliente, err := h.store.GetCliente(ctx, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ordem := models.Ordem{
		ID:            uuid.NewString(),
		InfoProduto:   req.InfoProduto,
		Defeito:       req.Defeito,
		Solucao:       req.Solucao,
		Garantia:      req.Garantia,
		Data:          hoje(),
		Orcamento:     req.Orcamento,
		FkClienteID:   cliente.ID,
		FkCategoriaID: req.FkCategoriaID,
		FkStatusID:    req.FkStatusID,
	}

	if err := h.store.CreateOrdem(ctx, &ordem); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.store.WriteAudit(ctx, &models.AuditLog{
		Entity:   "ordem",
		EntityID: ordem.ID,
		Action:   "create",
		Details:  "cliente " + cliente.ID,
	})

	c.JSON(http.StatusCreated, ordem)
}

type updateOrdemBody struct {
	InfoProduto string  `json:"info_produto"`
	Defeito     string  `json:"defeito"`
	Solucao     string  `json:"solucao"`
	Garantia    *bool   `json:"garantia"`
	FkStatusID  uint    `json:"fk_status_id"`
	Orcamento   float64 `json:"orcamento"`
}

// UpdateOrdem replaces the mutable fields of one order.
//
//	PUT /cliente/:clienteId/ordem/:ordemId
func (h *OrdemHandler) UpdateOrdem(c *gin.Context) {
	var req updateOrdemBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	ctx := c.Request.Context()

	cliente, err := h.store.GetCliente(ctx, c.Param("clienteId"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ordem, err := h.store.UpdateOrdem(ctx, cliente.ID, c.Param("ordemId"), store.OrdemChanges{
		InfoProduto: req.InfoProduto,
		Defeito:     req.Defeito,
		Solucao:     req.Solucao,
		Garantia:    req.Garantia,
		Orcamento:   req.Orcamento,
		FkStatusID:  req.FkStatusID,
	})
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ordem não encontrada para este cliente"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.store.WriteAudit(ctx, &models.AuditLog{
		Entity:   "ordem",
		EntityID: ordem.ID,
		Action:   "update",
		Details:  "cliente " + cliente.ID,
	})

	c.JSON(http.StatusOK, ordem)
}
