package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"techfix/internal/store"
)

// ClienteHandler serves client lookups.
type ClienteHandler struct {
	store store.Store
}

func NewClienteHandler(s store.Store) *ClienteHandler {
	return &ClienteHandler{store: s}
}

// Pesquisa finds clients by exact id/CPF or partial name/phone match.
//
//	GET /pesquisa/:search
func (h *ClienteHandler) Pesquisa(c *gin.Context) {
	term := strings.TrimSpace(c.Param("search"))
	if term == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nenhum cliente encontrado"})
		return
	}

	clientes, err := h.store.SearchClientes(c.Request.Context(), term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(clientes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nenhum cliente encontrado"})
		return
	}

	c.JSON(http.StatusOK, clientes)
}
