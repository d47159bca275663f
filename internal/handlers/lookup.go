package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techfix/internal/store"
)

// LookupHandler serves the read-only listings.
type LookupHandler struct {
	store store.Store
}

func NewLookupHandler(s store.Store) *LookupHandler {
	return &LookupHandler{store: s}
}

// GET /categoria
func (h *LookupHandler) Categorias(c *gin.Context) {
	categorias, err := h.store.ListCategorias(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categorias)
}

// GET /status
func (h *LookupHandler) Status(c *gin.Context) {
	status, err := h.store.ListStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// GET /admins — Admin.Senha is json:"-", the hashes never serialize.
func (h *LookupHandler) Admins(c *gin.Context) {
	admins, err := h.store.ListAdmins(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, admins)
}
