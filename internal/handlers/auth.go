package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"techfix/internal/auth"
	"techfix/internal/models"
	"techfix/internal/store"
)

// AuthHandler registers admins and trades credentials for bearer tokens.
type AuthHandler struct {
	store  store.Store
	tokens *auth.JWTManager
}

func NewAuthHandler(s store.Store, tokens *auth.JWTManager) *AuthHandler {
	return &AuthHandler{store: s, tokens: tokens}
}

type registerRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	// the plaintext never goes past this point
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	admin := models.Admin{
		ID:    uuid.NewString(),
		Nome:  req.Nome,
		Email: req.Email,
		Senha: string(hash),
	}

	// the unique index on email decides duplicates, not a pre-read
	if err := h.store.CreateAdmin(c.Request.Context(), &admin); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "O email já está em uso"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := h.tokens.Generate(admin.ID, admin.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.store.WriteAudit(c.Request.Context(), &models.AuditLog{
		AdminID:  admin.ID,
		Entity:   "admin",
		EntityID: admin.ID,
		Action:   "register",
		Details:  admin.Email,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Administrador cadastrado com sucesso!",
		"admin":   admin,
		"token":   token,
	})
}

type authenticateRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req authenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	admin, err := h.store.GetAdminByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email incorreto"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Senha), []byte(req.Senha)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Senha incorreta"})
		return
	}

	token, err := h.tokens.Generate(admin.ID, admin.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nome":    admin.Nome,
		"email":   admin.Email,
		"message": "Autenticação bem-sucedida",
		"token":   token,
	})
}
