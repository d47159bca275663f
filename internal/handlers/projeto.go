package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Projeto is the token-guarded probe the frontend uses to check whether its
// stored token is still valid.
//
//	GET /projeto
func Projeto(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
