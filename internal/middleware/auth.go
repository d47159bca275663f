package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"techfix/internal/auth"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxAdminID    = "admin_id"
	CtxAdminEmail = "admin_email"
)

// RequireAuth validates the Bearer token and puts the admin identity on the
// gin context. There is no server-side session: the token is the whole proof.
func RequireAuth(tokens *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingToken.Error()})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		c.Set(CtxAdminID, claims.ID)
		c.Set(CtxAdminEmail, claims.Email)
		c.Next()
	}
}
