package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techfix/internal/auth"
	"techfix/internal/config"
	"techfix/internal/handlers"
	"techfix/internal/middleware"
	"techfix/internal/store"
)

func NewRouter(cfg *config.Config, s store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORS(cfg.AllowedOrigins))

	tokens := auth.NewJWTManager(cfg.JWTSecret)

	authHandler := handlers.NewAuthHandler(s, tokens)
	clienteHandler := handlers.NewClienteHandler(s)
	ordemHandler := handlers.NewOrdemHandler(s)
	lookupHandler := handlers.NewLookupHandler(s)

	// AUTH
	r.POST("/register-admin", authHandler.RegisterAdmin)
	r.POST("/authenticate", authHandler.Authenticate)

	// ORDENS
	r.GET("/produto/:id", ordemHandler.OrdensDoCliente)
	r.GET("/ultimas-ordens", ordemHandler.UltimasOrdens)
	r.GET("/cliente/:clienteId/ordem/:ordemId", ordemHandler.GetOrdem)
	r.POST("/cliente-e-ordem", ordemHandler.CreateClienteEOrdem)
	r.POST("/cliente/:id/ordem", ordemHandler.CreateOrdem)
	r.PUT("/cliente/:clienteId/ordem/:ordemId", ordemHandler.UpdateOrdem)

	// CLIENTES
	r.GET("/pesquisa/:search", clienteHandler.Pesquisa)

	// LOOKUPS
	r.GET("/categoria", lookupHandler.Categorias)
	r.GET("/status", lookupHandler.Status)
	r.GET("/admins", lookupHandler.Admins)

	// rotas protegidas por token
	projeto := r.Group("/projeto")
	projeto.Use(middleware.RequireAuth(tokens))
	projeto.GET("", handlers.Projeto)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
