package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charankumarpalimara/jewelstock/internal/auth"
	"github.com/charankumarpalimara/jewelstock/internal/config"
	"github.com/charankumarpalimara/jewelstock/internal/database"
	"github.com/charankumarpalimara/jewelstock/internal/service"
)

type Server struct {
	router   *gin.Engine
	db       *database.DB
	services *service.Services
	tokens   *auth.TokenManager
	cfg      *config.Config
	logger   *zap.Logger
}

// NewServer creates a new server instance
func NewServer(db *database.DB, services *service.Services, tokens *auth.TokenManager, cfg *config.Config, logger *zap.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	server := &Server{
		router:   router,
		db:       db,
		services: services,
		tokens:   tokens,
		cfg:      cfg,
		logger:   logger,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.Static("/uploads", s.cfg.Uploads.Dir)

	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.POST("/auth/login", s.login)
	}

	authed := api.Group("", auth.RequireAuth(s.tokens))
	{
		authed.GET("/auth/me", s.currentUser)

		jewelry := authed.Group("/jewelry")
		{
			jewelry.GET("", s.listJewelry)
			jewelry.GET("/categories", s.listCategories)
			jewelry.POST("/bulk", s.bulkJewelry)
			jewelry.GET("/:id", s.getJewelry)
			jewelry.POST("", s.createJewelry)
			jewelry.PUT("/:id", s.updateJewelry)
			jewelry.DELETE("/:id", s.deleteJewelry)
		}

		sales := authed.Group("/sales")
		{
			sales.GET("", s.listSales)
			sales.GET("/analytics", s.salesAnalytics)
			sales.GET("/:id", s.getSale)
			sales.POST("", s.createSale)
			sales.PUT("/:id", s.updateSale)
			sales.DELETE("/:id", s.deleteSale)
		}

		customers := authed.Group("/customers")
		{
			customers.GET("", s.listCustomers)
			customers.GET("/:id", s.getCustomer)
			customers.POST("", s.createCustomer)
			customers.PUT("/:id", s.updateCustomer)
			customers.DELETE("/:id", s.deleteCustomer)
		}

		alerts := authed.Group("/alerts")
		{
			alerts.GET("", s.allAlerts)
			alerts.GET("/low-stock", s.lowStockAlerts)
			alerts.GET("/out-of-stock", s.outOfStockAlerts)
		}

		rates := authed.Group("/rates")
		{
			rates.GET("", s.getRates)
			rates.PUT("", auth.RequirePermission(auth.PermUpdateRates), s.updateRates)
			rates.GET("/history", s.rateHistory)
		}

		authed.GET("/analytics", s.getAnalytics)

		manageUsers := auth.RequirePermission(auth.PermManageUsers)
		users := authed.Group("/users")
		{
			users.GET("", manageUsers, s.listUsers)
			users.GET("/:id", s.getUser)
			users.POST("", manageUsers, s.createUser)
			users.PUT("/:id", s.updateUser)
			users.DELETE("/bulk", manageUsers, s.bulkDeleteUsers)
			users.DELETE("/:id", manageUsers, s.deleteUser)
			users.PATCH("/:id/toggle-status", manageUsers, s.toggleUserStatus)
		}
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	// Check database health
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "jewelstock",
		"version": "0.1.0",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
