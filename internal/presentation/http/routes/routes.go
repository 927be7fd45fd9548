package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pospoint/terminal-api/internal/application/service"
	"github.com/pospoint/terminal-api/internal/config"
	"github.com/pospoint/terminal-api/internal/domain/enum"
	"github.com/pospoint/terminal-api/internal/presentation/http/handler"
	"github.com/pospoint/terminal-api/internal/presentation/http/middleware"
	"github.com/pospoint/terminal-api/pkg/utils"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Session  *handler.SessionHandler
	POS      *handler.POSHandler
	Customer *handler.CustomerHandler
	Role     *handler.RoleHandler
	Receipt  *handler.ReceiptHandler
}

// SetupRoutes wires all terminal routes onto the router.
func SetupRoutes(
	router *gin.Engine,
	h Handlers,
	roles *service.RoleService,
	jwtManager *utils.JWTManager,
	cfg *config.Config,
) {
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(
		middleware.RateLimiterConfigForLimit(cfg.RateLimit.Requests, cfg.RateLimit.Duration))
	router.Use(rateLimiter.Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": cfg.App.Name})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/login", h.Auth.Login)

	// Authenticated routes
	authorized := v1.Group("")
	authorized.Use(middleware.AuthMiddleware(jwtManager))
	{
		session := authorized.Group("/session")
		{
			session.GET("", h.Session.GetContext)
			session.GET("/businesses", h.Session.ListBusinesses)
			session.GET("/outlets", h.Session.ListOutlets)
			session.POST("/business", h.Session.SelectBusiness)
			session.POST("/outlet", h.Session.SelectOutlet)
			session.PUT("/shift", h.Session.SetShift)
			session.POST("/shift/refresh", h.Session.RefreshShift)
		}

		pos := authorized.Group("/pos")
		pos.Use(middleware.RequirePermission(roles, enum.PermissionPOS))
		{
			pos.POST("/enter", h.POS.Enter)
			pos.POST("/price", h.POS.Price)
			pos.POST("/checkout", h.POS.Checkout)
			pos.GET("/pending", h.POS.PendingCount)
			pos.POST("/pending/flush", h.POS.FlushPending)
		}

		customers := authorized.Group("/customers")
		customers.Use(middleware.RequirePermission(roles, enum.PermissionCRM))
		{
			customers.POST("/input", h.Customer.Input)
			customers.GET("/results", h.Customer.GetResults)
			customers.POST("/search", h.Customer.Search)
			customers.GET("/offline", h.Customer.SearchOffline)
			customers.POST("/select", h.Customer.Select)
			customers.GET("/selected", h.Customer.GetSelected)
			customers.DELETE("", h.Customer.Clear)
		}

		role := authorized.Group("/role")
		{
			role.GET("", h.Role.GetRole)
			role.PUT("", h.Role.SetRole)
			role.GET("/permissions/:key", h.Role.CheckPermission)
		}

		receipts := authorized.Group("/receipts")
		{
			receipts.POST("/normalize", h.Receipt.Normalize)
			receipts.POST("/print", h.Receipt.Print)
			receipts.POST("/print/test", h.Receipt.TestPrint)
			receipts.GET("/printer/status", h.Receipt.PrinterStatus)
			receipts.POST("/email", h.Receipt.Email)
		}
	}
}
