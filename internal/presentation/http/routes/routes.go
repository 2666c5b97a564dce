package routes

import (
	"github.com/dcastano/ventas-api/internal/config"
	"github.com/dcastano/ventas-api/internal/domain/entity"
	"github.com/dcastano/ventas-api/internal/presentation/http/handler"
	"github.com/dcastano/ventas-api/internal/presentation/http/middleware"
	"github.com/dcastano/ventas-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Purchase *handler.PurchaseHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)
		registerCatalogRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rlCfg := middleware.DefaultRateLimiterConfig()
		if deps.Cfg.RateLimit.Requests > 0 && deps.Cfg.RateLimit.Duration > 0 {
			rlCfg.RequestsPerSecond = float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration)
			rlCfg.BurstSize = deps.Cfg.RateLimit.Requests
		}
		rateLimiter := middleware.NewClientRateLimiter(rlCfg)
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile routes
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)

	// Purchases
	protected.POST("/purchases", h.Purchase.Checkout)
	protected.GET("/purchases", h.Purchase.ListMine)

	// Admin-only routes
	admin := protected.Group("")
	admin.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/products", h.Product.Create)
		admin.PUT("/products/:id", h.Product.Update)
		admin.DELETE("/products/:id", h.Product.Delete)

		admin.GET("/admin/purchases", h.Purchase.ListAll)

		admin.GET("/reports/options", h.Report.Options)
		admin.POST("/reports/sales", h.Report.ViewSales)
		admin.POST("/reports/sales/pdf", h.Report.DownloadSales)
	}
}
