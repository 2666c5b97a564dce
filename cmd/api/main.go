package main

import (
	"log"

	"github.com/dcastano/ventas-api/internal/application/service"
	"github.com/dcastano/ventas-api/internal/config"
	"github.com/dcastano/ventas-api/internal/infrastructure/database"
	"github.com/dcastano/ventas-api/internal/infrastructure/repository"
	"github.com/dcastano/ventas-api/internal/presentation/http/handler"
	"github.com/dcastano/ventas-api/internal/presentation/http/routes"
	"github.com/dcastano/ventas-api/pkg/pdfrender"
	"github.com/dcastano/ventas-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the administrator account
	if err := database.SeedAdminUser(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize PDF renderer
	var renderer pdfrender.Renderer
	if cfg.Report.PDFExportEnabled {
		renderer = pdfrender.New()
	} else {
		log.Println("PDF export disabled, report downloads will return JSON")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, productRepo)
	reportService := service.NewReportService(reportRepo, productRepo, renderer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Purchase: handler.NewPurchaseHandler(purchaseService),
		Report:   handler.NewReportHandler(reportService),
	}

	// Setup routes and start server
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
