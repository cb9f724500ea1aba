package main

import (
	"os"

	"product_service/config"
	"product_service/internal/delivery"
	"product_service/internal/domain"
	"product_service/internal/repository"
	"product_service/internal/usecase"
	"product_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func main() {
	//  Configuration and Logging Setup
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
		logger.SetLevel(logrus.InfoLevel)
	}

	logger.Info("Starting Product Service...")

	// --- Storage Backend ---
	var productRepo domain.ProductRepository
	switch cfg.StoreBackend {
	case "memory":
		productRepo = repository.NewMemoryProductRepository(logger)
		logger.Info("Using in-memory product store.")
	default:
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()
		logger.Info("Database connection established.")

		if err := db.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			logger.Fatalf("Failed to apply migrations: %v", err)
		}
		logger.Info("Database migrations applied.")

		productRepo = repository.NewSQLProductRepository(database, logger)
	}

	// --- Dependency Injection ---
	productService := usecase.NewProductService(productRepo, logger)
	productHandler := delivery.NewProductHandler(productService, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	productHandler.RegisterRoutes(router)
	logger.Info("API Routes registered.")

	//  Start Server
	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

// requestLogger tags every request with an id and logs it on the way in and
// out. The id is echoed back in the X-Request-ID header.
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
		}).Info("Request received")

		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		}).Info("Request completed")
	}
}
