package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/00harsha00/fixmyride/config"
	"github.com/00harsha00/fixmyride/middleware"
	"github.com/00harsha00/fixmyride/models"
	"github.com/00harsha00/fixmyride/routes"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db := initDatabase(cfg, logger)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
	); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Product images are served straight off disk.
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		logger.Fatal("failed to create uploads dir", zap.Error(err))
	}
	r.Static("/uploads", cfg.UploadsDir)

	routes.SetupRoutes(r, db, cfg)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func initDatabase(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	return db
}
