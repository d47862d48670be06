package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/i-gichachi/kuhama-app/config"
	"github.com/i-gichachi/kuhama-app/database"
	"github.com/i-gichachi/kuhama-app/models"
	"github.com/i-gichachi/kuhama-app/router"
	"github.com/i-gichachi/kuhama-app/services"
	"github.com/i-gichachi/kuhama-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}
	utils.InitJWT(cfg.JWTSecret)

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)

	if cfg.AdminPassword != "" {
		if err := database.EnsureAdmin(db, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPhone, cfg.AdminPassword); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed admin account: %v", err)
		}
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	pricing := services.Pricing{
		BasePricePerKM: cfg.BasePricePerKM,
		PackingFee:     cfg.PackingFee,
	}

	r := router.SetupRouter(db, pricing)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Inventory{},
		&models.MovingDetail{},
		&models.Notification{},
		&models.Message{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
