package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Config holds everything that used to live in ad-hoc environment reads:
// the HTTP port, database credentials, the JWT secret and the pricing
// constants used when quoting a move.
type Config struct {
	Port      string
	DBUser    string
	DBPass    string
	DBHost    string
	DBPort    string
	DBName    string
	JWTSecret string

	// First-boot admin account. Seeding is skipped when AdminPassword
	// is empty.
	AdminUsername string
	AdminEmail    string
	AdminPhone    string
	AdminPassword string

	BasePricePerKM float64
	PackingFee     float64
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBUser:         getEnv("DB_USER", "root"),
		DBPass:         getEnv("DB_PASS", ""),
		DBHost:         getEnv("DB_HOST", "127.0.0.1"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBName:         getEnv("DB_NAME", "kuhama"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "gichachu"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "img@gmail.com"),
		AdminPhone:     getEnv("ADMIN_PHONE", "720569305"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		BasePricePerKM: 500,
		PackingFee:     200,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	if v := os.Getenv("BASE_PRICE_PER_KM"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid BASE_PRICE_PER_KM: %w", err)
		}
		cfg.BasePricePerKM = f
	}
	if v := os.Getenv("PACKING_FEE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PACKING_FEE: %w", err)
		}
		cfg.PackingFee = f
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
