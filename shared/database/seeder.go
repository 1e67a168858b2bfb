package database

import (
	"fmt"
	"log"

	"marigold-backend/shared/config"
	"marigold-backend/shared/database/models"
	utils "marigold-backend/shared/utils/auth"

	"gorm.io/gorm"
)

// SeedDatabase ensures required seed data exists (currently the admin user)
func SeedDatabase() error {
	log.Println("🌱 Checking database seed data...")

	if err := CreateAdminFromConfig(DB); err != nil {
		return err
	}

	log.Println("✅ Database seed data is up to date")
	return nil
}

// CreateAdminFromConfig creates the admin user from config credentials when absent
func CreateAdminFromConfig(db *gorm.DB) error {
	cfg := config.GetConfig()

	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return fmt.Errorf("admin credentials are not configured")
	}

	var existing models.AdminUser
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hashedPassword, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.AdminUser{
		Username: cfg.AdminUsername,
		Password: hashedPassword,
		Role:     "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("✅ Admin user created: %s", cfg.AdminUsername)
	return nil
}
