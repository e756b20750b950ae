package database

import (
	"errors"

	"wine-api/config"
	"wine-api/models"
	"wine-api/utils"

	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
}

// SeedAdminUser creates the bootstrap admin account if no user owns its
// email yet. Idempotent across restarts.
func SeedAdminUser(db *gorm.DB) {
	logger := config.GetLogger()

	email := "admin@wine.local"

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		config.LogError(logger, "database", "SeedAdminUser", "lookup admin user", err)
		return
	}

	hashed, err := utils.HashPassword("admin123")
	if err != nil {
		config.LogError(logger, "database", "SeedAdminUser", "hash admin password", err)
		return
	}

	admin := models.User{
		FirstName:      "System",
		LastName:       "Admin",
		Name:           "System Admin",
		Email:          email,
		Role:           models.RoleAdmin,
		HashedPassword: hashed,
		IsActive:       true,
	}

	if err := db.Create(&admin).Error; err != nil {
		config.LogError(logger, "database", "SeedAdminUser", "create admin user", err)
		return
	}

	logger.WithField("email", email).Info("seeded admin user")
}
