package database

import (
	"wine-api/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.StorageLot{},
		&models.WineSKU{},
		&models.Stock{},
		&models.Movement{},
	)
}
