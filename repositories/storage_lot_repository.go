package repositories

import (
	"wine-api/models"
	"wine-api/types"

	"gorm.io/gorm"
)

type StorageLotRepository struct {
	DB *gorm.DB
}

func NewStorageLotRepository(DB *gorm.DB) *StorageLotRepository {
	return &StorageLotRepository{DB: DB}
}

func (r *StorageLotRepository) Create(lot *models.StorageLot) error {
	return TranslateError(r.DB.Create(lot).Error)
}

func (r *StorageLotRepository) GetByID(id types.SnowflakeID) (*models.StorageLot, error) {
	var lot models.StorageLot
	if err := r.DB.First(&lot, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &lot, nil
}
