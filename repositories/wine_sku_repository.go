package repositories

import (
	"wine-api/models"
	"wine-api/types"

	"gorm.io/gorm"
)

type WineSKURepository struct {
	DB *gorm.DB
}

func NewWineSKURepository(DB *gorm.DB) *WineSKURepository {
	return &WineSKURepository{DB: DB}
}

func (r *WineSKURepository) Create(sku *models.WineSKU) error {
	return TranslateError(r.DB.Create(sku).Error)
}

func (r *WineSKURepository) GetByID(id types.SnowflakeID) (*models.WineSKU, error) {
	var sku models.WineSKU
	if err := r.DB.First(&sku, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &sku, nil
}
