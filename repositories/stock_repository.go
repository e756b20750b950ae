package repositories

import (
	"wine-api/models"
	"wine-api/types"

	"gorm.io/gorm"
)

type StockRepository struct {
	DB *gorm.DB
}

func NewStockRepository(DB *gorm.DB) *StockRepository {
	return &StockRepository{DB: DB}
}

func (r *StockRepository) Create(stock *models.Stock) error {
	return TranslateError(r.DB.Create(stock).Error)
}

func (r *StockRepository) GetByID(id types.SnowflakeID) (*models.Stock, error) {
	var stock models.Stock
	if err := r.DB.First(&stock, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &stock, nil
}

// GetAll feeds the stock report export.
func (r *StockRepository) GetAll() ([]models.Stock, error) {
	var stocks []models.Stock
	if err := r.DB.Order("location_id, sku_id").Find(&stocks).Error; err != nil {
		return nil, TranslateError(err)
	}
	return stocks, nil
}
