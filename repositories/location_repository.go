package repositories

import (
	"wine-api/models"
	"wine-api/types"

	"gorm.io/gorm"
)

type LocationRepository struct {
	DB *gorm.DB
}

func NewLocationRepository(DB *gorm.DB) *LocationRepository {
	return &LocationRepository{DB: DB}
}

func (r *LocationRepository) Create(location *models.Location) error {
	return TranslateError(r.DB.Create(location).Error)
}

func (r *LocationRepository) GetByID(id types.SnowflakeID) (*models.Location, error) {
	var location models.Location
	if err := r.DB.First(&location, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &location, nil
}
