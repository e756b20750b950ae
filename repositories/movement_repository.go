package repositories

import (
	"wine-api/models"
	"wine-api/types"

	"gorm.io/gorm"
)

type MovementRepository struct {
	DB *gorm.DB
}

func NewMovementRepository(DB *gorm.DB) *MovementRepository {
	return &MovementRepository{DB: DB}
}

// Create appends one audit row. Movements are never updated or deleted.
func (r *MovementRepository) Create(movement *models.Movement) error {
	return TranslateError(r.DB.Create(movement).Error)
}

func (r *MovementRepository) GetByID(id types.SnowflakeID) (*models.Movement, error) {
	var movement models.Movement
	if err := r.DB.First(&movement, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &movement, nil
}
