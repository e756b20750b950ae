package repositories

import (
	"wine-api/models"
	"wine-api/types"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(DB *gorm.DB) *UserRepository {
	return &UserRepository{DB: DB}
}

// Create writes the user in its own transaction. Duplicate emails are not
// pre-checked; the unique index decides and the error is translated.
func (r *UserRepository) Create(user *models.User) error {
	return TranslateError(r.DB.Create(user).Error)
}

func (r *UserRepository) GetByID(id types.SnowflakeID) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &user, nil
}
