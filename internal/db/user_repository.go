package db

import (
	"github.com/terraincognita07/pocketlove/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// FindOwner returns the device owner. The app keeps a single profile, so the
// first row is the owner.
func (repo *UserRepository) FindOwner() (models.User, bool, error) {
	var user models.User
	result := repo.database.Order("id ASC").Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) UpdatePasscodeHash(userID uint, passcodeHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("passcode_hash", passcodeHash).Error
}
