package repositories

import (
	"errors"

	"gorm.io/gorm"

	"alexweb-api/models"
)

type FinanceRepository struct {
	db *gorm.DB
}

func NewFinanceRepository(db *gorm.DB) *FinanceRepository {
	return &FinanceRepository{db: db}
}

// Create persists the submitted form as one opaque document.
func (r *FinanceRepository) Create(data models.JSONMap) (*models.FinanceApplication, error) {
	application := models.FinanceApplication{Data: data}
	if err := r.db.Create(&application).Error; err != nil {
		return nil, err
	}
	return r.GetByID(application.ID)
}

func (r *FinanceRepository) GetAll() ([]models.FinanceApplication, error) {
	var applications []models.FinanceApplication
	if err := r.db.Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *FinanceRepository) GetByID(id uint) (*models.FinanceApplication, error) {
	var application models.FinanceApplication
	err := r.db.First(&application, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}
