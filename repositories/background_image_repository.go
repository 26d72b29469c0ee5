package repositories

import (
	"errors"

	"gorm.io/gorm"

	"alexweb-api/models"
)

type BackgroundImageRepository struct {
	db *gorm.DB
}

func NewBackgroundImageRepository(db *gorm.DB) *BackgroundImageRepository {
	return &BackgroundImageRepository{db: db}
}

// GetAllURLs returns just the image URLs in display order; it backs the
// public list endpoint, which serves a plain string array.
func (r *BackgroundImageRepository) GetAllURLs() ([]string, error) {
	urls := []string{}
	err := r.db.Model(&models.BackgroundImage{}).
		Order("sort_order ASC").
		Pluck("image_url", &urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}

func (r *BackgroundImageRepository) GetAll() ([]models.BackgroundImage, error) {
	var images []models.BackgroundImage
	if err := r.db.Order("sort_order ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *BackgroundImageRepository) GetByID(id uint) (*models.BackgroundImage, error) {
	var image models.BackgroundImage
	err := r.db.First(&image, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *BackgroundImageRepository) Create(input *models.BackgroundImageCreateInput) (*models.BackgroundImage, error) {
	image := models.BackgroundImage{
		ImageURL:  input.ImageURL,
		SortOrder: input.SortOrder,
	}
	if err := r.db.Create(&image).Error; err != nil {
		return nil, err
	}
	return r.GetByID(image.ID)
}

func (r *BackgroundImageRepository) Update(id uint, input *models.BackgroundImageUpdateInput) (*models.BackgroundImage, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	updates := map[string]interface{}{
		"image_url":  merge(input.ImageURL, existing.ImageURL),
		"sort_order": mergeInt(input.SortOrder, existing.SortOrder),
	}
	if err := r.db.Model(&models.BackgroundImage{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

func (r *BackgroundImageRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.BackgroundImage{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
