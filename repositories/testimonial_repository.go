package repositories

import (
	"errors"

	"gorm.io/gorm"

	"alexweb-api/models"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) GetAll() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := r.db.Order("sort_order ASC").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *TestimonialRepository) GetByID(id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.First(&testimonial, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &testimonial, nil
}

func (r *TestimonialRepository) Create(input *models.TestimonialCreateInput) (*models.Testimonial, error) {
	testimonial := models.Testimonial{
		Name:      input.Name,
		Location:  input.Location,
		Rating:    input.Rating,
		Text:      input.Text,
		Vehicle:   input.Vehicle,
		Date:      input.Date,
		SortOrder: input.SortOrder,
	}
	if err := r.db.Create(&testimonial).Error; err != nil {
		return nil, err
	}
	return r.GetByID(testimonial.ID)
}

func (r *TestimonialRepository) Update(id uint, input *models.TestimonialUpdateInput) (*models.Testimonial, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	updates := map[string]interface{}{
		"name":       merge(input.Name, existing.Name),
		"location":   merge(input.Location, existing.Location),
		"rating":     mergeInt(input.Rating, existing.Rating),
		"text":       merge(input.Text, existing.Text),
		"vehicle":    mergePtr(input.Vehicle, existing.Vehicle),
		"date":       merge(input.Date, existing.Date),
		"sort_order": mergeInt(input.SortOrder, existing.SortOrder),
	}
	if err := r.db.Model(&models.Testimonial{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

func (r *TestimonialRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Testimonial{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func mergeInt(updated *int, current int) int {
	if updated != nil {
		return *updated
	}
	return current
}
