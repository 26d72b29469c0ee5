package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alexweb-api/models"
)

type PopularItemRepository struct {
	db *gorm.DB
}

func NewPopularItemRepository(db *gorm.DB) *PopularItemRepository {
	return &PopularItemRepository{db: db}
}

// GetByCategory returns the name/count pairs for one category, highest
// count first. Name breaks ties so the order is stable between calls.
func (r *PopularItemRepository) GetByCategory(category string) ([]models.PopularItem, error) {
	items := []models.PopularItem{}
	err := r.db.Select("name, count").
		Where("category = ?", category).
		Order("count DESC, name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetAll maps every category to its ordered list. All three keys are
// always present, empty categories included.
func (r *PopularItemRepository) GetAll() (map[string][]models.PopularItem, error) {
	all := make(map[string][]models.PopularItem, len(models.PopularItemCategories))
	for _, category := range models.PopularItemCategories {
		items, err := r.GetByCategory(category)
		if err != nil {
			return nil, err
		}
		all[category] = items
	}
	return all, nil
}

// Upsert inserts the (category, name) row or overwrites its count when
// the pair already exists.
func (r *PopularItemRepository) Upsert(category, name string, count int) (*models.PopularItem, error) {
	item := models.PopularItem{
		Category: category,
		Name:     name,
		Count:    count,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"count", "updated_at"}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	return &models.PopularItem{Name: name, Count: count}, nil
}

// UpdateCount overwrites the count of an existing pair only; unlike
// Upsert it never creates a row. Returns (nil, nil) when the pair is
// absent.
func (r *PopularItemRepository) UpdateCount(category, name string, count int) (*models.PopularItem, error) {
	result := r.db.Model(&models.PopularItem{}).
		Where("category = ? AND name = ?", category, name).
		Update("count", count)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return &models.PopularItem{Name: name, Count: count}, nil
}

// Delete removes the pair if present and reports whether it existed.
func (r *PopularItemRepository) Delete(category, name string) (bool, error) {
	result := r.db.Where("category = ? AND name = ?", category, name).
		Delete(&models.PopularItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
