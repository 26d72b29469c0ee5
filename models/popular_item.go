package models

import (
	"time"
)

// Popular item categories. The set is closed and enforced both at the
// HTTP boundary and by a CHECK constraint on the table.
const (
	CategoryBodyStyle = "body_style"
	CategoryMake      = "make"
	CategoryModel     = "model"
)

// PopularItemCategories lists the valid categories in the order the
// aggregate endpoint reports them.
var PopularItemCategories = []string{CategoryBodyStyle, CategoryMake, CategoryModel}

func IsValidPopularItemCategory(category string) bool {
	for _, c := range PopularItemCategories {
		if c == category {
			return true
		}
	}
	return false
}

// PopularItem is a denormalized (category, name) → count row driving
// search-suggestion labels like "SUV (245)". Counts are curated
// out-of-band, not computed from the vehicle inventory.
type PopularItem struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Category  string    `json:"category,omitempty"`
	Name      string    `json:"name"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type PopularItemCreateInput struct {
	Name  string `json:"name" binding:"required"`
	Count int    `json:"count" binding:"min=0"`
}

type PopularItemUpdateInput struct {
	Count *int `json:"count" binding:"required"`
}
