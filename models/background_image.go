package models

import (
	"time"
)

type BackgroundImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ImageURL  string    `json:"imageUrl" gorm:"not null;unique"`
	SortOrder int       `json:"sortOrder" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BackgroundImageCreateInput struct {
	ImageURL  string `json:"imageUrl" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

type BackgroundImageUpdateInput struct {
	ImageURL  *string `json:"imageUrl"`
	SortOrder *int    `json:"sortOrder"`
}
