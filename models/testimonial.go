package models

import (
	"time"
)

type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Location  string    `json:"location" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Text      string    `json:"text" gorm:"not null"`
	Vehicle   *string   `json:"vehicle,omitempty"`
	Date      string    `json:"date" gorm:"not null"`
	SortOrder int       `json:"sortOrder" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TestimonialCreateInput struct {
	Name      string  `json:"name" binding:"required"`
	Location  string  `json:"location" binding:"required"`
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	Text      string  `json:"text" binding:"required"`
	Vehicle   *string `json:"vehicle"`
	Date      string  `json:"date" binding:"required"`
	SortOrder int     `json:"sortOrder"`
}

type TestimonialUpdateInput struct {
	Name      *string `json:"name"`
	Location  *string `json:"location"`
	Rating    *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Text      *string `json:"text"`
	Vehicle   *string `json:"vehicle"`
	Date      *string `json:"date"`
	SortOrder *int    `json:"sortOrder"`
}
