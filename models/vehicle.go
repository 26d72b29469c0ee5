package models

import (
	"time"
)

type Vehicle struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Price        string    `json:"price" gorm:"not null"`
	Image        string    `json:"image" gorm:"not null"`
	Images       []string  `json:"images,omitempty" gorm:"-"`
	Mileage      string    `json:"mileage" gorm:"not null"`
	Transmission string    `json:"transmission" gorm:"not null"`
	Fuel         string    `json:"fuel" gorm:"not null"`
	Year         string    `json:"year" gorm:"not null;size:4"`
	Badge        *string   `json:"badge"`
	Condition    string    `json:"condition" gorm:"not null"`
	Location     *string   `json:"location,omitempty"`
	Store        *string   `json:"store,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type VehicleImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	VehicleID uint   `json:"vehicleId" gorm:"not null"`
	ImageURL  string `json:"imageUrl" gorm:"not null"`
	SortOrder int    `json:"sortOrder" gorm:"default:0"`
}

// VehicleCreateInput carries the fields accepted on vehicle intake.
// Price and Mileage are display strings, currency/comma formatting
// included; they are stored verbatim and never parsed server-side.
type VehicleCreateInput struct {
	Name         string   `json:"name" binding:"required"`
	Price        string   `json:"price" binding:"required"`
	Image        string   `json:"image" binding:"required"`
	Images       []string `json:"images"`
	Mileage      string   `json:"mileage" binding:"required"`
	Transmission string   `json:"transmission" binding:"required"`
	Fuel         string   `json:"fuel" binding:"required"`
	Year         string   `json:"year" binding:"required"`
	Badge        *string  `json:"badge"`
	Condition    string   `json:"condition" binding:"required"`
	Location     *string  `json:"location"`
	Store        *string  `json:"store"`
}

// VehicleUpdateInput is a partial update: nil fields keep their stored
// value. Images is three-state: absent (nil) preserves the gallery,
// present (even empty) replaces it wholesale.
type VehicleUpdateInput struct {
	Name         *string  `json:"name"`
	Price        *string  `json:"price"`
	Image        *string  `json:"image"`
	Images       []string `json:"images"`
	Mileage      *string  `json:"mileage"`
	Transmission *string  `json:"transmission"`
	Fuel         *string  `json:"fuel"`
	Year         *string  `json:"year"`
	Badge        *string  `json:"badge"`
	Condition    *string  `json:"condition"`
	Location     *string  `json:"location"`
	Store        *string  `json:"store"`
}
