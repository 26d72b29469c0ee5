package models

import (
	"time"
)

type StaffMember struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Position   string    `json:"position" gorm:"not null"`
	Department string    `json:"department" gorm:"not null"`
	Email      string    `json:"email" gorm:"not null"`
	Phone      string    `json:"phone" gorm:"not null"`
	CellPhone  *string   `json:"cellPhone,omitempty"`
	Image      *string   `json:"image,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type StaffMemberCreateInput struct {
	Name       string  `json:"name" binding:"required"`
	Position   string  `json:"position" binding:"required"`
	Department string  `json:"department" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone" binding:"required"`
	CellPhone  *string `json:"cellPhone"`
	Image      *string `json:"image"`
	Bio        *string `json:"bio"`
}

type StaffMemberUpdateInput struct {
	Name       *string `json:"name"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	CellPhone  *string `json:"cellPhone"`
	Image      *string `json:"image"`
	Bio        *string `json:"bio"`
}
