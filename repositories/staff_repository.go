package repositories

import (
	"errors"

	"gorm.io/gorm"

	"alexweb-api/models"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) GetAll() ([]models.StaffMember, error) {
	var staff []models.StaffMember
	if err := r.db.Order("id").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *StaffRepository) GetByID(id uint) (*models.StaffMember, error) {
	var member models.StaffMember
	err := r.db.First(&member, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *StaffRepository) Create(input *models.StaffMemberCreateInput) (*models.StaffMember, error) {
	member := models.StaffMember{
		Name:       input.Name,
		Position:   input.Position,
		Department: input.Department,
		Email:      input.Email,
		Phone:      input.Phone,
		CellPhone:  input.CellPhone,
		Image:      input.Image,
		Bio:        input.Bio,
	}
	if err := r.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return r.GetByID(member.ID)
}

func (r *StaffRepository) Update(id uint, input *models.StaffMemberUpdateInput) (*models.StaffMember, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	updates := map[string]interface{}{
		"name":       merge(input.Name, existing.Name),
		"position":   merge(input.Position, existing.Position),
		"department": merge(input.Department, existing.Department),
		"email":      merge(input.Email, existing.Email),
		"phone":      merge(input.Phone, existing.Phone),
		"cell_phone": mergePtr(input.CellPhone, existing.CellPhone),
		"image":      mergePtr(input.Image, existing.Image),
		"bio":        mergePtr(input.Bio, existing.Bio),
	}
	if err := r.db.Model(&models.StaffMember{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

func (r *StaffRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.StaffMember{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
