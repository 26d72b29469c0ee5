package repositories

import (
	"errors"

	"gorm.io/gorm"

	"alexweb-api/models"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// GetAll returns every vehicle in id order, each carrying its gallery
// ordered by sort_order. A vehicle without gallery rows keeps a nil
// Images slice so the JSON key stays absent.
func (r *VehicleRepository) GetAll() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.Order("id").Find(&vehicles).Error; err != nil {
		return nil, err
	}

	var images []models.VehicleImage
	if err := r.db.Order("vehicle_id, sort_order").Find(&images).Error; err != nil {
		return nil, err
	}

	byVehicle := make(map[uint][]string)
	for _, img := range images {
		byVehicle[img.VehicleID] = append(byVehicle[img.VehicleID], img.ImageURL)
	}
	for i := range vehicles {
		vehicles[i].Images = byVehicle[vehicles[i].ID]
	}

	return vehicles, nil
}

// GetByID returns the vehicle with its gallery, or (nil, nil) when the
// id does not exist. Missing rows are a normal outcome, not an error.
func (r *VehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	images, err := r.imageURLs(r.db, id)
	if err != nil {
		return nil, err
	}
	vehicle.Images = images

	return &vehicle, nil
}

// Create inserts the vehicle row and, when a gallery is supplied, one
// image row per entry with sort_order equal to the array index. The
// whole write runs in one transaction, and the response is re-read
// from the store so server-assigned fields are present.
func (r *VehicleRepository) Create(input *models.VehicleCreateInput) (*models.Vehicle, error) {
	vehicle := models.Vehicle{
		Name:         input.Name,
		Price:        input.Price,
		Image:        input.Image,
		Mileage:      input.Mileage,
		Transmission: input.Transmission,
		Fuel:         input.Fuel,
		Year:         input.Year,
		Badge:        input.Badge,
		Condition:    input.Condition,
		Location:     input.Location,
		Store:        input.Store,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vehicle).Error; err != nil {
			return err
		}
		return insertImages(tx, vehicle.ID, input.Images)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(vehicle.ID)
}

// Update merges the supplied fields over the stored record, field by
// field. A present Images slice (empty included) replaces the whole
// gallery; an absent one leaves the gallery untouched. Returns
// (nil, nil) when the id does not exist, without writing anything.
func (r *VehicleRepository) Update(id uint, input *models.VehicleUpdateInput) (*models.Vehicle, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":         merge(input.Name, existing.Name),
			"price":        merge(input.Price, existing.Price),
			"image":        merge(input.Image, existing.Image),
			"mileage":      merge(input.Mileage, existing.Mileage),
			"transmission": merge(input.Transmission, existing.Transmission),
			"fuel":         merge(input.Fuel, existing.Fuel),
			"year":         merge(input.Year, existing.Year),
			"badge":        mergePtr(input.Badge, existing.Badge),
			"condition":    merge(input.Condition, existing.Condition),
			"location":     mergePtr(input.Location, existing.Location),
			"store":        mergePtr(input.Store, existing.Store),
		}
		if err := tx.Model(&models.Vehicle{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		if input.Images == nil {
			return nil
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.VehicleImage{}).Error; err != nil {
			return err
		}
		return insertImages(tx, id, input.Images)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Delete removes the vehicle row; gallery rows go with it through the
// ON DELETE CASCADE constraint, not application logic. The boolean
// reports whether a row actually existed.
func (r *VehicleRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Vehicle{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *VehicleRepository) imageURLs(tx *gorm.DB, vehicleID uint) ([]string, error) {
	var images []models.VehicleImage
	if err := tx.Where("vehicle_id = ?", vehicleID).Order("sort_order").Find(&images).Error; err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}
	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.ImageURL
	}
	return urls, nil
}

func insertImages(tx *gorm.DB, vehicleID uint, urls []string) error {
	for idx, url := range urls {
		img := models.VehicleImage{
			VehicleID: vehicleID,
			ImageURL:  url,
			SortOrder: idx,
		}
		if err := tx.Create(&img).Error; err != nil {
			return err
		}
	}
	return nil
}

func merge(updated *string, current string) string {
	if updated != nil {
		return *updated
	}
	return current
}

func mergePtr(updated, current *string) *string {
	if updated != nil {
		return updated
	}
	return current
}
