package database

import (
	"fmt"

	"gorm.io/gorm"

	"alexweb-api/models"
)

type seedVehicle struct {
	vehicle models.Vehicle
	images  []string
}

// SeedData populates an empty store with the showroom data set. Runs
// are guarded by a count check, so calling it on every start is safe.
// Each entity batch is inserted inside one transaction; that is a bulk
// load optimization, the CRUD paths do not rely on it.
func SeedData(db *gorm.DB) error {
	var vehicleCount int64
	if err := db.Model(&models.Vehicle{}).Count(&vehicleCount).Error; err != nil {
		return err
	}
	if vehicleCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	if err := seedVehicles(db); err != nil {
		return fmt.Errorf("failed to seed vehicles: %w", err)
	}
	if err := seedTestimonials(db); err != nil {
		return fmt.Errorf("failed to seed testimonials: %w", err)
	}
	if err := seedStaff(db); err != nil {
		return fmt.Errorf("failed to seed staff: %w", err)
	}
	if err := seedPopularItems(db); err != nil {
		return fmt.Errorf("failed to seed popular items: %w", err)
	}
	if err := seedBackgroundImages(db); err != nil {
		return fmt.Errorf("failed to seed background images: %w", err)
	}

	fmt.Println("Database seeded successfully")
	return nil
}

func seedVehicles(db *gorm.DB) error {
	vehicles := []seedVehicle{
		{
			vehicle: models.Vehicle{
				Name: "2012 Nissan Frontier", Price: "$18,500",
				Image:   "/2012-nissan-frontier-crew-cab.jpg",
				Mileage: "85,500", Transmission: "Automatic", Fuel: "Gasoline",
				Year: "2012", Badge: strPtr("Certified"), Condition: "Repairable",
				Location: strPtr("San Antonio, TX"), Store: strPtr("CarMax San Antonio, TX"),
			},
			images: []string{
				"/2012-nissan-frontier-crew-cab.jpg",
				"/2012-nissan-frontier-crew-cab-2.jpg",
				"/2012-nissan-frontier-crew-cab-3.jpg",
			},
		},
		{
			vehicle: models.Vehicle{
				Name: "2022 Honda CR-V", Price: "$32,900",
				Image:   "/2022-honda-crv-blue.jpg",
				Mileage: "18,200", Transmission: "Automatic", Fuel: "Hybrid",
				Year: "2022", Badge: strPtr("Popular"), Condition: "Used",
				Location: strPtr("San Antonio, TX"), Store: strPtr("CarMax San Antonio, TX"),
			},
		},
		{
			vehicle: models.Vehicle{
				Name: "2024 Ford F-150", Price: "$45,200",
				Image:   "/2024-ford-f150-truck.jpg",
				Mileage: "5,800", Transmission: "Automatic", Fuel: "Gasoline",
				Year: "2024", Badge: strPtr("New Arrival"), Condition: "New",
				Location: strPtr("San Antonio, TX"), Store: strPtr("CarMax San Antonio, TX"),
			},
		},
		{
			vehicle: models.Vehicle{
				Name: "2023 BMW 3 Series", Price: "$42,800",
				Image:   "/2023-bmw-3-series-black.jpg",
				Mileage: "8,900", Transmission: "Automatic", Fuel: "Gasoline",
				Year: "2023", Badge: strPtr("Luxury"), Condition: "Manufacturer Certified",
				Location: strPtr("San Antonio, TX"), Store: strPtr("CarMax San Antonio, TX"),
			},
		},
		{
			vehicle: models.Vehicle{
				Name: "2022 Tesla Model 3", Price: "$38,900",
				Image:   "/2022-tesla-model-3-red.jpg",
				Mileage: "15,400", Transmission: "Automatic", Fuel: "Electric",
				Year: "2022", Badge: strPtr("Electric"), Condition: "Manufacturer Certified",
				Location: strPtr("San Antonio, TX"), Store: strPtr("CarMax San Antonio, TX"),
			},
		},
		{
			vehicle: models.Vehicle{
				Name: "2023 Mazda CX-5", Price: "$29,700",
				Image:   "/2023-mazda-cx5-gray.jpg",
				Mileage: "11,200", Transmission: "Automatic", Fuel: "Gasoline",
				Year: "2023", Badge: strPtr("Top Rated"), Condition: "Manufacturer Certified",
				Location: strPtr("San Antonio, TX"), Store: strPtr("CarMax San Antonio, TX"),
			},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range vehicles {
			sv := &vehicles[i]
			if err := tx.Create(&sv.vehicle).Error; err != nil {
				return err
			}
			for idx, url := range sv.images {
				img := models.VehicleImage{
					VehicleID: sv.vehicle.ID,
					ImageURL:  url,
					SortOrder: idx,
				}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func seedTestimonials(db *gorm.DB) error {
	testimonials := []models.Testimonial{
		{Name: "Maria Gonzalez", Location: "San Antonio, TX", Rating: 5,
			Text:    "Best car buying experience I have ever had. No pressure, fair price.",
			Vehicle: strPtr("2022 Honda CR-V"), Date: "March 2024", SortOrder: 0},
		{Name: "James Carter", Location: "Austin, TX", Rating: 5,
			Text:    "Drove out from Austin and it was worth the trip. The truck was exactly as listed.",
			Vehicle: strPtr("2024 Ford F-150"), Date: "February 2024", SortOrder: 1},
		{Name: "Linda Tran", Location: "San Antonio, TX", Rating: 4,
			Text: "Quick financing and friendly staff. Would recommend to family.",
			Date: "January 2024", SortOrder: 2},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&testimonials).Error
	})
}

func seedStaff(db *gorm.DB) error {
	staff := []models.StaffMember{
		{Name: "Alex Herrera", Position: "Owner", Department: "Sales",
			Email: "alex@alexweb.com", Phone: "(210) 555-0101", CellPhone: strPtr("(210) 555-0199")},
		{Name: "Dana Whitfield", Position: "Finance Manager", Department: "Finance",
			Email: "dana@alexweb.com", Phone: "(210) 555-0102"},
		{Name: "Marcus Lee", Position: "Sales Consultant", Department: "Sales",
			Email: "marcus@alexweb.com", Phone: "(210) 555-0103"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&staff).Error
	})
}

func seedPopularItems(db *gorm.DB) error {
	items := []models.PopularItem{
		{Category: models.CategoryBodyStyle, Name: "SUV", Count: 245},
		{Category: models.CategoryBodyStyle, Name: "Pickup Truck", Count: 187},
		{Category: models.CategoryBodyStyle, Name: "Sedan", Count: 164},
		{Category: models.CategoryBodyStyle, Name: "Coupe", Count: 52},
		{Category: models.CategoryMake, Name: "Toyota", Count: 342},
		{Category: models.CategoryMake, Name: "Honda", Count: 298},
		{Category: models.CategoryMake, Name: "Ford", Count: 276},
		{Category: models.CategoryMake, Name: "Chevrolet", Count: 231},
		{Category: models.CategoryModel, Name: "F-150", Count: 98},
		{Category: models.CategoryModel, Name: "CR-V", Count: 87},
		{Category: models.CategoryModel, Name: "Camry", Count: 81},
		{Category: models.CategoryModel, Name: "Silverado", Count: 74},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
}

func seedBackgroundImages(db *gorm.DB) error {
	urls := []string{
		"/backgrounds/showroom-night.jpg",
		"/backgrounds/lot-aerial.jpg",
		"/backgrounds/truck-sunset.jpg",
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for idx, url := range urls {
			img := models.BackgroundImage{ImageURL: url, SortOrder: idx}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func strPtr(s string) *string {
	return &s
}
