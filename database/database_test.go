package database

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alexweb-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	return db
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := InitSchema(db); err != nil {
		t.Fatalf("first InitSchema: %v", err)
	}
	if err := InitSchema(db); err != nil {
		t.Fatalf("second InitSchema must be a no-op, got %v", err)
	}
}

func TestSchemaEnforcesRatingBounds(t *testing.T) {
	db := openTestDB(t)
	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}

	bad := models.Testimonial{
		Name: "x", Location: "y", Rating: 9, Text: "z", Date: "March 2024",
	}
	if err := db.Create(&bad).Error; err == nil {
		t.Fatalf("expected rating CHECK constraint to reject 9")
	}
}

func TestSchemaEnforcesCategoryEnum(t *testing.T) {
	db := openTestDB(t)
	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}

	bad := models.PopularItem{Category: "colour", Name: "Red", Count: 1}
	if err := db.Create(&bad).Error; err == nil {
		t.Fatalf("expected category CHECK constraint to reject %q", bad.Category)
	}
}

func TestSeedDataRunsOnceOnly(t *testing.T) {
	db := openTestDB(t)
	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}

	if err := SeedData(db); err != nil {
		t.Fatalf("first SeedData: %v", err)
	}
	var after int64
	db.Model(&models.Vehicle{}).Count(&after)
	if after == 0 {
		t.Fatalf("expected seeded vehicles")
	}

	if err := SeedData(db); err != nil {
		t.Fatalf("second SeedData: %v", err)
	}
	var again int64
	db.Model(&models.Vehicle{}).Count(&again)
	if again != after {
		t.Fatalf("seed ran twice: %d -> %d vehicles", after, again)
	}
}
