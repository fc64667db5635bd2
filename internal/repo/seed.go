package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mcastell/product-catalog/internal/models"
)

const (
	SeedUsername = "admin"
	SeedPassword = "password123"
)

func seedProducts() []models.Product {
	return []models.Product{
		{Name: "Ultralight Laptop", Description: "13 inch, 16GB RAM, 512GB SSD", Price: 1200.00},
		{Name: "4K Monitor", Description: "27 inch, 60Hz, HDR", Price: 450.50},
		{Name: "Mechanical Keyboard", Description: "Blue switches, RGB backlight", Price: 85.99},
		{Name: "Gaming Mouse", Description: "Wireless, 16000 DPI", Price: 55.00},
		{Name: "Full HD Webcam", Description: "1080p at 30fps", Price: 49.99},
		{Name: "External Hard Drive", Description: "2TB, USB 3.0", Price: 75.00},
		{Name: "Wireless Headphones", Description: "Noise cancelling", Price: 150.00},
	}
}

// Bootstrap creates the schema and seed rows when either table is missing.
// Each step is guarded individually, so re-running it is harmless.
func (r *GormRepo) Bootstrap(ctx context.Context) error {
	db := r.DB.WithContext(ctx)

	m := db.Migrator()
	if m.HasTable(&models.User{}) && m.HasTable(&models.Product{}) {
		return nil
	}

	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	var admin models.User
	err := db.Where("username = ?", SeedUsername).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = models.User{Username: SeedUsername, Password: SeedPassword}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count == 0 {
		products := seedProducts()
		if err := db.Create(&products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}

	return nil
}
