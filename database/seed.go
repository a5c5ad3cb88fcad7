package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/chamarasara/cafe-management-backend/model"
)

func strPtr(s string) *string { return &s }

// Seed inserts a small demo dataset. It is a no-op when cafés already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Cafe{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count cafes: %w", err)
	}
	if count > 0 {
		return nil
	}

	cafes := []model.Cafe{
		{Name: "Cafe Mocha", Description: "A cozy place for coffee lovers.", Logo: "mocha.png", Location: "Downtown"},
		{Name: "Cafe Latte", Description: "Famous for its lattes.", Logo: "latte.png", Location: "Uptown"},
		{Name: "Cafe Espresso", Description: "Quick espresso shots.", Logo: "espresso.png", Location: "Midtown"},
	}
	if err := db.Create(&cafes).Error; err != nil {
		return fmt.Errorf("seed cafes: %w", err)
	}

	employees := []model.Employee{
		{Name: "Alice Tan", EmailAddress: "alice.tan@example.com", PhoneNumber: "91234567", Gender: "Female", CafeID: strPtr(cafes[0].ID)},
		{Name: "Ben Lim", EmailAddress: "ben.lim@example.com", PhoneNumber: "98765432", Gender: "Male", CafeID: strPtr(cafes[0].ID)},
		{Name: "Chloe Ng", EmailAddress: "chloe.ng@example.com", PhoneNumber: "81234567", Gender: "Female", CafeID: strPtr(cafes[1].ID)},
	}
	if err := db.Create(&employees).Error; err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}

	return nil
}
