package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chamarasara/cafe-management-backend/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Cafe{}, &model.Employee{}))
	return db
}

func createCafe(t *testing.T, db *gorm.DB, name, location string) model.Cafe {
	t.Helper()

	cafe := model.Cafe{Name: name, Description: "test cafe", Location: location}
	require.NoError(t, db.Create(&cafe).Error)
	return cafe
}

func createEmployee(t *testing.T, db *gorm.DB, email, cafeID string, startDate time.Time) model.Employee {
	t.Helper()

	employee := model.Employee{
		Name:         "Test Employee",
		EmailAddress: email,
		PhoneNumber:  "91234567",
		Gender:       "Female",
		StartDate:    startDate,
	}
	if cafeID != "" {
		employee.CafeID = &cafeID
	}
	require.NoError(t, db.Create(&employee).Error)
	return employee
}
