package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/chamarasara/cafe-management-backend/utils"
)

type Employee struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	EmailAddress string    `json:"email_address" gorm:"column:email_address;uniqueIndex;not null"`
	PhoneNumber  string    `json:"phone_number" gorm:"column:phone_number;not null"`
	Gender       string    `json:"gender" gorm:"not null"`
	CafeID       *string   `json:"cafeId" gorm:"column:cafe_id;index"`
	StartDate    time.Time `json:"startDate" gorm:"column:start_date;not null"`
	DaysWorked   int       `json:"days_worked" gorm:"column:days_worked;not null;default:0"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the generated id and defaults the start date to now.
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = utils.GenerateEmployeeID()
	}
	if e.StartDate.IsZero() {
		e.StartDate = time.Now()
	}
	return nil
}

// BeforeSave recomputes the tenure on every write. Client-supplied values are
// always overwritten.
func (e *Employee) BeforeSave(tx *gorm.DB) error {
	if !e.StartDate.IsZero() {
		e.DaysWorked = ComputeDaysWorked(e.StartDate, time.Now())
	}
	return nil
}

// ComputeDaysWorked returns the number of full days elapsed between start and
// now. Future start dates count as zero.
func ComputeDaysWorked(start, now time.Time) int {
	if now.Before(start) {
		return 0
	}
	return int(now.Sub(start) / (24 * time.Hour))
}
