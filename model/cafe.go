package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cafe struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Logo        string     `json:"logo"`
	Location    string     `json:"location" gorm:"not null;index"`
	Employees   []Employee `json:"employees" gorm:"foreignKey:CafeID;references:ID"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the immutable café identity.
func (c *Cafe) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
