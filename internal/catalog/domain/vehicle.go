package domain

import (
	"time"

	"gorm.io/gorm"
)

// Vehicle represents a vehicle entity from the catalog
type Vehicle struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Model        *string        `json:"model"`
	VehicleClass *string        `json:"vehicle_class"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Vehicle) TableName() string {
	return "vehicles"
}
