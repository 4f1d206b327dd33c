package domain

import (
	"time"

	"gorm.io/gorm"
)

// Character represents a character entity from the catalog
type Character struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	BirthYear *string        `json:"birth_year"`
	Gender    *string        `json:"gender"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Character) TableName() string {
	return "characters"
}
