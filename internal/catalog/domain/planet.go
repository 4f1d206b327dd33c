package domain

import (
	"time"

	"gorm.io/gorm"
)

// Planet represents a planet entity from the catalog
type Planet struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"not null"`
	Population *string        `json:"population"`
	Climate    *string        `json:"climate"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Planet) TableName() string {
	return "planets"
}
