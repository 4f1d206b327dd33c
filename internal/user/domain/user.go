package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound signals a missing user record
var ErrNotFound = errors.New("user not found")

// ErrForbidden signals an actor lacking admin rights
var ErrForbidden = errors.New("admin access required")

// User represents the user entity (domain model)
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"` // Never expose password in JSON
	IsAdmin   bool           `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"` // Soft delete
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindAll() ([]User, error)
	Delete(id uint) error
	Count() (int64, error)
}
