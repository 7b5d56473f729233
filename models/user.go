package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleOwner    UserRole = "OWNER"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         UserRole  `json:"role" gorm:"not null;default:'CUSTOMER'"`
	SpotCreated  bool      `json:"spot_created" gorm:"default:false"` // account created inline by an owner
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
