package models

import "time"

type Room struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RoomNumber string    `json:"room_number" gorm:"uniqueIndex;not null"`
	Type       string    `json:"type"`
	Price      float64   `json:"price" gorm:"not null"`
	Available  bool      `json:"available" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
