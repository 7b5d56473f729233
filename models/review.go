package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RoomID    uint      `json:"room_id" gorm:"not null"`
	Room      Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Text      string    `json:"review_text" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
