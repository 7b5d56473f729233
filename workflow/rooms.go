package workflow

import (
	"fmt"

	"hotel-booking-api/models"

	"gorm.io/gorm"
)

// ListAvailableRooms returns rooms open for booking, ordered by room number
func ListAvailableRooms(db *gorm.DB) ([]models.Room, error) {
	var rooms []models.Room
	if err := db.Where("available = ?", true).
		Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}
