package workflow

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hotel-booking-api/models"

	"gorm.io/gorm"
)

// ClampRating parses a user-supplied rating string. Anything unparsable or
// outside [1,5] becomes 5 — a policy choice inherited from the booking desk,
// not a validation failure.
func ClampRating(raw string) int {
	rating, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || rating < 1 || rating > 5 {
		return 5
	}
	return rating
}

// SubmitReview attaches a rating and text to a room on behalf of a user.
// There is no requirement that the user ever booked the room.
func SubmitReview(db *gorm.DB, userID, roomID uint, rating int, text string) (*models.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyReview
	}
	if rating < 1 || rating > 5 {
		rating = 5
	}

	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("load room: %w", err)
	}

	review := models.Review{
		UserID: userID,
		RoomID: roomID,
		Text:   text,
		Rating: rating,
	}
	if err := db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return &review, nil
}
