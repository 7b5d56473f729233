package workflow

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-api/models"

	"gorm.io/gorm"
)

// Nights is the billing quantity: whole calendar days between start and end
func Nights(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}

// ComputeTotal returns price × nights for a stay in the given room
func ComputeTotal(db *gorm.DB, roomID uint, start, end time.Time) (float64, error) {
	nights := Nights(start, end)
	if nights <= 0 {
		return 0, ErrInvalidDateRange
	}
	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, fmt.Errorf("load room: %w", err)
	}
	return room.Price * float64(nights), nil
}

// CreateBooking inserts a BOOKED/PENDING booking and marks the room
// unavailable in one transaction. Availability is not a precondition: an
// owner spot-booking may force-book an occupied room, and customer callers
// are only ever offered available rooms.
func CreateBooking(db *gorm.DB, userID, roomID uint, start, end time.Time) (*models.Booking, error) {
	return createBooking(db, userID, roomID, start, end, false)
}

// BookAvailableRoom is the customer-initiated path: identical to
// CreateBooking except the room must still be available, checked inside the
// same transaction as the insert so two concurrent callers cannot both take
// the room.
func BookAvailableRoom(db *gorm.DB, userID, roomID uint, start, end time.Time) (*models.Booking, error) {
	return createBooking(db, userID, roomID, start, end, true)
}

func createBooking(db *gorm.DB, userID, roomID uint, start, end time.Time, requireAvailable bool) (*models.Booking, error) {
	nights := Nights(start, end)
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}

	var booking models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("load user: %w", err)
		}

		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("load room: %w", err)
		}
		if requireAvailable && !room.Available {
			return ErrRoomUnavailable
		}

		booking = models.Booking{
			UserID:        userID,
			RoomID:        roomID,
			StartDate:     start,
			EndDate:       end,
			Status:        models.StatusBooked,
			PaymentStatus: models.PaymentPending,
			TotalAmount:   room.Price * float64(nights),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", roomID).
			Update("available", false).Error; err != nil {
			return fmt.Errorf("mark room unavailable: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking marks a booking CANCELLED and frees its room in one
// transaction. Cancellation always wins: a PAID booking ends up with
// payment status CANCELLED. Cancelling an already-cancelled booking is a
// no-op success.
func CancelBooking(db *gorm.DB, bookingID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("load booking: %w", err)
		}

		if booking.Status == models.StatusCancelled {
			return nil
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":         models.StatusCancelled,
			"payment_status": models.PaymentCancelled,
		}).Error; err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}

		// Unconditional: the availability gate never allows overlapping
		// bookings on one room, so no other active booking can hold it.
		if err := tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("available", true).Error; err != nil {
			return fmt.Errorf("free room: %w", err)
		}
		return nil
	})
}
