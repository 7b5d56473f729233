package workflow

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PricePolicy selects which room price settles a pending booking
type PricePolicy string

const (
	// PriceRecompute uses the room's current price at payment time; if the
	// price changed since booking, the later price wins.
	PriceRecompute PricePolicy = "recompute"
	// PriceSnapshot uses the total stored on the booking at creation
	PriceSnapshot PricePolicy = "snapshot"
)

// Policy is set once at boot and read on every outstanding-amount lookup
var Policy = PriceRecompute

// OutstandingAmount returns the amount due for a booking according to the
// active pricing policy.
func OutstandingAmount(db *gorm.DB, bookingID uint) (float64, error) {
	var booking models.Booking
	if err := db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrBookingNotFound
		}
		return 0, fmt.Errorf("load booking: %w", err)
	}

	if Policy == PriceSnapshot {
		return booking.TotalAmount, nil
	}

	var room models.Room
	if err := db.First(&room, booking.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, fmt.Errorf("load room: %w", err)
	}

	nights := Nights(booking.StartDate, booking.EndDate)
	if nights <= 0 {
		nights = 1
	}
	return room.Price * float64(nights), nil
}

// RecordPayment appends a PAID payment row and flips the booking's payment
// status in one transaction. An already-paid booking is rejected before any
// write.
func RecordPayment(db *gorm.DB, userID, bookingID uint, amount float64, method models.PaymentMethod, methodRef string) (*models.Payment, error) {
	if method == models.MethodGooglePay && methodRef == "" {
		return nil, ErrMissingReference
	}

	var payment models.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("load booking: %w", err)
		}

		if booking.PaymentStatus == models.PaymentPaid {
			return ErrAlreadyPaid
		}

		payment = models.Payment{
			UserID:    userID,
			BookingID: bookingID,
			Amount:    amount,
			Status:    models.PaymentPaid,
			Method:    method,
			Receipt:   uuid.NewString(),
			CreatedAt: time.Now(),
		}
		if methodRef != "" {
			payment.MethodReference = &methodRef
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		if err := tx.Model(&booking).
			Update("payment_status", models.PaymentPaid).Error; err != nil {
			return fmt.Errorf("mark booking paid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
