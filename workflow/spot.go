package workflow

import (
	"time"

	"hotel-booking-api/models"

	"gorm.io/gorm"
)

// SpotCustomer is the inline account created during an owner spot booking
type SpotCustomer struct {
	Name     string
	Username string
	Password string
	Email    string
	Phone    string
}

// SpotBookingParams describes an owner-initiated booking on behalf of a
// customer. Exactly one of CustomerID or NewCustomer is set. MarkPaid
// settles the booking immediately with the given method.
type SpotBookingParams struct {
	CustomerID  uint
	NewCustomer *SpotCustomer
	RoomID      uint
	StartDate   time.Time
	EndDate     time.Time
	MarkPaid    bool
	Method      models.PaymentMethod
	MethodRef   string
}

// SpotBook runs customer creation, the force booking, and the optional
// payment as a single unit: either the whole spot booking lands or none of
// it does.
func SpotBook(db *gorm.DB, p SpotBookingParams) (*models.Booking, error) {
	var booking *models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		customerID := p.CustomerID
		if p.NewCustomer != nil {
			user, err := CreateSpotCustomer(tx, p.NewCustomer.Name, p.NewCustomer.Username,
				p.NewCustomer.Password, p.NewCustomer.Email, p.NewCustomer.Phone)
			if err != nil {
				return err
			}
			customerID = user.ID
		}

		b, err := CreateBooking(tx, customerID, p.RoomID, p.StartDate, p.EndDate)
		if err != nil {
			return err
		}
		booking = b

		if p.MarkPaid {
			amount, err := OutstandingAmount(tx, b.ID)
			if err != nil {
				return err
			}
			if _, err := RecordPayment(tx, customerID, b.ID, amount, p.Method, p.MethodRef); err != nil {
				return err
			}
			booking.PaymentStatus = models.PaymentPaid
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}
