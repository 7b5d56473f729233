package workflow

import (
	"testing"

	"hotel-booking-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPayment(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101", 100)
	user := seedCustomer(t, db, "alice")
	booking, err := CreateBooking(db, user.ID, room.ID, date(t, "2024-01-10"), date(t, "2024-01-13"))
	require.NoError(t, err)

	payment, err := RecordPayment(db, user.ID, booking.ID, 300, models.MethodCash, "")
	require.NoError(t, err)

	assert.Equal(t, 300.0, payment.Amount)
	assert.Equal(t, models.PaymentPaid, payment.Status)
	assert.Equal(t, models.MethodCash, payment.Method)
	assert.Nil(t, payment.MethodReference)
	assert.NotEmpty(t, payment.Receipt)

	var updated models.Booking
	require.NoError(t, db.First(&updated, booking.ID).Error)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
}

func TestRecordPayment_AlreadyPaid(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101", 100)
	user := seedCustomer(t, db, "alice")
	booking, err := CreateBooking(db, user.ID, room.ID, date(t, "2024-01-10"), date(t, "2024-01-13"))
	require.NoError(t, err)

	_, err = RecordPayment(db, user.ID, booking.ID, 300, models.MethodCash, "")
	require.NoError(t, err)

	_, err = RecordPayment(db, user.ID, booking.ID, 300, models.MethodCash, "")
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	// Rejected before any write: still exactly one payment row
	var count int64
	db.Model(&models.Payment{}).Where("booking_id = ?", booking.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRecordPayment_GooglePay(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101", 100)
	user := seedCustomer(t, db, "alice")
	booking, err := CreateBooking(db, user.ID, room.ID, date(t, "2024-01-10"), date(t, "2024-01-13"))
	require.NoError(t, err)

	_, err = RecordPayment(db, user.ID, booking.ID, 300, models.MethodGooglePay, "")
	assert.ErrorIs(t, err, ErrMissingReference)

	// Reference rejected before any write
	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.EqualValues(t, 0, count)

	payment, err := RecordPayment(db, user.ID, booking.ID, 300, models.MethodGooglePay, "9988776655")
	require.NoError(t, err)
	require.NotNil(t, payment.MethodReference)
	assert.Equal(t, "9988776655", *payment.MethodReference)
}

func TestRecordPayment_BookingNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedCustomer(t, db, "alice")

	_, err := RecordPayment(db, user.ID, 9999, 300, models.MethodCash, "")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestOutstandingAmount_Policies(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101", 100)
	user := seedCustomer(t, db, "alice")
	booking, err := CreateBooking(db, user.ID, room.ID, date(t, "2024-01-10"), date(t, "2024-01-13"))
	require.NoError(t, err)

	// Price changes between booking and payment
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).Update("price", 150).Error)

	prev := Policy
	t.Cleanup(func() { Policy = prev })

	// Default policy recomputes from the current price: the later price wins
	Policy = PriceRecompute
	amount, err := OutstandingAmount(db, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 450.0, amount)

	// Snapshot policy keeps the total from booking time
	Policy = PriceSnapshot
	amount, err = OutstandingAmount(db, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, amount)
}

func TestOutstandingAmount_BookingNotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := OutstandingAmount(db, 9999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
