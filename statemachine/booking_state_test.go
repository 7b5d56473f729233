package statemachine

import (
	"testing"

	"hotel-booking-api/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(models.StatusBooked, models.StatusCancelled, "customer"))
	assert.NoError(t, CanTransition(models.StatusBooked, models.StatusCancelled, "owner"))

	// CANCELLED is terminal
	assert.Error(t, CanTransition(models.StatusCancelled, models.StatusBooked, "customer"))
	assert.Error(t, CanTransition(models.StatusCancelled, models.StatusCancelled, "owner"))

	// Unknown actor
	assert.Error(t, CanTransition(models.StatusBooked, models.StatusCancelled, "driver"))
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.Equal(t, []models.BookingStatus{models.StatusCancelled}, ValidTransitionsFrom(models.StatusBooked))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}

func TestCanTransitionPayment(t *testing.T) {
	assert.NoError(t, CanTransitionPayment(models.PaymentPending, models.PaymentPaid))
	assert.NoError(t, CanTransitionPayment(models.PaymentPending, models.PaymentCancelled))

	// Cancellation always wins over PAID
	assert.NoError(t, CanTransitionPayment(models.PaymentPaid, models.PaymentCancelled))

	// No transition ever returns to PENDING
	assert.Error(t, CanTransitionPayment(models.PaymentPaid, models.PaymentPending))
	assert.Error(t, CanTransitionPayment(models.PaymentCancelled, models.PaymentPending))
	assert.Error(t, CanTransitionPayment(models.PaymentCancelled, models.PaymentPaid))
}
