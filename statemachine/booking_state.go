package statemachine

import (
	"errors"

	"hotel-booking-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor string // "customer", "owner"
}

// validTransitions is the authoritative state machine definition.
// CANCELLED is terminal.
var validTransitions = []Transition{
	{From: models.StatusBooked, To: models.StatusCancelled, Actor: "customer"},
	{From: models.StatusBooked, To: models.StatusCancelled, Actor: "owner"},
}

// PaymentTransition mirrors Transition for the payment status of a booking
type PaymentTransition struct {
	From models.PaymentStatus
	To   models.PaymentStatus
}

// Cancellation always wins: a PAID booking that is cancelled ends up
// CANCELLED, and nothing ever moves PAID back to PENDING.
var validPaymentTransitions = []PaymentTransition{
	{From: models.PaymentPending, To: models.PaymentPaid},
	{From: models.PaymentPending, To: models.PaymentCancelled},
	{From: models.PaymentPaid, To: models.PaymentCancelled},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor string
}

// Build lookup maps for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

var paymentTransitionMap = func() map[PaymentTransition]bool {
	m := make(map[PaymentTransition]bool)
	for _, t := range validPaymentTransitions {
		m[t] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.BookingStatus) []models.BookingStatus {
	var nexts []models.BookingStatus
	seen := map[models.BookingStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move a booking from one state to another
func CanTransition(from, to models.BookingStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

// CanTransitionPayment checks a payment status change
func CanTransitionPayment(from, to models.PaymentStatus) error {
	if paymentTransitionMap[PaymentTransition{From: from, To: to}] {
		return nil
	}
	return errors.New("invalid payment transition: " + string(from) + " -> " + string(to))
}

func describeValidFrom(status models.BookingStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}

// GetAllPaymentTransitions returns the payment status machine for documentation
func GetAllPaymentTransitions() []PaymentTransition {
	return validPaymentTransitions
}
