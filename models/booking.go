package models

import "time"

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusBooked    BookingStatus = "BOOKED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// PaymentStatus tracks whether a booking has been settled
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// PaymentMethod is how a payment was made
type PaymentMethod string

const (
	MethodCash      PaymentMethod = "CASH"
	MethodGooglePay PaymentMethod = "GOOGLEPAY"
)

type Booking struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"user_id" gorm:"not null"`
	User          User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RoomID        uint          `json:"room_id" gorm:"not null"`
	Room          Room          `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	StartDate     time.Time     `json:"start_date" gorm:"not null"`
	EndDate       time.Time     `json:"end_date" gorm:"not null"`
	Status        BookingStatus `json:"status" gorm:"not null;default:'BOOKED'"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'PENDING'"`
	TotalAmount   float64       `json:"total_amount"` // price × nights at booking time
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Payment rows are append-only; the unique index on BookingID keeps the
// ledger at one payment per booking even if two writers race the
// AlreadyPaid check.
type Payment struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	UserID          uint          `json:"user_id" gorm:"not null"`
	User            User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BookingID       uint          `json:"booking_id" gorm:"uniqueIndex;not null"`
	Booking         Booking       `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	Amount          float64       `json:"amount" gorm:"not null"`
	Status          PaymentStatus `json:"status" gorm:"not null;default:'PAID'"`
	Method          PaymentMethod `json:"payment_method" gorm:"not null"`
	MethodReference *string       `json:"method_reference"` // e.g. GooglePay number, nil for cash
	Receipt         string        `json:"receipt"`
	CreatedAt       time.Time     `json:"created_at"`
}
