package handlers

import (
	"errors"
	"net/http"

	"hotel-booking-api/config"
	"hotel-booking-api/middleware"
	"hotel-booking-api/models"
	"hotel-booking-api/statemachine"
	"hotel-booking-api/workflow"

	"github.com/gin-gonic/gin"
)

type CreateBookingRequest struct {
	RoomID    uint   `json:"room_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// CreateBooking books an available room for the logged-in customer
func CreateBooking(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, ok := parseDate(req.StartDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	end, ok := parseDate(req.EndDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}

	booking, err := workflow.BookAvailableRoom(config.DB, customerID, req.RoomID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, workflow.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "End date must be after start date"})
		case errors.Is(err, workflow.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is not available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	config.DB.Preload("Room").First(booking, booking.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Room booked successfully",
		"booking": booking,
		"nights":  workflow.Nights(booking.StartDate, booking.EndDate),
		"total":   booking.TotalAmount,
	})
}

// GetMyBookings returns all bookings for the logged-in customer
func GetMyBookings(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	var bookings []models.Booking
	config.DB.Preload("Room").
		Where("user_id = ?", customerID).
		Order("created_at desc").
		Find(&bookings)
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}

// GetBookingDetail returns a single booking with its room
func GetBookingDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var booking models.Booking
	if err := config.DB.Preload("Room").First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if booking.UserID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This booking does not belong to you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": booking,
		"nights":  workflow.Nights(booking.StartDate, booking.EndDate),
	})
}

// CancelBooking cancels the customer's booking and frees the room
func CancelBooking(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if booking.UserID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This booking does not belong to you"})
		return
	}

	// Re-cancellation is tolerated as a no-op; anything else goes through
	// the state machine.
	if booking.Status != models.StatusCancelled {
		if err := statemachine.CanTransition(booking.Status, models.StatusCancelled, "customer"); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":         "Cannot cancel booking",
				"reason":        err.Error(),
				"current_state": booking.Status,
			})
			return
		}
	}

	if err := workflow.CancelBooking(config.DB, booking.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled and room made available", "booking_id": booking.ID})
}

// GetOutstanding returns the amount due for a pending booking
func GetOutstanding(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if booking.UserID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This booking does not belong to you"})
		return
	}

	amount, err := workflow.OutstandingAmount(config.DB, booking.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute amount"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking_id":     booking.ID,
		"amount":         amount,
		"payment_status": booking.PaymentStatus,
	})
}

type PayBookingRequest struct {
	Method          models.PaymentMethod `json:"payment_method" binding:"required"`
	MethodReference string               `json:"method_reference"`
}

// PayBooking records a payment for the customer's booking
func PayBooking(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if booking.UserID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This booking does not belong to you"})
		return
	}

	var req PayBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Method != models.MethodCash && req.Method != models.MethodGooglePay {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_method must be CASH or GOOGLEPAY"})
		return
	}

	amount, err := workflow.OutstandingAmount(config.DB, booking.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute amount"})
		return
	}

	payment, err := workflow.RecordPayment(config.DB, customerID, booking.ID, amount, req.Method, req.MethodReference)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{"error": "This booking is already paid"})
		case errors.Is(err, workflow.ErrMissingReference):
			c.JSON(http.StatusBadRequest, gin.H{"error": "GooglePay number required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment successful",
		"payment": payment,
	})
}

type SubmitReviewRequest struct {
	RoomID uint   `json:"room_id" binding:"required"`
	Rating string `json:"rating"` // free-form; unparsable or out-of-range input becomes 5
	Text   string `json:"review_text" binding:"required"`
}

// SubmitReview attaches a review to a room
func SubmitReview(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating := workflow.ClampRating(req.Rating)
	review, err := workflow.SubmitReview(config.DB, customerID, req.RoomID, rating, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, workflow.ErrEmptyReview):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Review text must not be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted", "review": review})
}
