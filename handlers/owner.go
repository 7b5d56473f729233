package handlers

import (
	"errors"
	"net/http"

	"hotel-booking-api/config"
	"hotel-booking-api/models"
	"hotel-booking-api/workflow"

	"github.com/gin-gonic/gin"
)

// ── Room Management ──────────────────────────────────────────────────────────

type AddRoomRequest struct {
	RoomNumber string  `json:"room_number" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
}

// AddRoom creates a new room, available by default
func AddRoom(c *gin.Context) {
	var req AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Room
	if result := config.DB.Where("room_number = ?", req.RoomNumber).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Room number already exists"})
		return
	}

	room := models.Room{
		RoomNumber: req.RoomNumber,
		Type:       req.Type,
		Price:      req.Price,
		Available:  true,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add room"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Room added", "room": room})
}

type UpdateRoomRequest struct {
	RoomNumber string  `json:"room_number" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Available  *bool   `json:"available" binding:"required"`
}

// UpdateRoom edits room details, including the explicit availability flag
func UpdateRoom(c *gin.Context) {
	var room models.Room
	if err := config.DB.First(&room, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"room_number": req.RoomNumber,
		"type":        req.Type,
		"price":       req.Price,
		"available":   *req.Available,
	}
	if err := config.DB.Model(&room).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room updated", "room": room})
}

// OwnerListRooms returns every room with an availability summary
func OwnerListRooms(c *gin.Context) {
	var rooms []models.Room
	config.DB.Order("room_number").Find(&rooms)

	available := 0
	for _, r := range rooms {
		if r.Available {
			available++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(rooms),
		"available": available,
		"occupied":  len(rooms) - available,
		"rooms":     rooms,
	})
}

// ── Bookings ─────────────────────────────────────────────────────────────────

// OwnerListBookings returns all bookings, filterable by status
func OwnerListBookings(c *gin.Context) {
	var bookings []models.Booking
	query := config.DB.Preload("User").Preload("Room")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	query.Order("created_at desc").Find(&bookings)

	// Group counts by status — dashboard summary
	summary := map[string]int{}
	for _, b := range bookings {
		summary[string(b.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"booking_summary": summary,
		"count":           len(bookings),
		"bookings":        bookings,
	})
}

// OwnerGetBooking returns one booking with user and room detail
func OwnerGetBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.Preload("User").Preload("Room").First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking": booking,
		"nights":  workflow.Nights(booking.StartDate, booking.EndDate),
	})
}

// OwnerCancelBooking cancels any booking on the customer's behalf
func OwnerCancelBooking(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	if err := workflow.CancelBooking(config.DB, booking.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled and room made available", "booking_id": booking.ID})
}

type MarkPaidRequest struct {
	Amount          float64              `json:"amount"` // 0 = use the outstanding amount
	Method          models.PaymentMethod `json:"payment_method"`
	MethodReference string               `json:"method_reference"`
}

// MarkBookingPaid records a payment against any booking (front-desk flow)
func MarkBookingPaid(c *gin.Context) {
	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Method == "" {
		req.Method = models.MethodCash
	}
	if req.Method != models.MethodCash && req.Method != models.MethodGooglePay {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_method must be CASH or GOOGLEPAY"})
		return
	}

	amount := req.Amount
	if amount == 0 {
		var err error
		amount, err = workflow.OutstandingAmount(config.DB, booking.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute amount"})
			return
		}
	}

	payment, err := workflow.RecordPayment(config.DB, booking.UserID, booking.ID, amount, req.Method, req.MethodReference)
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

	c.JSON(http.StatusCreated, gin.H{"message": "Booking marked PAID", "payment": payment})
}

// ── Spot Booking ─────────────────────────────────────────────────────────────

type SpotBookingRequest struct {
	CustomerID  uint `json:"customer_id"`
	NewCustomer *struct {
		Name     string `json:"name" binding:"required"`
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
		Email    string `json:"email" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
	} `json:"new_customer"`
	RoomID          uint                 `json:"room_id" binding:"required"`
	StartDate       string               `json:"start_date" binding:"required"`
	EndDate         string               `json:"end_date" binding:"required"`
	MarkPaid        bool                 `json:"mark_paid"`
	Method          models.PaymentMethod `json:"payment_method"`
	MethodReference string               `json:"method_reference"`
}

// SpotBook creates an owner-initiated booking, optionally creating the
// customer account inline and settling the payment, all in one unit
func SpotBook(c *gin.Context) {
	var req SpotBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CustomerID == 0 && req.NewCustomer == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id or new_customer required"})
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

	params := workflow.SpotBookingParams{
		CustomerID: req.CustomerID,
		RoomID:     req.RoomID,
		StartDate:  start,
		EndDate:    end,
		MarkPaid:   req.MarkPaid,
		Method:     req.Method,
		MethodRef:  req.MethodReference,
	}
	if params.MarkPaid && params.Method == "" {
		params.Method = models.MethodCash
	}
	if req.NewCustomer != nil {
		params.NewCustomer = &workflow.SpotCustomer{
			Name:     req.NewCustomer.Name,
			Username: req.NewCustomer.Username,
			Password: req.NewCustomer.Password,
			Email:    req.NewCustomer.Email,
			Phone:    req.NewCustomer.Phone,
		}
	}

	booking, err := workflow.SpotBook(config.DB, params)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, workflow.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		case errors.Is(err, workflow.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "End date must be after start date"})
		case errors.Is(err, workflow.ErrDuplicateUsername):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		case errors.Is(err, workflow.ErrInvalidEmail), errors.Is(err, workflow.ErrInvalidPhone),
			errors.Is(err, workflow.ErrMissingReference):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Spot booking failed"})
		}
		return
	}

	config.DB.Preload("User").Preload("Room").First(booking, booking.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Spot booking saved", "booking": booking})
}

// ── Listings ─────────────────────────────────────────────────────────────────

// ListCustomers returns all customer accounts, spot-created flagged
func ListCustomers(c *gin.Context) {
	var customers []models.User
	config.DB.Where("role = ?", models.RoleCustomer).Order("username").Find(&customers)
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}

// ListPayments returns the payment ledger, newest first
func ListPayments(c *gin.Context) {
	var payments []models.Payment
	config.DB.Preload("User").Order("created_at desc").Find(&payments)

	var total float64
	for _, p := range payments {
		total += p.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(payments),
		"total_revenue": total,
		"payments":      payments,
	})
}

// ListReviews returns all reviews with user and room detail
func ListReviews(c *gin.Context) {
	var reviews []models.Review
	config.DB.Preload("User").Preload("Room").Order("created_at desc").Find(&reviews)
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}
