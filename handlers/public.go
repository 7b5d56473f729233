package handlers

import (
	"net/http"
	"time"

	"hotel-booking-api/config"
	"hotel-booking-api/models"
	"hotel-booking-api/statemachine"
	"hotel-booking-api/workflow"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// ListRooms returns all available rooms (public)
func ListRooms(c *gin.Context) {
	rooms, err := workflow.ListAvailableRooms(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rooms"})
		return
	}

	if roomType := c.Query("type"); roomType != "" {
		filtered := rooms[:0]
		for _, r := range rooms {
			if r.Type == roomType {
				filtered = append(filtered, r)
			}
		}
		rooms = filtered
	}

	c.JSON(http.StatusOK, gin.H{"count": len(rooms), "rooms": rooms})
}

// GetRoom returns a single room with its reviews and average rating
func GetRoom(c *gin.Context) {
	var room models.Room
	if err := config.DB.First(&room, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	var reviews []models.Review
	config.DB.Preload("User").Where("room_id = ?", room.ID).
		Order("created_at desc").Find(&reviews)

	var avg float64
	for _, r := range reviews {
		avg += float64(r.Rating)
	}
	if len(reviews) > 0 {
		avg /= float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"room":           room,
		"reviews":        reviews,
		"review_count":   len(reviews),
		"average_rating": avg,
	})
}

// GetLifecycleInfo returns the booking and payment state machines
func GetLifecycleInfo(c *gin.Context) {
	var bookingInfo []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		bookingInfo = append(bookingInfo, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	var paymentInfo []gin.H
	for _, t := range statemachine.GetAllPaymentTransitions() {
		paymentInfo = append(paymentInfo, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"booking_state_machine": bookingInfo,
		"payment_state_machine": paymentInfo,
		"terminal_states":       []string{string(models.StatusCancelled)},
		"description":           "Hotel Booking Lifecycle State Machine",
	})
}
