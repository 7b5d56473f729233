package routes

import (
	"hotel-booking-api/handlers"
	"hotel-booking-api/middleware"
	"hotel-booking-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Room browsing (no auth needed)
		public.GET("/rooms", handlers.ListRooms)
		public.GET("/rooms/:id", handlers.GetRoom)

		// State machine info (great for docs/Postman)
		public.GET("/lifecycle", handlers.GetLifecycleInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/bookings", handlers.CreateBooking)
		customer.GET("/bookings", handlers.GetMyBookings)
		customer.GET("/bookings/:id", handlers.GetBookingDetail)
		customer.PUT("/bookings/:id/cancel", handlers.CancelBooking)
		customer.GET("/bookings/:id/outstanding", handlers.GetOutstanding)
		customer.POST("/bookings/:id/payment", handlers.PayBooking)
		customer.POST("/reviews", handlers.SubmitReview)
	}

	// ── Owner routes ───────────────────────────────────────────────
	owner := r.Group("/api/owner")
	owner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleOwner))
	{
		// Room management
		owner.POST("/rooms", handlers.AddRoom)
		owner.PUT("/rooms/:id", handlers.UpdateRoom)
		owner.GET("/rooms", handlers.OwnerListRooms)

		// Booking management
		owner.GET("/bookings", handlers.OwnerListBookings)
		owner.GET("/bookings/:id", handlers.OwnerGetBooking)
		owner.PUT("/bookings/:id/cancel", handlers.OwnerCancelBooking)
		owner.PUT("/bookings/:id/paid", handlers.MarkBookingPaid)
		owner.POST("/spot-bookings", handlers.SpotBook)

		// Dashboard listings
		owner.GET("/customers", handlers.ListCustomers)
		owner.GET("/payments", handlers.ListPayments)
		owner.GET("/reviews", handlers.ListReviews)
	}
}
