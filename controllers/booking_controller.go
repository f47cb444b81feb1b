package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"event-backend/middleware"
	"event-backend/models"
	"event-backend/services"
	"event-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateStatusPayload struct {
	Status string `json:"status"`
}

type ClearAllPayload struct {
	ConfirmClear bool `json:"confirm_clear"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseBookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid booking id")
		return 0, false
	}
	return uint(id), true
}

// CreateBooking is the public booking request endpoint.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var input services.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	id, err := ctrl.BookingSvc.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Booking request submitted successfully!",
		"booking_id": id,
	})
}

// GetBookings lists bookings for the admin dashboard, optionally filtered
// by ?status=<Status|All>.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListForAdmin(c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	view, err := ctrl.BookingSvc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	var payload UpdateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Status == "" {
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request: status field is required.")
		return
	}

	if err := ctrl.BookingSvc.UpdateStatus(id, models.BookingStatus(payload.Status)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, fmt.Sprintf("Booking %d status updated to %s.", id, payload.Status))
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	if err := ctrl.BookingSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Booking deleted successfully")
}

func (ctrl *BookingController) GetDashboardStats(c *gin.Context) {
	stats, err := ctrl.BookingSvc.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ClearAllBookings wipes bookings and busy dates; the body must carry
// confirm_clear=true.
func (ctrl *BookingController) ClearAllBookings(c *gin.Context) {
	var payload ClearAllPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONMessage(c, http.StatusBadRequest, "Confirmation required to clear all bookings.")
		return
	}

	if err := ctrl.BookingSvc.ClearAll(payload.ConfirmClear); err != nil {
		respondServiceError(c, err)
		return
	}
	if p, ok := middleware.GetPrincipal(c); ok {
		log.Printf("⚠️  admin %q cleared all bookings and busy dates", p.Username)
	}
	utils.JSONMessage(c, http.StatusOK, "All bookings and busy dates cleared successfully")
}
