package controllers

import (
	"errors"
	"log"
	"net/http"

	"event-backend/services"
	"event-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinels onto HTTP statuses. Anything
// unrecognised is a store failure: logged in full, reported generically.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		utils.JSONMessage(c, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, services.ErrInvalidDate):
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid preferred date, expected YYYY-MM-DD")
	case errors.Is(err, services.ErrPackageNotFound):
		utils.JSONMessage(c, http.StatusBadRequest, "Unknown event package")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid status provided")
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONMessage(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, services.ErrConfirmationRequired):
		utils.JSONMessage(c, http.StatusBadRequest, "Confirmation required to clear all bookings.")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONMessage(c, http.StatusUnauthorized, "Invalid credentials or not an admin")
	default:
		log.Printf("❌ store error: %v", err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Database error")
	}
}
