package controllers

import (
	"net/http"

	"event-backend/services"

	"github.com/gin-gonic/gin"
)

type BusyDateController struct {
	BusyDateSvc *services.BusyDateService
}

func NewBusyDateController(svc *services.BusyDateService) *BusyDateController {
	return &BusyDateController{BusyDateSvc: svc}
}

// GetBusyDates lists busy dates ascending with the confirmed bookings
// holding each date.
func (ctrl *BusyDateController) GetBusyDates(c *gin.Context) {
	views, err := ctrl.BusyDateSvc.Overview()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
