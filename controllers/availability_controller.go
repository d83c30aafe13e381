package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// GetAvailableRooms answers "which rooms are free?". Without parameters it
// checks tonight for one night across all types; ?start_date=,
// ?length_of_stay= and ?room_type= narrow the search.
func (ac *AvailabilityController) GetAvailableRooms(c *gin.Context) {
	criteria := services.NewAvailabilitySearch(time.Now().UTC())

	if raw := c.Query("start_date"); raw != "" {
		start, err := models.ParseStayDate(raw)
		if err != nil {
			utils.JSONFieldError(c, http.StatusBadRequest, "start_date", "Enter a valid date.")
			return
		}
		criteria.StartDate = start
	}
	if raw := c.Query("length_of_stay"); raw != "" {
		nights, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONFieldError(c, http.StatusBadRequest, "length_of_stay", "Length of stay must be a number.")
			return
		}
		criteria.LengthOfStay = nights
	}
	criteria.RoomTypeCode = strings.ToUpper(strings.TrimSpace(c.Query("room_type")))

	rooms, err := ac.AvailabilitySvc.FindAvailableRooms(criteria)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"start_date":     criteria.StartDate.Format(models.StayDateLayout),
		"end_date":       models.ComputeEndDate(criteria.StartDate, criteria.LengthOfStay).Format(models.StayDateLayout),
		"length_of_stay": criteria.LengthOfStay,
		"rooms":          rooms,
	})
}
