package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// GetGuests lists guests, filtered by ?last_name= and ?postcode=.
func (gc *GuestController) GetGuests(c *gin.Context) {
	criteria := services.GuestSearch{
		LastName: c.Query("last_name"),
		Postcode: c.Query("postcode"),
	}
	guests, err := gc.GuestSvc.List(criteria)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (gc *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	guest, err := gc.GuestSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (gc *GuestController) CreateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		bindError(c, err)
		return
	}
	guest.GuestID = 0
	if err := gc.GuestSvc.Create(&guest); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

func (gc *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		bindError(c, err)
		return
	}
	if err := gc.GuestSvc.Update(id, &guest); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (gc *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := gc.GuestSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GetGuestReservations returns the guest's stay history.
func (gc *GuestController) GetGuestReservations(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	reservations, err := gc.GuestSvc.Reservations(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservationListJSON(reservations))
}

// pathID parses the numeric :id path segment, answering 400 itself when the
// segment is not a positive number.
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "The id in the URL must be a positive number.")
		return 0, false
	}
	return uint(id), true
}
