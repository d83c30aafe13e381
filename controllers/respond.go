package controllers

import (
	"errors"
	"log"
	"net/http"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates service errors into HTTP responses: bad
// input is 400, missing records 404, booking and state collisions 409.
// Anything unrecognised is logged and reported as a plain 500 without
// leaking internals.
func respondServiceError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONFieldError(c, http.StatusBadRequest, verr.Field, verr.Message)
	case errors.Is(err, services.ErrRoomAlreadyBooked):
		utils.JSONError(c, http.StatusConflict, "room_already_booked", "This room is already booked for the entered dates.")
	case errors.Is(err, services.ErrAlreadyCheckedIn):
		utils.JSONError(c, http.StatusConflict, "already_checked_in", "This reservation is already checked in.")
	case errors.Is(err, services.ErrAlreadyCheckedOut):
		utils.JSONError(c, http.StatusConflict, "already_checked_out", "This reservation is already checked out.")
	case errors.Is(err, services.ErrInvalidStatusChange):
		utils.JSONError(c, http.StatusConflict, "invalid_status_change", "This status change is not allowed.")
	case errors.Is(err, services.ErrDuplicateRoom):
		utils.JSONError(c, http.StatusConflict, "room_already_exists", "A room with this number already exists.")
	case errors.Is(err, services.ErrDuplicateRoomType):
		utils.JSONError(c, http.StatusConflict, "room_type_already_exists", "A room type with this code already exists.")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password.")
	case errors.Is(err, services.ErrGuestNotFound):
		utils.JSONError(c, http.StatusNotFound, "guest_not_found", "Guest not found.")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "room_not_found", "Room not found.")
	case errors.Is(err, services.ErrRoomTypeNotFound):
		utils.JSONError(c, http.StatusNotFound, "room_type_not_found", "Room type not found.")
	case errors.Is(err, services.ErrReservationNotFound):
		utils.JSONError(c, http.StatusNotFound, "reservation_not_found", "Reservation not found.")
	case errors.Is(err, services.ErrStaffNotFound):
		utils.JSONError(c, http.StatusNotFound, "staff_not_found", "Staff account not found.")
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "Something went wrong.")
	}
}

func bindError(c *gin.Context, err error) {
	log.Printf("request binding failed: %v", err)
	utils.JSONError(c, http.StatusBadRequest, "invalid_payload", "Invalid request payload.")
}
