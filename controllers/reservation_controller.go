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

// ReservationRequest is the booking payload. Dates travel as "2006-01-02"
// strings; end_date is not accepted, the server derives it.
type ReservationRequest struct {
	GuestID        *uint    `json:"guest_id"`
	RoomNumber     *int     `json:"room_number"`
	StartOfStay    string   `json:"start_of_stay" binding:"required"`
	LengthOfStay   int      `json:"length_of_stay"`
	NumberOfGuests int      `json:"number_of_guests"`
	Price          *float64 `json:"price"`
	AmountPaid     float64  `json:"amount_paid"`
	StatusCode     string   `json:"status_code"`
	Notes          string   `json:"notes"`
}

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// GetReservations lists stays in the requested window; with no window
// parameters it covers today through fourteen days out. Filters:
// ?start_date= ?end_date= ?last_name= ?room_number= ?status=.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	criteria := services.NewReservationSearch(time.Now().UTC())

	if raw := c.Query("start_date"); raw != "" {
		from, err := models.ParseStayDate(raw)
		if err != nil {
			utils.JSONFieldError(c, http.StatusBadRequest, "start_date", "Enter a valid date.")
			return
		}
		criteria.From = from
	}
	if raw := c.Query("end_date"); raw != "" {
		to, err := models.ParseStayDate(raw)
		if err != nil {
			utils.JSONFieldError(c, http.StatusBadRequest, "end_date", "Enter a valid date.")
			return
		}
		criteria.To = to
	}
	criteria.GuestLastName = c.Query("last_name")
	if raw := c.Query("room_number"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONFieldError(c, http.StatusBadRequest, "room_number", "Room number must be a number.")
			return
		}
		criteria.RoomNumber = n
	}
	criteria.StatusCode = strings.ToUpper(c.Query("status"))

	reservations, err := rc.ReservationSvc.List(criteria)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservationListJSON(reservations))
}

// GetReservationByReference resolves the booking code quoted by a guest,
// e.g. RES-5A3F9C1B.
func (rc *ReservationController) GetReservationByReference(c *gin.Context) {
	res, err := rc.ReservationSvc.GetByReference(c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservationJSON(res))
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservationJSON(res))
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	input, ok := reservationInputFromRequest(c, req)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservationJSON(res))
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	input, ok := reservationInputFromRequest(c, req)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservationJSON(res))
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.ReservationSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (rc *ReservationController) CheckIn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.CheckIn(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservationJSON(res))
}

func (rc *ReservationController) CheckOut(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.CheckOut(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservationJSON(res))
}

// GetReservationEvents returns the audit trail, oldest entry first.
func (rc *ReservationController) GetReservationEvents(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	evts, err := rc.ReservationSvc.Events(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, evts)
}

func reservationInputFromRequest(c *gin.Context, req ReservationRequest) (services.ReservationInput, bool) {
	start, err := models.ParseStayDate(req.StartOfStay)
	if err != nil {
		utils.JSONFieldError(c, http.StatusBadRequest, "start_of_stay", "Enter a valid date.")
		return services.ReservationInput{}, false
	}
	return services.ReservationInput{
		GuestID:        req.GuestID,
		RoomNumber:     req.RoomNumber,
		StartOfStay:    start,
		LengthOfStay:   req.LengthOfStay,
		NumberOfGuests: req.NumberOfGuests,
		Price:          req.Price,
		AmountPaid:     req.AmountPaid,
		StatusCode:     strings.ToUpper(strings.TrimSpace(req.StatusCode)),
		Notes:          req.Notes,
	}, true
}

// reservationJSON shapes one reservation for the API: stay dates as plain
// dates, status with its display name, nested guest and room when loaded.
func reservationJSON(r *models.Reservation) gin.H {
	out := gin.H{
		"reservation_id":   r.ReservationID,
		"reference_code":   r.ReferenceCode,
		"guest_id":         r.GuestID,
		"room_number":      r.RoomNumber,
		"reserved_at":      r.ReservedAt.UTC().Format(time.RFC3339),
		"price":            r.Price,
		"amount_paid":      r.AmountPaid,
		"number_of_guests": r.NumberOfGuests,
		"start_of_stay":    r.StartOfStay.Format(models.StayDateLayout),
		"end_date":         r.EndDate.Format(models.StayDateLayout),
		"length_of_stay":   r.LengthOfStay,
		"status_code":      r.StatusCode,
		"status_name":      models.StatusName(r.StatusCode),
		"notes":            r.Notes,
	}
	if r.Guest != nil {
		out["guest"] = gin.H{
			"guest_id":     r.Guest.GuestID,
			"display_name": r.Guest.DisplayName(),
			"phone_number": r.Guest.PhoneNumber,
			"email":        r.Guest.Email,
		}
	}
	if r.Room != nil {
		room := gin.H{"room_number": r.Room.RoomNumber}
		if r.Room.RoomType != nil {
			room["room_type_code"] = r.Room.RoomType.RoomTypeCode
			room["room_type_name"] = r.Room.RoomType.RoomTypeName
			room["price_per_night"] = r.Room.RoomType.Price
		}
		out["room"] = room
	}
	return out
}

func reservationListJSON(reservations []models.Reservation) []gin.H {
	out := make([]gin.H, 0, len(reservations))
	for i := range reservations {
		out = append(out, reservationJSON(&reservations[i]))
	}
	return out
}
