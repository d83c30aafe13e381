package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomRequest struct {
	RoomNumber   int     `json:"room_number"`
	RoomTypeCode *string `json:"room_type_code"`
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms lists rooms with their types, filtered by ?room_number= and
// ?room_type=.
func (rc *RoomController) GetRooms(c *gin.Context) {
	criteria := services.RoomSearch{RoomTypeCode: c.Query("room_type")}
	if raw := c.Query("room_number"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONFieldError(c, http.StatusBadRequest, "room_number", "Room number must be a number.")
			return
		}
		criteria.RoomNumber = n
	}

	rooms, err := rc.RoomSvc.List(criteria)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoomByNumber(c *gin.Context) {
	number, ok := pathRoomNumber(c)
	if !ok {
		return
	}
	room, err := rc.RoomSvc.GetByNumber(number)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	room := models.Room{RoomNumber: req.RoomNumber, RoomTypeCode: req.RoomTypeCode}
	if err := rc.RoomSvc.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	number, ok := pathRoomNumber(c)
	if !ok {
		return
	}
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	room := models.Room{RoomNumber: number, RoomTypeCode: req.RoomTypeCode}
	if err := rc.RoomSvc.Update(number, &room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	number, ok := pathRoomNumber(c)
	if !ok {
		return
	}
	if err := rc.RoomSvc.Delete(number); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": number})
}

func pathRoomNumber(c *gin.Context) (int, bool) {
	raw := c.Param("number")
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid_room_number", "The room number in the URL must be a positive number.")
		return 0, false
	}
	return number, true
}
