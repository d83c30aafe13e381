package controllers

import (
	"net/http"
	"strings"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeRequest struct {
	RoomTypeCode   string  `json:"room_type_code"`
	RoomTypeName   string  `json:"room_type_name"`
	Price          float64 `json:"price"`
	Deluxe         bool    `json:"deluxe"`
	Bath           bool    `json:"bath"`
	SeparateShower bool    `json:"separate_shower"`
	MaximumGuests  int     `json:"maximum_guests"`
}

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

func (tc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := tc.RoomTypeSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (tc *RoomTypeController) GetRoomTypeByCode(c *gin.Context) {
	rt, err := tc.RoomTypeSvc.GetByCode(pathTypeCode(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (tc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	rt := roomTypeFromRequest(req)
	if err := tc.RoomTypeSvc.Create(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func (tc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	rt := roomTypeFromRequest(req)
	if err := tc.RoomTypeSvc.Update(pathTypeCode(c), &rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (tc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	code := pathTypeCode(c)
	if err := tc.RoomTypeSvc.Delete(code); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": code})
}

func roomTypeFromRequest(req RoomTypeRequest) models.RoomType {
	return models.RoomType{
		RoomTypeCode:   strings.ToUpper(strings.TrimSpace(req.RoomTypeCode)),
		RoomTypeName:   strings.TrimSpace(req.RoomTypeName),
		Price:          req.Price,
		Deluxe:         req.Deluxe,
		Bath:           req.Bath,
		SeparateShower: req.SeparateShower,
		MaximumGuests:  req.MaximumGuests,
	}
}

func pathTypeCode(c *gin.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.Param("code")))
}
