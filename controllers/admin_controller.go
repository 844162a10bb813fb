package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"shivashray-backend/config"
	"shivashray-backend/models"
	"shivashray-backend/services"
	"shivashray-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	BookingSvc *services.BookingService
}

func NewAdminController(svc *services.BookingService) *AdminController {
	return &AdminController{BookingSvc: svc}
}

// ----------------------------------------------------
// GET /admin/bookings
// ----------------------------------------------------

func (ctrl *AdminController) GetAllBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListAll()
	if err != nil {
		log.Printf("GetAllBookings error: %v", err)
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ----------------------------------------------------
// PATCH /admin/bookings/:id
// ----------------------------------------------------

func (ctrl *AdminController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload UpdateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatuses(id, services.StatusUpdate{
		Status:          payload.Status,
		PaymentStatus:   payload.PaymentStatus,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONDetail(c, http.StatusNotFound, services.ErrBookingNotFound.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			utils.JSONDetail(c, http.StatusConflict, err.Error())
		default:
			log.Printf("Admin UpdateBooking error for %d: %v", id, err)
			utils.JSONDetail(c, http.StatusInternalServerError, "Failed to update booking")
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ----------------------------------------------------
// POST /admin/rooms
// ----------------------------------------------------

func (ctrl *AdminController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		utils.JSONDetail(c, http.StatusBadRequest, "Room number is required")
		return
	}

	var rt models.RoomType
	if err := config.DB.First(&rt, room.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONDetail(c, http.StatusNotFound, "Room type not found")
			return
		}
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to verify room type")
		return
	}

	var existing models.Room
	if err := config.DB.Where("room_number = ?", room.RoomNumber).First(&existing).Error; err == nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Room number already exists")
		return
	}

	room.IsActive = true
	if err := config.DB.Create(&room).Error; err != nil {
		log.Printf("CreateRoom error: %v", err)
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to create room")
		return
	}

	config.DB.Preload("RoomType").First(&room, room.ID)
	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// POST /admin/room-types
// ----------------------------------------------------

func (ctrl *AdminController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	rt.Name = strings.TrimSpace(rt.Name)
	if rt.Name == "" || rt.BasePrice <= 0 {
		utils.JSONDetail(c, http.StatusBadRequest, "Name and a positive base price are required")
		return
	}

	if err := config.DB.Create(&rt).Error; err != nil {
		log.Printf("CreateRoomType error: %v", err)
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to create room type")
		return
	}
	c.JSON(http.StatusCreated, rt)
}
