package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"shivashray-backend/services"
	"shivashray-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc    *services.RoomService
	BookingSvc *services.BookingService
}

func NewRoomController(roomSvc *services.RoomService, bookingSvc *services.BookingService) *RoomController {
	return &RoomController{RoomSvc: roomSvc, BookingSvc: bookingSvc}
}

// ----------------------------------------------------
// GET /rooms?room_type_id=&available=&check_in=&check_out=
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	var filter services.RoomFilter

	if raw := c.Query("room_type_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONDetail(c, http.StatusBadRequest, "Invalid room_type_id")
			return
		}
		rtID := uint(id)
		filter.RoomTypeID = &rtID
	}

	if raw := c.Query("available"); raw != "" {
		avail, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONDetail(c, http.StatusBadRequest, "Invalid available flag")
			return
		}
		filter.Available = &avail

		checkIn, errIn := utils.ParseStayDate(c.Query("check_in"))
		checkOut, errOut := utils.ParseStayDate(c.Query("check_out"))
		if errIn == nil && errOut == nil {
			filter.CheckIn = &checkIn
			filter.CheckOut = &checkOut
		}
	}

	rooms, err := ctrl.RoomSvc.ListRooms(filter)
	if err != nil {
		log.Printf("GetRooms error: %v", err)
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to retrieve rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// GET /rooms/types
// ----------------------------------------------------

func (ctrl *RoomController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.RoomSvc.ListRoomTypes()
	if err != nil {
		log.Printf("GetRoomTypes error: %v", err)
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to retrieve room types")
		return
	}
	c.JSON(http.StatusOK, types)
}

// ----------------------------------------------------
// GET /rooms/:id
// ----------------------------------------------------

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctrl.RoomSvc.GetRoom(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONDetail(c, http.StatusNotFound, services.ErrRoomNotFound.Error())
			return
		}
		log.Printf("GetRoom error for %d: %v", id, err)
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to retrieve room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// GET /rooms/:id/availability?check_in=&check_out=
// ----------------------------------------------------

func (ctrl *RoomController) CheckRoomAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	checkIn, err := utils.ParseStayDate(c.Query("check_in"))
	if err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid check_in format")
		return
	}
	checkOut, err := utils.ParseStayDate(c.Query("check_out"))
	if err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid check_out format")
		return
	}

	available, err := ctrl.BookingSvc.CheckAvailability(id, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStay):
			utils.JSONDetail(c, http.StatusBadRequest, services.ErrInvalidStay.Error())
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONDetail(c, http.StatusNotFound, services.ErrRoomNotFound.Error())
		default:
			log.Printf("CheckRoomAvailability error for %d: %v", id, err)
			utils.JSONDetail(c, http.StatusInternalServerError, "Failed to check availability")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room_id":   id,
		"check_in":  checkIn,
		"check_out": checkOut,
		"available": available,
	})
}
