// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"shivashray-backend/middleware"
	"shivashray-backend/models"
	"shivashray-backend/services"
	"shivashray-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	RoomID           uint   `json:"room_id" binding:"required"`
	CheckInDate      string `json:"check_in_date" binding:"required"`
	CheckOutDate     string `json:"check_out_date" binding:"required"`
	NumberOfGuests   int    `json:"number_of_guests" binding:"required,min=1,max=10"`
	NumberOfAdults   *int   `json:"number_of_adults" binding:"omitempty,min=1,max=10"`
	NumberOfChildren *int   `json:"number_of_children" binding:"omitempty,min=0,max=10"`
	GuestName        string `json:"guest_name" binding:"required,min=2"`
	GuestEmail       string `json:"guest_email" binding:"required,email"`
	GuestPhone       string `json:"guest_phone"`
	SpecialRequests  string `json:"special_requests"`
	IdempotencyKey   string `json:"idempotency_key"`
}

type UpdateBookingRequest struct {
	Status          *string `json:"status"`
	PaymentStatus   *string `json:"payment_status"`
	SpecialRequests *string `json:"special_requests"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// ---------------------------
// POST /bookings
// ---------------------------

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		utils.JSONDetail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	checkIn, err := utils.ParseStayDate(payload.CheckInDate)
	if err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid check_in_date format")
		return
	}
	checkOut, err := utils.ParseStayDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONDetail(c, http.StatusBadRequest, "Invalid check_out_date format")
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(services.StayRequest{
		UserID:           claims.UserID,
		RoomID:           payload.RoomID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		NumberOfGuests:   payload.NumberOfGuests,
		NumberOfAdults:   payload.NumberOfAdults,
		NumberOfChildren: payload.NumberOfChildren,
		GuestName:        payload.GuestName,
		GuestEmail:       payload.GuestEmail,
		GuestPhone:       payload.GuestPhone,
		SpecialRequests:  payload.SpecialRequests,
		IdempotencyKey:   payload.IdempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONDetail(c, http.StatusNotFound, services.ErrRoomNotFound.Error())
		case errors.Is(err, services.ErrInvalidStay),
			errors.Is(err, services.ErrCheckInPast),
			errors.Is(err, services.ErrOccupancyExceeded),
			errors.Is(err, services.ErrRoomUnavailable):
			utils.JSONDetail(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("CreateBooking error: %v", err)
			utils.JSONDetail(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ---------------------------
// GET /bookings
// ---------------------------

func (ctrl *BookingController) GetMyBookings(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		utils.JSONDetail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	bookings, err := ctrl.BookingSvc.ListForUser(claims.UserID)
	if err != nil {
		log.Printf("GetMyBookings error: %v", err)
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ---------------------------
// GET /bookings/:id
// ---------------------------

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		utils.JSONDetail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetBooking(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONDetail(c, http.StatusNotFound, services.ErrBookingNotFound.Error())
			return
		}
		log.Printf("GetBooking error for %d: %v", id, err)
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to retrieve booking")
		return
	}

	if booking.UserID != claims.UserID && claims.Role != models.RoleAdmin {
		utils.JSONDetail(c, http.StatusForbidden, "Not authorized to view this booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ---------------------------
// PATCH /bookings/:id
// ---------------------------

// UpdateBooking lets a guest cancel their own booking; everything else on
// this route is admin-only (see admin controller).
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		utils.JSONDetail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload UpdateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	booking, err := ctrl.BookingSvc.GetBooking(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONDetail(c, http.StatusNotFound, services.ErrBookingNotFound.Error())
			return
		}
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to retrieve booking")
		return
	}

	if booking.UserID != claims.UserID && claims.Role != models.RoleAdmin {
		utils.JSONDetail(c, http.StatusForbidden, "Not authorized to update this booking")
		return
	}

	if claims.Role != models.RoleAdmin {
		if payload.Status == nil || *payload.Status != models.BookingCancelled ||
			payload.PaymentStatus != nil {
			utils.JSONDetail(c, http.StatusForbidden, "Not authorized to update this booking")
			return
		}
	}

	updated, err := ctrl.BookingSvc.UpdateStatuses(id, services.StatusUpdate{
		Status:          payload.Status,
		PaymentStatus:   payload.PaymentStatus,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			utils.JSONDetail(c, http.StatusConflict, err.Error())
			return
		}
		log.Printf("UpdateBooking error for %d: %v", id, err)
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ---------------------------
// DELETE /bookings/:id
// ---------------------------

// CancelBooking transitions the booking to cancelled; rows are never
// deleted.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		utils.JSONDetail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetBooking(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONDetail(c, http.StatusNotFound, services.ErrBookingNotFound.Error())
			return
		}
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to retrieve booking")
		return
	}
	if booking.UserID != claims.UserID && claims.Role != models.RoleAdmin {
		utils.JSONDetail(c, http.StatusForbidden, "Not authorized to cancel this booking")
		return
	}

	if _, err := ctrl.BookingSvc.CancelBooking(id); err != nil {
		if errors.Is(err, services.ErrNotCancellable) {
			utils.JSONDetail(c, http.StatusConflict, services.ErrNotCancellable.Error())
			return
		}
		log.Printf("CancelBooking error for %d: %v", id, err)
		utils.JSONDetail(c, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}
	c.Status(http.StatusNoContent)
}
