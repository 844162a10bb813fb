// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"shivashray-backend/models"
	"shivashray-backend/utils"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRoomNotFound      = errors.New("Room not found")
	ErrBookingNotFound   = errors.New("Booking not found")
	ErrRoomUnavailable   = errors.New("Room is not available for the selected dates")
	ErrCheckInPast       = errors.New("Check-in date cannot be in the past")
	ErrOccupancyExceeded = errors.New("Guest count exceeds the room's maximum occupancy")
	ErrNotCancellable    = errors.New("Booking can no longer be cancelled")
)

// StayRequest is one booking attempt as submitted by the booking form.
type StayRequest struct {
	UserID uint
	RoomID uint

	CheckInDate  time.Time
	CheckOutDate time.Time

	NumberOfGuests   int
	NumberOfAdults   *int
	NumberOfChildren *int

	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests string

	// Optional client-generated UUID; replays return the original booking.
	IdempotencyKey string
}

// ResolveGuests reconciles the three guest counters. Adults default to the
// requested guest total (at least 1), children to 0, and the guest total is
// re-derived as adults+children so the three can never disagree.
func ResolveGuests(guests int, adults, children *int) (total, a, c int) {
	if guests < 1 {
		guests = 1
	}
	a = guests
	if adults != nil && *adults > 0 {
		a = *adults
	}
	if children != nil && *children > 0 {
		c = *children
	}
	return a + c, a, c
}

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// startOfDay returns midnight of t's calendar day in t's own zone, so a
// check-in later today is never rejected as past.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// overlapQuery matches bookings that block the given date range. Only
// confirmed and checked-in bookings hold a room; pending and cancelled ones
// do not.
func (s *BookingService) overlapQuery(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) *gorm.DB {
	return tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{models.BookingConfirmed, models.BookingCheckedIn}).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
}

// CheckAvailability reports whether the room is free for the whole range.
func (s *BookingService) CheckAvailability(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, ErrInvalidStay
	}

	var room models.Room
	if err := s.DB.Where("id = ? AND is_active = ?", roomID, true).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRoomNotFound
		}
		return false, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}

	var conflicts int64
	if err := s.overlapQuery(s.DB, roomID, checkIn, checkOut).Count(&conflicts).Error; err != nil {
		return false, fmt.Errorf("failed to check availability: %w", err)
	}
	return conflicts == 0, nil
}

// CreateBooking validates the stay, re-checks availability inside a
// transaction and persists the booking as pending/pending. A replayed
// idempotency key returns the previously created booking.
func (s *BookingService) CreateBooking(req StayRequest) (*models.Booking, error) {
	if existing, ok := s.findByIdempotencyKey(req.IdempotencyKey); ok {
		return existing, nil
	}

	if !req.CheckOutDate.After(req.CheckInDate) {
		return nil, ErrInvalidStay
	}
	if req.CheckInDate.Before(startOfDay(time.Now())) {
		return nil, ErrCheckInPast
	}

	guests, adults, children := ResolveGuests(req.NumberOfGuests, req.NumberOfAdults, req.NumberOfChildren)

	var room models.Room
	if err := s.DB.Preload("RoomType").
		Where("id = ? AND is_active = ?", req.RoomID, true).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("db error checking room %d: %w", req.RoomID, err)
	}

	if room.RoomType.MaxOccupancy > 0 && guests > room.RoomType.MaxOccupancy {
		return nil, ErrOccupancyExceeded
	}

	breakdown, err := QuoteStay(room.RoomType, req.CheckInDate, req.CheckOutDate, adults, children)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		UserID:           req.UserID,
		RoomID:           req.RoomID,
		CheckInDate:      req.CheckInDate,
		CheckOutDate:     req.CheckOutDate,
		Nights:           breakdown.Nights,
		NumberOfGuests:   guests,
		NumberOfAdults:   &adults,
		NumberOfChildren: &children,
		TotalAmount:      breakdown.TotalAmount,
		Status:           models.BookingPending,
		PaymentStatus:    models.PaymentPending,
		GuestName:        strings.TrimSpace(req.GuestName),
		GuestEmail:       strings.TrimSpace(req.GuestEmail),
		GuestPhone:       strings.TrimSpace(req.GuestPhone),
		SpecialRequests:  req.SpecialRequests,
	}
	if key := strings.TrimSpace(req.IdempotencyKey); key != "" {
		booking.IdempotencyKey = &key
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the room row so two submissions for the same room serialize
		// on the availability check.
		var locked models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, req.RoomID).Error; err != nil {
			return err
		}

		var conflicts int64
		if err := s.overlapQuery(tx, req.RoomID, req.CheckInDate, req.CheckOutDate).
			Count(&conflicts).Error; err != nil {
			return fmt.Errorf("failed to check availability: %w", err)
		}
		if conflicts > 0 {
			return ErrRoomUnavailable
		}

		return tx.Create(&booking).Error
	})
	if txErr != nil {
		// Lost race on the idempotency key unique index: the first attempt
		// won, return its booking.
		if isDuplicateKey(txErr) {
			if existing, ok := s.findByIdempotencyKey(req.IdempotencyKey); ok {
				return existing, nil
			}
		}
		if errors.Is(txErr, ErrRoomUnavailable) {
			return nil, ErrRoomUnavailable
		}
		return nil, fmt.Errorf("failed to create booking: %w", txErr)
	}

	if err := s.DB.Preload("Room.RoomType").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking %d: %w", booking.ID, err)
	}

	s.sendConfirmationEmail(&booking)
	return &booking, nil
}

// isDuplicateKey reports whether err is a MySQL unique-index violation
// (error 1062), possibly wrapped.
func isDuplicateKey(err error) bool {
	var myErr *mysqldrv.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

func (s *BookingService) findByIdempotencyKey(key string) (*models.Booking, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}
	var existing models.Booking
	err := s.DB.Preload("Room.RoomType").
		Where("idempotency_key = ?", key).
		First(&existing).Error
	if err != nil {
		return nil, false
	}
	return &existing, true
}

// sendConfirmationEmail is best-effort; a booking never fails because the
// mail did not go out.
func (s *BookingService) sendConfirmationEmail(b *models.Booking) {
	if strings.TrimSpace(b.GuestEmail) == "" {
		return
	}
	if err := utils.SendBookingConfirmationEmail(
		b.GuestEmail,
		b.GuestName,
		b.ID,
		b.Room.RoomNumber,
		b.Room.RoomType.Name,
		b.CheckInDate.Format("2006-01-02"),
		b.CheckOutDate.Format("2006-01-02"),
		b.Nights,
		utils.FormatINR(b.TotalAmount),
	); err != nil {
		log.Printf("warning: failed to send confirmation email for booking %d: %v", b.ID, err)
	}
}

func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.DB.Preload("Room.RoomType").First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking %d: %w", id, err)
	}
	return &b, nil
}

func (s *BookingService) ListForUser(userID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.Preload("Room.RoomType").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) ListAll() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.Preload("Room.RoomType").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// StatusUpdate is the admin PATCH payload: nil fields are left untouched.
type StatusUpdate struct {
	Status          *string
	PaymentStatus   *string
	SpecialRequests *string
}

// UpdateStatuses applies a staff status change, rejecting transitions not
// in the tables.
func (s *BookingService) UpdateStatuses(id uint, upd StatusUpdate) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		changes := map[string]interface{}{}

		if upd.Status != nil {
			to := strings.TrimSpace(*upd.Status)
			if !IsValidBookingStatus(to) || !CanTransitionBooking(booking.Status, to) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, to)
			}
			changes["status"] = to
		}
		if upd.PaymentStatus != nil {
			to := strings.TrimSpace(*upd.PaymentStatus)
			if !IsValidPaymentStatus(to) || !CanTransitionPayment(booking.PaymentStatus, to) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.PaymentStatus, to)
			}
			changes["payment_status"] = to
		}
		if upd.SpecialRequests != nil {
			changes["special_requests"] = *upd.SpecialRequests
		}

		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&booking).Updates(changes).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Room.RoomType").First(&booking, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking %d: %w", id, err)
	}
	return &booking, nil
}

// CancelBooking transitions to cancelled. Bookings are never deleted.
func (s *BookingService) CancelBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking %d: %w", id, err)
	}

	if !CanTransitionBooking(booking.Status, models.BookingCancelled) {
		return nil, ErrNotCancellable
	}
	if booking.Status != models.BookingCancelled {
		if err := s.DB.Model(&booking).Update("status", models.BookingCancelled).Error; err != nil {
			return nil, fmt.Errorf("failed to cancel booking %d: %w", id, err)
		}
	}
	return &booking, nil
}
