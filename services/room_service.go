package services

import (
	"errors"
	"fmt"
	"time"

	"shivashray-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomFilter narrows the catalog listing. The availability filter only
// applies when both dates are present.
type RoomFilter struct {
	RoomTypeID *uint
	Available  *bool
	CheckIn    *time.Time
	CheckOut   *time.Time
}

func (s *RoomService) ListRooms(filter RoomFilter) ([]models.Room, error) {
	query := s.DB.Preload("RoomType").Where("is_active = ?", true)
	if filter.RoomTypeID != nil {
		query = query.Where("room_type_id = ?", *filter.RoomTypeID)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}

	if filter.Available == nil || filter.CheckIn == nil || filter.CheckOut == nil {
		return rooms, nil
	}

	filtered := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		var conflicts int64
		err := s.DB.Model(&models.Booking{}).
			Where("room_id = ?", room.ID).
			Where("status IN ?", []string{models.BookingConfirmed, models.BookingCheckedIn}).
			Where("check_in_date < ? AND check_out_date > ?", *filter.CheckOut, *filter.CheckIn).
			Count(&conflicts).Error
		if err != nil {
			return nil, fmt.Errorf("failed to check availability for room %d: %w", room.ID, err)
		}
		if (conflicts == 0) == *filter.Available {
			filtered = append(filtered, room)
		}
	}
	return filtered, nil
}

func (s *RoomService) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.Preload("RoomType").
		Where("id = ? AND is_active = ?", id, true).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) ListRoomTypes() ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.DB.Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve room types: %w", err)
	}
	return types, nil
}
