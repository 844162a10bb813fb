package services

import (
	"fmt"
	"log"
	"time"

	"shivashray-backend/models"

	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// CancelStaleBookings cancels pending bookings older than maxAge so
// abandoned form submissions do not linger forever. Confirmed bookings are
// never touched.
func (s *JobService) CancelStaleBookings(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge)

	result := s.DB.Model(&models.Booking{}).
		Where("status = ? AND created_at < ?", models.BookingPending, cutoff).
		Update("status", models.BookingCancelled)
	if result.Error != nil {
		return 0, fmt.Errorf("cron job: failed to cancel stale pending bookings: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		log.Printf("Cron Job: cancelled %d stale pending bookings (older than %s)", result.RowsAffected, maxAge)
	}
	return result.RowsAffected, nil
}
