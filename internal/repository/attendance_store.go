package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zainabhax0r-dev/facescan-pro/internal/attendance"
)

// AttendanceRepository persists attendance events.
type AttendanceRepository struct {
	db *gorm.DB
	retryPolicy
}

// NewAttendanceRepository creates a new repository instance.
func NewAttendanceRepository(db *gorm.DB, logger *zap.Logger) *AttendanceRepository {
	return &AttendanceRepository{db: db, retryPolicy: defaultRetryPolicy(logger.Named("attendance_repository"))}
}

// Insert appends one attendance event.
func (r *AttendanceRepository) Insert(ctx context.Context, event attendance.Event) error {
	record := AttendanceRecord{
		IdentityID: event.IdentityID,
		Timestamp:  event.Timestamp,
		Confidence: event.Confidence,
		Device:     event.Device,
	}
	return r.executeWithRetry(ctx, "attendance.insert", "", func() error {
		return r.db.WithContext(ctx).Create(&record).Error
	})
}

// FindByIdentityBetween returns the most recent event for an identity
// inside [start, end), or nil when none exists.
func (r *AttendanceRepository) FindByIdentityBetween(ctx context.Context, identityID string, start, end time.Time) (*attendance.Event, error) {
	var record AttendanceRecord
	found := true
	err := r.executeWithRetry(ctx, "attendance.find_on_day", "", func() error {
		err := r.db.WithContext(ctx).
			Where("identity_id = ? AND timestamp >= ? AND timestamp < ?", identityID, start, end).
			Order("timestamp DESC").
			First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	event := recordToEvent(record)
	return &event, nil
}

// ListBetween returns all events inside [start, end) in capture order.
func (r *AttendanceRepository) ListBetween(ctx context.Context, start, end time.Time) ([]attendance.Event, error) {
	var records []AttendanceRecord
	err := r.executeWithRetry(ctx, "attendance.list_between", "", func() error {
		return r.db.WithContext(ctx).
			Where("timestamp >= ? AND timestamp < ?", start, end).
			Order("timestamp").
			Find(&records).Error
	})
	if err != nil {
		return nil, err
	}

	events := make([]attendance.Event, 0, len(records))
	for _, rec := range records {
		events = append(events, recordToEvent(rec))
	}
	return events, nil
}

func recordToEvent(rec AttendanceRecord) attendance.Event {
	return attendance.Event{
		IdentityID: rec.IdentityID,
		Timestamp:  rec.Timestamp,
		Confidence: rec.Confidence,
		Device:     rec.Device,
	}
}
