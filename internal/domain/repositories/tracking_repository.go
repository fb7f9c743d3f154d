package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"gorm.io/gorm"
)

type ITrackingRepository interface {
	UpsertSession(ctx context.Context, visit *entities.Session) error
	InsertActivity(ctx context.Context, activity *entities.UserActivity) error
	GetActivities(ctx context.Context, skip, limit int, eventType, sessionID string) ([]entities.UserActivity, int64, error)
	GetSessions(ctx context.Context, skip, limit int) ([]entities.Session, int64, error)
	CountOnlineSessions(ctx context.Context, window time.Duration) (int64, error)
	CountByEventType(ctx context.Context) (map[string]int64, error)
	CountByDeviceType(ctx context.Context) (map[string]int64, error)
	CountByCountry(ctx context.Context) (map[string]int64, error)
}

type TrackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

// UpsertSession creates the session row on first sight of an identifier,
// otherwise bumps last_activity and visit_count. A principal is attached
// only when the row was previously anonymous; an already-attached
// principal is never overwritten.
func (r *TrackingRepository) UpsertSession(ctx context.Context, visit *entities.Session) error {
	var existing entities.Session
	err := r.db.WithContext(ctx).Where("session_id = ?", visit.SessionID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(visit).Error
	}
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"last_activity": visit.LastActivity,
		"visit_count":   gorm.Expr("visit_count + 1"),
	}
	if existing.CustomerID == nil && visit.CustomerID != nil {
		updates["customer_id"] = *visit.CustomerID
		updates["user_type"] = visit.UserType
	}
	return r.db.WithContext(ctx).Model(&entities.Session{}).
		Where("session_id = ?", visit.SessionID).
		Updates(updates).Error
}

// InsertActivity appends one activity row. Rows are never updated or
// deleted afterwards.
func (r *TrackingRepository) InsertActivity(ctx context.Context, activity *entities.UserActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *TrackingRepository) GetActivities(ctx context.Context, skip, limit int, eventType, sessionID string) ([]entities.UserActivity, int64, error) {
	var activities []entities.UserActivity
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.UserActivity{})
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}
	if sessionID != "" {
		query = query.Where("session_id = ?", sessionID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date_added DESC").Offset(skip).Limit(limit).Find(&activities).Error
	return activities, total, err
}

func (r *TrackingRepository) GetSessions(ctx context.Context, skip, limit int) ([]entities.Session, int64, error) {
	var sessions []entities.Session
	var total int64

	if err := r.db.WithContext(ctx).Model(&entities.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Order("last_activity DESC").
		Offset(skip).Limit(limit).Find(&sessions).Error
	return sessions, total, err
}

func (r *TrackingRepository) CountOnlineSessions(ctx context.Context, window time.Duration) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Session{}).
		Where("last_activity > ?", time.Now().UTC().Add(-window)).
		Count(&count).Error
	return count, err
}

func (r *TrackingRepository) CountByEventType(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, &entities.UserActivity{}, "event_type")
}

func (r *TrackingRepository) CountByDeviceType(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, &entities.Session{}, "device_type")
}

func (r *TrackingRepository) CountByCountry(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, &entities.Session{}, "country")
}

func (r *TrackingRepository) countGrouped(ctx context.Context, model interface{}, column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(model).
		Select(column + " AS `key`, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, r := range rows {
		result[r.Key] = r.Count
	}
	return result, nil
}
