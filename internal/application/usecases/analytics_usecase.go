package usecases

import (
	"context"
	"time"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
)

// onlineWindow defines how recent a session's last activity must be for
// the session to count as "online now".
const onlineWindow = 5 * time.Minute

// AnalyticsSummary aggregates the tracking tables for the admin panel.
type AnalyticsSummary struct {
	OnlineNow    int64            `json:"online_now"`
	ByEventType  map[string]int64 `json:"by_event_type"`
	ByDeviceType map[string]int64 `json:"by_device_type"`
	ByCountry    map[string]int64 `json:"by_country"`
}

type AnalyticsUseCase struct {
	trackingRepo repositories.ITrackingRepository
}

func NewAnalyticsUseCase(trackingRepo repositories.ITrackingRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		trackingRepo: trackingRepo,
	}
}

func (uc *AnalyticsUseCase) GetActivities(ctx context.Context, skip, limit int, eventType, sessionID string) ([]entities.UserActivity, int64, error) {
	return uc.trackingRepo.GetActivities(ctx, skip, limit, eventType, sessionID)
}

func (uc *AnalyticsUseCase) GetSessions(ctx context.Context, skip, limit int) ([]entities.Session, int64, error) {
	return uc.trackingRepo.GetSessions(ctx, skip, limit)
}

func (uc *AnalyticsUseCase) CountOnline(ctx context.Context) (int64, error) {
	return uc.trackingRepo.CountOnlineSessions(ctx, onlineWindow)
}

func (uc *AnalyticsUseCase) GetSummary(ctx context.Context) (*AnalyticsSummary, error) {
	online, err := uc.trackingRepo.CountOnlineSessions(ctx, onlineWindow)
	if err != nil {
		return nil, err
	}
	byEvent, err := uc.trackingRepo.CountByEventType(ctx)
	if err != nil {
		return nil, err
	}
	byDevice, err := uc.trackingRepo.CountByDeviceType(ctx)
	if err != nil {
		return nil, err
	}
	byCountry, err := uc.trackingRepo.CountByCountry(ctx)
	if err != nil {
		return nil, err
	}

	return &AnalyticsSummary{
		OnlineNow:    online,
		ByEventType:  byEvent,
		ByDeviceType: byDevice,
		ByCountry:    byCountry,
	}, nil
}
