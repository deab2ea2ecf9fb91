package notification

import (
	"context"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	"github.com/inventory-tracker/backend/internal/domain/valueobject"
)

// weeklyScheduler implements adapter.NotificationScheduler over a Platform.
// Weekdays are remapped at this boundary and nowhere else.
type weeklyScheduler struct {
	platform Platform
}

// NewWeeklyScheduler creates a scheduler translating application weekdays for platform.
func NewWeeklyScheduler(platform Platform) adapter.NotificationScheduler {
	return &weeklyScheduler{platform: platform}
}

// ScheduleWeekly schedules a reminder at minute 0 of hour on weekday.
func (s *weeklyScheduler) ScheduleWeekly(ctx context.Context, weekday valueobject.Weekday, hour int, content entity.NotificationContent) (*entity.NotificationRequest, error) {
	if _, err := valueobject.NewWeekday(int(weekday)); err != nil {
		return nil, err
	}
	if err := valueobject.ValidateHour(hour); err != nil {
		return nil, err
	}

	trigger := entity.WeeklyNotificationTrigger{
		Weekday: int(weekday.ToPlatform()),
		Hour:    hour,
		Minute:  0,
		Repeats: true,
	}
	identifier, err := s.platform.Schedule(ctx, content, trigger)
	if err != nil {
		return nil, err
	}

	request := toApp(entity.NotificationRequest{
		Identifier: identifier,
		Content:    content,
		Trigger:    trigger,
	})
	return &request, nil
}

// Cancel removes the reminder with identifier.
func (s *weeklyScheduler) Cancel(ctx context.Context, identifier string) error {
	return s.platform.Cancel(ctx, identifier)
}

// ListScheduled returns every reminder with its weekday in the application convention.
func (s *weeklyScheduler) ListScheduled(ctx context.Context) ([]entity.NotificationRequest, error) {
	scheduled, err := s.platform.Scheduled(ctx)
	if err != nil {
		return nil, err
	}

	requests := make([]entity.NotificationRequest, len(scheduled))
	for i, request := range scheduled {
		requests[i] = toApp(request)
	}
	return requests, nil
}

func toApp(request entity.NotificationRequest) entity.NotificationRequest {
	request.Trigger.Weekday = int(valueobject.PlatformWeekday(request.Trigger.Weekday).ToApp())
	return request
}
