package adapter

import (
	"context"

	"github.com/inventory-tracker/backend/internal/domain/entity"
	"github.com/inventory-tracker/backend/internal/domain/valueobject"
)

// NotificationScheduler schedules recurring reminders.
// Weekdays crossing this interface use the application convention (0 = Monday).
type NotificationScheduler interface {
	// ScheduleWeekly registers a reminder repeating every week at weekday and hour.
	ScheduleWeekly(ctx context.Context, weekday valueobject.Weekday, hour int, content entity.NotificationContent) (*entity.NotificationRequest, error)

	// Cancel removes the reminder with the given identifier.
	Cancel(ctx context.Context, identifier string) error

	// ListScheduled returns every scheduled reminder.
	ListScheduled(ctx context.Context) ([]entity.NotificationRequest, error)
}

// ReminderNotifier delivers a reminder when it fires.
type ReminderNotifier interface {
	Notify(ctx context.Context, content entity.NotificationContent) error
}
