package settings

import (
	"context"
	"log/slog"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/domain/valueobject"
)

// ScheduleReminderInput represents the input for scheduling the weekly reminder.
// Weekday uses the application convention (0 = Monday).
type ScheduleReminderInput struct {
	Weekday int
	Hour    int
}

// ScheduleReminderOutput represents the output of scheduling the reminder.
type ScheduleReminderOutput struct {
	Reminder entity.NotificationRequest
}

// ScheduleReminderUseCase replaces the weekly restock reminder.
type ScheduleReminderUseCase struct {
	store     adapter.SettingsStore
	scheduler adapter.NotificationScheduler
	content   entity.NotificationContent
}

// NewScheduleReminderUseCase creates a new ScheduleReminderUseCase instance.
func NewScheduleReminderUseCase(store adapter.SettingsStore, scheduler adapter.NotificationScheduler, content entity.NotificationContent) *ScheduleReminderUseCase {
	return &ScheduleReminderUseCase{
		store:     store,
		scheduler: scheduler,
		content:   content,
	}
}

// Execute schedules the new reminder, persists its handle and only then
// cancels the previous one, so a failure leaves the previous reminder in place.
func (uc *ScheduleReminderUseCase) Execute(ctx context.Context, input ScheduleReminderInput) (*ScheduleReminderOutput, error) {
	weekday, err := valueobject.NewWeekday(input.Weekday)
	if err != nil {
		return nil, invalidReminderError(err)
	}
	if err := valueobject.ValidateHour(input.Hour); err != nil {
		return nil, invalidReminderError(err)
	}

	previous, err := loadNotification(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	request, err := scheduleAndSave(ctx, uc.store, uc.scheduler, weekday, input.Hour, uc.content)
	if err != nil {
		return nil, err
	}

	if previous != nil {
		if err := uc.scheduler.Cancel(ctx, previous.Identifier); err != nil {
			// The new handle is already stored; the old job is gone after the next restart.
			slog.ErrorContext(ctx, "Failed to cancel previous reminder",
				"identifier", previous.Identifier,
				"error", err,
			)
		}
	}

	slog.InfoContext(ctx, "Reminder scheduled",
		"identifier", request.Identifier,
		"weekday", weekday.String(),
		"hour", input.Hour,
	)

	return &ScheduleReminderOutput{Reminder: *request}, nil
}

// scheduleAndSave schedules a reminder and stores its handle. The new
// reminder is cancelled again when the handle cannot be stored.
func scheduleAndSave(ctx context.Context, store adapter.SettingsStore, scheduler adapter.NotificationScheduler, weekday valueobject.Weekday, hour int, content entity.NotificationContent) (*entity.NotificationRequest, error) {
	request, err := scheduler.ScheduleWeekly(ctx, weekday, hour, content)
	if err != nil {
		return nil, schedulerError("failed to schedule reminder", err)
	}

	if err := saveNotification(ctx, store, request); err != nil {
		if cancelErr := scheduler.Cancel(ctx, request.Identifier); cancelErr != nil {
			slog.ErrorContext(ctx, "Failed to cancel unsaved reminder",
				"identifier", request.Identifier,
				"error", cancelErr,
			)
		}
		return nil, err
	}
	return request, nil
}

func invalidReminderError(err error) error {
	return domainerror.NewSettingsError(domainerror.ErrCodeInvalidReminder, "invalid reminder schedule", err)
}

func schedulerError(message string, err error) error {
	return domainerror.NewSettingsError(domainerror.ErrCodeSchedulerFailure, message, err)
}
