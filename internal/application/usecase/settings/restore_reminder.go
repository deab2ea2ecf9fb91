package settings

import (
	"context"
	"log/slog"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	"github.com/inventory-tracker/backend/internal/domain/valueobject"
)

// RestoreReminderOutput represents the output of restoring the reminder.
type RestoreReminderOutput struct {
	Reminder *entity.NotificationRequest
	Restored bool
}

// RestoreReminderUseCase re-registers the stored reminder with a scheduler
// that has lost it, such as the in-process cron runner after a restart.
type RestoreReminderUseCase struct {
	store     adapter.SettingsStore
	scheduler adapter.NotificationScheduler
}

// NewRestoreReminderUseCase creates a new RestoreReminderUseCase instance.
func NewRestoreReminderUseCase(store adapter.SettingsStore, scheduler adapter.NotificationScheduler) *RestoreReminderUseCase {
	return &RestoreReminderUseCase{
		store:     store,
		scheduler: scheduler,
	}
}

// Execute schedules the stored reminder again unless the scheduler already lists it.
// The stored handle is replaced by the new one.
func (uc *RestoreReminderUseCase) Execute(ctx context.Context) (*RestoreReminderOutput, error) {
	stored, err := loadNotification(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return &RestoreReminderOutput{}, nil
	}

	scheduled, err := uc.scheduler.ListScheduled(ctx)
	if err != nil {
		return nil, schedulerError("failed to list reminders", err)
	}
	for _, request := range scheduled {
		if request.Identifier == stored.Identifier {
			return &RestoreReminderOutput{Reminder: stored}, nil
		}
	}

	weekday, err := valueobject.NewWeekday(stored.Trigger.Weekday)
	if err != nil {
		return nil, invalidReminderError(err)
	}
	request, err := scheduleAndSave(ctx, uc.store, uc.scheduler, weekday, stored.Trigger.Hour, stored.Content)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Reminder restored",
		"previous_identifier", stored.Identifier,
		"identifier", request.Identifier,
	)
	return &RestoreReminderOutput{Reminder: request, Restored: true}, nil
}
