package settings

import (
	"context"
	"log/slog"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// CancelReminderUseCase removes the weekly reminder.
type CancelReminderUseCase struct {
	store     adapter.SettingsStore
	scheduler adapter.NotificationScheduler
}

// NewCancelReminderUseCase creates a new CancelReminderUseCase instance.
func NewCancelReminderUseCase(store adapter.SettingsStore, scheduler adapter.NotificationScheduler) *CancelReminderUseCase {
	return &CancelReminderUseCase{
		store:     store,
		scheduler: scheduler,
	}
}

// Execute cancels the scheduled reminder and forgets its handle.
func (uc *CancelReminderUseCase) Execute(ctx context.Context) error {
	current, err := loadNotification(ctx, uc.store)
	if err != nil {
		return err
	}
	if current == nil {
		return reminderNotFoundError()
	}

	if err := uc.scheduler.Cancel(ctx, current.Identifier); err != nil {
		return schedulerError("failed to cancel reminder", err)
	}
	if err := saveNotification(ctx, uc.store, nil); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Reminder cancelled", "identifier", current.Identifier)
	return nil
}

func reminderNotFoundError() error {
	return domainerror.NewSettingsError(domainerror.ErrCodeReminderNotFound, "no reminder is scheduled", domainerror.ErrReminderNotFound)
}
