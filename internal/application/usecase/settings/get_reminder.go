package settings

import (
	"context"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// GetReminderUseCase reads the stored weekly reminder.
type GetReminderUseCase struct {
	store adapter.SettingsStore
}

// NewGetReminderUseCase creates a new GetReminderUseCase instance.
func NewGetReminderUseCase(store adapter.SettingsStore) *GetReminderUseCase {
	return &GetReminderUseCase{
		store: store,
	}
}

// Execute returns the reminder handle, or ErrReminderNotFound when none is stored.
func (uc *GetReminderUseCase) Execute(ctx context.Context) (*entity.NotificationRequest, error) {
	current, err := loadNotification(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, reminderNotFoundError()
	}
	return current, nil
}
