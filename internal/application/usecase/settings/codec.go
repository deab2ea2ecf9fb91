// Package settings contains presentation preference and reminder use cases.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// Keys under which each preference is stored.
const (
	KeyCardsView           = "cardsView"
	KeyTheme               = "theme"
	KeyNotification        = "notification"
	KeyCategoriesCollapsed = "categoriesCollapsed"
)

// loadSettings reads every preference, substituting defaults for absent or
// unreadable values.
func loadSettings(ctx context.Context, store adapter.SettingsStore) (entity.Settings, error) {
	settings := entity.DefaultSettings()

	raw, ok, err := store.Get(ctx, KeyCardsView)
	if err != nil {
		return settings, storageError(err)
	}
	if ok {
		if enabled, parseErr := strconv.ParseBool(raw); parseErr == nil {
			settings = settings.WithCardsView(enabled)
		}
	}

	raw, ok, err = store.Get(ctx, KeyTheme)
	if err != nil {
		return settings, storageError(err)
	}
	if ok {
		if themed, themeErr := settings.WithTheme(entity.Theme(raw)); themeErr == nil {
			settings = themed
		}
	}

	notification, err := loadNotification(ctx, store)
	if err != nil {
		return settings, err
	}
	settings = settings.WithNotification(notification)

	raw, ok, err = store.Get(ctx, KeyCategoriesCollapsed)
	if err != nil {
		return settings, storageError(err)
	}
	if ok {
		var ids []int64
		if jsonErr := json.Unmarshal([]byte(raw), &ids); jsonErr != nil {
			slog.WarnContext(ctx, "Ignoring malformed collapsed categories", "error", jsonErr)
		} else {
			settings.CollapsedCategories = ids
		}
	}

	return settings, nil
}

// loadNotification returns the stored reminder handle, or nil when none is
// stored or the stored value cannot be decoded.
func loadNotification(ctx context.Context, store adapter.SettingsStore) (*entity.NotificationRequest, error) {
	raw, ok, err := store.Get(ctx, KeyNotification)
	if err != nil {
		return nil, storageError(err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var request entity.NotificationRequest
	if err := json.Unmarshal([]byte(raw), &request); err != nil {
		slog.WarnContext(ctx, "Ignoring malformed notification", "error", err)
		return nil, nil
	}
	return &request, nil
}

func saveNotification(ctx context.Context, store adapter.SettingsStore, request *entity.NotificationRequest) error {
	if request == nil {
		if err := store.Delete(ctx, KeyNotification); err != nil {
			return storageError(err)
		}
		return nil
	}

	raw, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	if err := store.Set(ctx, KeyNotification, string(raw)); err != nil {
		return storageError(err)
	}
	return nil
}

func saveCollapsed(ctx context.Context, store adapter.SettingsStore, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode collapsed categories: %w", err)
	}
	if err := store.Set(ctx, KeyCategoriesCollapsed, string(raw)); err != nil {
		return storageError(err)
	}
	return nil
}

func storageError(err error) error {
	return domainerror.NewSettingsError(domainerror.ErrCodeSettingsStorage, "settings storage failure", err)
}
