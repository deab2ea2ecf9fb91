package dto

import (
	"github.com/inventory-tracker/backend/internal/domain/entity"
	"github.com/inventory-tracker/backend/internal/domain/valueobject"
)

// UpdateSettingsRequest represents a partial settings update.
type UpdateSettingsRequest struct {
	CardsView *bool   `json:"cards_view,omitempty"`
	Theme     *string `json:"theme,omitempty"`
}

// ScheduleReminderRequest represents the weekly reminder schedule.
// Weekday counts from 0 = Monday.
type ScheduleReminderRequest struct {
	Weekday *int `json:"weekday" binding:"required"`
	Hour    *int `json:"hour" binding:"required"`
}

// ReminderResponse represents the scheduled weekly reminder.
type ReminderResponse struct {
	Identifier  string `json:"identifier"`
	Weekday     int    `json:"weekday"`
	WeekdayName string `json:"weekday_name"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}

// SettingsResponse represents the presentation preferences.
type SettingsResponse struct {
	CardsView           bool              `json:"cards_view"`
	Theme               string            `json:"theme"`
	CollapsedCategories []int64           `json:"collapsed_categories"`
	Reminder            *ReminderResponse `json:"reminder"`
}

// CollapsedResponse reports whether a category is collapsed.
type CollapsedResponse struct {
	CategoryID int64 `json:"category_id"`
	Collapsed  bool  `json:"collapsed"`
}

// ToReminderResponse converts a notification handle to a ReminderResponse DTO.
func ToReminderResponse(request entity.NotificationRequest) ReminderResponse {
	return ReminderResponse{
		Identifier:  request.Identifier,
		Weekday:     request.Trigger.Weekday,
		WeekdayName: valueobject.Weekday(request.Trigger.Weekday).String(),
		Hour:        request.Trigger.Hour,
		Minute:      request.Trigger.Minute,
		Title:       request.Content.Title,
		Body:        request.Content.Body,
	}
}

// ToSettingsResponse converts domain Settings to a SettingsResponse DTO.
func ToSettingsResponse(settings entity.Settings) SettingsResponse {
	collapsed := settings.CollapsedCategories
	if collapsed == nil {
		collapsed = []int64{}
	}

	response := SettingsResponse{
		CardsView:           settings.CardsView,
		Theme:               string(settings.Theme),
		CollapsedCategories: collapsed,
	}
	if settings.Notification != nil {
		reminder := ToReminderResponse(*settings.Notification)
		response.Reminder = &reminder
	}
	return response
}
