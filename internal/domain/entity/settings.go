package entity

import (
	"slices"

	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// Theme is the name of a color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used when no valid theme has been stored.
const DefaultTheme = ThemeDark

// IsThemeValid reports whether theme names a known color scheme.
func IsThemeValid(theme Theme) bool {
	return theme == ThemeDark || theme == ThemeLight
}

// Settings holds presentation preferences.
// Updates go through the With* methods, which return a new value.
type Settings struct {
	CardsView           bool
	Theme               Theme
	Notification        *NotificationRequest
	CollapsedCategories []int64
}

// DefaultSettings returns the preferences of a fresh install.
func DefaultSettings() Settings {
	return Settings{
		CardsView: false,
		Theme:     DefaultTheme,
	}
}

// WithCardsView returns a copy with the cards view flag set to enabled.
func (s Settings) WithCardsView(enabled bool) Settings {
	s = s.clone()
	s.CardsView = enabled
	return s
}

// WithTheme returns a copy using theme.
func (s Settings) WithTheme(theme Theme) (Settings, error) {
	if !IsThemeValid(theme) {
		return s, domainerror.ErrInvalidTheme
	}
	s = s.clone()
	s.Theme = theme
	return s, nil
}

// WithNotification returns a copy holding notification, or none when nil.
func (s Settings) WithNotification(notification *NotificationRequest) Settings {
	s = s.clone()
	if notification == nil {
		s.Notification = nil
		return s
	}
	n := *notification
	s.Notification = &n
	return s
}

// ToggleCollapsed returns a copy where categoryID's collapsed state is flipped.
func (s Settings) ToggleCollapsed(categoryID int64) Settings {
	s = s.clone()
	if i := slices.Index(s.CollapsedCategories, categoryID); i >= 0 {
		s.CollapsedCategories = slices.Delete(s.CollapsedCategories, i, i+1)
		return s
	}
	s.CollapsedCategories = append(s.CollapsedCategories, categoryID)
	return s
}

// IsCollapsed reports whether categoryID is collapsed.
func (s Settings) IsCollapsed(categoryID int64) bool {
	return slices.Contains(s.CollapsedCategories, categoryID)
}

func (s Settings) clone() Settings {
	s.CollapsedCategories = slices.Clone(s.CollapsedCategories)
	if s.Notification != nil {
		n := *s.Notification
		s.Notification = &n
	}
	return s
}
