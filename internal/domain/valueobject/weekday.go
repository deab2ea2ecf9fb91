// Package valueobject contains domain value objects for the Inventory Tracker system.
package valueobject

import (
	"fmt"

	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

const daysPerWeek = 7

// Weekday is a day of the week in the application convention: 0 = Monday ... 6 = Sunday.
type Weekday int

// PlatformWeekday is a day of the week in the notification platform convention,
// where Sunday = 1 ... Friday = 6 and Saturday = 0.
type PlatformWeekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [daysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// NewWeekday validates day and returns it as a Weekday.
func NewWeekday(day int) (Weekday, error) {
	if day < 0 || day >= daysPerWeek {
		return 0, fmt.Errorf("weekday %d: %w", day, domainerror.ErrInvalidReminder)
	}
	return Weekday(day), nil
}

// NewPlatformWeekday validates day and returns it as a PlatformWeekday.
func NewPlatformWeekday(day int) (PlatformWeekday, error) {
	if day < 0 || day >= daysPerWeek {
		return 0, fmt.Errorf("platform weekday %d: %w", day, domainerror.ErrInvalidReminder)
	}
	return PlatformWeekday(day), nil
}

// ToPlatform converts to the platform convention: (w + 2) mod 7.
func (w Weekday) ToPlatform() PlatformWeekday {
	return PlatformWeekday((int(w) + 2) % daysPerWeek)
}

// ToApp converts back to the application convention: (p + 5) mod 7.
func (p PlatformWeekday) ToApp() Weekday {
	return Weekday((int(p) + 5) % daysPerWeek)
}

// CronDayOfWeek returns the cron day-of-week field (0 = Sunday) for p.
func (p PlatformWeekday) CronDayOfWeek() int {
	return (int(p) + 6) % daysPerWeek
}

func (w Weekday) String() string {
	if w < 0 || int(w) >= daysPerWeek {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// ValidateHour checks that hour is a valid hour of the day.
func ValidateHour(hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("hour %d: %w", hour, domainerror.ErrInvalidReminder)
	}
	return nil
}
