package valueobject

import (
	"errors"
	"testing"

	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

func TestWeekdayRemapRoundTrip(t *testing.T) {
	seen := make(map[PlatformWeekday]bool)
	for day := 0; day < 7; day++ {
		w, err := NewWeekday(day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p := w.ToPlatform()
		if int(p) != (day+2)%7 {
			t.Errorf("ToPlatform(%d) = %d, want %d", day, p, (day+2)%7)
		}
		if seen[p] {
			t.Errorf("platform weekday %d produced twice", p)
		}
		seen[p] = true

		if back := p.ToApp(); back != w {
			t.Errorf("round trip of %d returned %d", day, back)
		}
	}
}

func TestMondayMapsToPlatformTwo(t *testing.T) {
	if got := Monday.ToPlatform(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := PlatformWeekday(2).ToApp(); got != Monday {
		t.Errorf("expected Monday, got %s", got)
	}
}

func TestCronDayOfWeek(t *testing.T) {
	// cron counts from Sunday = 0
	tests := map[Weekday]int{
		Monday:    1,
		Tuesday:   2,
		Wednesday: 3,
		Thursday:  4,
		Friday:    5,
		Saturday:  6,
		Sunday:    0,
	}
	for day, want := range tests {
		if got := day.ToPlatform().CronDayOfWeek(); got != want {
			t.Errorf("%s: cron day %d, want %d", day, got, want)
		}
	}
}

func TestNewWeekdayRejectsOutOfRange(t *testing.T) {
	for _, day := range []int{-1, 7, 12} {
		if _, err := NewWeekday(day); !errors.Is(err, domainerror.ErrInvalidReminder) {
			t.Errorf("NewWeekday(%d) error = %v", day, err)
		}
	}
	if err := ValidateHour(24); !errors.Is(err, domainerror.ErrInvalidReminder) {
		t.Errorf("expected hour 24 to be rejected, got %v", err)
	}
	if err := ValidateHour(0); err != nil {
		t.Errorf("expected hour 0 to be accepted, got %v", err)
	}
}
