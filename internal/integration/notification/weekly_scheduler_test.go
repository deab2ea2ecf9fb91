package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/domain/valueobject"
)

type fakePlatform struct {
	scheduled []entity.NotificationRequest
	err       error
}

func (p *fakePlatform) Schedule(_ context.Context, content entity.NotificationContent, trigger entity.WeeklyNotificationTrigger) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	id := fmt.Sprintf("id-%d", len(p.scheduled))
	p.scheduled = append(p.scheduled, entity.NotificationRequest{Identifier: id, Content: content, Trigger: trigger})
	return id, nil
}

func (p *fakePlatform) Cancel(_ context.Context, identifier string) error {
	for i, request := range p.scheduled {
		if request.Identifier == identifier {
			p.scheduled = append(p.scheduled[:i], p.scheduled[i+1:]...)
			break
		}
	}
	return nil
}

func (p *fakePlatform) Scheduled(_ context.Context) ([]entity.NotificationRequest, error) {
	return append([]entity.NotificationRequest(nil), p.scheduled...), p.err
}

func TestWeeklyScheduler_ScheduleWeekly(t *testing.T) {
	ctx := context.Background()
	content := entity.NotificationContent{Title: "Inventory", Body: "Check"}

	t.Run("monday is sent to the platform as 2", func(t *testing.T) {
		platform := &fakePlatform{}
		scheduler := NewWeeklyScheduler(platform)

		request, err := scheduler.ScheduleWeekly(ctx, valueobject.Monday, 17, content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sent := platform.scheduled[0].Trigger
		if sent.Weekday != 2 || sent.Hour != 17 || sent.Minute != 0 || !sent.Repeats {
			t.Errorf("unexpected platform trigger %+v", sent)
		}
		if request.Trigger.Weekday != int(valueobject.Monday) {
			t.Errorf("expected returned weekday in app convention, got %d", request.Trigger.Weekday)
		}
	})

	t.Run("every weekday round trips through ListScheduled", func(t *testing.T) {
		platform := &fakePlatform{}
		scheduler := NewWeeklyScheduler(platform)

		for day := valueobject.Monday; day <= valueobject.Sunday; day++ {
			if _, err := scheduler.ScheduleWeekly(ctx, day, 9, content); err != nil {
				t.Fatalf("%s: unexpected error: %v", day, err)
			}
		}

		listed, err := scheduler.ListScheduled(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, request := range listed {
			if request.Trigger.Weekday != i {
				t.Errorf("expected weekday %d, got %d", i, request.Trigger.Weekday)
			}
			if platform.scheduled[i].Trigger.Weekday != (i+2)%7 {
				t.Errorf("expected platform weekday %d, got %d", (i+2)%7, platform.scheduled[i].Trigger.Weekday)
			}
		}
	})

	t.Run("invalid input never reaches the platform", func(t *testing.T) {
		platform := &fakePlatform{}
		scheduler := NewWeeklyScheduler(platform)

		if _, err := scheduler.ScheduleWeekly(ctx, valueobject.Weekday(7), 9, content); !errors.Is(err, domainerror.ErrInvalidReminder) {
			t.Errorf("expected ErrInvalidReminder for weekday, got %v", err)
		}
		if _, err := scheduler.ScheduleWeekly(ctx, valueobject.Friday, -1, content); !errors.Is(err, domainerror.ErrInvalidReminder) {
			t.Errorf("expected ErrInvalidReminder for hour, got %v", err)
		}
		if len(platform.scheduled) != 0 {
			t.Errorf("expected nothing scheduled, got %d", len(platform.scheduled))
		}
	})

	t.Run("platform errors propagate", func(t *testing.T) {
		scheduler := NewWeeklyScheduler(&fakePlatform{err: errors.New("denied")})
		if _, err := scheduler.ScheduleWeekly(ctx, valueobject.Friday, 17, content); err == nil {
			t.Error("expected error")
		}
	})
}

func TestWeeklyScheduler_WithCronPlatform(t *testing.T) {
	ctx := context.Background()
	platform := NewCronPlatform(time.UTC, &recordingNotifier{})
	scheduler := NewWeeklyScheduler(platform)

	request, err := scheduler.ScheduleWeekly(ctx, valueobject.Friday, 17, entity.NotificationContent{Title: "t", Body: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next := platform.cron.Entry(platform.entries[request.Identifier].id).Schedule.Next(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if next.Weekday() != time.Friday || next.Hour() != 17 || next.Minute() != 0 {
		t.Errorf("expected next run on Friday 17:00, got %s", next)
	}

	if err := scheduler.Cancel(ctx, request.Identifier); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listed, _ := scheduler.ListScheduled(ctx)
	if len(listed) != 0 {
		t.Errorf("expected no reminders, got %d", len(listed))
	}
}
