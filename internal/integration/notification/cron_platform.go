// Package notification schedules weekly reminders on top of a cron runner.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/domain/valueobject"
)

// Platform is the notification service reminders are delivered through.
// Triggers crossing this interface use the platform weekday convention.
type Platform interface {
	Schedule(ctx context.Context, content entity.NotificationContent, trigger entity.WeeklyNotificationTrigger) (string, error)
	Cancel(ctx context.Context, identifier string) error
	Scheduled(ctx context.Context) ([]entity.NotificationRequest, error)
}

type cronEntry struct {
	id      cron.EntryID
	request entity.NotificationRequest
}

// CronPlatform runs platform notifications as cron jobs.
type CronPlatform struct {
	cron     *cron.Cron
	notifier adapter.ReminderNotifier

	mu      sync.Mutex
	entries map[string]cronEntry
}

// NewCronPlatform creates a platform firing jobs in loc through notifier.
func NewCronPlatform(loc *time.Location, notifier adapter.ReminderNotifier) *CronPlatform {
	return &CronPlatform{
		cron:     cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		notifier: notifier,
		entries:  make(map[string]cronEntry),
	}
}

// Start begins firing scheduled jobs.
func (p *CronPlatform) Start() {
	p.cron.Start()
}

// Stop halts the runner and waits for running jobs to finish.
func (p *CronPlatform) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
}

// Schedule registers a repeating job and returns its identifier.
// Non-repeating triggers are promoted to repeating ones.
func (p *CronPlatform) Schedule(ctx context.Context, content entity.NotificationContent, trigger entity.WeeklyNotificationTrigger) (string, error) {
	spec, err := buildWeeklySpec(trigger)
	if err != nil {
		return "", err
	}
	trigger.Repeats = true

	identifier := uuid.New().String()
	request := entity.NotificationRequest{
		Identifier: identifier,
		Content:    content,
		Trigger:    trigger,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	entryID, err := p.cron.AddFunc(spec, func() { p.fire(request) })
	if err != nil {
		return "", fmt.Errorf("failed to schedule notification: %w", err)
	}
	p.entries[identifier] = cronEntry{id: entryID, request: request}

	slog.InfoContext(ctx, "Notification scheduled", "identifier", identifier, "spec", spec)
	return identifier, nil
}

// Cancel removes a scheduled job. Unknown identifiers are ignored.
func (p *CronPlatform) Cancel(ctx context.Context, identifier string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.entries[identifier]
	if !ok {
		return nil
	}
	p.cron.Remove(entry.id)
	delete(p.entries, identifier)

	slog.InfoContext(ctx, "Notification cancelled", "identifier", identifier)
	return nil
}

// Scheduled lists every registered job ordered by identifier.
func (p *CronPlatform) Scheduled(_ context.Context) ([]entity.NotificationRequest, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	requests := make([]entity.NotificationRequest, 0, len(p.entries))
	for _, entry := range p.entries {
		requests = append(requests, entry.request)
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].Identifier < requests[j].Identifier
	})
	return requests, nil
}

// Trigger delivers the notification with identifier immediately, outside its schedule.
func (p *CronPlatform) Trigger(ctx context.Context, identifier string) error {
	p.mu.Lock()
	entry, ok := p.entries[identifier]
	p.mu.Unlock()
	if !ok {
		return fmt.Errorf("notification %s: %w", identifier, domainerror.ErrReminderNotFound)
	}
	return p.deliver(ctx, entry.request)
}

// fire runs on the cron goroutine. A failed delivery keeps the job scheduled.
func (p *CronPlatform) fire(request entity.NotificationRequest) {
	ctx := context.Background()
	if err := p.deliver(ctx, request); err != nil {
		slog.ErrorContext(ctx, "Failed to deliver notification", "identifier", request.Identifier, "error", err)
	}
}

func (p *CronPlatform) deliver(ctx context.Context, request entity.NotificationRequest) error {
	if err := p.notifier.Notify(ctx, request.Content); err != nil {
		return fmt.Errorf("deliver notification %s: %w", request.Identifier, err)
	}
	slog.InfoContext(ctx, "Notification delivered", "identifier", request.Identifier)
	return nil
}

// buildWeeklySpec converts a platform trigger into a six-field cron spec.
func buildWeeklySpec(trigger entity.WeeklyNotificationTrigger) (string, error) {
	weekday, err := valueobject.NewPlatformWeekday(trigger.Weekday)
	if err != nil {
		return "", err
	}
	if err := valueobject.ValidateHour(trigger.Hour); err != nil {
		return "", err
	}
	if trigger.Minute < 0 || trigger.Minute > 59 {
		return "", fmt.Errorf("minute %d: %w", trigger.Minute, domainerror.ErrInvalidReminder)
	}
	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * %d", trigger.Minute, trigger.Hour, weekday.CronDayOfWeek()), nil
}
