// Package email delivers reminders by email via Resend, or to the log.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/integration/email/templates"
)

// emailSender is the part of the Resend emails service the notifier needs.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendNotifier implements the adapter.ReminderNotifier interface using Resend.
type ResendNotifier struct {
	emails    emailSender
	renderer  *templates.Renderer
	fromName  string
	fromEmail string
	recipient string
}

// ResendConfig holds the Resend account and addressing used for reminders.
// BaseURL is optional and points the client at another API host.
type ResendConfig struct {
	APIKey    string
	BaseURL   string
	FromName  string
	FromEmail string
	Recipient string
}

// NewResendNotifier creates a notifier emailing reminders to cfg.Recipient.
func NewResendNotifier(cfg ResendConfig, renderer *templates.Renderer) (*ResendNotifier, error) {
	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid resend base url: %w", err)
		}
		client.BaseURL = baseURL
	}
	return newResendNotifier(client.Emails, cfg.FromName, cfg.FromEmail, cfg.Recipient, renderer), nil
}

func newResendNotifier(emails emailSender, fromName, fromEmail, recipient string, renderer *templates.Renderer) *ResendNotifier {
	return &ResendNotifier{
		emails:    emails,
		renderer:  renderer,
		fromName:  fromName,
		fromEmail: fromEmail,
		recipient: recipient,
	}
}

// Notify emails the reminder content.
func (n *ResendNotifier) Notify(ctx context.Context, content entity.NotificationContent) error {
	html, text, err := n.renderer.Render(templates.TemplateReminder, templates.ReminderData{
		Title: content.Title,
		Body:  content.Body,
	})
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render reminder email",
			fmt.Errorf("%w: %w", domainerror.ErrTemplateRenderFailed, err),
		)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", n.fromName, n.fromEmail),
		To:      []string{n.recipient},
		Subject: content.Title,
		Html:    html,
		Text:    text,
	}

	resp, err := n.emails.SendWithContext(ctx, params)
	if err != nil {
		// Check if it's a permanent error (don't retry)
		if isPermanentError(err) {
			return domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"permanent email failure",
				fmt.Errorf("%w: %w", domainerror.ErrPermanentEmailFailure, err),
			)
		}
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"temporary email failure",
			fmt.Errorf("%w: %w", domainerror.ErrTemporaryEmailFailure, err),
		)
	}

	slog.InfoContext(ctx, "Reminder email sent", "resend_id", resp.Id, "to", n.recipient)
	return nil
}

// isPermanentError checks if the error is a permanent error that should not be retried.
// Permanent errors include: 401 (Unauthorized), 403 (Forbidden), 422 (Validation Error)
// Temporary errors include: 429 (Rate Limit), 5xx (Server Errors)
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// LogNotifier writes reminders to the structured log. It is used when no
// email provider is configured.
type LogNotifier struct{}

// NewLogNotifier creates a new log notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the reminder content.
func (LogNotifier) Notify(ctx context.Context, content entity.NotificationContent) error {
	slog.InfoContext(ctx, "Reminder", "title", content.Title, "body", content.Body)
	return nil
}

// MockNotifier is a mock implementation for testing.
type MockNotifier struct {
	mu         sync.Mutex
	Delivered  []entity.NotificationContent
	ShouldFail bool
	FailError  error
}

// NewMockNotifier creates a new mock notifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{
		Delivered: make([]entity.NotificationContent, 0),
	}
}

// Notify records content, or fails when configured to.
func (m *MockNotifier) Notify(_ context.Context, content entity.NotificationContent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ShouldFail {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"mock temporary failure",
			m.FailError,
		)
	}
	m.Delivered = append(m.Delivered, content)
	return nil
}

// Count returns how many reminders were delivered.
func (m *MockNotifier) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Delivered)
}

// Reset clears delivered reminders and failure configuration.
func (m *MockNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Delivered = make([]entity.NotificationContent, 0)
	m.ShouldFail = false
	m.FailError = nil
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.ReminderNotifier = (*ResendNotifier)(nil)
	_ adapter.ReminderNotifier = (*LogNotifier)(nil)
	_ adapter.ReminderNotifier = (*MockNotifier)(nil)
)
