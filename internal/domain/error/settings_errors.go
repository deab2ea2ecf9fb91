package error

import "errors"

// Settings domain errors.
var (
	// ErrInvalidTheme is returned when a theme name is not a known color scheme.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidReminder is returned when a reminder weekday or hour is out of range.
	ErrInvalidReminder = errors.New("invalid reminder schedule")

	// ErrReminderNotFound is returned when no weekly reminder is scheduled.
	ErrReminderNotFound = errors.New("reminder not found")
)

// SettingsErrorCode defines error codes for settings errors.
type SettingsErrorCode string

const (
	ErrCodeInvalidTheme     SettingsErrorCode = "SET-010001"
	ErrCodeInvalidReminder  SettingsErrorCode = "SET-010002"
	ErrCodeReminderNotFound SettingsErrorCode = "SET-010003"
	ErrCodeSchedulerFailure SettingsErrorCode = "SET-020001"
	ErrCodeSettingsStorage  SettingsErrorCode = "SET-020002"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
