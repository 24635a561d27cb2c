package domain

import (
	"time"
)

// AlertType mirrors the four alert styles of the UI.
type AlertType string

const (
	AlertSuccess AlertType = "success"
	AlertError   AlertType = "error"
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
)

// Alert is a transient notification shown to one session.
type Alert struct {
	ID       string        `json:"id"`
	Message  string        `json:"message"`
	Type     AlertType     `json:"type"`
	Duration time.Duration `json:"-"`
	// DurationMs is what the browser uses for auto-dismiss.
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Heading is the bold prefix shown before the message.
func (a Alert) Heading() string {
	switch a.Type {
	case AlertSuccess:
		return "Success!"
	case AlertError:
		return "Error!"
	case AlertWarning:
		return "Warning!"
	default:
		return "Info!"
	}
}
