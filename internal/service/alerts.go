package service

import (
	"alcyxob/student-portal/internal/domain"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notifier is the showAlert capability handed to the pages.
type Notifier interface {
	Notify(sessionID, message string, typ domain.AlertType, duration time.Duration)
}

// AlertQueue keeps pending alerts per session until the browser picks them up.
type AlertQueue struct {
	mu              sync.Mutex
	clock           Clock
	defaultDuration time.Duration
	pending         map[string][]domain.Alert
}

func NewAlertQueue(clock Clock, defaultDuration time.Duration) *AlertQueue {
	if defaultDuration <= 0 {
		defaultDuration = 5 * time.Second
	}
	return &AlertQueue{
		clock:           clock,
		defaultDuration: defaultDuration,
		pending:         make(map[string][]domain.Alert),
	}
}

// Notify queues an alert. A non-positive duration uses the default.
func (q *AlertQueue) Notify(sessionID, message string, typ domain.AlertType, duration time.Duration) {
	if sessionID == "" {
		return
	}
	if duration <= 0 {
		duration = q.defaultDuration
	}
	alert := domain.Alert{
		ID:         uuid.NewString(),
		Message:    message,
		Type:       typ,
		Duration:   duration,
		DurationMs: duration.Milliseconds(),
		CreatedAt:  q.clock.Now(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending[sessionID] = append(q.pending[sessionID], alert)
}

// Drain returns and forgets the session's pending alerts, oldest first.
func (q *AlertQueue) Drain(sessionID string) []domain.Alert {
	q.mu.Lock()
	defer q.mu.Unlock()
	alerts := q.pending[sessionID]
	delete(q.pending, sessionID)
	return alerts
}

// Dismiss drops one alert before it is shown. Unknown ids are ignored.
func (q *AlertQueue) Dismiss(sessionID, alertID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	alerts := q.pending[sessionID]
	for i, a := range alerts {
		if a.ID == alertID {
			q.pending[sessionID] = append(alerts[:i], alerts[i+1:]...)
			return
		}
	}
}

// Forget drops everything queued for the session, e.g. on logout.
func (q *AlertQueue) Forget(sessionID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, sessionID)
}
