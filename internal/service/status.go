package service

import (
	"alcyxob/student-portal/internal/domain"
	"math"
	"time"
)

const (
	day = 24 * time.Hour
	// dueSoonDays is the window in which a pending assignment counts as
	// "due soon". It only affects styling; the status stays pending.
	dueSoonDays = 2
)

// DaysUntilDue is ceil((due - now) / 1 day), with due taken as midnight at
// the start of the due date in now's location. An assignment due later today
// yields 0 or 1, never a negative number.
func DaysUntilDue(due domain.Date, now time.Time) int {
	diff := due.In(now.Location()).Sub(now)
	return int(math.Ceil(float64(diff) / float64(day)))
}

// ResolveStatus derives the display status of a.
// A submitted assignment keeps its stored status whatever the date.
func ResolveStatus(a domain.Assignment, now time.Time) domain.AssignmentStatus {
	if a.IsSubmitted() {
		return a.Status
	}
	if DaysUntilDue(a.DueDate, now) < 0 {
		return domain.StatusLate
	}
	return domain.StatusPending
}

// IsDueSoon reports whether an unsubmitted assignment is pending and due
// within dueSoonDays.
func IsDueSoon(a domain.Assignment, now time.Time) bool {
	if a.IsSubmitted() {
		return false
	}
	days := DaysUntilDue(a.DueDate, now)
	return days >= 0 && days <= dueSoonDays
}
