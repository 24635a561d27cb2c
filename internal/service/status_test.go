package service

import (
	"testing"
	"time"

	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilDue(t *testing.T) {
	due := domain.MustParseDate("2023-10-20")
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"midnight the day before", at("2023-10-19", 0, 0), 1},
		{"noon the day before", at("2023-10-19", 12, 0), 1},
		{"midnight on the day", at("2023-10-20", 0, 0), 0},
		{"later on the due day", at("2023-10-20", 15, 30), 0},
		{"a day after", at("2023-10-21", 0, 0), -1},
		{"three days before", at("2023-10-17", 0, 0), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilDue(due, tt.now))
		})
	}
}

func TestResolveStatus_SubmittedIsSticky(t *testing.T) {
	late := assignment(1, "2023-10-15", "2023-10-16", domain.StatusLate)
	onTime := assignment(2, "2023-10-18", "2023-10-17", domain.StatusSubmitted)

	for _, now := range []time.Time{at("2023-01-01", 0, 0), at("2023-10-19", 0, 0), at("2030-01-01", 0, 0)} {
		assert.Equal(t, domain.StatusLate, ResolveStatus(late, now))
		assert.Equal(t, domain.StatusSubmitted, ResolveStatus(onTime, now))
	}
}

func TestResolveStatus_Derived(t *testing.T) {
	now := at("2023-10-19", 10, 0)

	// Stored status is advisory for unsubmitted work.
	pastDue := assignment(1, "2023-10-18", "", domain.StatusPending)
	assert.Equal(t, domain.StatusLate, ResolveStatus(pastDue, now))

	stale := assignment(2, "2023-10-25", "", domain.StatusLate)
	assert.Equal(t, domain.StatusPending, ResolveStatus(stale, now))

	dueToday := assignment(3, "2023-10-19", "", domain.StatusPending)
	assert.Equal(t, domain.StatusPending, ResolveStatus(dueToday, now))
}

func TestIsDueSoon(t *testing.T) {
	now := at("2023-10-19", 0, 0)
	assert.True(t, IsDueSoon(assignment(1, "2023-10-20", "", domain.StatusPending), now))
	assert.True(t, IsDueSoon(assignment(2, "2023-10-21", "", domain.StatusPending), now))
	assert.False(t, IsDueSoon(assignment(3, "2023-10-22", "", domain.StatusPending), now))
	assert.False(t, IsDueSoon(assignment(4, "2023-10-18", "", domain.StatusPending), now))
	assert.False(t, IsDueSoon(assignment(5, "2023-10-20", "2023-10-19", domain.StatusSubmitted), now))

	// The due-soon branch never changes the status value.
	assert.Equal(t, domain.StatusPending, ResolveStatus(assignment(1, "2023-10-20", "", domain.StatusPending), now))
}

func TestResolveStatus_SeedScenario(t *testing.T) {
	now := at("2023-10-19", 0, 0)
	want := map[int]domain.AssignmentStatus{
		1: domain.StatusPending,
		2: domain.StatusSubmitted,
		3: domain.StatusLate,
		4: domain.StatusSubmitted,
		5: domain.StatusPending,
		6: domain.StatusPending,
	}
	for _, a := range memory.DefaultSeed().Assignments {
		assert.Equal(t, want[a.ID], ResolveStatus(a, now), "assignment %d", a.ID)
	}
}
