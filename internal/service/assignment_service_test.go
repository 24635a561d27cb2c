package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssignmentService(t *testing.T) (AssignmentService, *simulatorFixture) {
	t.Helper()
	f := newSimulatorFixture(t)
	return NewAssignmentService(f.repo, f.clock, f.sim), f
}

func TestAssignmentService_List(t *testing.T) {
	svc, _ := newTestAssignmentService(t)

	page, err := svc.List(context.Background(), AssignmentQuery{Filter: FilterAll, Sort: SortByDueDate})
	require.NoError(t, err)

	assert.Equal(t, 4, page.PendingCount)
	require.Len(t, page.Items, 6)

	byID := map[int]AssignmentView{}
	for _, v := range page.Items {
		byID[v.ID] = v
	}
	assert.Equal(t, domain.StatusPending, byID[1].Resolved)
	assert.Equal(t, 1, byID[1].DaysLeft)
	assert.True(t, byID[1].DueSoon)
	assert.True(t, byID[1].CanSubmit())

	assert.Equal(t, domain.StatusLate, byID[3].Resolved)
	assert.Equal(t, StateSubmitted, byID[3].State)
	assert.False(t, byID[3].CanSubmit())
	assert.False(t, byID[3].JustSubmitted)

	assert.Equal(t, 6, byID[5].DaysLeft)
	assert.False(t, byID[5].DueSoon)
}

func TestAssignmentService_ListFiltered(t *testing.T) {
	svc, _ := newTestAssignmentService(t)

	page, err := svc.List(context.Background(), AssignmentQuery{Filter: FilterPending, Sort: SortByDueDate})
	require.NoError(t, err)

	got := []int{}
	for _, v := range page.Items {
		got = append(got, v.ID)
	}
	assert.Equal(t, []int{1, 6, 5}, got)
	// The badge counts every open item, not only the visible ones.
	assert.Equal(t, 4, page.PendingCount)
}

func TestAssignmentService_Submit(t *testing.T) {
	svc, f := newTestAssignmentService(t)
	ctx := context.Background()

	v, ok, err := svc.Submit(ctx, "b", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, StateSubmitting, v.State)
	assert.Equal(t, domain.StatusPending, v.Resolved)
	assert.False(t, v.CanSubmit())
	assert.Equal(t, DefaultSubmitDelay+100*time.Millisecond, v.RecheckAfter)
	assert.EqualValues(t, 1600, v.RecheckMillis())

	f.scheduler.Advance(DefaultSubmitDelay)

	v, err = svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, v.State)
	assert.Equal(t, domain.StatusSubmitted, v.Resolved)
	assert.True(t, v.JustSubmitted)

	n, err := svc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = svc.OpenCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Zero(t, v.RecheckAfter)
}

func TestAssignmentService_SubmitLate(t *testing.T) {
	svc, f := newTestAssignmentService(t)
	ctx := context.Background()
	f.clock.Advance(7 * 24 * time.Hour)

	v, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLate, v.Resolved)
	assert.False(t, v.CanSubmit())

	v, ok, err := svc.Submit(ctx, "b", 1)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)

	v, err = svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLate, v.Resolved)
	assert.Nil(t, v.SubmittedDate)
}

func TestAssignmentService_SubmitUnknown(t *testing.T) {
	svc, f := newTestAssignmentService(t)

	v, ok, err := svc.Submit(context.Background(), "b", 42)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, 0, f.scheduler.Len())
}

func TestAssignmentService_Upcoming(t *testing.T) {
	svc, _ := newTestAssignmentService(t)

	items, err := svc.Upcoming(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 4, items[0].ID)
	assert.Equal(t, 3, items[1].ID)
	assert.Equal(t, 2, items[2].ID)
}

func TestCourseService(t *testing.T) {
	svc := NewCourseService(memory.NewCourseRepository(memory.Open(memory.DefaultSeed())))
	ctx := context.Background()

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 4)

	c, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "MATH101", c.Code)
}
