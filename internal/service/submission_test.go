package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"alcyxob/student-portal/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type simulatorFixture struct {
	repo      repository.AssignmentRepository
	clock     *fakeClock
	scheduler *manualScheduler
	notifier  *recordingNotifier
	sim       *Simulator
}

func newSimulatorFixture(t *testing.T) *simulatorFixture {
	t.Helper()
	f := &simulatorFixture{
		repo:     memory.NewAssignmentRepository(memory.Open(memory.DefaultSeed())),
		clock:    newFakeClock(at("2023-10-19", 9, 0)),
		notifier: &recordingNotifier{},
	}
	f.scheduler = newManualScheduler(f.clock)
	f.sim = NewSimulator(f.repo, f.clock, f.scheduler, f.notifier, DefaultSubmitDelay, zaptest.NewLogger(t))
	return f
}

func TestSimulator_SubmitLifecycle(t *testing.T) {
	f := newSimulatorFixture(t)
	ctx := context.Background()

	state, ok := f.sim.Submit(ctx, "browser-1", 1)
	require.True(t, ok)
	assert.Equal(t, StateSubmitting, state)

	// Nothing is written until the delay has passed.
	a, err := f.repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, a.IsSubmitted())

	f.scheduler.Advance(time.Second)
	state, _ = f.sim.State(ctx, 1)
	assert.Equal(t, StateSubmitting, state)

	f.scheduler.Advance(500 * time.Millisecond)
	state, _ = f.sim.State(ctx, 1)
	assert.Equal(t, StateSubmitted, state)

	a, err = f.repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, a.SubmittedDate)
	assert.Equal(t, domain.MustParseDate("2023-10-19"), *a.SubmittedDate)
	assert.Equal(t, domain.StatusSubmitted, a.Status)
	assert.Equal(t, domain.StatusSubmitted, ResolveStatus(*a, f.clock.Now()))

	alerts := f.notifier.All()
	require.Len(t, alerts, 1)
	assert.Equal(t, `Assignment "Binary Search Tree Implementation" submitted successfully!`, alerts[0].Message)
	assert.Equal(t, domain.AlertSuccess, alerts[0].Type)
	assert.Equal(t, []string{"browser-1"}, f.notifier.sids)
}

func TestSimulator_SecondSubmitDoesNotReschedule(t *testing.T) {
	f := newSimulatorFixture(t)
	ctx := context.Background()

	f.sim.Submit(ctx, "b", 1)
	state, ok := f.sim.Submit(ctx, "b", 1)
	assert.True(t, ok)
	assert.Equal(t, StateSubmitting, state)
	assert.Equal(t, 1, f.scheduler.Len())

	f.scheduler.Advance(DefaultSubmitDelay)
	state, _ = f.sim.Submit(ctx, "b", 1)
	assert.Equal(t, StateSubmitted, state)
	assert.Equal(t, 0, f.scheduler.Len())
	assert.Len(t, f.notifier.All(), 1)
}

func TestSimulator_ConcurrentSubmissionsAreIndependent(t *testing.T) {
	f := newSimulatorFixture(t)
	ctx := context.Background()

	f.sim.Submit(ctx, "b", 1)
	f.scheduler.Advance(time.Second)
	f.sim.Submit(ctx, "b", 5)

	f.scheduler.Advance(500 * time.Millisecond)
	s1, _ := f.sim.State(ctx, 1)
	s5, _ := f.sim.State(ctx, 5)
	assert.Equal(t, StateSubmitted, s1)
	assert.Equal(t, StateSubmitting, s5)

	f.scheduler.Advance(time.Second)
	s5, _ = f.sim.State(ctx, 5)
	assert.Equal(t, StateSubmitted, s5)

	// Other items never moved.
	a6, err := f.repo.GetByID(ctx, 6)
	require.NoError(t, err)
	assert.False(t, a6.IsSubmitted())
	assert.Equal(t, map[int]SubmissionState{1: StateSubmitted, 5: StateSubmitted}, f.sim.States())
}

func TestSimulator_UnknownID(t *testing.T) {
	f := newSimulatorFixture(t)

	state, ok := f.sim.Submit(context.Background(), "b", 99)
	assert.False(t, ok)
	assert.Equal(t, StateUnsubmitted, state)
	assert.Equal(t, 0, f.scheduler.Len())
	assert.Empty(t, f.sim.States())

	_, ok = f.sim.State(context.Background(), 99)
	assert.False(t, ok)
}

func TestSimulator_AlreadySubmitted(t *testing.T) {
	f := newSimulatorFixture(t)

	state, ok := f.sim.Submit(context.Background(), "b", 2)
	assert.True(t, ok)
	assert.Equal(t, StateSubmitted, state)
	assert.Equal(t, 0, f.scheduler.Len())

	a, err := f.repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("2023-10-17"), *a.SubmittedDate)
}

func TestSimulator_LateItemIsNotSubmitted(t *testing.T) {
	f := newSimulatorFixture(t)
	ctx := context.Background()
	// 1 was due 2023-10-20.
	f.clock.Advance(7 * 24 * time.Hour)

	state, ok := f.sim.Submit(ctx, "b", 1)
	assert.False(t, ok)
	assert.Equal(t, StateUnsubmitted, state)
	assert.Equal(t, 0, f.scheduler.Len())

	a, err := f.repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, a.IsSubmitted())
	assert.Equal(t, domain.StatusLate, ResolveStatus(*a, f.clock.Now()))
	assert.Empty(t, f.notifier.All())
}

type immediateScheduler struct{}

func (immediateScheduler) AfterFunc(d time.Duration, f func()) { f() }

func TestSimulator_ImmediateScheduler(t *testing.T) {
	repo := memory.NewAssignmentRepository(memory.Open(memory.DefaultSeed()))
	clock := newFakeClock(at("2023-10-19", 9, 0))
	sim := NewSimulator(repo, clock, immediateScheduler{}, nil, 0, nil)

	state, ok := sim.Submit(context.Background(), "b", 6)
	assert.True(t, ok)
	assert.Equal(t, StateSubmitting, state)

	state, _ = sim.State(context.Background(), 6)
	assert.Equal(t, StateSubmitted, state)
}
