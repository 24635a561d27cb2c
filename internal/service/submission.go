package service

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SubmissionState is where an assignment is in the submit flow.
type SubmissionState string

const (
	StateUnsubmitted SubmissionState = "unsubmitted"
	StateSubmitting  SubmissionState = "submitting"
	StateSubmitted   SubmissionState = "submitted"
)

// DefaultSubmitDelay is the simulated round trip of a submission.
const DefaultSubmitDelay = 1500 * time.Millisecond

// Simulator fakes handing in an assignment: the item goes to Submitting at
// once and to Submitted after a fixed delay. It never fails and cannot be
// cancelled. Submissions of different assignments run independently.
//
// All state changes, including the deferred completion, happen under one
// mutex, so the collection only ever sees one writer at a time.
type Simulator struct {
	mu        sync.Mutex
	repo      repository.AssignmentRepository
	clock     Clock
	scheduler Scheduler
	notifier  Notifier
	delay     time.Duration
	log       *zap.Logger

	// states only tracks assignments that went through this simulator;
	// everything else is derived from the repository.
	states map[int]SubmissionState
}

func NewSimulator(
	repo repository.AssignmentRepository,
	clock Clock,
	scheduler Scheduler,
	notifier Notifier,
	delay time.Duration,
	log *zap.Logger,
) *Simulator {
	if delay < 0 {
		delay = DefaultSubmitDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{
		repo:      repo,
		clock:     clock,
		scheduler: scheduler,
		notifier:  notifier,
		delay:     delay,
		log:       log,
		states:    make(map[int]SubmissionState),
	}
}

// Submit starts the submission of assignment id on behalf of sessionID.
// The returned state is the one after the synchronous part of the call.
// ok is false when no assignment has that id, or when the item is open but
// no longer pending (past due); nothing happens then.
func (s *Simulator) Submit(ctx context.Context, sessionID string, id int) (state SubmissionState, ok bool) {
	s.mu.Lock()
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.mu.Unlock()
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error("lookup before submit failed", zap.Int("assignment_id", id), zap.Error(err))
		}
		return StateUnsubmitted, false
	}
	if st, tracked := s.states[id]; tracked {
		s.mu.Unlock()
		return st, true
	}
	if a.IsSubmitted() {
		s.mu.Unlock()
		return StateSubmitted, true
	}
	// Only pending items carry a submit action; a late one stays late.
	if ResolveStatus(*a, s.clock.Now()) != domain.StatusPending {
		s.mu.Unlock()
		s.log.Debug("submit of a non-pending assignment ignored", zap.Int("assignment_id", id))
		return StateUnsubmitted, false
	}
	s.states[id] = StateSubmitting
	s.mu.Unlock()

	s.log.Debug("submission started", zap.Int("assignment_id", id), zap.String("state", string(StateSubmitting)))
	// Scheduled outside the lock: a scheduler may run f right away.
	s.scheduler.AfterFunc(s.delay, func() { s.complete(sessionID, id) })
	return StateSubmitting, true
}

// complete is the deferred half of Submit.
func (s *Simulator) complete(sessionID string, id int) {
	s.mu.Lock()
	a, err := s.repo.MarkSubmitted(context.Background(), id, domain.DateOf(s.clock.Now()))
	if err != nil {
		s.mu.Unlock()
		s.log.Error("marking assignment submitted failed", zap.Int("assignment_id", id), zap.Error(err))
		return
	}
	s.states[id] = StateSubmitted
	s.mu.Unlock()

	s.log.Debug("submission finished", zap.Int("assignment_id", id), zap.String("state", string(StateSubmitted)))
	if s.notifier != nil {
		s.notifier.Notify(sessionID, fmt.Sprintf("Assignment \"%s\" submitted successfully!", a.Title), domain.AlertSuccess, 0)
	}
}

// Delay is the simulated latency between Submitting and Submitted.
func (s *Simulator) Delay() time.Duration {
	return s.delay
}

// State reports the submission state of id. ok is false for unknown ids.
func (s *Simulator) State(ctx context.Context, id int) (state SubmissionState, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, tracked := s.states[id]; tracked {
		return st, true
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return StateUnsubmitted, false
	}
	if a.IsSubmitted() {
		return StateSubmitted, true
	}
	return StateUnsubmitted, true
}

// States returns a snapshot of every assignment the simulator has touched.
func (s *Simulator) States() map[int]SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]SubmissionState, len(s.states))
	for id, st := range s.states {
		out[id] = st
	}
	return out
}
