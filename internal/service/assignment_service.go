package service

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"context"
	"time"
)

// AssignmentView is an assignment resolved against one instant, ready for
// the Render Layer.
type AssignmentView struct {
	domain.Assignment
	Resolved domain.AssignmentStatus
	State    SubmissionState
	DaysLeft int
	DueSoon  bool
	// JustSubmitted is set for items completed by the simulator in this run.
	JustSubmitted bool
	// RecheckAfter is how long a Submitting item waits before reloading itself.
	RecheckAfter time.Duration
}

// RecheckMillis is RecheckAfter for the hx-trigger delay.
func (v AssignmentView) RecheckMillis() int64 {
	return v.RecheckAfter.Milliseconds()
}

// CanSubmit tells the Render Layer whether to attach the submit action.
func (v AssignmentView) CanSubmit() bool {
	return v.Resolved == domain.StatusPending && v.State != StateSubmitting
}

// AssignmentPage is one render pass of the assignments list.
type AssignmentPage struct {
	Query        AssignmentQuery
	Items        []AssignmentView
	PendingCount int
	Now          time.Time
}

// recheckSlack lets the completion land before a Submitting item reloads.
const recheckSlack = 100 * time.Millisecond

type AssignmentService interface {
	List(ctx context.Context, q AssignmentQuery) (*AssignmentPage, error)
	Get(ctx context.Context, id int) (*AssignmentView, error)
	// Submit starts a simulated submission. ok is false for unknown ids.
	Submit(ctx context.Context, sessionID string, id int) (view *AssignmentView, ok bool, err error)
	PendingCount(ctx context.Context) (int, error)
	// OpenCount counts the assignments not handed in yet.
	OpenCount(ctx context.Context) (int, error)
	// Upcoming returns the n earliest-due assignments for the dashboard.
	Upcoming(ctx context.Context, n int) ([]AssignmentView, error)
}

type assignmentService struct {
	repo      repository.AssignmentRepository
	clock     Clock
	simulator *Simulator
}

func NewAssignmentService(repo repository.AssignmentRepository, clock Clock, simulator *Simulator) AssignmentService {
	return &assignmentService{repo: repo, clock: clock, simulator: simulator}
}

func (s *assignmentService) List(ctx context.Context, q AssignmentQuery) (*AssignmentPage, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	// One instant for the whole pass so badges and "due in" texts agree.
	now := s.clock.Now()
	states := s.simulator.States()

	ordered := FilterAndSortAssignments(all, q, now)
	page := &AssignmentPage{
		Query:        q,
		Items:        make([]AssignmentView, 0, len(ordered)),
		PendingCount: PendingCount(all, now),
		Now:          now,
	}
	for _, a := range ordered {
		page.Items = append(page.Items, s.view(a, now, states[a.ID]))
	}
	return page, nil
}

func (s *assignmentService) Get(ctx context.Context, id int) (*AssignmentView, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	state, _ := s.simulator.State(ctx, id)
	v := s.view(*a, s.clock.Now(), state)
	return &v, nil
}

func (s *assignmentService) Submit(ctx context.Context, sessionID string, id int) (*AssignmentView, bool, error) {
	if _, ok := s.simulator.Submit(ctx, sessionID, id); !ok {
		return nil, false, nil
	}
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, true, err
	}
	return v, true, nil
}

func (s *assignmentService) PendingCount(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return PendingCount(all, s.clock.Now()), nil
}

func (s *assignmentService) OpenCount(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return OpenCount(all), nil
}

func (s *assignmentService) Upcoming(ctx context.Context, n int) ([]AssignmentView, error) {
	page, err := s.List(ctx, AssignmentQuery{Filter: FilterAll, Sort: SortByDueDate})
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(page.Items) > n {
		page.Items = page.Items[:n]
	}
	return page.Items, nil
}

func (s *assignmentService) view(a domain.Assignment, now time.Time, tracked SubmissionState) AssignmentView {
	v := newAssignmentView(a, now, tracked)
	if v.State == StateSubmitting {
		v.RecheckAfter = s.simulator.Delay() + recheckSlack
	}
	return v
}

func newAssignmentView(a domain.Assignment, now time.Time, tracked SubmissionState) AssignmentView {
	v := AssignmentView{
		Assignment: a,
		Resolved:   ResolveStatus(a, now),
		DaysLeft:   DaysUntilDue(a.DueDate, now),
		DueSoon:    IsDueSoon(a, now),
		State:      StateUnsubmitted,
	}
	switch {
	case tracked == StateSubmitting:
		v.State = StateSubmitting
	case tracked == StateSubmitted:
		v.State = StateSubmitted
		v.JustSubmitted = true
	case a.IsSubmitted():
		v.State = StateSubmitted
	}
	return v
}
