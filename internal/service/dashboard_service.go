package service

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"context"
	"fmt"
	"strconv"
	"time"
)

// Stat ids whose values are derived from live data instead of the seed.
const (
	statTotalCourses   = 1
	statAssignmentsDue = 2
)

// upcomingOnDashboard is how many assignments the dashboard lists.
const upcomingOnDashboard = 3

// Dashboard is everything the dashboard page renders.
type Dashboard struct {
	Welcome      string
	Stats        []domain.Stat
	Courses      []domain.Course
	Upcoming     []AssignmentView
	PendingCount int
}

type DashboardService interface {
	// Load builds the dashboard for session and queues the one-time
	// welcome alert.
	Load(ctx context.Context, session domain.Session) (*Dashboard, error)
}

type dashboardService struct {
	stats            repository.StatRepository
	courses          CourseService
	assignments      AssignmentService
	prefs            PreferenceService
	notifier         Notifier
	welcomeAlertTime time.Duration
}

func NewDashboardService(
	stats repository.StatRepository,
	courses CourseService,
	assignments AssignmentService,
	prefs PreferenceService,
	notifier Notifier,
	welcomeAlertTime time.Duration,
) DashboardService {
	return &dashboardService{
		stats:            stats,
		courses:          courses,
		assignments:      assignments,
		prefs:            prefs,
		notifier:         notifier,
		welcomeAlertTime: welcomeAlertTime,
	}
}

func (s *dashboardService) Load(ctx context.Context, session domain.Session) (*Dashboard, error) {
	stats, err := s.stats.List(ctx)
	if err != nil {
		return nil, err
	}
	allCourses, err := s.courses.List(ctx, CourseQuery{Filter: CourseFilterAll})
	if err != nil {
		return nil, err
	}
	active, err := s.courses.Active(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.assignments.PendingCount(ctx)
	if err != nil {
		return nil, err
	}
	open, err := s.assignments.OpenCount(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.assignments.Upcoming(ctx, upcomingOnDashboard)
	if err != nil {
		return nil, err
	}

	for i := range stats {
		switch stats[i].ID {
		case statTotalCourses:
			stats[i].Value = strconv.Itoa(len(allCourses))
		case statAssignmentsDue:
			// "Pending submission": only what is still to hand in.
			stats[i].Value = strconv.Itoa(open)
		}
	}

	d := &Dashboard{
		Welcome:      fmt.Sprintf("Welcome back, %s!", session.CurrentUser),
		Stats:        stats,
		Courses:      active,
		Upcoming:     upcoming,
		PendingCount: pending,
	}

	first, err := s.prefs.ConsumeWelcome(ctx, session.BrowserID)
	if err != nil {
		return nil, err
	}
	if first && s.notifier != nil {
		s.notifier.Notify(session.BrowserID, d.Welcome, domain.AlertSuccess, s.welcomeAlertTime)
	}
	return d, nil
}
