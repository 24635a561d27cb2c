package service

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"context"
	"sort"
	"sync"
	"time"
)

// fakeClock is a settable clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// manualScheduler queues callbacks until Advance moves time past them.
type manualScheduler struct {
	mu      sync.Mutex
	clock   *fakeClock
	pending []scheduled
}

type scheduled struct {
	at time.Time
	f  func()
}

func newManualScheduler(clock *fakeClock) *manualScheduler {
	return &manualScheduler{clock: clock}
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, scheduled{at: s.clock.Now().Add(d), f: f})
}

// Advance moves the clock and runs every callback that became due, in
// deadline order.
func (s *manualScheduler) Advance(d time.Duration) {
	s.clock.Advance(d)
	now := s.clock.Now()

	s.mu.Lock()
	sort.SliceStable(s.pending, func(i, j int) bool { return s.pending[i].at.Before(s.pending[j].at) })
	var due []scheduled
	rest := s.pending[:0]
	for _, p := range s.pending {
		if !p.at.After(now) {
			due = append(due, p)
		} else {
			rest = append(rest, p)
		}
	}
	s.pending = rest
	s.mu.Unlock()

	for _, p := range due {
		p.f()
	}
}

func (s *manualScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// mapPreferenceStore is an in-memory repository.PreferenceStore.
type mapPreferenceStore struct {
	mu   sync.Mutex
	data map[string]map[string]string
}

func newMapPreferenceStore() *mapPreferenceStore {
	return &mapPreferenceStore{data: make(map[string]map[string]string)}
}

func (m *mapPreferenceStore) Get(ctx context.Context, sid, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[sid][key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return v, nil
}

func (m *mapPreferenceStore) Set(ctx context.Context, sid, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[sid] == nil {
		m.data[sid] = make(map[string]string)
	}
	m.data[sid][key] = value
	return nil
}

func (m *mapPreferenceStore) Delete(ctx context.Context, sid, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[sid], key)
	return nil
}

func (m *mapPreferenceStore) Clear(ctx context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, sid)
	return nil
}

func (m *mapPreferenceStore) Close(ctx context.Context) error { return nil }

// recordingNotifier remembers every alert.
type recordingNotifier struct {
	mu     sync.Mutex
	alerts []domain.Alert
	sids   []string
}

func (n *recordingNotifier) Notify(sid, message string, typ domain.AlertType, d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, domain.Alert{Message: message, Type: typ, Duration: d})
	n.sids = append(n.sids, sid)
}

func (n *recordingNotifier) All() []domain.Alert {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Alert(nil), n.alerts...)
}

// at returns local-zone wall time on the given date.
func at(date string, hour, min int) time.Time {
	d := domain.MustParseDate(date)
	return time.Date(d.Year, d.Month, d.Day, hour, min, 0, 0, time.UTC)
}

func assignment(id int, due string, submitted string, stored domain.AssignmentStatus) domain.Assignment {
	a := domain.Assignment{
		ID:       id,
		Title:    "A",
		Course:   "C",
		DueDate:  domain.MustParseDate(due),
		MaxScore: 100,
		Status:   stored,
	}
	if submitted != "" {
		d := domain.MustParseDate(submitted)
		a.SubmittedDate = &d
	}
	return a
}

func ids(items []domain.Assignment) []int {
	out := make([]int, len(items))
	for i, a := range items {
		out[i] = a.ID
	}
	return out
}
