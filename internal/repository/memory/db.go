package memory

import (
	"alcyxob/student-portal/internal/domain"
	"sync"
)

type (
	// DB is the in-memory dataset the portal runs on. It is rebuilt from the
	// seed on every start; nothing survives a restart.
	DB struct {
		assignments *assignmentTable
		courses     *courseTable
		profile     *profileTable
		stats       []domain.Stat
	}

	assignmentTable struct {
		rows  []*domain.Assignment // seed order
		index map[int]*domain.Assignment
		mutex sync.RWMutex
	}

	courseTable struct {
		rows  []domain.Course
		mutex sync.RWMutex
	}

	profileTable struct {
		row   domain.Profile
		mutex sync.RWMutex
	}
)

// Open returns a DB loaded with the given seed.
func Open(seed Seed) *DB {
	db := &DB{
		assignments: &assignmentTable{index: make(map[int]*domain.Assignment, len(seed.Assignments))},
		courses:     &courseTable{rows: append([]domain.Course(nil), seed.Courses...)},
		profile:     &profileTable{row: seed.Profile},
		stats:       append([]domain.Stat(nil), seed.Stats...),
	}
	for i := range seed.Assignments {
		a := cloneAssignment(seed.Assignments[i])
		db.assignments.rows = append(db.assignments.rows, &a)
		db.assignments.index[a.ID] = &a
	}
	return db
}

// cloneAssignment deep-copies the pointer fields so callers never share
// memory with the table.
func cloneAssignment(a domain.Assignment) domain.Assignment {
	if a.SubmittedDate != nil {
		d := *a.SubmittedDate
		a.SubmittedDate = &d
	}
	if a.Score != nil {
		s := *a.Score
		a.Score = &s
	}
	return a
}
