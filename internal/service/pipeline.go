package service

import (
	"alcyxob/student-portal/internal/domain"
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidFilter = errors.New("invalid filter")
	ErrInvalidSort   = errors.New("invalid sort key")
)

// StatusFilter selects assignments by resolved status.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterPending   StatusFilter = "pending"
	FilterSubmitted StatusFilter = "submitted"
	FilterLate      StatusFilter = "late"
)

// SortKey orders the assignment list.
type SortKey string

const (
	SortByDueDate SortKey = "dueDate"
	SortByCourse  SortKey = "course"
	SortByStatus  SortKey = "status"
)

// AssignmentQuery is the intent produced by the filter buttons, the sort
// select and the course link on the assignments page.
type AssignmentQuery struct {
	Filter   StatusFilter
	Sort     SortKey
	CourseID int // 0 means every course
}

// ParseAssignmentQuery validates raw UI values. Empty values fall back to
// the page defaults (all, dueDate).
func ParseAssignmentQuery(filter, sortKey string, courseID int) (AssignmentQuery, error) {
	q := AssignmentQuery{Filter: FilterAll, Sort: SortByDueDate, CourseID: courseID}

	switch f := StatusFilter(filter); f {
	case "":
	case FilterAll, FilterPending, FilterSubmitted, FilterLate:
		q.Filter = f
	default:
		return q, ErrInvalidFilter
	}

	switch s := SortKey(sortKey); s {
	case "":
	case SortByDueDate, SortByCourse, SortByStatus:
		q.Sort = s
	default:
		return q, ErrInvalidSort
	}
	return q, nil
}

// FilterAndSortAssignments returns a new slice holding the items that pass
// q.Filter, stably ordered by q.Sort. items is left untouched.
//
// Filtering uses the resolved status. Sorting by status is plain string
// order, so late < pending < submitted.
func FilterAndSortAssignments(items []domain.Assignment, q AssignmentQuery, now time.Time) []domain.Assignment {
	out := make([]domain.Assignment, 0, len(items))
	resolved := make([]domain.AssignmentStatus, 0, len(items))
	for _, a := range items {
		if q.CourseID != 0 && a.CourseID != q.CourseID {
			continue
		}
		st := ResolveStatus(a, now)
		if q.Filter != FilterAll && q.Filter != "" && string(st) != string(q.Filter) {
			continue
		}
		out = append(out, a)
		resolved = append(resolved, st)
	}

	var less func(i, j int) bool
	switch q.Sort {
	case SortByCourse:
		less = func(i, j int) bool { return out[i].Course < out[j].Course }
	case SortByStatus:
		less = func(i, j int) bool { return resolved[i] < resolved[j] }
	case SortByDueDate, "":
		less = func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) }
	default:
		return out
	}

	// Sort an index permutation so out and resolved stay aligned.
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return less(idx[i], idx[j]) })

	sorted := make([]domain.Assignment, len(out))
	for i, k := range idx {
		sorted[i] = out[k]
	}
	return sorted
}

// PendingCount is the sidebar badge: every item whose resolved status is
// pending or late. Items handed in late keep counting.
func PendingCount(items []domain.Assignment, now time.Time) int {
	n := 0
	for _, a := range items {
		switch ResolveStatus(a, now) {
		case domain.StatusPending, domain.StatusLate:
			n++
		}
	}
	return n
}

// OpenCount is the number of items not handed in yet.
func OpenCount(items []domain.Assignment) int {
	n := 0
	for _, a := range items {
		if !a.IsSubmitted() {
			n++
		}
	}
	return n
}

// CourseFilter selects courses by their stored status.
type CourseFilter string

const (
	CourseFilterAll       CourseFilter = "all"
	CourseFilterActive    CourseFilter = "active"
	CourseFilterCompleted CourseFilter = "completed"
)

// CourseQuery is the intent of the courses page: a filter button plus the
// search box.
type CourseQuery struct {
	Filter CourseFilter
	Search string
}

func ParseCourseQuery(filter, search string) (CourseQuery, error) {
	q := CourseQuery{Filter: CourseFilterAll, Search: search}
	switch f := CourseFilter(filter); f {
	case "":
	case CourseFilterAll, CourseFilterActive, CourseFilterCompleted:
		q.Filter = f
	default:
		return q, ErrInvalidFilter
	}
	return q, nil
}

// FilterCourses keeps courses matching both the status filter and the
// case-insensitive search over title, code, instructor and description.
// Order is preserved.
func FilterCourses(items []domain.Course, q CourseQuery) []domain.Course {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]domain.Course, 0, len(items))
	for _, c := range items {
		if q.Filter != CourseFilterAll && q.Filter != "" && string(c.Status) != string(q.Filter) {
			continue
		}
		if term != "" && !courseMatches(c, term) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func courseMatches(c domain.Course, term string) bool {
	for _, field := range []string{c.Title, c.Code, c.Instructor, c.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
