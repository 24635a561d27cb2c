package domain

import (
	"time"
)

// AssignmentStatus is the display status of an assignment.
type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusSubmitted AssignmentStatus = "submitted"
	StatusLate      AssignmentStatus = "late"
)

// Assignment is a piece of coursework the student has to hand in.
//
// Once SubmittedDate is set, Status is authoritative (submitted or late) and
// is never recomputed. Without a SubmittedDate the stored Status is advisory
// only; the effective status is derived from DueDate.
type Assignment struct {
	ID            int              `json:"id"`
	Title         string           `json:"title"`
	Course        string           `json:"course"` // display label, e.g. "CS201 - Data Structures"
	CourseID      int              `json:"courseId"`
	Description   string           `json:"description,omitempty"`
	DueDate       Date             `json:"dueDate"`
	SubmittedDate *Date            `json:"submittedDate,omitempty"`
	MaxScore      int              `json:"maxScore"`
	Score         *int             `json:"score,omitempty"`
	Status        AssignmentStatus `json:"status"`
}

// IsSubmitted reports whether the assignment has been handed in.
func (a Assignment) IsSubmitted() bool {
	return a.SubmittedDate != nil
}

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

// NewDate builds a Date from its parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for seed data and tests.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// In returns midnight at the start of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d falls strictly before o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) String() string {
	return d.In(time.UTC).Format(dateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
