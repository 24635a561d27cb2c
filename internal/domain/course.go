package domain

// CourseStatus tells whether a course is still running.
type CourseStatus string

const (
	CourseActive    CourseStatus = "active"
	CourseCompleted CourseStatus = "completed"
)

// Course is an enrolled course. Read-only for the portal.
type Course struct {
	ID               int          `json:"id"`
	Code             string       `json:"code"`
	Title            string       `json:"title"`
	Instructor       string       `json:"instructor"`
	InstructorAvatar string       `json:"instructorAvatar,omitempty"` // initials, e.g. "SJ"
	Progress         int          `json:"progress"`                   // percent, 0..100
	Status           CourseStatus `json:"status"`
	DueAssignments   int          `json:"dueAssignments"`
	Credits          int          `json:"credits"`
	Description      string       `json:"description,omitempty"`
}

func (c Course) IsActive() bool {
	return c.Status == CourseActive
}
