package domain

// Profile is the student's own record. There is exactly one per portal.
type Profile struct {
	FullName       string `json:"fullName" form:"fullName" validate:"notblank"`
	Email          string `json:"email" form:"email" validate:"notblank,portal_email"`
	Phone          string `json:"phone" form:"phone"`
	StudentID      string `json:"studentId" form:"studentId"`
	Department     string `json:"department" form:"department"`
	EnrollmentYear string `json:"enrollmentYear" form:"enrollmentYear"`
	Bio            string `json:"bio" form:"bio"`
	Avatar         string `json:"avatar" form:"-"`
}

// ProfileMode is whether the profile form is read-only or editable.
type ProfileMode string

const (
	ProfileView ProfileMode = "view"
	ProfileEdit ProfileMode = "edit"
)
