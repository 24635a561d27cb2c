package memory

import (
	"alcyxob/student-portal/internal/domain"
)

// Seed is the static dataset the portal starts from.
type Seed struct {
	Assignments []domain.Assignment
	Courses     []domain.Course
	Profile     domain.Profile
	Stats       []domain.Stat
}

func intPtr(v int) *int { return &v }

func datePtr(s string) *domain.Date {
	d := domain.MustParseDate(s)
	return &d
}

// DefaultSeed returns the demo semester shipped with the portal.
func DefaultSeed() Seed {
	return Seed{
		Assignments: []domain.Assignment{
			{
				ID:          1,
				Title:       "Binary Search Tree Implementation",
				Course:      "CS201 - Data Structures",
				CourseID:    2,
				DueDate:     domain.MustParseDate("2023-10-20"),
				MaxScore:    100,
				Status:      domain.StatusPending,
				Description: "Implement a binary search tree with insert, delete, and search operations.",
			},
			{
				ID:            2,
				Title:         "SQL Queries Practice",
				Course:        "CS301 - Database Systems",
				CourseID:      4,
				DueDate:       domain.MustParseDate("2023-10-18"),
				SubmittedDate: datePtr("2023-10-17"),
				MaxScore:      100,
				Score:         intPtr(95),
				Status:        domain.StatusSubmitted,
				Description:   "Write SQL queries for the given database schema.",
			},
			{
				ID:            3,
				Title:         "Web API Development",
				Course:        "CS101 - Introduction to Programming",
				CourseID:      1,
				DueDate:       domain.MustParseDate("2023-10-15"),
				SubmittedDate: datePtr("2023-10-16"),
				MaxScore:      100,
				Score:         intPtr(85),
				Status:        domain.StatusLate,
				Description:   "Create a RESTful API with CRUD operations.",
			},
			{
				ID:            4,
				Title:         "Calculus Problem Set 5",
				Course:        "MATH101 - Calculus I",
				CourseID:      3,
				DueDate:       domain.MustParseDate("2023-10-10"),
				SubmittedDate: datePtr("2023-10-09"),
				MaxScore:      100,
				Score:         intPtr(92),
				Status:        domain.StatusSubmitted,
				Description:   "Solve differential calculus problems.",
			},
			{
				ID:          5,
				Title:       "Physics Lab Report",
				Course:      "PHYS101 - Physics I",
				CourseID:    6,
				DueDate:     domain.MustParseDate("2023-10-25"),
				MaxScore:    100,
				Status:      domain.StatusPending,
				Description: "Write a lab report on Newton's laws of motion.",
			},
			{
				ID:          6,
				Title:       "Web Development Project Proposal",
				Course:      "CS401 - Web Development",
				CourseID:    5,
				DueDate:     domain.MustParseDate("2023-10-22"),
				MaxScore:    50,
				Status:      domain.StatusPending,
				Description: "Submit a proposal for your final web development project.",
			},
		},
		Courses: []domain.Course{
			{ID: 1, Code: "CS101", Title: "Introduction to Programming", Instructor: "Dr. Sarah Johnson", InstructorAvatar: "SJ", Progress: 85, Status: domain.CourseActive, DueAssignments: 2, Credits: 3, Description: "Fundamental concepts of programming using Python."},
			{ID: 2, Code: "CS201", Title: "Data Structures", Instructor: "Prof. Michael Chen", InstructorAvatar: "MC", Progress: 70, Status: domain.CourseActive, DueAssignments: 1, Credits: 4, Description: "Study of fundamental data structures and algorithms."},
			{ID: 3, Code: "MATH101", Title: "Calculus I", Instructor: "Dr. Robert Williams", InstructorAvatar: "RW", Progress: 100, Status: domain.CourseCompleted, DueAssignments: 0, Credits: 4, Description: "Introduction to differential and integral calculus."},
			{ID: 4, Code: "CS301", Title: "Database Systems", Instructor: "Dr. Emily Davis", InstructorAvatar: "ED", Progress: 60, Status: domain.CourseActive, DueAssignments: 0, Credits: 3, Description: "Design and implementation of database systems."},
			{ID: 5, Code: "CS401", Title: "Web Development", Instructor: "Prof. Jessica Lee", InstructorAvatar: "JL", Progress: 40, Status: domain.CourseActive, DueAssignments: 1, Credits: 3, Description: "Full-stack web development with modern frameworks."},
			{ID: 6, Code: "PHYS101", Title: "Physics I", Instructor: "Dr. James Wilson", InstructorAvatar: "JW", Progress: 100, Status: domain.CourseCompleted, DueAssignments: 0, Credits: 4, Description: "Mechanics, heat, and sound."},
		},
		Profile: domain.Profile{
			FullName:       "John Doe",
			Email:          "john.doe@university.edu",
			Phone:          "+1 (555) 123-4567",
			StudentID:      "CS2023001",
			Department:     "Computer Science",
			EnrollmentYear: "2023",
			Bio:            "Passionate computer science student with interest in web development, machine learning, and data structures. Currently focusing on building full-stack applications.",
			Avatar:         "https://ui-avatars.com/api/?name=John+Doe&background=4e73df&color=ffffff&size=150",
		},
		Stats: []domain.Stat{
			{ID: 1, Title: "Total Courses", Value: "6", Icon: "fas fa-book", Color: "primary", Description: "Currently enrolled"},
			{ID: 2, Title: "Assignments Due", Value: "3", Icon: "fas fa-tasks", Color: "danger", Description: "Pending submission"},
			{ID: 3, Title: "Attendance", Value: "95%", Icon: "fas fa-calendar-check", Color: "success", Description: "Overall percentage"},
			{ID: 4, Title: "Current GPA", Value: "3.8", Icon: "fas fa-chart-line", Color: "warning", Description: "Out of 4.0 scale"},
		},
	}
}
