package models

import "time"

// Ticket statuses. Any status may transition to any other; tickets always
// start Open and Closed tickets may be reopened.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusClosed     = "Closed"
)

// Priorities accepted on complaint submission.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// DefaultDepartment absorbs students and tickets whose category has no
// departmental owner.
const DefaultDepartment = "General"

// Departments is the fixed organizational list.
var Departments = []string{
	DefaultDepartment,
	"Housing Office",
	"ICT Support",
	"Lab Management",
	"Facility Office",
}

// IsDepartment reports whether s is one of the fixed departments.
func IsDepartment(s string) bool {
	for _, d := range Departments {
		if d == s {
			return true
		}
	}
	return false
}

// Ticket is a filed complaint tracked through the status workflow.
// Department is copied from the category at creation time and is not
// re-derived if the category changes later.
type Ticket struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	Priority    string    `json:"priority"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Remarks     []Remark  `json:"remarks"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Remark is an append-only note attached by staff or an admin.
type Remark struct {
	By   string    `json:"by"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Category routes tickets of a named issue type to the department that owns
// them. Categories are admin-created and immutable.
type Category struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}
