package models

// Role is the closed set of account roles. Visibility and authorization
// logic dispatches over this type with a switch; an unknown value fails
// every check.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a raw string onto the role set. The second return is false
// for anything outside the set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleStaff, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Label returns the display name used in the dashboard.
func (r Role) Label() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleStaff:
		return "Department Staff"
	case RoleAdmin:
		return "Admin"
	}
	return string(r)
}
