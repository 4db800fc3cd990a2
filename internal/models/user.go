package models

// User is an account record. Accounts are created at signup or by an admin
// and are never edited or deleted afterwards. The password hash is part of
// the persisted document but must never be returned over HTTP; handlers
// serialize the Profile view instead.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Department   string `json:"department"`
	PasswordHash string `json:"passwordHash"`
}

// Profile is the account shape exposed by the API.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
}

func (u User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Department: u.Department}
}

// Session is the ephemeral record identifying the authenticated actor. It is
// a snapshot of the user at login time, not a live reference: later user
// edits do not change an open session.
type Session struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
}
