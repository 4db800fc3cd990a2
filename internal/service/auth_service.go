package service

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
	"github.com/EYOB-A19/Astu-compliant-system/internal/store"
	"github.com/EYOB-A19/Astu-compliant-system/internal/utils"
)

// AuthService authenticates users against the stored collection and manages
// the persisted session record.
type AuthService struct {
	mu    sync.Mutex
	store *store.Store
	newID func() string
}

func NewAuthService(st *store.Store) *AuthService {
	return &AuthService{store: st, newID: uuid.NewString}
}

// normalizeEmail trims whitespace and lowercases before any comparison.
// Email uniqueness is case-insensitive throughout.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate matches the credentials against the stored users. roleFilter
// is optional; when set it must equal the matched user's role. On success
// the session snapshot is persisted and returned. The snapshot copies the
// user record; later edits to the user do not change an open session.
func (a *AuthService) Authenticate(email, password string, roleFilter models.Role) (*models.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var match *models.User
	for _, u := range a.store.Users() {
		u := u
		if normalizeEmail(u.Email) == email && utils.CheckPassword(u.PasswordHash, password) {
			match = &u
			break
		}
	}
	if match == nil {
		return nil, ErrInvalidCredentials
	}
	if roleFilter != "" && roleFilter != match.Role {
		return nil, ErrRoleMismatch
	}

	session := models.Session{
		UserID:     match.ID,
		Name:       match.Name,
		Email:      match.Email,
		Role:       match.Role,
		Department: match.Department,
	}
	if err := a.store.SetSession(session); err != nil {
		return nil, err
	}
	return &session, nil
}

// RegisterInput is a signup submission.
type RegisterInput struct {
	Name            string
	Email           string
	Role            models.Role
	Department      string
	Password        string
	ConfirmPassword string
}

// Register validates the candidate, appends the new user and establishes a
// session for it. Students are always placed in the default department.
func (a *AuthService) Register(in RegisterInput) (*models.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := a.addUser(in.Name, in.Email, in.Role, in.Department, in.Password, &in.ConfirmPassword)
	if err != nil {
		return nil, err
	}

	session := models.Session{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
	}
	if err := a.store.SetSession(session); err != nil {
		return nil, err
	}
	return &session, nil
}

// AddUser creates an account from the admin users panel. Same validation as
// Register minus the confirmation check, and no session is established.
func (a *AuthService) AddUser(name, email string, role models.Role, department, password string, actor *models.Session) (*models.Profile, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := a.addUser(name, email, role, department, password, nil)
	if err != nil {
		return nil, err
	}
	pub := user.Profile()
	return &pub, nil
}

func (a *AuthService) addUser(name, email string, role models.Role, department, password string, confirm *string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || role == "" || password == "" {
		return nil, ErrMissingField
	}
	if !role.Valid() {
		return nil, ErrMissingField
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if confirm != nil && password != *confirm {
		return nil, ErrPasswordMismatch
	}

	users := a.store.Users()
	for _, u := range users {
		if normalizeEmail(u.Email) == email {
			return nil, ErrEmailTaken
		}
	}

	// Students always land in the default department; anything outside the
	// fixed list falls back to it as well.
	department = strings.TrimSpace(department)
	if role == models.RoleStudent || !models.IsDepartment(department) {
		department = models.DefaultDepartment
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:           a.newID(),
		Name:         name,
		Email:        email,
		Role:         role,
		Department:   department,
		PasswordHash: hash,
	}
	users = append(users, user)
	if err := a.store.SaveUsers(users); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the persisted session unconditionally.
func (a *AuthService) Logout() error {
	return a.store.ClearSession()
}
