package service

import "errors"

// Every failure in this system is a local validation outcome surfaced to the
// caller; nothing here is fatal and no failure path mutates prior state.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleMismatch       = errors.New("role does not match this account")
	ErrMissingField       = errors.New("please fill in all required fields")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrIncompleteForm     = errors.New("please complete all complaint fields")
	ErrCategoryExists     = errors.New("category already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
)
