package models

import "errors"

// Domain failure values shared by repositories and controllers. Controllers map
// these to HTTP statuses; anything else surfaces as a generic 500.
var (
	ErrDuplicateEmail         = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrRoleMismatch           = errors.New("account is not registered under this role")
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
	ErrNoFields               = errors.New("no fields to update")
	ErrNotFound               = errors.New("record not found")
)
