package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrTokenInvalid       = errors.New("could not validate credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrMachineExists      = errors.New("machine already exists")
	ErrMachineNotFound    = errors.New("machine not found")
	ErrSelfDeletion       = errors.New("cannot delete your own account")
	ErrConfigCorrupt      = errors.New("config file corrupt")
	ErrWakeFailed         = errors.New("failed to send magic packet")
)
