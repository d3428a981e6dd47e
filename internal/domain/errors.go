package domain

import (
	"errors"
	"strings"
)

// Account and event errors
var (
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrDuplicateEvent     = errors.New("event already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrEventNotFound      = errors.New("event not found")
)

// Credential and token errors
var (
	ErrCorruptCredential = errors.New("stored credential is not a valid hash")
	ErrMissingSecret     = errors.New("signing secret is not configured")
	ErrInvalidToken      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token expired")
)

// FieldErrors carries one message per failing input field so a single
// response can report every problem at once.
type FieldErrors []string

func (e FieldErrors) Error() string {
	return strings.Join(e, "; ")
}
