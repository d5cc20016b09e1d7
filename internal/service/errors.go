package service

import "errors"

// Business outcomes surfaced to handlers, matched with errors.Is and mapped
// to HTTP statuses there. Ownership failures stay distinct from role failures
// and from not-found.
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("email already in use")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrNotOwner            = errors.New("not the owner of this resource")
	ErrAlreadyEnrolled     = errors.New("already enrolled in this course")
	ErrInvalidRole         = errors.New("invalid role")
)
