package repository

import "errors"

// Storage-level outcomes, matched with errors.Is by services and handlers.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
