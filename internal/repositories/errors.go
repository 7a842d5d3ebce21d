package repositories

import "errors"

// ErrNotFound is returned when no record exists at the requested identity
var ErrNotFound = errors.New("record not found")
