package domain

import "errors"

// ErrNotFound is returned when a referenced identity is absent.
var ErrNotFound = errors.New("not found")
