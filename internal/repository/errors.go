package repository

import "errors"

// ErrNotFound is returned when a requested row or file entry does not exist.
// Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")
