package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateName is returned when an insert violates the unique
// constraint on the user name.
var ErrDuplicateName = errors.New("name already exists")
