package repositories

import "errors"

// ErrNotFound is returned when a record is not found
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when an insert would violate email uniqueness
var ErrDuplicateEmail = errors.New("email already exists")

// ErrStoreUnavailable is returned when the backing store could not be
// reached or queried; callers may retry.
var ErrStoreUnavailable = errors.New("store unavailable")
