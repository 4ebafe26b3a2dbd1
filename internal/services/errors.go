package services

import "errors"

// ErrInvalidInput is returned when caller-supplied data fails validation
var ErrInvalidInput = errors.New("invalid input")
