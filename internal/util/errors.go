package util

import "errors"

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidInput     = errors.New("invalid input")
	ErrPermissionDenied = errors.New("permission denied")
)
