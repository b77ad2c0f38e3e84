package common

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrForbidden      = errors.New("forbidden")
	ErrTimeout        = errors.New("database operation timed out")
	ErrCanceled       = errors.New("request canceled by the client")
)
