package domain

import "errors"

// Common domain errors.
var (
	ErrNotConfigured  = errors.New("workday is not configured")
	ErrAlreadyRunning = errors.New("timer already running")
	ErrNotRunning     = errors.New("timer is not running")
	ErrDayNotFound    = errors.New("day not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidTask    = errors.New("invalid task number")
)
