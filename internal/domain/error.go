package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound           = errors.New("entity not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrValidation         = errors.New("validation failed")
	ErrAmbiguousQuery     = errors.New("check-in query must carry exactly one of store name or region")
	ErrEmailNotConfigured = errors.New("email channel enabled but no address configured")
	ErrChannelDispatch    = errors.New("notification channel dispatch failed")
	ErrSchedulerStorage   = errors.New("reminder cycle aborted: storage unreachable")
	ErrCycleInProgress    = errors.New("a reminder cycle is already running")
	ErrLockNotAcquired    = errors.New("reminder cycle lock held elsewhere")
	ErrOperationFailed    = errors.New("storage operation failed")
	ErrReadDatabaseRow    = errors.New("failed to read database row")
	ErrInvalidExecContext = errors.New("invalid executor context for query")
)
