package domain

import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource conflict")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateTeams = errors.New("battle requires two distinct teams")

	// ErrMalformedInput marks data that should have been rejected at the
	// ingestion boundary: negative durations, RPE outside 1-10, inverted
	// time ranges.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvariantViolation is fatal for the request that hit it. It means an
	// internal guarantee (e.g. level threshold growth) no longer holds.
	ErrInvariantViolation = errors.New("internal invariant violation")
)
