package dispatch

import "errors"

var (
	// ErrRequestNotFound indicates the ride request does not exist
	ErrRequestNotFound = errors.New("ride request not found")

	// ErrNotBroadcasting indicates the request already left the broadcasting state
	ErrNotBroadcasting = errors.New("ride request is not broadcasting")

	// ErrRequestExpired indicates the request expired before the driver acted
	ErrRequestExpired = errors.New("ride request has expired")

	// ErrNotMatched indicates the request has no live match
	ErrNotMatched = errors.New("ride request is not matched")

	// ErrMatchNotFound indicates no live match row exists for the request
	ErrMatchNotFound = errors.New("ride match not found")

	// ErrDriverMismatch indicates the caller is not the matched driver
	ErrDriverMismatch = errors.New("driver is not assigned to this ride")

	// ErrConcurrentCommitConflict indicates a conditional match commit found
	// the request no longer broadcasting. The per-request arbitration lock
	// makes this unreachable; observing it means a persistence-layer bug.
	ErrConcurrentCommitConflict = errors.New("concurrent commit conflict on match")
)
