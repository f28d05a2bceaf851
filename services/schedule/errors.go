package schedule

import "errors"

var (
	// ErrScheduleNotFound indicates the scheduled ride does not exist
	ErrScheduleNotFound = errors.New("scheduled ride not found")

	// ErrPickupTooSoon indicates the pickup time is earlier than the promotion lead
	ErrPickupTooSoon = errors.New("pickup time is too soon for an advance booking")

	// ErrPickupTooFar indicates the pickup time exceeds the booking horizon
	ErrPickupTooFar = errors.New("pickup time is beyond the booking horizon")

	// ErrTooLateToModify indicates the booking is inside the modification lock window
	ErrTooLateToModify = errors.New("scheduled ride can no longer be modified")

	// ErrAlreadyStarted indicates the booking already left the SCHEDULED state
	ErrAlreadyStarted = errors.New("scheduled ride has already started dispatching")
)
