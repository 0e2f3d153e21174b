package application

import "errors"

var (
	ErrInvalidApplicationID = errors.New("invalid application id")
	ErrInvalidTourID        = errors.New("invalid tour id")
	ErrEmptyRejectionReason = errors.New("empty rejection reason")

	ErrNotDriver = errors.New("actor is not a driver")
	ErrNotAdmin  = errors.New("actor is not an admin")

	ErrDriverBlocked         = errors.New("driver is blocked")
	ErrTourNotFound          = errors.New("tour not found")
	ErrTourNotOpen           = errors.New("tour is not open")
	ErrAlreadyApplied        = errors.New("driver already applied to this tour")
	ErrApplicationNotFound   = errors.New("application not found")
	ErrApplicationNotPending = errors.New("application is not pending")
)
