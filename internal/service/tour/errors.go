package tour

import "errors"

var (
	ErrInvalidTourID         = errors.New("invalid tour id")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrNegativePrice         = errors.New("negative price")
	ErrEmptyRejectReason     = errors.New("empty reject reason")

	ErrNotShipper        = errors.New("actor is not a shipper")
	ErrNotAdmin          = errors.New("actor is not an admin")
	ErrNotDriver         = errors.New("actor is not a driver")
	ErrNotAssignedDriver = errors.New("actor is not the assigned driver")

	ErrTourNotFound      = errors.New("tour not found")
	ErrInvalidTourStatus = errors.New("invalid tour status")
	ErrTourNotOpen       = errors.New("tour is not open")
	ErrTourNotAssigned   = errors.New("tour is not assigned")
)
