package notification

import "errors"

var (
	ErrInvalidAccountID      = errors.New("invalid account id")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrNotificationNotFound  = errors.New("notification not found")
)
