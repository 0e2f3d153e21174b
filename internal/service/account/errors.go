package account

import "errors"

var (
	ErrInvalidAccountID = errors.New("invalid account id")
	ErrAccountNotFound  = errors.New("account not found")
)
