package payment

import "errors"

var (
	ErrInvalidPaymentID   = errors.New("invalid payment id")
	ErrInvalidOutcome     = errors.New("invalid confirmation outcome")
	ErrMissingExternalRef = errors.New("missing external reference")
	ErrAmountMismatch     = errors.New("confirmation amount mismatch")

	ErrPaymentNotFound     = errors.New("payment not found")
	ErrNoPendingPayment    = errors.New("no pending payment")
	ErrPaymentNotPending   = errors.New("payment is not pending")
	ErrNotPaymentOwner     = errors.New("payment belongs to another driver")
	ErrPaymentNotRetryable = errors.New("payment is not retryable")
	ErrRetryConflict       = errors.New("pending payment already exists")
)
