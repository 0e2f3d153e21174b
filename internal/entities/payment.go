package entities

import "time"

// Payment фиксированная комиссия платформы, долг водителя за завершенный тур.
type Payment struct {
	ID          int64
	DriverID    int64
	TourID      int64
	Amount      int64
	Status      PaymentStatusType
	ExternalRef *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PaymentStatusType string

const (
	PaymentPending PaymentStatusType = "pending"
	PaymentPaid    PaymentStatusType = "paid"
	PaymentFailed  PaymentStatusType = "failed"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

var paymentTransitions = map[PaymentStatusType][]PaymentStatusType{
	PaymentPending: {PaymentPaid, PaymentFailed},
	PaymentPaid:    {},
	PaymentFailed:  {},
}

func (s PaymentStatusType) CanTransitionTo(target PaymentStatusType) bool {
	allowed, ok := paymentTransitions[s]
	if !ok {
		return false
	}
	for _, next := range allowed {
		if next == target {
			return true
		}
	}
	return false
}

// PaymentConfirmation событие платежного шлюза (topic payment.confirmed).
type PaymentConfirmation struct {
	ExternalRef string
	AccountID   int64
	Amount      int64
	Outcome     PaymentStatusType
}
