package payment

import "time"

type PaymentDB struct {
	ID          int64
	DriverID    int64
	TourID      int64
	Amount      int64
	Status      string
	ExternalRef *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
