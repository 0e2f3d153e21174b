package application

import "time"

type ApplicationDB struct {
	ID              int64
	TourID          int64
	DriverID        int64
	Status          string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
