package tour

import "time"

type TourDB struct {
	ID               int64
	OwnerID          int64
	Origin           string
	Destination      string
	Date             time.Time
	Cargo            string
	Price            int64
	PickupAddress    *string
	DropoffAddress   *string
	ContactPhone     *string
	Notes            *string
	AssignedDriverID *int64
	Status           string
	RejectReason     *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type TourModifyDB struct {
	ID               *int64
	OwnerID          *int64
	Origin           *string
	Destination      *string
	Date             *time.Time
	Cargo            *string
	Price            *int64
	PickupAddress    *string
	DropoffAddress   *string
	ContactPhone     *string
	Notes            *string
	AssignedDriverID *int64
	Status           *string
	RejectReason     *string
}
