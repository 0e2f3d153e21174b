package dto

import "time"

type TourCreate struct {
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Date           time.Time `json:"date"`
	Cargo          string    `json:"cargo"`
	Price          int64     `json:"price"`
	PickupAddress  *string   `json:"pickup_address,omitempty"`
	DropoffAddress *string   `json:"dropoff_address,omitempty"`
	ContactPhone   *string   `json:"contact_phone,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
}

type Tour struct {
	ID               int64     `json:"id"`
	OwnerID          int64     `json:"owner_id"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	Date             time.Time `json:"date"`
	Cargo            string    `json:"cargo"`
	Price            int64     `json:"price"`
	PickupAddress    *string   `json:"pickup_address,omitempty"`
	DropoffAddress   *string   `json:"dropoff_address,omitempty"`
	ContactPhone     *string   `json:"contact_phone,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	AssignedDriverID *int64    `json:"assigned_driver_id,omitempty"`
	Status           string    `json:"status"`
	RejectReason     *string   `json:"reject_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type Application struct {
	ID              int64     `json:"id"`
	TourID          int64     `json:"tour_id"`
	DriverID        int64     `json:"driver_id"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Assignment struct {
	Tour        Tour          `json:"tour"`
	Application Application   `json:"application"`
	Rejected    []Application `json:"rejected"`
}

type Payment struct {
	ID          int64     `json:"id"`
	DriverID    int64     `json:"driver_id"`
	TourID      int64     `json:"tour_id"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	ExternalRef *string   `json:"external_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Notification struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	TourID    *int64    `json:"tour_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type PingResponse struct {
	Message string `json:"message"`
}
