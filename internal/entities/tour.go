package entities

import "time"

type Tour struct {
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
	Status           TourStatusType
	RejectReason     *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type TourStatusType string

const (
	TourPendingReview TourStatusType = "pending_review"
	TourOpen          TourStatusType = "open"
	TourAssigned      TourStatusType = "assigned"
	TourCompleted     TourStatusType = "completed"
	TourRejected      TourStatusType = "rejected"
)

func (s TourStatusType) String() string {
	return string(s)
}

// tourTransitions единственное место где описан граф статусов тура.
var tourTransitions = map[TourStatusType][]TourStatusType{
	TourPendingReview: {TourOpen, TourRejected},
	TourOpen:          {TourAssigned},
	TourAssigned:      {TourCompleted},
	TourCompleted:     {},
	TourRejected:      {},
}

func (s TourStatusType) CanTransitionTo(target TourStatusType) bool {
	allowed, ok := tourTransitions[s]
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

type TourModify struct {
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
	Status           *TourStatusType
	RejectReason     *string
}
