package entities

import "time"

type Application struct {
	ID              int64
	TourID          int64
	DriverID        int64
	Status          ApplicationStatusType
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ApplicationStatusType string

const (
	ApplicationPendingAdmin ApplicationStatusType = "pending_admin"
	ApplicationApproved     ApplicationStatusType = "approved"
	ApplicationRejected     ApplicationStatusType = "rejected"
	ApplicationCompleted    ApplicationStatusType = "completed"
)

func (s ApplicationStatusType) String() string {
	return string(s)
}

var applicationTransitions = map[ApplicationStatusType][]ApplicationStatusType{
	ApplicationPendingAdmin: {ApplicationApproved, ApplicationRejected},
	ApplicationApproved:     {ApplicationCompleted},
	ApplicationRejected:     {},
	ApplicationCompleted:    {},
}

func (s ApplicationStatusType) CanTransitionTo(target ApplicationStatusType) bool {
	allowed, ok := applicationTransitions[s]
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

// RejectionReasonLostSelection ставится всем конкурирующим заявкам при назначении победителя.
const RejectionReasonLostSelection = "another driver was selected"
