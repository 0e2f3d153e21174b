package entities

import "time"

type Notification struct {
	ID        int64
	AccountID int64
	Category  NotificationCategory
	Message   string
	TourID    *int64
	Read      bool
	CreatedAt time.Time
}

type NotificationCategory string

const (
	NotifyTourApproved        NotificationCategory = "tour.approved"
	NotifyTourRejected        NotificationCategory = "tour.rejected"
	NotifyTourAssigned        NotificationCategory = "tour.assigned"
	NotifyTourCompleted       NotificationCategory = "tour.completed"
	NotifyApplicationApproved NotificationCategory = "application.approved"
	NotifyApplicationRejected NotificationCategory = "application.rejected"
	NotifyPaymentDue          NotificationCategory = "payment.due"
	NotifyPaymentPaid         NotificationCategory = "payment.paid"
	NotifyPaymentFailed       NotificationCategory = "payment.failed"
)

func (c NotificationCategory) String() string {
	return string(c)
}
