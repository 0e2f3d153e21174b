package notification

import "time"

type NotificationDB struct {
	ID        int64
	AccountID int64
	Category  string
	Message   string
	TourID    *int64
	IsRead    bool
	CreatedAt time.Time
}
