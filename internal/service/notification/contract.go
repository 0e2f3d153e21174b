//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"prevoz/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, accountID int64, category entities.NotificationCategory, message string, tourID *int64) (*entities.Notification, error)
	ListByAccount(ctx context.Context, accountID int64) ([]entities.Notification, error)
	CountUnread(ctx context.Context, accountID int64) (int64, error)
	MarkRead(ctx context.Context, accountID, notificationID int64) error
}

type UnreadCache interface {
	Increment(ctx context.Context, accountID int64) error
	Get(ctx context.Context, accountID int64) (int64, bool, error)
	Set(ctx context.Context, accountID, count int64) error
	Invalidate(ctx context.Context, accountID int64) error
}
