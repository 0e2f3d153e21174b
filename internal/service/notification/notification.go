package notification

import (
	"context"
	"fmt"

	"prevoz/internal/entities"
	"prevoz/pkg/logger"
)

type Notification struct {
	repository Repository
	cache      UnreadCache
	logger     logger.Logger
}

func New(repository Repository, cache UnreadCache, logger logger.Logger) *Notification {
	return &Notification{
		repository: repository,
		cache:      cache,
		logger:     logger,
	}
}

// Notify записывает уведомление best-effort: сбой доставки не должен
// откатывать бизнес-операцию, поэтому ошибки только логируются.
func (n *Notification) Notify(ctx context.Context, accountID int64, category entities.NotificationCategory, message string, tourID *int64) {
	_, err := n.repository.Create(ctx, accountID, category, message, tourID)
	if err != nil {
		n.logger.Error("create notification failed",
			logger.NewField("account_id", accountID),
			logger.NewField("category", category.String()),
			logger.NewField("error", err.Error()),
		)
		return
	}

	err = n.cache.Increment(ctx, accountID)
	if err != nil {
		n.logger.Warn("increment unread counter failed",
			logger.NewField("account_id", accountID),
			logger.NewField("error", err.Error()),
		)
	}
}

func (n *Notification) ListForAccount(ctx context.Context, accountID int64) ([]entities.Notification, error) {
	if accountID <= 0 {
		return nil, ErrInvalidAccountID
	}

	notifications, err := n.repository.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// UnreadCount отдает счетчик из кэша, при промахе пересчитывает из БД
// и прогревает кэш.
func (n *Notification) UnreadCount(ctx context.Context, accountID int64) (int64, error) {
	if accountID <= 0 {
		return 0, ErrInvalidAccountID
	}

	count, ok, err := n.cache.Get(ctx, accountID)
	if err != nil {
		n.logger.Warn("read unread counter failed",
			logger.NewField("account_id", accountID),
			logger.NewField("error", err.Error()),
		)
	}
	if ok && err == nil {
		return count, nil
	}

	count, err = n.repository.CountUnread(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}

	err = n.cache.Set(ctx, accountID, count)
	if err != nil {
		n.logger.Warn("warm unread counter failed",
			logger.NewField("account_id", accountID),
			logger.NewField("error", err.Error()),
		)
	}

	return count, nil
}

func (n *Notification) MarkRead(ctx context.Context, accountID, notificationID int64) error {
	if accountID <= 0 {
		return ErrInvalidAccountID
	}
	if notificationID <= 0 {
		return ErrInvalidNotificationID
	}

	err := n.repository.MarkRead(ctx, accountID, notificationID)
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}

	err = n.cache.Invalidate(ctx, accountID)
	if err != nil {
		n.logger.Warn("invalidate unread counter failed",
			logger.NewField("account_id", accountID),
			logger.NewField("error", err.Error()),
		)
	}

	return nil
}
