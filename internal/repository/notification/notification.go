package notification

import (
	"context"
	"fmt"

	"prevoz/internal/entities"
	"prevoz/internal/service/notification"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, accountID int64, category entities.NotificationCategory, message string, tourID *int64) (*entities.Notification, error) {
	query := `
		INSERT INTO notifications (account_id, category, message, tour_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, account_id, category, message, tour_id, is_read, created_at
	`

	var notificationDB NotificationDB
	err := r.querier.QueryRow(ctx, query, accountID, category.String(), message, tourID).Scan(
		&notificationDB.ID,
		&notificationDB.AccountID,
		&notificationDB.Category,
		&notificationDB.Message,
		&notificationDB.TourID,
		&notificationDB.IsRead,
		&notificationDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&notificationDB), nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int64) ([]entities.Notification, error) {
	query := `
		SELECT id, account_id, category, message, tour_id, is_read, created_at
		FROM notifications
		WHERE account_id = $1
		ORDER BY id DESC
	`

	rows, err := r.querier.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notificationModels := make([]NotificationDB, 0, 16)
	for rows.Next() {
		var notificationDB NotificationDB
		err := rows.Scan(
			&notificationDB.ID,
			&notificationDB.AccountID,
			&notificationDB.Category,
			&notificationDB.Message,
			&notificationDB.TourID,
			&notificationDB.IsRead,
			&notificationDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		notificationModels = append(notificationModels, notificationDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return ToDomainList(notificationModels), nil
}

func (r *Repository) CountUnread(ctx context.Context, accountID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE account_id = $1 AND is_read = FALSE
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository count unread error: %w", err)
	}

	return count, nil
}

func (r *Repository) MarkRead(ctx context.Context, accountID, notificationID int64) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND account_id = $2
	`

	result, err := r.querier.Exec(ctx, query, notificationID, accountID)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}
