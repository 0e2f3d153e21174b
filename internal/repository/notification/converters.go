package notification

import "prevoz/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}
	return &entities.Notification{
		ID:        n.ID,
		AccountID: n.AccountID,
		Category:  entities.NotificationCategory(n.Category),
		Message:   n.Message,
		TourID:    n.TourID,
		Read:      n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func ToDomainList(models []NotificationDB) []entities.Notification {
	notifications := make([]entities.Notification, 0, len(models))
	for i := range models {
		notifications = append(notifications, *ToDomain(&models[i]))
	}
	return notifications
}
