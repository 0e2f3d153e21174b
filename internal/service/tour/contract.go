//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tour_test
package tour

import (
	"context"

	"prevoz/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, tourModify entities.TourModify) (*entities.Tour, error)

	GetByID(ctx context.Context, id int64) (*entities.Tour, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Tour, error)
	ListOpen(ctx context.Context) ([]entities.Tour, error)

	UpdateStatusGuard(ctx context.Context, id int64, from, to entities.TourStatusType) (*entities.Tour, error)
	UpdateGuard(ctx context.Context, tourModify entities.TourModify, from entities.TourStatusType) (*entities.Tour, error)
	Assign(ctx context.Context, id, driverID int64) (*entities.Tour, error)
	CompleteApprovedApplication(ctx context.Context, tourID int64) (int64, error)
}

type PaymentService interface {
	CreateForCompletedTour(ctx context.Context, driverID, tourID int64) (*entities.Payment, error)
}

type Notifier interface {
	Notify(ctx context.Context, accountID int64, category entities.NotificationCategory, message string, tourID *int64)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
