//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=application_test
package application

import (
	"context"

	"prevoz/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, tourID, driverID int64) (*entities.Application, error)

	GetByID(ctx context.Context, id int64) (*entities.Application, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Application, error)

	UpdateStatusGuard(ctx context.Context, id int64, from, to entities.ApplicationStatusType, reason *string) (*entities.Application, error)
	RejectSiblings(ctx context.Context, tourID, winnerID int64, reason string) ([]entities.Application, error)

	ListByTour(ctx context.Context, tourID int64) ([]entities.Application, error)
	ListByDriver(ctx context.Context, driverID int64) ([]entities.Application, error)
}

type TourService interface {
	GetByID(ctx context.Context, id int64) (*entities.Tour, error)
	Assign(ctx context.Context, tourID, driverID int64) (*entities.Tour, error)
}

type AccountService interface {
	GetAccount(ctx context.Context, id int64) (*entities.Account, error)
}

type Notifier interface {
	Notify(ctx context.Context, accountID int64, category entities.NotificationCategory, message string, tourID *int64)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
