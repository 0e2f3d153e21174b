//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"prevoz/internal/entities"
)

type Repository interface {
	CreateIfAbsent(ctx context.Context, driverID, tourID, amount int64) (*entities.Payment, error)
	Create(ctx context.Context, driverID, tourID, amount int64) (*entities.Payment, error)

	GetByID(ctx context.Context, id int64) (*entities.Payment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Payment, error)
	GetOldestPendingForUpdate(ctx context.Context, driverID int64) (*entities.Payment, error)

	Confirm(ctx context.Context, id int64, to entities.PaymentStatusType, externalRef string) (*entities.Payment, error)
	ListByDriver(ctx context.Context, driverID int64) ([]entities.Payment, error)
}

type AccountService interface {
	Reevaluate(ctx context.Context, accountID int64) (*entities.Account, error)
}

type Notifier interface {
	Notify(ctx context.Context, accountID int64, category entities.NotificationCategory, message string, tourID *int64)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
