//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"

	"prevoz/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Account, error)
	RecomputeBlocked(ctx context.Context, accountID int64) (*entities.Account, error)
	ReconcileBlockedAll(ctx context.Context) (int64, error)
}
