package account

import (
	"context"
	"errors"
	"fmt"

	"prevoz/internal/entities"
)

type Account struct {
	repository Repository
}

func New(repository Repository) *Account {
	return &Account{
		repository: repository,
	}
}

func (a *Account) GetAccount(ctx context.Context, id int64) (*entities.Account, error) {
	if !isValidAccountID(id) {
		return nil, ErrInvalidAccountID
	}

	account, err := a.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return account, nil
}

// Reevaluate пересчитывает флаг блокировки аккаунта по его pending-платежам.
// Вызывается в той же транзакции, что и изменение платежа.
func (a *Account) Reevaluate(ctx context.Context, accountID int64) (*entities.Account, error) {
	if !isValidAccountID(accountID) {
		return nil, ErrInvalidAccountID
	}

	account, err := a.repository.RecomputeBlocked(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("recompute blocked: %w", err)
	}

	return account, nil
}

// ReconcileBlocked сверяет флаг блокировки всех водителей с их платежами,
// страховка от пропущенного пересчета.
func (a *Account) ReconcileBlocked(ctx context.Context) (int64, error) {
	rowsAffected, err := a.repository.ReconcileBlockedAll(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("reconcile timed out: %w", err)
		}
		return 0, fmt.Errorf("reconcile: %w", err)
	}

	return rowsAffected, nil
}
