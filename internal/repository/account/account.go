package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"prevoz/internal/entities"
	"prevoz/internal/service/account"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Account, error) {
	query := `
		SELECT id, name, phone, role, verified, document_path, blocked, block_reason, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var accountDB AccountDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&accountDB.ID,
		&accountDB.Name,
		&accountDB.Phone,
		&accountDB.Role,
		&accountDB.Verified,
		&accountDB.DocumentPath,
		&accountDB.Blocked,
		&accountDB.BlockReason,
		&accountDB.CreatedAt,
		&accountDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("unexpected account repository getbyid error: %w", err)
	}

	return ToDomain(&accountDB), nil
}

// RecomputeBlocked пересчитывает blocked из состояния платежей одним UPDATE,
// поэтому идемпотентен при конкурентных вызовах.
func (r *Repository) RecomputeBlocked(ctx context.Context, accountID int64) (*entities.Account, error) {
	query := `
		UPDATE accounts
		SET blocked = EXISTS (
				SELECT 1 FROM payments
				WHERE payments.driver_id = accounts.id
				  AND payments.status IN ('pending', 'failed')
			),
			block_reason = CASE WHEN EXISTS (
				SELECT 1 FROM payments
				WHERE payments.driver_id = accounts.id
				  AND payments.status IN ('pending', 'failed')
			) THEN $2 ELSE NULL END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, phone, role, verified, document_path, blocked, block_reason, created_at, updated_at
	`

	var accountDB AccountDB
	err := r.querier.QueryRow(ctx, query, accountID, entities.BlockReasonOutstandingPayment).Scan(
		&accountDB.ID,
		&accountDB.Name,
		&accountDB.Phone,
		&accountDB.Role,
		&accountDB.Verified,
		&accountDB.DocumentPath,
		&accountDB.Blocked,
		&accountDB.BlockReason,
		&accountDB.CreatedAt,
		&accountDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("unexpected account repository recompute blocked error: %w", err)
	}

	return ToDomain(&accountDB), nil
}

// ReconcileBlockedAll чинит флаг blocked у всех аккаунтов, где он разошелся
// с состоянием платежей. Страховка для фоновой задачи, синхронный каскад
// остается основным путем.
func (r *Repository) ReconcileBlockedAll(ctx context.Context) (int64, error) {
	query := `
		UPDATE accounts
		SET blocked = outstanding.exists,
			block_reason = CASE WHEN outstanding.exists THEN $1 ELSE NULL END,
			updated_at = NOW()
		FROM (
			SELECT accounts.id AS account_id,
				EXISTS (
					SELECT 1 FROM payments
					WHERE payments.driver_id = accounts.id
					  AND payments.status IN ('pending', 'failed')
				) AS exists
			FROM accounts
			WHERE accounts.role = 'driver'
		) AS outstanding
		WHERE accounts.id = outstanding.account_id
		  AND accounts.blocked <> outstanding.exists
	`

	result, err := r.querier.Exec(ctx, query, entities.BlockReasonOutstandingPayment)
	if err != nil {
		return 0, fmt.Errorf("unexpected account repository reconcile blocked error: %w", err)
	}

	return result.RowsAffected(), nil
}
