package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"prevoz/internal/entities"
	"prevoz/internal/repository"
	"prevoz/internal/service/payment"
)

const paymentColumns = `id, driver_id, tour_id, amount, status, external_ref, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreateIfAbsent создает pending-платеж, если по паре (тур, водитель) еще нет
// незавершенного. Повторный вызов возвращает уже существующую строку.
func (r *Repository) CreateIfAbsent(ctx context.Context, driverID, tourID, amount int64) (*entities.Payment, error) {
	query := `
		INSERT INTO payments (driver_id, tour_id, amount, status)
		VALUES ($1, $2, $3, 'pending')
		ON CONFLICT (tour_id, driver_id) WHERE status <> 'failed' DO NOTHING
		RETURNING ` + paymentColumns

	var paymentDB PaymentDB
	err := r.querier.QueryRow(ctx, query, driverID, tourID, amount).Scan(scanFields(&paymentDB)...)
	if err == nil {
		return ToDomain(&paymentDB), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	existing := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE tour_id = $1 AND driver_id = $2 AND status <> 'failed'
	`

	return r.getOne(ctx, existing, tourID, driverID)
}

// Create добавляет новый pending-платеж для повторной попытки после failed.
func (r *Repository) Create(ctx context.Context, driverID, tourID, amount int64) (*entities.Payment, error) {
	query := `
		INSERT INTO payments (driver_id, tour_id, amount, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING ` + paymentColumns

	var paymentDB PaymentDB
	err := r.querier.QueryRow(ctx, query, driverID, tourID, amount).Scan(scanFields(&paymentDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) ||
			repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, payment.ErrRetryConflict
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(&paymentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate берет строку платежа под блокировку до конца текущей транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE`

	return r.getOne(ctx, query, id)
}

// GetOldestPendingForUpdate находит самый старый pending-платеж водителя
// и блокирует его до конца текущей транзакции.
func (r *Repository) GetOldestPendingForUpdate(ctx context.Context, driverID int64) (*entities.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE driver_id = $1 AND status = 'pending'
		ORDER BY id ASC
		LIMIT 1
		FOR UPDATE
	`

	paymentDomain, err := r.getOne(ctx, query, driverID)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			return nil, payment.ErrNoPendingPayment
		}
		return nil, err
	}
	return paymentDomain, nil
}

// Confirm закрывает pending-платеж результатом от платежного шлюза.
func (r *Repository) Confirm(ctx context.Context, id int64, to entities.PaymentStatusType, externalRef string) (*entities.Payment, error) {
	query := `
		UPDATE payments
		SET status = $2, external_ref = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + paymentColumns

	paymentDomain, err := r.getOne(ctx, query, id, to.String(), externalRef)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) ||
			repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, payment.ErrPaymentNotPending
		}
		return nil, err
	}
	return paymentDomain, nil
}

func (r *Repository) ListByDriver(ctx context.Context, driverID int64) ([]entities.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE driver_id = $1
		ORDER BY id DESC
	`

	rows, err := r.querier.Query(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}
	defer rows.Close()

	paymentModels := make([]PaymentDB, 0, 8)
	for rows.Next() {
		var paymentDB PaymentDB
		err := rows.Scan(scanFields(&paymentDB)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
		}
		paymentModels = append(paymentModels, paymentDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}

	return ToDomainList(paymentModels), nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Payment, error) {
	var paymentDB PaymentDB
	err := r.querier.QueryRow(ctx, query, args...).Scan(scanFields(&paymentDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository query error: %w", err)
	}

	return ToDomain(&paymentDB), nil
}

func scanFields(p *PaymentDB) []interface{} {
	return []interface{}{
		&p.ID,
		&p.DriverID,
		&p.TourID,
		&p.Amount,
		&p.Status,
		&p.ExternalRef,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
