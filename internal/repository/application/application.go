package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"prevoz/internal/entities"
	"prevoz/internal/repository"
	"prevoz/internal/service/application"
)

const applicationColumns = `id, tour_id, driver_id, status, rejection_reason, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, tourID, driverID int64) (*entities.Application, error) {
	query := `
		INSERT INTO applications (tour_id, driver_id, status)
		VALUES ($1, $2, 'pending_admin')
		RETURNING ` + applicationColumns

	var applicationDB ApplicationDB
	err := r.querier.QueryRow(ctx, query, tourID, driverID).Scan(scanFields(&applicationDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, application.ErrAlreadyApplied
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, application.ErrTourNotFound
		}
		// Подача, проигравшая гонку назначению тура, завершается сбоем
		// сериализации, а не испорченной заявкой.
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, application.ErrTourNotOpen
		}
		return nil, fmt.Errorf("unexpected application repository create error: %w", err)
	}

	return ToDomain(&applicationDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate берет строку заявки под блокировку до конца текущей транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1 FOR UPDATE`

	return r.getOne(ctx, query, id)
}

// UpdateStatusGuard переводит заявку из from в to одним guarded UPDATE.
func (r *Repository) UpdateStatusGuard(ctx context.Context, id int64, from, to entities.ApplicationStatusType, reason *string) (*entities.Application, error) {
	query := `
		UPDATE applications
		SET status = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + applicationColumns

	applicationDomain, err := r.getOne(ctx, query, id, from.String(), to.String(), reason)
	if err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) ||
			repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, application.ErrApplicationNotPending
		}
		return nil, err
	}
	return applicationDomain, nil
}

// RejectSiblings отклоняет все оставшиеся ожидающие заявки тура кроме
// победившей и возвращает их для рассылки уведомлений.
func (r *Repository) RejectSiblings(ctx context.Context, tourID, winnerID int64, reason string) ([]entities.Application, error) {
	query := `
		UPDATE applications
		SET status = 'rejected', rejection_reason = $3, updated_at = NOW()
		WHERE tour_id = $1 AND id <> $2 AND status = 'pending_admin'
		RETURNING ` + applicationColumns

	return r.list(ctx, query, tourID, winnerID, reason)
}

func (r *Repository) ListByTour(ctx context.Context, tourID int64) ([]entities.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE tour_id = $1
		ORDER BY id ASC
	`

	return r.list(ctx, query, tourID)
}

func (r *Repository) ListByDriver(ctx context.Context, driverID int64) ([]entities.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE driver_id = $1
		ORDER BY id DESC
	`

	return r.list(ctx, query, driverID)
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Application, error) {
	var applicationDB ApplicationDB
	err := r.querier.QueryRow(ctx, query, args...).Scan(scanFields(&applicationDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("unexpected application repository query error: %w", err)
	}

	return ToDomain(&applicationDB), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Application, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository list error: %w", err)
	}
	defer rows.Close()

	applicationModels := make([]ApplicationDB, 0, 8)
	for rows.Next() {
		var applicationDB ApplicationDB
		err := rows.Scan(scanFields(&applicationDB)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected application repository list error: %w", err)
		}
		applicationModels = append(applicationModels, applicationDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository list error: %w", err)
	}

	return ToDomainList(applicationModels), nil
}

func scanFields(a *ApplicationDB) []interface{} {
	return []interface{}{
		&a.ID,
		&a.TourID,
		&a.DriverID,
		&a.Status,
		&a.RejectionReason,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
}
