package tour

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"prevoz/internal/entities"
	"prevoz/internal/repository"
	"prevoz/internal/service/tour"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const tourColumns = `id, owner_id, origin, destination, date, cargo, price,
		pickup_address, dropoff_address, contact_phone, notes,
		assigned_driver_id, status, reject_reason, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, tourModifyEntity entities.TourModify) (*entities.Tour, error) {
	tourModifyDB := FromDomainModify(&tourModifyEntity)

	query := `
		INSERT INTO tours (owner_id, origin, destination, date, cargo, price,
			pickup_address, dropoff_address, contact_phone, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + tourColumns

	var tourDB TourDB
	err := r.querier.QueryRow(
		ctx,
		query,
		tourModifyDB.OwnerID,
		tourModifyDB.Origin,
		tourModifyDB.Destination,
		tourModifyDB.Date,
		tourModifyDB.Cargo,
		tourModifyDB.Price,
		tourModifyDB.PickupAddress,
		tourModifyDB.DropoffAddress,
		tourModifyDB.ContactPhone,
		tourModifyDB.Notes,
		tourModifyDB.Status,
	).Scan(scanFields(&tourDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, tour.ErrTourNotFound
		}
		return nil, fmt.Errorf("unexpected tour repository create error: %w", err)
	}

	return ToDomain(&tourDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1`

	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate берет строку тура под блокировку до конца текущей транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1 FOR UPDATE`

	return r.getOne(ctx, query, id)
}

func (r *Repository) ListOpen(ctx context.Context) ([]entities.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE status = 'open'
		ORDER BY date ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected tour repository listopen error: %w", err)
	}
	defer rows.Close()

	tourModels := make([]TourDB, 0, 8)
	for rows.Next() {
		var tourDB TourDB
		err := rows.Scan(scanFields(&tourDB)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected tour repository listopen error: %w", err)
		}
		tourModels = append(tourModels, tourDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected tour repository listopen error: %w", err)
	}

	return ToDomainList(tourModels), nil
}

// UpdateStatusGuard переводит тур из from в to одним guarded UPDATE.
// Ноль затронутых строк означает, что тур не существует или уже не в from.
func (r *Repository) UpdateStatusGuard(ctx context.Context, id int64, from, to entities.TourStatusType) (*entities.Tour, error) {
	query := `
		UPDATE tours
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + tourColumns

	tourDomain, err := r.getOne(ctx, query, id, from.String(), to.String())
	if err != nil {
		if errors.Is(err, tour.ErrTourNotFound) ||
			repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, tour.ErrInvalidTourStatus
		}
		return nil, err
	}
	return tourDomain, nil
}

// Assign ставит водителя на открытый тур. Guard по status = 'open' и есть
// та самая точка, где проигравшая конкурентная транзакция получает ноль строк.
// Под serializable проигравшая сторона может вместо нуля строк получить 40001,
// дождавшись коммита победителя на блокировке строки, поэтому сбой сериализации
// переводится в тот же конфликтный sentinel.
func (r *Repository) Assign(ctx context.Context, id, driverID int64) (*entities.Tour, error) {
	query := `
		UPDATE tours
		SET status = 'assigned', assigned_driver_id = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'open'
		RETURNING ` + tourColumns

	tourDomain, err := r.getOne(ctx, query, id, driverID)
	if err != nil {
		if errors.Is(err, tour.ErrTourNotFound) ||
			repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, tour.ErrTourNotOpen
		}
		return nil, err
	}
	return tourDomain, nil
}

// UpdateGuard собирает UPDATE только из заполненных полей modify,
// guard по текущему статусу.
func (r *Repository) UpdateGuard(ctx context.Context, tourModifyEntity entities.TourModify, from entities.TourStatusType) (*entities.Tour, error) {
	tourModifyDB := FromDomainModify(&tourModifyEntity)

	builder := qb.
		Update("tours")

	if tourModifyDB.Origin != nil {
		builder = builder.Set("origin", tourModifyDB.Origin)
	}
	if tourModifyDB.Destination != nil {
		builder = builder.Set("destination", tourModifyDB.Destination)
	}
	if tourModifyDB.Date != nil {
		builder = builder.Set("date", tourModifyDB.Date)
	}
	if tourModifyDB.Cargo != nil {
		builder = builder.Set("cargo", tourModifyDB.Cargo)
	}
	if tourModifyDB.Price != nil {
		builder = builder.Set("price", tourModifyDB.Price)
	}
	if tourModifyDB.PickupAddress != nil {
		builder = builder.Set("pickup_address", tourModifyDB.PickupAddress)
	}
	if tourModifyDB.DropoffAddress != nil {
		builder = builder.Set("dropoff_address", tourModifyDB.DropoffAddress)
	}
	if tourModifyDB.ContactPhone != nil {
		builder = builder.Set("contact_phone", tourModifyDB.ContactPhone)
	}
	if tourModifyDB.Notes != nil {
		builder = builder.Set("notes", tourModifyDB.Notes)
	}
	if tourModifyDB.Status != nil {
		builder = builder.Set("status", tourModifyDB.Status)
	}
	if tourModifyDB.RejectReason != nil {
		builder = builder.Set("reject_reason", tourModifyDB.RejectReason)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": tourModifyDB.ID, "status": from.String()}).
		Suffix("RETURNING " + tourColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected tour repository update error: %w", err)
	}

	var tourDB TourDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanFields(&tourDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) ||
			repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, tour.ErrInvalidTourStatus
		}
		return nil, fmt.Errorf("unexpected tour repository update error: %w", err)
	}

	return ToDomain(&tourDB), nil
}

// CompleteApprovedApplication закрывает одобренную заявку вместе с завершением
// тура. Пишем в applications отсюда, чтобы каскад завершения остался одной
// транзакцией без обратной зависимости между сервисами.
func (r *Repository) CompleteApprovedApplication(ctx context.Context, tourID int64) (int64, error) {
	query := `
		UPDATE applications
		SET status = 'completed', updated_at = NOW()
		WHERE tour_id = $1 AND status = 'approved'
	`

	result, err := r.querier.Exec(ctx, query, tourID)
	if err != nil {
		return 0, fmt.Errorf("unexpected tour repository complete application error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Tour, error) {
	var tourDB TourDB
	err := r.querier.QueryRow(ctx, query, args...).Scan(scanFields(&tourDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tour.ErrTourNotFound
		}
		return nil, fmt.Errorf("unexpected tour repository query error: %w", err)
	}

	return ToDomain(&tourDB), nil
}

func scanFields(t *TourDB) []interface{} {
	return []interface{}{
		&t.ID,
		&t.OwnerID,
		&t.Origin,
		&t.Destination,
		&t.Date,
		&t.Cargo,
		&t.Price,
		&t.PickupAddress,
		&t.DropoffAddress,
		&t.ContactPhone,
		&t.Notes,
		&t.AssignedDriverID,
		&t.Status,
		&t.RejectReason,
		&t.CreatedAt,
		&t.UpdatedAt,
	}
}
