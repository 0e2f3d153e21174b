package application

import (
	"context"
	"fmt"

	"prevoz/internal/entities"
)

type Application struct {
	repository     Repository
	tourService    TourService
	accountService AccountService
	notifier       Notifier
	txManager      TxManager
}

func New(
	repository Repository,
	tourService TourService,
	accountService AccountService,
	notifier Notifier,
	txManager TxManager,
) *Application {
	return &Application{
		repository:     repository,
		tourService:    tourService,
		accountService: accountService,
		notifier:       notifier,
		txManager:      txManager,
	}
}

// Apply подает заявку водителя на открытый тур. Заблокированный водитель
// подать заявку не может.
func (a *Application) Apply(ctx context.Context, actor entities.Actor, tourID int64) (*entities.Application, error) {
	if actor.Role != entities.RoleDriver {
		return nil, ErrNotDriver
	}
	if tourID <= 0 {
		return nil, ErrInvalidTourID
	}

	created := entities.Application{}
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		driver, err := a.accountService.GetAccount(ctx, actor.ID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		if driver.Blocked {
			return ErrDriverBlocked
		}

		tourEntity, err := a.tourService.GetByID(ctx, tourID)
		if err != nil {
			return fmt.Errorf("get tour: %w", err)
		}
		if tourEntity.Status != entities.TourOpen {
			return ErrTourNotOpen
		}

		applicationEntity, err := a.repository.Create(ctx, tourID, actor.ID)
		if err != nil {
			return fmt.Errorf("create application: %w", err)
		}

		created = *applicationEntity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Approve выбирает исполнителя тура: заявка победителя утверждается,
// тур назначается, остальные заявки отклоняются одной транзакцией.
func (a *Application) Approve(ctx context.Context, actor entities.Actor, applicationID int64) (*entities.Assignment, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, ErrNotAdmin
	}
	if applicationID <= 0 {
		return nil, ErrInvalidApplicationID
	}

	assignment := entities.Assignment{}
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		applicationEntity, err := a.repository.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		if !applicationEntity.Status.CanTransitionTo(entities.ApplicationApproved) {
			return ErrApplicationNotPending
		}

		winner, err := a.repository.UpdateStatusGuard(ctx, applicationID,
			entities.ApplicationPendingAdmin, entities.ApplicationApproved, nil)
		if err != nil {
			return fmt.Errorf("approve application: %w", err)
		}

		tourEntity, err := a.tourService.Assign(ctx, winner.TourID, winner.DriverID)
		if err != nil {
			return fmt.Errorf("assign driver: %w", err)
		}

		rejected, err := a.repository.RejectSiblings(ctx, winner.TourID, winner.ID,
			entities.RejectionReasonLostSelection)
		if err != nil {
			return fmt.Errorf("reject competing applications: %w", err)
		}

		assignment = entities.Assignment{
			Application: *winner,
			Tour:        *tourEntity,
			Rejected:    rejected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	AssignmentsResolvedTotal.Inc()

	a.notifier.Notify(ctx, assignment.Application.DriverID, entities.NotifyApplicationApproved,
		"application approved, tour assigned to you", &assignment.Tour.ID)
	a.notifier.Notify(ctx, assignment.Tour.OwnerID, entities.NotifyTourAssigned,
		"driver assigned to your tour", &assignment.Tour.ID)
	for _, loser := range assignment.Rejected {
		a.notifier.Notify(ctx, loser.DriverID, entities.NotifyApplicationRejected,
			entities.RejectionReasonLostSelection, &assignment.Tour.ID)
	}

	return &assignment, nil
}

func (a *Application) Reject(ctx context.Context, actor entities.Actor, applicationID int64, reason string) (*entities.Application, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, ErrNotAdmin
	}
	if applicationID <= 0 {
		return nil, ErrInvalidApplicationID
	}
	if reason == "" {
		return nil, ErrEmptyRejectionReason
	}

	rejected := entities.Application{}
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		applicationEntity, err := a.repository.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		if !applicationEntity.Status.CanTransitionTo(entities.ApplicationRejected) {
			return ErrApplicationNotPending
		}

		updated, err := a.repository.UpdateStatusGuard(ctx, applicationID,
			entities.ApplicationPendingAdmin, entities.ApplicationRejected, &reason)
		if err != nil {
			return fmt.Errorf("reject application: %w", err)
		}

		rejected = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.notifier.Notify(ctx, rejected.DriverID, entities.NotifyApplicationRejected,
		"application rejected: "+reason, &rejected.TourID)

	return &rejected, nil
}

func (a *Application) ListByTour(ctx context.Context, tourID int64) ([]entities.Application, error) {
	if tourID <= 0 {
		return nil, ErrInvalidTourID
	}

	applications, err := a.repository.ListByTour(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return applications, nil
}

func (a *Application) ListByDriver(ctx context.Context, driverID int64) ([]entities.Application, error) {
	applications, err := a.repository.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return applications, nil
}
