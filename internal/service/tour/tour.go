package tour

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"prevoz/internal/entities"
)

type Tour struct {
	repository     Repository
	paymentService PaymentService
	notifier       Notifier
	txManager      TxManager
}

func New(
	repository Repository,
	paymentService PaymentService,
	notifier Notifier,
	txManager TxManager,
) *Tour {
	return &Tour{
		repository:     repository,
		paymentService: paymentService,
		notifier:       notifier,
		txManager:      txManager,
	}
}

// Submit публикует тур на модерацию. Тур становится видимым водителям
// только после одобрения админом.
func (t *Tour) Submit(ctx context.Context, actor entities.Actor, tourModify entities.TourModify) (*entities.Tour, error) {
	if actor.Role != entities.RoleShipper {
		return nil, ErrNotShipper
	}

	err := validateSubmit(tourModify)
	if err != nil {
		return nil, err
	}

	tourModify.OwnerID = &actor.ID
	tourModify.Status = pointer.To(entities.TourPendingReview)

	tourEntity, err := t.repository.Create(ctx, tourModify)
	if err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	return tourEntity, nil
}

func (t *Tour) Approve(ctx context.Context, actor entities.Actor, tourID int64) (*entities.Tour, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, ErrNotAdmin
	}
	if !isValidTourID(tourID) {
		return nil, ErrInvalidTourID
	}

	approved := entities.Tour{}
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		tourEntity, err := t.repository.GetByIDForUpdate(ctx, tourID)
		if err != nil {
			return fmt.Errorf("get tour: %w", err)
		}

		if !tourEntity.Status.CanTransitionTo(entities.TourOpen) {
			return ErrInvalidTourStatus
		}

		updated, err := t.repository.UpdateStatusGuard(ctx, tourID, entities.TourPendingReview, entities.TourOpen)
		if err != nil {
			return fmt.Errorf("open tour: %w", err)
		}

		approved = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	t.notifier.Notify(ctx, approved.OwnerID, entities.NotifyTourApproved,
		"tour approved and visible to drivers", &approved.ID)

	return &approved, nil
}

func (t *Tour) Reject(ctx context.Context, actor entities.Actor, tourID int64, reason string) (*entities.Tour, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, ErrNotAdmin
	}
	if !isValidTourID(tourID) {
		return nil, ErrInvalidTourID
	}
	if reason == "" {
		return nil, ErrEmptyRejectReason
	}

	rejected := entities.Tour{}
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		tourEntity, err := t.repository.GetByIDForUpdate(ctx, tourID)
		if err != nil {
			return fmt.Errorf("get tour: %w", err)
		}

		if !tourEntity.Status.CanTransitionTo(entities.TourRejected) {
			return ErrInvalidTourStatus
		}

		tourModify := entities.TourModify{
			ID:           &tourID,
			Status:       pointer.To(entities.TourRejected),
			RejectReason: &reason,
		}

		updated, err := t.repository.UpdateGuard(ctx, tourModify, entities.TourPendingReview)
		if err != nil {
			return fmt.Errorf("reject tour: %w", err)
		}

		rejected = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	t.notifier.Notify(ctx, rejected.OwnerID, entities.NotifyTourRejected,
		"tour rejected: "+reason, &rejected.ID)

	return &rejected, nil
}

// Assign ставит водителя на открытый тур. Вызывается сервисом заявок
// внутри его транзакции выбора исполнителя.
func (t *Tour) Assign(ctx context.Context, tourID, driverID int64) (*entities.Tour, error) {
	tourEntity, err := t.repository.Assign(ctx, tourID, driverID)
	if err != nil {
		return nil, fmt.Errorf("assign tour: %w", err)
	}

	return tourEntity, nil
}

// Complete закрывает тур назначенным водителем: заявка закрывается,
// водителю выставляется комиссия платформы в той же транзакции.
func (t *Tour) Complete(ctx context.Context, actor entities.Actor, tourID int64) (*entities.Tour, error) {
	if actor.Role != entities.RoleDriver {
		return nil, ErrNotDriver
	}
	if !isValidTourID(tourID) {
		return nil, ErrInvalidTourID
	}

	completed := entities.Tour{}
	err := t.txManager.Do(ctx, func(ctx context.Context) error {
		tourEntity, err := t.repository.GetByIDForUpdate(ctx, tourID)
		if err != nil {
			return fmt.Errorf("get tour: %w", err)
		}

		if tourEntity.Status != entities.TourAssigned {
			return ErrTourNotAssigned
		}
		if tourEntity.AssignedDriverID == nil || *tourEntity.AssignedDriverID != actor.ID {
			return ErrNotAssignedDriver
		}

		updated, err := t.repository.UpdateStatusGuard(ctx, tourID, entities.TourAssigned, entities.TourCompleted)
		if err != nil {
			return fmt.Errorf("complete tour: %w", err)
		}

		_, err = t.repository.CompleteApprovedApplication(ctx, tourID)
		if err != nil {
			return fmt.Errorf("complete application: %w", err)
		}

		_, err = t.paymentService.CreateForCompletedTour(ctx, actor.ID, tourID)
		if err != nil {
			return fmt.Errorf("charge platform fee: %w", err)
		}

		completed = *updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	t.notifier.Notify(ctx, completed.OwnerID, entities.NotifyTourCompleted,
		"tour completed by the driver", &completed.ID)
	t.notifier.Notify(ctx, actor.ID, entities.NotifyPaymentDue,
		"platform fee is due", &completed.ID)

	return &completed, nil
}

func (t *Tour) GetByID(ctx context.Context, id int64) (*entities.Tour, error) {
	if !isValidTourID(id) {
		return nil, ErrInvalidTourID
	}

	tourEntity, err := t.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}

	return tourEntity, nil
}

func (t *Tour) ListOpen(ctx context.Context) ([]entities.Tour, error) {
	tours, err := t.repository.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open tours: %w", err)
	}

	return tours, nil
}
