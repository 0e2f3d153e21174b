package payment

import (
	"context"
	"fmt"

	"prevoz/internal/entities"
)

type Payment struct {
	repository     Repository
	accountService AccountService
	notifier       Notifier
	txManager      TxManager
	feeAmount      int64
}

func New(
	repository Repository,
	accountService AccountService,
	notifier Notifier,
	txManager TxManager,
	feeAmount int64,
) *Payment {
	return &Payment{
		repository:     repository,
		accountService: accountService,
		notifier:       notifier,
		txManager:      txManager,
		feeAmount:      feeAmount,
	}
}

// CreateForCompletedTour выставляет водителю комиссию платформы и сразу же
// пересчитывает блокировку: водитель с долгом блокируется в той же транзакции
// завершения тура, а не когда-нибудь потом фоновой задачей.
// Идемпотентен и рассчитан на вызов внутри транзакции завершения тура.
func (p *Payment) CreateForCompletedTour(ctx context.Context, driverID, tourID int64) (*entities.Payment, error) {
	paymentEntity, err := p.repository.CreateIfAbsent(ctx, driverID, tourID, p.feeAmount)
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	_, err = p.accountService.Reevaluate(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("block driver: %w", err)
	}

	return paymentEntity, nil
}

// Confirm применяет результат платежного шлюза к самому старому
// pending-платежу водителя.
func (p *Payment) Confirm(ctx context.Context, confirmation entities.PaymentConfirmation) (*entities.Payment, error) {
	if confirmation.Outcome != entities.PaymentPaid && confirmation.Outcome != entities.PaymentFailed {
		return nil, ErrInvalidOutcome
	}
	if confirmation.ExternalRef == "" {
		return nil, ErrMissingExternalRef
	}

	confirmed := entities.Payment{}
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		pending, err := p.repository.GetOldestPendingForUpdate(ctx, confirmation.AccountID)
		if err != nil {
			return fmt.Errorf("find pending payment: %w", err)
		}

		if !pending.Status.CanTransitionTo(confirmation.Outcome) {
			return ErrPaymentNotPending
		}
		if confirmation.Outcome == entities.PaymentPaid && confirmation.Amount != pending.Amount {
			return ErrAmountMismatch
		}

		paymentEntity, err := p.repository.Confirm(ctx, pending.ID, confirmation.Outcome, confirmation.ExternalRef)
		if err != nil {
			return fmt.Errorf("confirm payment: %w", err)
		}

		if confirmation.Outcome == entities.PaymentPaid {
			_, err = p.accountService.Reevaluate(ctx, paymentEntity.DriverID)
			if err != nil {
				return fmt.Errorf("reevaluate driver: %w", err)
			}
		}

		confirmed = *paymentEntity
		return nil
	})
	if err != nil {
		return nil, err
	}

	PaymentsConfirmedTotal.WithLabelValues(confirmed.Status.String()).Inc()

	switch confirmed.Status {
	case entities.PaymentPaid:
		p.notifier.Notify(ctx, confirmed.DriverID, entities.NotifyPaymentPaid,
			"platform fee paid, account unblocked", &confirmed.TourID)
	case entities.PaymentFailed:
		p.notifier.Notify(ctx, confirmed.DriverID, entities.NotifyPaymentFailed,
			"platform fee payment failed, retry to unblock the account", &confirmed.TourID)
	}

	return &confirmed, nil
}

// Retry создает новый pending-платеж взамен проваленного.
func (p *Payment) Retry(ctx context.Context, actor entities.Actor, paymentID int64) (*entities.Payment, error) {
	if paymentID <= 0 {
		return nil, ErrInvalidPaymentID
	}

	created := entities.Payment{}
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		failed, err := p.repository.GetByIDForUpdate(ctx, paymentID)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}

		if failed.DriverID != actor.ID {
			return ErrNotPaymentOwner
		}
		if failed.Status != entities.PaymentFailed {
			return ErrPaymentNotRetryable
		}

		paymentEntity, err := p.repository.Create(ctx, failed.DriverID, failed.TourID, failed.Amount)
		if err != nil {
			return fmt.Errorf("create retry payment: %w", err)
		}

		created = *paymentEntity
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.notifier.Notify(ctx, created.DriverID, entities.NotifyPaymentDue,
		"platform fee is due", &created.TourID)

	return &created, nil
}

func (p *Payment) ListByDriver(ctx context.Context, driverID int64) ([]entities.Payment, error) {
	payments, err := p.repository.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}
