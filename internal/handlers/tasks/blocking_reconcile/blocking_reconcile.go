package blocking_reconcile

import (
	"context"
	"time"

	"prevoz/pkg/logger"
)

type Service interface {
	ReconcileBlocked(ctx context.Context) (int64, error)
}

type BlockingReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewBlockingReconcile(log logger.Logger, service Service, interval time.Duration) *BlockingReconcile {
	return &BlockingReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (b *BlockingReconcile) TTL() time.Duration {
	return b.interval
}

func (b *BlockingReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	rowsAffected, err := b.service.ReconcileBlocked(ctxWithTimeout)

	if rowsAffected > 0 {
		b.log.With(
			logger.NewField("accounts_fixed", rowsAffected),
		).Info("blocking reconcile")
	}

	return err
}

func (b *BlockingReconcile) Info() string {
	return "blocking reconcile"
}
