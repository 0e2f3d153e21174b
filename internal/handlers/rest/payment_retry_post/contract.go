//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_retry_post_test
package payment_retry_post

import (
	"context"

	"prevoz/internal/entities"
	"prevoz/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Retry(ctx context.Context, actor entities.Actor, paymentID int64) (*entities.Payment, error)
}
