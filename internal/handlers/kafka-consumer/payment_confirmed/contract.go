package payment_confirmed

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
	Confirm(ctx context.Context, confirmation entities.PaymentConfirmation) (*entities.Payment, error)
}
