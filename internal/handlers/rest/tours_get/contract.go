//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tours_get_test
package tours_get

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
	ListOpen(ctx context.Context) ([]entities.Tour, error)
}
