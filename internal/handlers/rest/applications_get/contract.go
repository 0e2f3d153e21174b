//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=applications_get_test
package applications_get

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
	ListByTour(ctx context.Context, tourID int64) ([]entities.Application, error)
	ListByDriver(ctx context.Context, driverID int64) ([]entities.Application, error)
}
