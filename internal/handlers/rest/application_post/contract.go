//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=application_post_test
package application_post

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
	Apply(ctx context.Context, actor entities.Actor, tourID int64) (*entities.Application, error)
}
