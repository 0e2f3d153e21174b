//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tour_reject_post_test
package tour_reject_post

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
	Reject(ctx context.Context, actor entities.Actor, tourID int64, reason string) (*entities.Tour, error)
}
