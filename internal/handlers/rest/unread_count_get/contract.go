//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=unread_count_get_test
package unread_count_get

import (
	"context"

	"prevoz/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UnreadCount(ctx context.Context, accountID int64) (int64, error)
}
