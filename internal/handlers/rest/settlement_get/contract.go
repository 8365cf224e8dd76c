//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_get_test
package settlement_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetSettlement(ctx context.Context, orderID string) (*entities.Settlement, error)
}
