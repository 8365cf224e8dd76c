//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_completed_test
package order_completed

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

type SettlementService interface {
	RequestSettlement(ctx context.Context, order entities.Order) (*entities.Settlement, error)
}

type AssignmentService interface {
	CompleteAssignment(ctx context.Context, courierID int64) error
}
