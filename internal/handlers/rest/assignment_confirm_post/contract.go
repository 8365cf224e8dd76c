//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_confirm_post_test
package assignment_confirm_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ConfirmAssignment(ctx context.Context, courierID int64, orderID string) error
}
