//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_transaction_fail_post_test
package wallet_transaction_fail_post

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
	TransitionToFailed(ctx context.Context, id string) (*entities.WalletTransaction, error)
}
