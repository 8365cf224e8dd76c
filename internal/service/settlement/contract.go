//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_test
package settlement

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, settlement entities.Settlement) error
	GetByOrderID(ctx context.Context, orderID string) (*entities.Settlement, error)
}

// WalletService credits the courier for a settled order.
type WalletService interface {
	AppendTransaction(ctx context.Context, create entities.WalletTransactionCreate, allowOverLimit bool) (*entities.WalletTransaction, error)
	TransitionToCompleted(ctx context.Context, id string) (*entities.WalletTransaction, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
