//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_test
package wallet

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	GetByCourierID(ctx context.Context, courierID int64) (*entities.Wallet, error)
	EnsureWallet(ctx context.Context, courierID int64) (*entities.Wallet, error)
	SetCashLimit(ctx context.Context, courierID int64, limit float64) error

	InsertTransaction(ctx context.Context, txn entities.WalletTransaction) error
	GetTransaction(ctx context.Context, id string) (*entities.WalletTransaction, error)
	GetTransactionByIdempotencyKey(ctx context.Context, key string) (*entities.WalletTransaction, error)
	CompleteTransaction(ctx context.Context, id string) (bool, error)
	FailTransaction(ctx context.Context, id string) (bool, error)

	ApplyAggregates(ctx context.Context, wallet entities.Wallet) (bool, error)
	LedgerTotals(ctx context.Context, courierID int64) (balance, earned float64, seen int64, err error)
	InsertDiscrepancy(ctx context.Context, report entities.DiscrepancyReport) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
