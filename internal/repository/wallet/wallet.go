package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	walletsvc "dispatch/internal/service/wallet"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier          Querier
	defaultCashLimit float64
}

func New(querier Querier, defaultCashLimit float64) *Repository {
	return &Repository{
		querier:          querier,
		defaultCashLimit: defaultCashLimit,
	}
}

const walletColumns = `courier_id, total_balance, total_earned, cash_in_hand,
		total_withdrawn, cash_limit, version, updated_at`

func (r *Repository) GetByCourierID(ctx context.Context, courierID int64) (*entities.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE courier_id = $1`

	var walletModel WalletDB
	err := r.querier.QueryRow(ctx, query, courierID).
		Scan(
			&walletModel.CourierID,
			&walletModel.TotalBalance,
			&walletModel.TotalEarned,
			&walletModel.CashInHand,
			&walletModel.TotalWithdrawn,
			&walletModel.CashLimit,
			&walletModel.Version,
			&walletModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, walletsvc.ErrWalletNotFound
		}

		return nil, fmt.Errorf("unexpected wallet repository getbycourierid error: %w", err)
	}

	return ToDomain(&walletModel, r.defaultCashLimit), nil
}

// EnsureWallet creates an empty wallet row for the courier when none exists
// and returns the current state either way.
func (r *Repository) EnsureWallet(ctx context.Context, courierID int64) (*entities.Wallet, error) {
	insert := `
		INSERT INTO wallets (courier_id)
		VALUES ($1)
		ON CONFLICT (courier_id) DO NOTHING
	`

	_, err := r.querier.Exec(ctx, insert, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected wallet repository ensurewallet error: %w", err)
	}

	return r.GetByCourierID(ctx, courierID)
}

func (r *Repository) InsertTransaction(ctx context.Context, txnEntity entities.WalletTransaction) error {
	txnModel, err := TransactionFromDomain(&txnEntity)
	if err != nil {
		return fmt.Errorf("unexpected wallet repository inserttransaction error: %w", err)
	}

	query := `
		INSERT INTO wallet_transactions
			(id, courier_id, amount, kind, status, order_id, idempotency_key, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.querier.Exec(
		ctx,
		query,
		txnModel.ID,
		txnModel.CourierID,
		txnModel.Amount,
		txnModel.Kind,
		txnModel.Status,
		txnModel.OrderID,
		txnModel.IdempotencyKey,
		txnModel.Details,
		txnModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return walletsvc.ErrDuplicateTransaction
		}

		return fmt.Errorf("unexpected wallet repository inserttransaction error: %w", err)
	}

	return nil
}

func (r *Repository) GetTransaction(ctx context.Context, id string) (*entities.WalletTransaction, error) {
	query := `
		SELECT id, courier_id, amount, kind, status, order_id, idempotency_key, details, created_at, completed_at
		FROM wallet_transactions
		WHERE id = $1
	`

	return r.scanTransaction(r.querier.QueryRow(ctx, query, id))
}

func (r *Repository) GetTransactionByIdempotencyKey(ctx context.Context, key string) (*entities.WalletTransaction, error) {
	query := `
		SELECT id, courier_id, amount, kind, status, order_id, idempotency_key, details, created_at, completed_at
		FROM wallet_transactions
		WHERE idempotency_key = $1
	`

	return r.scanTransaction(r.querier.QueryRow(ctx, query, key))
}

func (r *Repository) scanTransaction(row pgx.Row) (*entities.WalletTransaction, error) {
	var txnModel TransactionDB
	err := row.Scan(
		&txnModel.ID,
		&txnModel.CourierID,
		&txnModel.Amount,
		&txnModel.Kind,
		&txnModel.Status,
		&txnModel.OrderID,
		&txnModel.IdempotencyKey,
		&txnModel.Details,
		&txnModel.CreatedAt,
		&txnModel.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, walletsvc.ErrTransactionNotFound
		}

		return nil, fmt.Errorf("unexpected wallet repository transaction scan error: %w", err)
	}

	return TransactionToDomain(&txnModel)
}

// CompleteTransaction moves a pending transaction to completed. The status
// guard keeps the transition one-way: a non-pending row yields zero rows.
func (r *Repository) CompleteTransaction(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE wallet_transactions
		SET status = 'completed',
		    completed_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected wallet repository completetransaction error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) FailTransaction(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE wallet_transactions
		SET status = 'failed',
		    completed_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected wallet repository failtransaction error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ApplyAggregates writes new aggregate values guarded by the version counter.
// A false return means a concurrent writer got there first and the caller
// must re-read and retry.
func (r *Repository) ApplyAggregates(ctx context.Context, walletEntity entities.Wallet) (bool, error) {
	query := `
		UPDATE wallets
		SET total_balance = $2,
		    total_earned = $3,
		    cash_in_hand = $4,
		    total_withdrawn = $5,
		    version = version + 1,
		    updated_at = NOW()
		WHERE courier_id = $1 AND version = $6
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		walletEntity.CourierID,
		walletEntity.TotalBalance,
		walletEntity.TotalEarned,
		walletEntity.CashInHand,
		walletEntity.TotalWithdrawn,
		walletEntity.Version,
	)
	if err != nil {
		return false, fmt.Errorf("unexpected wallet repository applyaggregates error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) SetCashLimit(ctx context.Context, courierID int64, limit float64) error {
	query := `
		UPDATE wallets
		SET cash_limit = $2,
		    updated_at = NOW()
		WHERE courier_id = $1
	`

	result, err := r.querier.Exec(ctx, query, courierID, limit)
	if err != nil {
		return fmt.Errorf("unexpected wallet repository setcashlimit error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return walletsvc.ErrWalletNotFound
	}

	return nil
}

// LedgerTotals replays the completed transaction log and returns the balance
// and earned sums it implies, plus the number of rows seen. Earned is net: a
// reversal backs out the reversed credit instead of counting as activity of
// its own, matching how completion folds reversals into the aggregates. A
// debit-kind reversal row always compensates a credit and vice versa, so the
// reversal row's own kind identifies the side it backs out.
func (r *Repository) LedgerTotals(ctx context.Context, courierID int64) (balance, earned float64, seen int64, err error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN kind IN ('payment', 'tip', 'bonus', 'credit', 'refund')
				THEN amount ELSE -amount END), 0),
			COALESCE(SUM(CASE
				WHEN details ? 'reversal' AND kind = 'debit' THEN -amount
				WHEN details ? 'reversal' THEN 0
				WHEN kind IN ('payment', 'tip', 'bonus', 'credit', 'refund') THEN amount
				ELSE 0 END), 0),
			COUNT(*)
		FROM wallet_transactions
		WHERE courier_id = $1 AND status = 'completed'
	`

	err = r.querier.QueryRow(ctx, query, courierID).Scan(&balance, &earned, &seen)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("unexpected wallet repository ledgertotals error: %w", err)
	}

	return balance, earned, seen, nil
}

func (r *Repository) InsertDiscrepancy(ctx context.Context, report entities.DiscrepancyReport) error {
	query := `
		INSERT INTO wallet_discrepancies
			(courier_id, stored_balance, computed_balance, stored_earned, computed_earned,
			 balance_delta, earned_delta, transactions_seen, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		report.CourierID,
		report.StoredBalance,
		report.ComputedBalance,
		report.StoredEarned,
		report.ComputedEarned,
		report.BalanceDelta,
		report.EarnedDelta,
		report.TransactionsSeen,
		report.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected wallet repository insertdiscrepancy error: %w", err)
	}

	return nil
}
