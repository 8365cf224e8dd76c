package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Wallet struct {
	repository Repository
	txManager  TxManager
	log        logger.Logger
}

func New(repository Repository, txManager TxManager, log logger.Logger) *Wallet {
	return &Wallet{
		repository: repository,
		txManager:  txManager,
		log:        log,
	}
}

func (w *Wallet) GetWallet(ctx context.Context, courierID int64) (*entities.Wallet, error) {
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}

	return w.repository.GetByCourierID(ctx, courierID)
}

func (w *Wallet) GetTransaction(ctx context.Context, id string) (*entities.WalletTransaction, error) {
	return w.repository.GetTransaction(ctx, id)
}

// AppendTransaction writes a new pending ledger entry. Replaying the same
// idempotency key returns ErrDuplicateTransaction alongside the previously
// written entry, so callers can treat the replay as already done. Cash
// collected on a payment is checked against the courier's cash limit;
// allowOverLimit bypasses the check for operator-approved exceptions.
func (w *Wallet) AppendTransaction(ctx context.Context, create entities.WalletTransactionCreate, allowOverLimit bool) (*entities.WalletTransaction, error) {
	if !isValidCourierID(create.CourierID) {
		return nil, ErrInvalidCourierID
	}
	if create.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !create.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !validateDetails(create.Kind, create.Details) {
		return nil, ErrInvalidDetails
	}
	if create.IdempotencyKey == "" {
		return nil, ErrMissingIdempotencyKey
	}

	txn := entities.WalletTransaction{
		ID:             ulid.Make().String(),
		CourierID:      create.CourierID,
		Amount:         create.Amount,
		Kind:           create.Kind,
		Status:         entities.TxnPending,
		OrderID:        create.OrderID,
		IdempotencyKey: create.IdempotencyKey,
		Details:        create.Details,
		CreatedAt:      time.Now().UTC(),
	}

	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		walletEntity, err := w.repository.EnsureWallet(ctx, create.CourierID)
		if err != nil {
			return fmt.Errorf("ensure wallet: %w", err)
		}

		cashCollected := cashCollected(&txn)
		if cashCollected > 0 && !allowOverLimit &&
			walletEntity.CashInHand+cashCollected > walletEntity.CashLimit {
			return ErrCashLimitExceeded
		}

		err = w.repository.InsertTransaction(ctx, txn)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateTransaction) {
			existing, getErr := w.repository.GetTransactionByIdempotencyKey(ctx, create.IdempotencyKey)
			if getErr != nil {
				return nil, fmt.Errorf("load duplicate transaction: %w", getErr)
			}
			w.log.Info("duplicate transaction rejected",
				logger.NewField("idempotency_key", create.IdempotencyKey),
				logger.NewField("transaction_id", existing.ID),
			)
			return existing, ErrDuplicateTransaction
		}
		return nil, err
	}

	return &txn, nil
}

// TransitionToCompleted finalizes a pending transaction and folds it into the
// wallet aggregates. Completing an already completed transaction is a no-op;
// the aggregates move exactly once.
func (w *Wallet) TransitionToCompleted(ctx context.Context, id string) (*entities.WalletTransaction, error) {
	var completed *entities.WalletTransaction

	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		txn, err := w.repository.GetTransaction(ctx, id)
		if err != nil {
			return err
		}

		if txn.Status == entities.TxnCompleted {
			completed = txn
			return nil
		}

		moved, err := w.repository.CompleteTransaction(ctx, id)
		if err != nil {
			return err
		}
		if !moved {
			// Lost the race to another completer or the transaction already
			// failed; re-read to report the settled state.
			txn, err = w.repository.GetTransaction(ctx, id)
			if err != nil {
				return err
			}
			completed = txn
			return nil
		}

		err = w.applyToAggregates(ctx, txn)
		if err != nil {
			return err
		}

		txn.Status = entities.TxnCompleted
		now := time.Now().UTC()
		txn.CompletedAt = &now
		completed = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	return completed, nil
}

// TransitionToFailed marks a pending transaction failed. Failed transactions
// never touch the aggregates.
func (w *Wallet) TransitionToFailed(ctx context.Context, id string) (*entities.WalletTransaction, error) {
	var failed *entities.WalletTransaction

	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		txn, err := w.repository.GetTransaction(ctx, id)
		if err != nil {
			return err
		}

		if txn.Status == entities.TxnFailed {
			failed = txn
			return nil
		}

		moved, err := w.repository.FailTransaction(ctx, id)
		if err != nil {
			return err
		}
		if !moved {
			txn, err = w.repository.GetTransaction(ctx, id)
			if err != nil {
				return err
			}
			failed = txn
			return nil
		}

		txn.Status = entities.TxnFailed
		now := time.Now().UTC()
		txn.CompletedAt = &now
		failed = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	return failed, nil
}

func (w *Wallet) applyToAggregates(ctx context.Context, txn *entities.WalletTransaction) error {
	walletEntity, err := w.repository.GetByCourierID(ctx, txn.CourierID)
	if err != nil {
		return err
	}

	if txn.Details.Reversal != nil {
		// A reversal backs out the reversed entry's effect instead of counting
		// as fresh activity.
		reversed, err := w.repository.GetTransaction(ctx, txn.Details.Reversal.ReversedTransactionID)
		if err != nil {
			return fmt.Errorf("load reversed transaction: %w", err)
		}

		if reversed.Kind.IsCredit() {
			walletEntity.TotalBalance -= txn.Amount
			walletEntity.TotalEarned -= txn.Amount
		} else {
			walletEntity.TotalBalance += txn.Amount
			if reversed.Kind == entities.TxnWithdrawal {
				walletEntity.TotalWithdrawn -= txn.Amount
			}
		}
		if cash := cashCollected(reversed); cash > 0 {
			walletEntity.CashInHand -= cash
		}
	} else if txn.Kind.IsCredit() {
		walletEntity.TotalBalance += txn.Amount
		walletEntity.TotalEarned += txn.Amount
		walletEntity.CashInHand += cashCollected(txn)
	} else {
		walletEntity.TotalBalance -= txn.Amount
		if txn.Kind == entities.TxnWithdrawal {
			walletEntity.TotalWithdrawn += txn.Amount
		}
	}

	applied, err := w.repository.ApplyAggregates(ctx, *walletEntity)
	if err != nil {
		return err
	}
	if !applied {
		return ErrConcurrentUpdate
	}

	return nil
}

func cashCollected(txn *entities.WalletTransaction) float64 {
	if txn.Kind == entities.TxnPayment && txn.Details.Payment != nil {
		return txn.Details.Payment.CashCollected
	}
	return 0
}

// Reverse appends and completes a compensating transaction for a completed
// ledger entry. The idempotency key derives from the reversed id, so reversing
// twice yields one compensation.
func (w *Wallet) Reverse(ctx context.Context, transactionID, reason string) (*entities.WalletTransaction, error) {
	original, err := w.repository.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if original.Status != entities.TxnCompleted {
		return nil, ErrNotReversible
	}

	kind := entities.TxnDebit
	if !original.Kind.IsCredit() {
		kind = entities.TxnCredit
	}

	create := entities.WalletTransactionCreate{
		CourierID:      original.CourierID,
		Amount:         original.Amount,
		Kind:           kind,
		OrderID:        original.OrderID,
		IdempotencyKey: fmt.Sprintf("reversal:%s", transactionID),
		Details: entities.TransactionDetails{
			Reversal: &entities.ReversalDetails{
				ReversedTransactionID: transactionID,
				Reason:                reason,
			},
		},
	}

	reversal, err := w.AppendTransaction(ctx, create, true)
	if err != nil && !errors.Is(err, ErrDuplicateTransaction) {
		return nil, err
	}

	return w.TransitionToCompleted(ctx, reversal.ID)
}

// SetCashLimit overrides the courier's cash-carrying capacity.
func (w *Wallet) SetCashLimit(ctx context.Context, courierID int64, limit float64) error {
	if !isValidCourierID(courierID) {
		return ErrInvalidCourierID
	}
	if limit < 0 {
		return ErrInvalidAmount
	}

	_, err := w.repository.EnsureWallet(ctx, courierID)
	if err != nil {
		return fmt.Errorf("ensure wallet: %w", err)
	}

	return w.repository.SetCashLimit(ctx, courierID, limit)
}

// Reconcile replays the completed transaction log against the stored
// aggregates and persists the outcome. A non-clean report flags drift; it does
// not repair it.
func (w *Wallet) Reconcile(ctx context.Context, courierID int64) (*entities.DiscrepancyReport, error) {
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}

	var report entities.DiscrepancyReport

	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		walletEntity, err := w.repository.GetByCourierID(ctx, courierID)
		if err != nil {
			return err
		}

		balance, earned, seen, err := w.repository.LedgerTotals(ctx, courierID)
		if err != nil {
			return err
		}

		report = entities.DiscrepancyReport{
			CourierID:        courierID,
			StoredBalance:    walletEntity.TotalBalance,
			ComputedBalance:  balance,
			StoredEarned:     walletEntity.TotalEarned,
			ComputedEarned:   earned,
			BalanceDelta:     walletEntity.TotalBalance - balance,
			EarnedDelta:      walletEntity.TotalEarned - earned,
			TransactionsSeen: seen,
			CheckedAt:        time.Now().UTC(),
		}

		return w.repository.InsertDiscrepancy(ctx, report)
	})
	if err != nil {
		return nil, err
	}

	if !report.Clean() {
		w.log.Warn("wallet aggregates drifted from ledger",
			logger.NewField("courier_id", courierID),
			logger.NewField("balance_delta", report.BalanceDelta),
			logger.NewField("earned_delta", report.EarnedDelta),
		)
	}

	return &report, nil
}
