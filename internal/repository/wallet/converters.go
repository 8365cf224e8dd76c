package wallet

import (
	"encoding/json"
	"fmt"

	"dispatch/internal/entities"
)

func ToDomain(walletModel *WalletDB, defaultCashLimit float64) *entities.Wallet {
	cashLimit := defaultCashLimit
	if walletModel.CashLimit != nil {
		cashLimit = *walletModel.CashLimit
	}

	return &entities.Wallet{
		CourierID:      walletModel.CourierID,
		TotalBalance:   walletModel.TotalBalance,
		TotalEarned:    walletModel.TotalEarned,
		CashInHand:     walletModel.CashInHand,
		TotalWithdrawn: walletModel.TotalWithdrawn,
		CashLimit:      cashLimit,
		Version:        walletModel.Version,
		UpdatedAt:      walletModel.UpdatedAt,
	}
}

func TransactionToDomain(txnModel *TransactionDB) (*entities.WalletTransaction, error) {
	var details entities.TransactionDetails
	if len(txnModel.Details) > 0 {
		err := json.Unmarshal(txnModel.Details, &details)
		if err != nil {
			return nil, fmt.Errorf("decode transaction details: %w", err)
		}
	}

	return &entities.WalletTransaction{
		ID:             txnModel.ID,
		CourierID:      txnModel.CourierID,
		Amount:         txnModel.Amount,
		Kind:           entities.TransactionKind(txnModel.Kind),
		Status:         entities.TransactionStatus(txnModel.Status),
		OrderID:        txnModel.OrderID,
		IdempotencyKey: txnModel.IdempotencyKey,
		Details:        details,
		CreatedAt:      txnModel.CreatedAt,
		CompletedAt:    txnModel.CompletedAt,
	}, nil
}

func TransactionFromDomain(txnEntity *entities.WalletTransaction) (*TransactionDB, error) {
	details, err := json.Marshal(txnEntity.Details)
	if err != nil {
		return nil, fmt.Errorf("encode transaction details: %w", err)
	}

	return &TransactionDB{
		ID:             txnEntity.ID,
		CourierID:      txnEntity.CourierID,
		Amount:         txnEntity.Amount,
		Kind:           txnEntity.Kind.String(),
		Status:         txnEntity.Status.String(),
		OrderID:        txnEntity.OrderID,
		IdempotencyKey: txnEntity.IdempotencyKey,
		Details:        details,
		CreatedAt:      txnEntity.CreatedAt,
		CompletedAt:    txnEntity.CompletedAt,
	}, nil
}
