package dto

import (
	"time"

	"dispatch/internal/entities"
)

type WalletResponse struct {
	CourierID      int64     `json:"courier_id"`
	TotalBalance   float64   `json:"total_balance"`
	TotalEarned    float64   `json:"total_earned"`
	CashInHand     float64   `json:"cash_in_hand"`
	TotalWithdrawn float64   `json:"total_withdrawn"`
	CashLimit      float64   `json:"cash_limit"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewWalletResponse(w *entities.Wallet) WalletResponse {
	return WalletResponse{
		CourierID:      w.CourierID,
		TotalBalance:   w.TotalBalance,
		TotalEarned:    w.TotalEarned,
		CashInHand:     w.CashInHand,
		TotalWithdrawn: w.TotalWithdrawn,
		CashLimit:      w.CashLimit,
		UpdatedAt:      w.UpdatedAt,
	}
}

type PaymentDetailsDTO struct {
	CashCollected float64 `json:"cash_collected"`
	OrderTotal    float64 `json:"order_total"`
}

type TipDetailsDTO struct {
	Source string `json:"source"`
}

type TransactionDetailsDTO struct {
	Payment  *PaymentDetailsDTO `json:"payment,omitempty"`
	Tip      *TipDetailsDTO     `json:"tip,omitempty"`
	Reversal *ReversalDTO       `json:"reversal,omitempty"`
}

type ReversalDTO struct {
	ReversedTransactionID string `json:"reversed_transaction_id"`
	Reason                string `json:"reason"`
}

// WalletTransactionRequest is an operator-initiated ledger append.
type WalletTransactionRequest struct {
	Amount         float64               `json:"amount"`
	Kind           string                `json:"kind"`
	OrderID        *string               `json:"order_id,omitempty"`
	IdempotencyKey string                `json:"idempotency_key"`
	Details        TransactionDetailsDTO `json:"details"`
	AllowOverLimit bool                  `json:"allow_over_limit"`
}

func (r *WalletTransactionRequest) ToEntity(courierID int64) entities.WalletTransactionCreate {
	create := entities.WalletTransactionCreate{
		CourierID:      courierID,
		Amount:         r.Amount,
		Kind:           entities.TransactionKind(r.Kind),
		OrderID:        r.OrderID,
		IdempotencyKey: r.IdempotencyKey,
	}

	if r.Details.Payment != nil {
		create.Details.Payment = &entities.PaymentDetails{
			CashCollected: r.Details.Payment.CashCollected,
			OrderTotal:    r.Details.Payment.OrderTotal,
		}
	}
	if r.Details.Tip != nil {
		create.Details.Tip = &entities.TipDetails{Source: r.Details.Tip.Source}
	}
	if r.Details.Reversal != nil {
		create.Details.Reversal = &entities.ReversalDetails{
			ReversedTransactionID: r.Details.Reversal.ReversedTransactionID,
			Reason:                r.Details.Reversal.Reason,
		}
	}

	return create
}

type WalletTransactionResponse struct {
	ID             string                `json:"id"`
	CourierID      int64                 `json:"courier_id"`
	Amount         float64               `json:"amount"`
	Kind           string                `json:"kind"`
	Status         string                `json:"status"`
	OrderID        *string               `json:"order_id,omitempty"`
	IdempotencyKey string                `json:"idempotency_key"`
	Details        TransactionDetailsDTO `json:"details"`
	CreatedAt      time.Time             `json:"created_at"`
	CompletedAt    *time.Time            `json:"completed_at,omitempty"`
}

func NewWalletTransactionResponse(txn *entities.WalletTransaction) WalletTransactionResponse {
	response := WalletTransactionResponse{
		ID:             txn.ID,
		CourierID:      txn.CourierID,
		Amount:         txn.Amount,
		Kind:           txn.Kind.String(),
		Status:         txn.Status.String(),
		OrderID:        txn.OrderID,
		IdempotencyKey: txn.IdempotencyKey,
		CreatedAt:      txn.CreatedAt,
		CompletedAt:    txn.CompletedAt,
	}

	if txn.Details.Payment != nil {
		response.Details.Payment = &PaymentDetailsDTO{
			CashCollected: txn.Details.Payment.CashCollected,
			OrderTotal:    txn.Details.Payment.OrderTotal,
		}
	}
	if txn.Details.Tip != nil {
		response.Details.Tip = &TipDetailsDTO{Source: txn.Details.Tip.Source}
	}
	if txn.Details.Reversal != nil {
		response.Details.Reversal = &ReversalDTO{
			ReversedTransactionID: txn.Details.Reversal.ReversedTransactionID,
			Reason:                txn.Details.Reversal.Reason,
		}
	}

	return response
}

type ReverseTransactionRequest struct {
	Reason string `json:"reason"`
}

type DiscrepancyReportResponse struct {
	CourierID        int64     `json:"courier_id"`
	StoredBalance    float64   `json:"stored_balance"`
	ComputedBalance  float64   `json:"computed_balance"`
	StoredEarned     float64   `json:"stored_earned"`
	ComputedEarned   float64   `json:"computed_earned"`
	BalanceDelta     float64   `json:"balance_delta"`
	EarnedDelta      float64   `json:"earned_delta"`
	TransactionsSeen int64     `json:"transactions_seen"`
	Clean            bool      `json:"clean"`
	CheckedAt        time.Time `json:"checked_at"`
}

func NewDiscrepancyReportResponse(r *entities.DiscrepancyReport) DiscrepancyReportResponse {
	return DiscrepancyReportResponse{
		CourierID:        r.CourierID,
		StoredBalance:    r.StoredBalance,
		ComputedBalance:  r.ComputedBalance,
		StoredEarned:     r.StoredEarned,
		ComputedEarned:   r.ComputedEarned,
		BalanceDelta:     r.BalanceDelta,
		EarnedDelta:      r.EarnedDelta,
		TransactionsSeen: r.TransactionsSeen,
		Clean:            r.Clean(),
		CheckedAt:        r.CheckedAt,
	}
}
