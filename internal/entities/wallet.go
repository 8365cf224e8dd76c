package entities

import "time"

type TransactionKind string

const (
	TxnPayment    TransactionKind = "payment"
	TxnTip        TransactionKind = "tip"
	TxnBonus      TransactionKind = "bonus"
	TxnCredit     TransactionKind = "credit"
	TxnRefund     TransactionKind = "refund"
	TxnWithdrawal TransactionKind = "withdrawal"
	TxnDeduction  TransactionKind = "deduction"
	TxnDebit      TransactionKind = "debit"
)

func (k TransactionKind) String() string {
	return string(k)
}

// IsCredit reports whether the kind increases the wallet balance.
func (k TransactionKind) IsCredit() bool {
	switch k {
	case TxnPayment, TxnTip, TxnBonus, TxnCredit, TxnRefund:
		return true
	default:
		return false
	}
}

// IsValid reports whether the kind is one of the recognized kinds.
func (k TransactionKind) IsValid() bool {
	switch k {
	case TxnPayment, TxnTip, TxnBonus, TxnCredit, TxnRefund,
		TxnWithdrawal, TxnDeduction, TxnDebit:
		return true
	default:
		return false
	}
}

type TransactionStatus string

const (
	TxnPending   TransactionStatus = "pending"
	TxnCompleted TransactionStatus = "completed"
	TxnFailed    TransactionStatus = "failed"
)

func (s TransactionStatus) String() string {
	return string(s)
}

// PaymentDetails carries the fields only payment transactions have.
type PaymentDetails struct {
	// CashCollected is the physical currency taken on a cash-on-delivery
	// order; it moves cashInHand, not the general balance.
	CashCollected float64 `json:"cash_collected"`
	OrderTotal    float64 `json:"order_total"`
}

// TipDetails carries the fields only tip transactions have.
type TipDetails struct {
	Source string `json:"source"` // "order" or "direct"
}

// ReversalDetails links a compensating transaction to the one it reverses.
type ReversalDetails struct {
	ReversedTransactionID string `json:"reversed_transaction_id"`
	Reason                string `json:"reason"`
}

// TransactionDetails is a tagged variant: at most the member matching the
// transaction kind is set.
type TransactionDetails struct {
	Payment  *PaymentDetails  `json:"payment,omitempty"`
	Tip      *TipDetails      `json:"tip,omitempty"`
	Reversal *ReversalDetails `json:"reversal,omitempty"`
}

// WalletTransaction is an immutable ledger record. Once written, only the
// status may move, and only pending -> completed or pending -> failed.
type WalletTransaction struct {
	ID             string
	CourierID      int64
	Amount         float64
	Kind           TransactionKind
	Status         TransactionStatus
	OrderID        *string
	IdempotencyKey string
	Details        TransactionDetails
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// WalletTransactionCreate is the caller-supplied part of a new ledger entry.
// Amounts are always positive; the kind decides the direction.
type WalletTransactionCreate struct {
	CourierID      int64
	Amount         float64
	Kind           TransactionKind
	OrderID        *string
	IdempotencyKey string
	Details        TransactionDetails
}

// Wallet aggregates are a cache over the completed transaction log; the log
// is the source of truth and Reconcile checks the cache against it.
type Wallet struct {
	CourierID      int64
	TotalBalance   float64
	TotalEarned    float64
	CashInHand     float64
	TotalWithdrawn float64
	CashLimit      float64
	Version        int64
	UpdatedAt      time.Time
}

// DiscrepancyReport is the result of replaying the completed log against the
// stored aggregates.
type DiscrepancyReport struct {
	CourierID        int64
	StoredBalance    float64
	ComputedBalance  float64
	StoredEarned     float64
	ComputedEarned   float64
	BalanceDelta     float64
	EarnedDelta      float64
	TransactionsSeen int64
	CheckedAt        time.Time
}

// Clean reports whether the aggregates match the log exactly.
func (r *DiscrepancyReport) Clean() bool {
	return r.BalanceDelta == 0 && r.EarnedDelta == 0
}
