package wallet

import "time"

type WalletDB struct {
	CourierID      int64
	TotalBalance   float64
	TotalEarned    float64
	CashInHand     float64
	TotalWithdrawn float64
	CashLimit      *float64
	Version        int64
	UpdatedAt      time.Time
}

type TransactionDB struct {
	ID             string
	CourierID      int64
	Amount         float64
	Kind           string
	Status         string
	OrderID        *string
	IdempotencyKey string
	Details        []byte
	CreatedAt      time.Time
	CompletedAt    *time.Time
}
