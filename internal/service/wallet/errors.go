package wallet

import "errors"

var (
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrInvalidKind           = errors.New("unknown transaction kind")
	ErrInvalidDetails        = errors.New("details do not match transaction kind")
	ErrMissingIdempotencyKey = errors.New("missing idempotency key")

	ErrWalletNotFound       = errors.New("wallet not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrDuplicateTransaction = errors.New("duplicate idempotency key")
	ErrCashLimitExceeded    = errors.New("cash limit exceeded")
	ErrNotReversible        = errors.New("only completed transactions can be reversed")
	ErrConcurrentUpdate     = errors.New("wallet modified concurrently")
)
