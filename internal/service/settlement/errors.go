package settlement

import "errors"

var (
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrMissingCourier        = errors.New("order has no assigned courier")
	ErrDistanceUnresolved    = errors.New("delivery distance unresolved")
	ErrSettlementNotFound    = errors.New("settlement not found")
	ErrUnknownDistancePolicy = errors.New("unknown distance policy")
)
