package entities

import "time"

// AssignmentOffer is the outcome of a successful courier selection. The offer
// is exclusive until it is confirmed, released, or its window expires.
type AssignmentOffer struct {
	OrderID      string
	CourierID    int64
	DistanceKm   float64
	InZone       bool
	FallbackUsed bool
	OfferedAt    time.Time
	ExpiresAt    time.Time
}
