package assignment

import "errors"

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrMissingPickup    = errors.New("missing pickup location")

	ErrZoneNotFound = errors.New("zone not found")

	ErrNoCandidates  = errors.New("no eligible couriers")
	ErrOfferNotFound = errors.New("no matching offer")
)
