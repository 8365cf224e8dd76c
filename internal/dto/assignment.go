package dto

import (
	"time"

	"dispatch/internal/entities"
)

type AssignmentOfferResponse struct {
	OrderID      string    `json:"order_id"`
	CourierID    int64     `json:"courier_id"`
	DistanceKm   float64   `json:"distance_km"`
	InZone       bool      `json:"in_zone"`
	FallbackUsed bool      `json:"fallback_used"`
	OfferedAt    time.Time `json:"offered_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func NewAssignmentOfferResponse(offer *entities.AssignmentOffer) AssignmentOfferResponse {
	return AssignmentOfferResponse{
		OrderID:      offer.OrderID,
		CourierID:    offer.CourierID,
		DistanceKm:   offer.DistanceKm,
		InZone:       offer.InZone,
		FallbackUsed: offer.FallbackUsed,
		OfferedAt:    offer.OfferedAt,
		ExpiresAt:    offer.ExpiresAt,
	}
}

// AssignmentActionRequest identifies one offer for confirm and release.
type AssignmentActionRequest struct {
	OrderID   string `json:"order_id"`
	CourierID int64  `json:"courier_id"`
}
