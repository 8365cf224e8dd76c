// Package dto holds the wire types shared by the REST handlers and the Kafka
// consumer.
package dto

import (
	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
)

// OrderPayload is the order snapshot carried by assignment and settlement
// requests. Locations are raw JSON values; any of the accepted coordinate
// shapes is fine.
type OrderPayload struct {
	OrderID              string   `json:"order_id"`
	RestaurantLocation   any      `json:"restaurant_location,omitempty"`
	DeliveryLocation     any      `json:"delivery_location,omitempty"`
	RouteDistanceKm      *float64 `json:"route_distance_km,omitempty"`
	AssignedDistanceKm   *float64 `json:"assigned_distance_km,omitempty"`
	DeliveryFee          float64  `json:"delivery_fee"`
	Tip                  float64  `json:"tip"`
	Total                float64  `json:"total"`
	RestaurantCommission float64  `json:"restaurant_commission"`
	PaymentMethod        string   `json:"payment_method"`
	SurgeMultiplier      float64  `json:"surge_multiplier"`
	CourierID            *int64   `json:"courier_id,omitempty"`
}

// ToEntity converts the payload into the domain order. Unresolvable locations
// stay zero-valued; the services decide what that means for them.
func (p *OrderPayload) ToEntity() entities.Order {
	order := entities.Order{
		ID:                   p.OrderID,
		RouteDistanceKm:      p.RouteDistanceKm,
		AssignedDistanceKm:   p.AssignedDistanceKm,
		DeliveryFee:          p.DeliveryFee,
		Tip:                  p.Tip,
		Total:                p.Total,
		RestaurantCommission: p.RestaurantCommission,
		PaymentMethod:        entities.PaymentMethod(p.PaymentMethod),
		SurgeMultiplier:      p.SurgeMultiplier,
		CourierID:            p.CourierID,
	}

	if coord, ok := geo.Normalize(p.RestaurantLocation); ok {
		order.RestaurantLocation = coord
	}
	if coord, ok := geo.Normalize(p.DeliveryLocation); ok {
		order.DeliveryLocation = coord
	}

	return order
}
