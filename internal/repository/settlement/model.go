package settlement

import "time"

type SettlementDB struct {
	OrderID              string
	CourierID            int64
	DistanceKm           float64
	DistanceSource       string
	DeliveryFee          float64
	Tip                  float64
	OrderTotal           float64
	BasePayout           float64
	DistanceCommission   float64
	SurgeAmount          float64
	CourierTotal         float64
	RestaurantCommission float64
	PlatformFee          float64
	DeliveryMargin       float64
	PlatformTotal        float64
	GuaranteeApplied     bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
