package entities

// PaymentMethod describes how the customer pays for the order.
type PaymentMethod string

const (
	PaymentOnline         PaymentMethod = "online"
	PaymentCashOnDelivery PaymentMethod = "cash"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// Order is the slice of the order record this service consumes. It is owned
// by the order workflow; assignment and settlement only read it.
type Order struct {
	ID                   string
	RestaurantLocation   Coordinate
	DeliveryLocation     Coordinate
	RouteDistanceKm      *float64
	AssignedDistanceKm   *float64
	DeliveryFee          float64
	Tip                  float64
	Total                float64
	RestaurantCommission float64
	PaymentMethod        PaymentMethod
	SurgeMultiplier      float64
	CourierID            *int64
}

// CashDue is the physical currency the courier collects on delivery.
func (o *Order) CashDue() float64 {
	if o.PaymentMethod != PaymentCashOnDelivery {
		return 0
	}
	return o.Total
}
