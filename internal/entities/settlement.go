package entities

// CommissionRule holds the externally configured parameters of the
// distance-based courier payout rule. Consumed, never owned.
type CommissionRule struct {
	BasePayout       float64
	FreeDistanceKm   float64
	PerKmRate        float64
	PlatformFee      float64
	MinimumGuarantee bool
}

type CustomerPayment struct {
	DeliveryFee float64
	Tip         float64
	Total       float64
}

type CourierEarning struct {
	BasePayout         float64
	DistanceCommission float64
	SurgeAmount        float64
	Tip                float64
	Total              float64
}

type PlatformEarning struct {
	Commission  float64
	PlatformFee float64
	// DeliveryMargin = customer delivery fee minus the courier's non-tip
	// delivery earning. Negative values are a reportable business condition,
	// not an error.
	DeliveryMargin float64
	Total          float64
}

// DistanceSource records which input produced the settlement distance.
type DistanceSource string

const (
	DistanceFromRoute      DistanceSource = "route"
	DistanceFromAssignment DistanceSource = "assignment"
	DistanceFromStraight   DistanceSource = "straight_line"
	DistanceFromPolicy     DistanceSource = "policy_zero"
)

// Settlement is the three-way financial split of one delivered order.
// Recomputation replaces the stored record; it never duplicates.
type Settlement struct {
	OrderID          string
	CourierID        int64
	DistanceKm       float64
	DistanceSource   DistanceSource
	CustomerPayment  CustomerPayment
	CourierEarning   CourierEarning
	PlatformEarning  PlatformEarning
	GuaranteeApplied bool
}

// NegativeMargin reports whether the platform paid the courier more for the
// delivery than the customer was charged.
func (s *Settlement) NegativeMargin() bool {
	return s.PlatformEarning.DeliveryMargin < 0
}
