package dto

import "dispatch/internal/entities"

type CustomerPaymentDTO struct {
	DeliveryFee float64 `json:"delivery_fee"`
	Tip         float64 `json:"tip"`
	Total       float64 `json:"total"`
}

type CourierEarningDTO struct {
	BasePayout         float64 `json:"base_payout"`
	DistanceCommission float64 `json:"distance_commission"`
	SurgeAmount        float64 `json:"surge_amount"`
	Tip                float64 `json:"tip"`
	Total              float64 `json:"total"`
}

type PlatformEarningDTO struct {
	Commission     float64 `json:"commission"`
	PlatformFee    float64 `json:"platform_fee"`
	DeliveryMargin float64 `json:"delivery_margin"`
	Total          float64 `json:"total"`
}

type SettlementResponse struct {
	OrderID          string             `json:"order_id"`
	CourierID        int64              `json:"courier_id"`
	DistanceKm       float64            `json:"distance_km"`
	DistanceSource   string             `json:"distance_source"`
	CustomerPayment  CustomerPaymentDTO `json:"customer_payment"`
	CourierEarning   CourierEarningDTO  `json:"courier_earning"`
	PlatformEarning  PlatformEarningDTO `json:"platform_earning"`
	GuaranteeApplied bool               `json:"guarantee_applied"`
	NegativeMargin   bool               `json:"negative_margin"`
}

func NewSettlementResponse(s *entities.Settlement) SettlementResponse {
	return SettlementResponse{
		OrderID:        s.OrderID,
		CourierID:      s.CourierID,
		DistanceKm:     s.DistanceKm,
		DistanceSource: string(s.DistanceSource),
		CustomerPayment: CustomerPaymentDTO{
			DeliveryFee: s.CustomerPayment.DeliveryFee,
			Tip:         s.CustomerPayment.Tip,
			Total:       s.CustomerPayment.Total,
		},
		CourierEarning: CourierEarningDTO{
			BasePayout:         s.CourierEarning.BasePayout,
			DistanceCommission: s.CourierEarning.DistanceCommission,
			SurgeAmount:        s.CourierEarning.SurgeAmount,
			Tip:                s.CourierEarning.Tip,
			Total:              s.CourierEarning.Total,
		},
		PlatformEarning: PlatformEarningDTO{
			Commission:     s.PlatformEarning.Commission,
			PlatformFee:    s.PlatformEarning.PlatformFee,
			DeliveryMargin: s.PlatformEarning.DeliveryMargin,
			Total:          s.PlatformEarning.Total,
		},
		GuaranteeApplied: s.GuaranteeApplied,
		NegativeMargin:   s.NegativeMargin(),
	}
}
