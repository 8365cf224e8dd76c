package settlement

import "dispatch/internal/entities"

func ToDomain(settlementModel *SettlementDB) *entities.Settlement {
	return &entities.Settlement{
		OrderID:        settlementModel.OrderID,
		CourierID:      settlementModel.CourierID,
		DistanceKm:     settlementModel.DistanceKm,
		DistanceSource: entities.DistanceSource(settlementModel.DistanceSource),
		CustomerPayment: entities.CustomerPayment{
			DeliveryFee: settlementModel.DeliveryFee,
			Tip:         settlementModel.Tip,
			Total:       settlementModel.OrderTotal,
		},
		CourierEarning: entities.CourierEarning{
			BasePayout:         settlementModel.BasePayout,
			DistanceCommission: settlementModel.DistanceCommission,
			SurgeAmount:        settlementModel.SurgeAmount,
			Tip:                settlementModel.Tip,
			Total:              settlementModel.CourierTotal,
		},
		PlatformEarning: entities.PlatformEarning{
			Commission:     settlementModel.RestaurantCommission,
			PlatformFee:    settlementModel.PlatformFee,
			DeliveryMargin: settlementModel.DeliveryMargin,
			Total:          settlementModel.PlatformTotal,
		},
		GuaranteeApplied: settlementModel.GuaranteeApplied,
	}
}

func FromDomain(settlementEntity *entities.Settlement) *SettlementDB {
	return &SettlementDB{
		OrderID:              settlementEntity.OrderID,
		CourierID:            settlementEntity.CourierID,
		DistanceKm:           settlementEntity.DistanceKm,
		DistanceSource:       string(settlementEntity.DistanceSource),
		DeliveryFee:          settlementEntity.CustomerPayment.DeliveryFee,
		Tip:                  settlementEntity.CustomerPayment.Tip,
		OrderTotal:           settlementEntity.CustomerPayment.Total,
		BasePayout:           settlementEntity.CourierEarning.BasePayout,
		DistanceCommission:   settlementEntity.CourierEarning.DistanceCommission,
		SurgeAmount:          settlementEntity.CourierEarning.SurgeAmount,
		CourierTotal:         settlementEntity.CourierEarning.Total,
		RestaurantCommission: settlementEntity.PlatformEarning.Commission,
		PlatformFee:          settlementEntity.PlatformEarning.PlatformFee,
		DeliveryMargin:       settlementEntity.PlatformEarning.DeliveryMargin,
		PlatformTotal:        settlementEntity.PlatformEarning.Total,
		GuaranteeApplied:     settlementEntity.GuaranteeApplied,
	}
}
