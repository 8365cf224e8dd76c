package courier

import (
	"dispatch/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:     c.ID,
		Name:   c.Name,
		Phone:  c.Phone,
		Status: entities.CourierStatusType(c.Status),
		LastLocation: entities.Coordinate{
			Longitude: c.LastLongitude,
			Latitude:  c.LastLatitude,
		},
		LastFixAt:      c.LastFixAt,
		ZoneID:         c.ZoneID,
		CashInHand:     c.CashInHand,
		CashLimit:      c.CashLimit,
		OfferedOrderID: c.OfferedOrderID,
		OfferedAt:      c.OfferedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{}

	if courierModify.ID != nil {
		courierDB.ID = courierModify.ID
	}
	if courierModify.Name != nil {
		courierDB.Name = courierModify.Name
	}
	if courierModify.Phone != nil {
		courierDB.Phone = courierModify.Phone
	}
	if courierModify.Status != nil {
		status := courierModify.Status.String()
		courierDB.Status = &status
	}
	if courierModify.LastLocation != nil {
		lng := courierModify.LastLocation.Longitude
		lat := courierModify.LastLocation.Latitude
		courierDB.LastLongitude = &lng
		courierDB.LastLatitude = &lat
	}
	if courierModify.LastFixAt != nil {
		courierDB.LastFixAt = courierModify.LastFixAt
	}
	if courierModify.ZoneID != nil {
		courierDB.ZoneID = courierModify.ZoneID
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
