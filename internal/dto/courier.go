package dto

import (
	"time"

	"dispatch/internal/entities"
)

type Courier struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Status         string     `json:"status"`
	Location       any        `json:"location,omitempty"`
	LastFixAt      *time.Time `json:"last_fix_at,omitempty"`
	ZoneID         *int64     `json:"zone_id,omitempty"`
	CashInHand     float64    `json:"cash_in_hand"`
	CashLimit      float64    `json:"cash_limit"`
	OfferedOrderID *string    `json:"offered_order_id,omitempty"`
}

func NewCourier(c *entities.Courier) Courier {
	courierDTO := Courier{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Status:         c.Status.String(),
		ZoneID:         c.ZoneID,
		CashInHand:     c.CashInHand,
		CashLimit:      c.CashLimit,
		OfferedOrderID: c.OfferedOrderID,
	}

	if !c.LastLocation.IsZero() {
		courierDTO.Location = map[string]float64{
			"lng": c.LastLocation.Longitude,
			"lat": c.LastLocation.Latitude,
		}
		fixAt := c.LastFixAt
		courierDTO.LastFixAt = &fixAt
	}

	return courierDTO
}

type CourierCreateRequest struct {
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	Status *string `json:"status,omitempty"`
	ZoneID *int64  `json:"zone_id,omitempty"`
}

type CourierUpdateRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty"`
	ZoneID *int64  `json:"zone_id,omitempty"`
}

type CourierLocationRequest struct {
	Location any `json:"location"`
}

type CourierCreateResponse struct {
	ID int64 `json:"id"`
}
