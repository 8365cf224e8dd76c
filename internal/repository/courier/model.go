package courier

import "time"

type CourierDB struct {
	ID             int64
	Name           string
	Phone          string
	Status         string
	LastLongitude  float64
	LastLatitude   float64
	LastFixAt      time.Time
	ZoneID         *int64
	CashInHand     float64
	CashLimit      float64
	OfferedOrderID *string
	OfferedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CourierModifyDB struct {
	ID            *int64
	Name          *string
	Phone         *string
	Status        *string
	LastLongitude *float64
	LastLatitude  *float64
	LastFixAt     *time.Time
	ZoneID        *int64
}
