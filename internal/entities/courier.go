package entities

import (
	"time"
)

type Courier struct {
	ID             int64
	Name           string
	Phone          string
	Status         CourierStatusType
	LastLocation   Coordinate
	LastFixAt      time.Time
	ZoneID         *int64
	CashInHand     float64
	CashLimit      float64
	OfferedOrderID *string
	OfferedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CourierStatusType string

const (
	// CourierAvailable couriers are eligible for assignment.
	CourierAvailable CourierStatusType = "available"
	// CourierOffered is the exclusive window between selection and acceptance.
	CourierOffered CourierStatusType = "offered"
	CourierBusy    CourierStatusType = "busy"
	CourierPaused  CourierStatusType = "paused"
)

func (t CourierStatusType) String() string {
	return string(t)
}

type CourierModify struct {
	ID           *int64
	Name         *string
	Phone        *string
	Status       *CourierStatusType
	LastLocation *Coordinate
	LastFixAt    *time.Time
	ZoneID       *int64
}

// Candidate is a courier annotated for one assignment decision.
type Candidate struct {
	Courier    Courier
	DistanceKm float64
	InZone     bool
}
