//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type CourierRepository interface {
	ListAvailable(ctx context.Context, maxFixAge time.Duration) ([]entities.Courier, error)

	MarkOffered(ctx context.Context, courierID int64, orderID string, at time.Time) (bool, error)
	ConfirmOffer(ctx context.Context, courierID int64, orderID string) (bool, error)
	ReleaseOffer(ctx context.Context, courierID int64, orderID string) (bool, error)
	ReleaseBusy(ctx context.Context, courierID int64) (bool, error)
	ReleaseExpiredOffers(ctx context.Context, ttl time.Duration) (int64, error)
}

type ZoneRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Zone, error)
}

// OfferLocker serializes offers per courier across concurrent assignment
// requests.
type OfferLocker interface {
	Acquire(ctx context.Context, courierID int64, orderID string) (bool, error)
	Release(ctx context.Context, courierID int64, orderID string) error
}
