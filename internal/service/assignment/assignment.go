package assignment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
	"dispatch/pkg/logger"
)

type Config struct {
	MaxDistanceKm  float64
	OfferTTL       time.Duration
	LocationMaxAge time.Duration
}

type Assignment struct {
	couriers CourierRepository
	zones    ZoneRepository
	locker   OfferLocker
	log      logger.Logger
	cfg      Config
}

func New(
	couriers CourierRepository,
	zones ZoneRepository,
	locker OfferLocker,
	log logger.Logger,
	cfg Config,
) *Assignment {
	return &Assignment{
		couriers: couriers,
		zones:    zones,
		locker:   locker,
		log:      log,
		cfg:      cfg,
	}
}

// FindCandidates builds the eligible courier list for an order. A courier
// qualifies when it is available, its last position fix is fresh, the fix is
// not the (0, 0) null-island placeholder, and, for cash orders, collecting the
// order's cash would not push it past its cash limit.
func (a *Assignment) FindCandidates(ctx context.Context, order entities.Order) ([]entities.Candidate, error) {
	return a.findCandidates(ctx, order, true)
}

func (a *Assignment) findCandidates(ctx context.Context, order entities.Order, enforceCash bool) ([]entities.Candidate, error) {
	couriers, err := a.couriers.ListAvailable(ctx, a.cfg.LocationMaxAge)
	if err != nil {
		return nil, fmt.Errorf("list available couriers: %w", err)
	}

	cashDue := order.CashDue()
	zones := make(map[int64]*entities.Zone)

	candidates := make([]entities.Candidate, 0, len(couriers))
	for _, courier := range couriers {
		if courier.LastLocation.IsZero() {
			continue
		}

		if enforceCash && cashDue > 0 && courier.CashInHand+cashDue > courier.CashLimit {
			continue
		}

		candidates = append(candidates, entities.Candidate{
			Courier:    courier,
			DistanceKm: geo.Distance(courier.LastLocation, order.RestaurantLocation),
			InZone:     a.inZone(ctx, zones, courier, order.RestaurantLocation),
		})
	}

	return candidates, nil
}

func (a *Assignment) inZone(ctx context.Context, cache map[int64]*entities.Zone, courier entities.Courier, pickup entities.Coordinate) bool {
	if courier.ZoneID == nil {
		return false
	}

	zone, ok := cache[*courier.ZoneID]
	if !ok {
		loaded, err := a.zones.GetByID(ctx, *courier.ZoneID)
		if err != nil {
			// An unknown zone demotes the courier to out-of-zone rather than
			// failing the whole assignment.
			a.log.Warn("zone lookup failed",
				logger.NewField("zone_id", *courier.ZoneID),
				logger.NewField("error", err.Error()),
			)
			cache[*courier.ZoneID] = nil
			return false
		}
		zone = loaded
		cache[*courier.ZoneID] = zone
	}

	return zone.Contains(pickup)
}

// RankForOrder filters candidates to the maximum pickup radius and orders them
// nearest first. A positive limit truncates the result.
func (a *Assignment) RankForOrder(candidates []entities.Candidate, limit int) []entities.Candidate {
	ranked := make([]entities.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.DistanceKm <= a.cfg.MaxDistanceKm {
			ranked = append(ranked, candidate)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// PickNearest orders candidates with zone membership as the primary key and
// distance as the tiebreaker, so an in-zone courier beats a marginally closer
// out-of-zone one.
func (a *Assignment) PickNearest(candidates []entities.Candidate) []entities.Candidate {
	ranked := a.RankForOrder(candidates, 0)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].InZone != ranked[j].InZone {
			return ranked[i].InZone
		}
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}

// RequestAssignment selects a courier for the order and places an exclusive
// offer. When the cash-capacity filter empties the pool it is relaxed and the
// offer is flagged as a fallback.
func (a *Assignment) RequestAssignment(ctx context.Context, order entities.Order) (*entities.AssignmentOffer, error) {
	if !isValidOrderID(order.ID) {
		return nil, ErrInvalidOrderID
	}
	if order.RestaurantLocation.IsZero() {
		return nil, ErrMissingPickup
	}

	fallbackUsed := false
	candidates, err := a.findCandidates(ctx, order, true)
	if err != nil {
		return nil, err
	}

	if len(a.RankForOrder(candidates, 0)) == 0 && order.CashDue() > 0 {
		candidates, err = a.findCandidates(ctx, order, false)
		if err != nil {
			return nil, err
		}
		if len(a.RankForOrder(candidates, 0)) > 0 {
			fallbackUsed = true
			FallbackAssignmentsTotal.Inc()
			a.log.Warn("cash-capacity filter relaxed for assignment",
				logger.NewField("order_id", order.ID),
			)
		}
	}

	ranked := a.PickNearest(candidates)
	if len(ranked) == 0 {
		UnassignedOrdersTotal.Inc()
		return nil, ErrNoCandidates
	}

	for _, candidate := range ranked {
		offer, err := a.tryOffer(ctx, order.ID, candidate, fallbackUsed)
		if err != nil {
			return nil, err
		}
		if offer != nil {
			return offer, nil
		}
	}

	UnassignedOrdersTotal.Inc()
	return nil, ErrNoCandidates
}

// tryOffer attempts one candidate. A nil, nil return means the candidate was
// lost to a concurrent assignment and the caller should move to the next one.
func (a *Assignment) tryOffer(ctx context.Context, orderID string, candidate entities.Candidate, fallbackUsed bool) (*entities.AssignmentOffer, error) {
	courierID := candidate.Courier.ID

	locked, err := a.locker.Acquire(ctx, courierID, orderID)
	if err != nil {
		return nil, fmt.Errorf("lock courier %d: %w", courierID, err)
	}
	if !locked {
		return nil, nil
	}

	offeredAt := time.Now().UTC()
	marked, err := a.couriers.MarkOffered(ctx, courierID, orderID, offeredAt)
	if err != nil {
		releaseErr := a.locker.Release(ctx, courierID, orderID)
		if releaseErr != nil {
			a.log.Error("release offer lock after failed mark",
				logger.NewField("courier_id", courierID),
				logger.NewField("error", releaseErr.Error()),
			)
		}
		return nil, fmt.Errorf("mark courier %d offered: %w", courierID, err)
	}
	if !marked {
		// The courier left the available pool between listing and locking.
		err = a.locker.Release(ctx, courierID, orderID)
		if err != nil {
			a.log.Error("release offer lock after lost race",
				logger.NewField("courier_id", courierID),
				logger.NewField("error", err.Error()),
			)
		}
		return nil, nil
	}

	return &entities.AssignmentOffer{
		OrderID:      orderID,
		CourierID:    courierID,
		DistanceKm:   candidate.DistanceKm,
		InZone:       candidate.InZone,
		FallbackUsed: fallbackUsed,
		OfferedAt:    offeredAt,
		ExpiresAt:    offeredAt.Add(a.cfg.OfferTTL),
	}, nil
}

// ConfirmAssignment moves the offered courier to busy once the courier accepts
// the order.
func (a *Assignment) ConfirmAssignment(ctx context.Context, courierID int64, orderID string) error {
	if !isValidCourierID(courierID) {
		return ErrInvalidCourierID
	}
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	confirmed, err := a.couriers.ConfirmOffer(ctx, courierID, orderID)
	if err != nil {
		return fmt.Errorf("confirm offer: %w", err)
	}
	if !confirmed {
		return ErrOfferNotFound
	}

	err = a.locker.Release(ctx, courierID, orderID)
	if err != nil {
		a.log.Error("release offer lock after confirm",
			logger.NewField("courier_id", courierID),
			logger.NewField("error", err.Error()),
		)
	}

	return nil
}

// ReleaseAssignment returns an offered courier to the pool when the courier
// declines or the order is cancelled.
func (a *Assignment) ReleaseAssignment(ctx context.Context, courierID int64, orderID string) error {
	if !isValidCourierID(courierID) {
		return ErrInvalidCourierID
	}
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	released, err := a.couriers.ReleaseOffer(ctx, courierID, orderID)
	if err != nil {
		return fmt.Errorf("release offer: %w", err)
	}
	if !released {
		return ErrOfferNotFound
	}

	err = a.locker.Release(ctx, courierID, orderID)
	if err != nil {
		a.log.Error("release offer lock",
			logger.NewField("courier_id", courierID),
			logger.NewField("error", err.Error()),
		)
	}

	return nil
}

// CompleteAssignment frees a busy courier after the delivery finished.
func (a *Assignment) CompleteAssignment(ctx context.Context, courierID int64) error {
	if !isValidCourierID(courierID) {
		return ErrInvalidCourierID
	}

	released, err := a.couriers.ReleaseBusy(ctx, courierID)
	if err != nil {
		return fmt.Errorf("release busy courier: %w", err)
	}
	if !released {
		return ErrOfferNotFound
	}

	return nil
}

// ReleaseExpiredOffers frees couriers whose offer window elapsed. Run
// periodically by the offer cleanup task.
func (a *Assignment) ReleaseExpiredOffers(ctx context.Context) (int64, error) {
	released, err := a.couriers.ReleaseExpiredOffers(ctx, a.cfg.OfferTTL)
	if err != nil {
		return 0, fmt.Errorf("release expired offers: %w", err)
	}

	if released > 0 {
		ExpiredOffersReleasedTotal.Add(float64(released))
	}

	return released, nil
}
