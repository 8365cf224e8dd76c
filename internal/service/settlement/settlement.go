package settlement

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
	walletsvc "dispatch/internal/service/wallet"
	"dispatch/pkg/logger"
)

// DistancePolicy decides what happens when no distance input is resolvable.
type DistancePolicy string

const (
	// PolicyZero settles with a zero distance; the courier still receives the
	// base payout.
	PolicyZero DistancePolicy = "zero"
	// PolicyBlock refuses to settle until a distance is entered manually.
	PolicyBlock DistancePolicy = "block"
)

type Config struct {
	Rule           entities.CommissionRule
	DistancePolicy DistancePolicy
}

type Settlement struct {
	repository Repository
	wallets    WalletService
	txManager  TxManager
	log        logger.Logger
	cfg        Config
}

func New(
	repository Repository,
	wallets WalletService,
	txManager TxManager,
	log logger.Logger,
	cfg Config,
) *Settlement {
	return &Settlement{
		repository: repository,
		wallets:    wallets,
		txManager:  txManager,
		log:        log,
		cfg:        cfg,
	}
}

func (s *Settlement) GetSettlement(ctx context.Context, orderID string) (*entities.Settlement, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	return s.repository.GetByOrderID(ctx, orderID)
}

// resolveDistance picks the settlement distance in priority order: the
// recorded route distance, the assignment-time distance, a fresh straight-line
// computation, then the configured last-resort policy.
func (s *Settlement) resolveDistance(order *entities.Order) (float64, entities.DistanceSource, error) {
	if order.RouteDistanceKm != nil && *order.RouteDistanceKm >= 0 {
		return *order.RouteDistanceKm, entities.DistanceFromRoute, nil
	}
	if order.AssignedDistanceKm != nil && *order.AssignedDistanceKm >= 0 {
		return *order.AssignedDistanceKm, entities.DistanceFromAssignment, nil
	}
	if !order.RestaurantLocation.IsZero() && !order.DeliveryLocation.IsZero() {
		return geo.Distance(order.RestaurantLocation, order.DeliveryLocation), entities.DistanceFromStraight, nil
	}

	switch s.cfg.DistancePolicy {
	case PolicyZero:
		return 0, entities.DistanceFromPolicy, nil
	case PolicyBlock:
		return 0, "", ErrDistanceUnresolved
	default:
		return 0, "", ErrUnknownDistancePolicy
	}
}

// Compute derives the three-way split for an order. It is pure: identical
// inputs always produce an identical settlement.
func Compute(order *entities.Order, courierID int64, distanceKm float64, source entities.DistanceSource, rule entities.CommissionRule) entities.Settlement {
	surge := order.SurgeMultiplier
	if surge < 1 {
		surge = 1
	}

	chargeableKm := distanceKm - rule.FreeDistanceKm
	if chargeableKm < 0 {
		chargeableKm = 0
	}

	distanceCommission := chargeableKm * rule.PerKmRate
	surgeAmount := distanceCommission * (surge - 1)

	deliveryEarning := rule.BasePayout + distanceCommission + surgeAmount

	guaranteeApplied := false
	if rule.MinimumGuarantee && deliveryEarning < order.DeliveryFee {
		deliveryEarning = order.DeliveryFee
		guaranteeApplied = true
	}

	margin := order.DeliveryFee - deliveryEarning

	return entities.Settlement{
		OrderID:        order.ID,
		CourierID:      courierID,
		DistanceKm:     distanceKm,
		DistanceSource: source,
		CustomerPayment: entities.CustomerPayment{
			DeliveryFee: order.DeliveryFee,
			Tip:         order.Tip,
			Total:       order.Total,
		},
		CourierEarning: entities.CourierEarning{
			BasePayout:         rule.BasePayout,
			DistanceCommission: distanceCommission,
			SurgeAmount:        surgeAmount,
			Tip:                order.Tip,
			Total:              deliveryEarning + order.Tip,
		},
		PlatformEarning: entities.PlatformEarning{
			Commission:     order.RestaurantCommission,
			PlatformFee:    rule.PlatformFee,
			DeliveryMargin: margin,
			Total:          order.RestaurantCommission + rule.PlatformFee + margin,
		},
		GuaranteeApplied: guaranteeApplied,
	}
}

// RequestSettlement computes the split for a delivered order, stores it, and
// credits the courier wallet, all inside one transaction. Settling the same
// order again replaces the stored record and leaves the wallet untouched
// thanks to per-order idempotency keys.
func (s *Settlement) RequestSettlement(ctx context.Context, order entities.Order) (*entities.Settlement, error) {
	if strings.TrimSpace(order.ID) == "" {
		return nil, ErrInvalidOrderID
	}
	if order.CourierID == nil || *order.CourierID <= 0 {
		return nil, ErrMissingCourier
	}
	courierID := *order.CourierID

	distanceKm, source, err := s.resolveDistance(&order)
	if err != nil {
		return nil, err
	}

	settlementEntity := Compute(&order, courierID, distanceKm, source, s.cfg.Rule)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.repository.Upsert(ctx, settlementEntity)
		if err != nil {
			return fmt.Errorf("store settlement: %w", err)
		}

		deliveryEarning := settlementEntity.CourierEarning.Total - settlementEntity.CourierEarning.Tip
		err = s.credit(ctx, entities.WalletTransactionCreate{
			CourierID:      courierID,
			Amount:         deliveryEarning,
			Kind:           entities.TxnPayment,
			OrderID:        &order.ID,
			IdempotencyKey: fmt.Sprintf("settle:%s:payment", order.ID),
			Details: entities.TransactionDetails{
				Payment: &entities.PaymentDetails{
					CashCollected: order.CashDue(),
					OrderTotal:    order.Total,
				},
			},
		})
		if err != nil {
			return err
		}

		if order.Tip > 0 {
			err = s.credit(ctx, entities.WalletTransactionCreate{
				CourierID:      courierID,
				Amount:         order.Tip,
				Kind:           entities.TxnTip,
				OrderID:        &order.ID,
				IdempotencyKey: fmt.Sprintf("settle:%s:tip", order.ID),
				Details: entities.TransactionDetails{
					Tip: &entities.TipDetails{Source: "order"},
				},
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if settlementEntity.NegativeMargin() {
		NegativeMarginsTotal.Inc()
		s.log.Warn("settlement closed with negative delivery margin",
			logger.NewField("order_id", order.ID),
			logger.NewField("delivery_margin", settlementEntity.PlatformEarning.DeliveryMargin),
		)
	}
	if settlementEntity.GuaranteeApplied {
		GuaranteeAppliedTotal.Inc()
	}

	return &settlementEntity, nil
}

// credit appends and completes one wallet credit. A replayed idempotency key
// means the courier was already paid for this leg; that is success. The cash
// limit is bypassed: it gates assignment, and by settlement time the cash is
// already in the courier's hands.
func (s *Settlement) credit(ctx context.Context, create entities.WalletTransactionCreate) error {
	txn, err := s.wallets.AppendTransaction(ctx, create, true)
	if err != nil {
		if errors.Is(err, walletsvc.ErrDuplicateTransaction) {
			return nil
		}
		return fmt.Errorf("credit wallet: %w", err)
	}

	_, err = s.wallets.TransitionToCompleted(ctx, txn.ID)
	if err != nil {
		return fmt.Errorf("complete wallet credit: %w", err)
	}

	return nil
}
