package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dispatch/internal/entities"
	settlementsvc "dispatch/internal/service/settlement"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{querier: querier}
}

// Upsert writes the settlement keyed by order id. Recomputation replaces the
// previous record in place, which is what makes settling idempotent.
func (r *Repository) Upsert(ctx context.Context, settlementEntity entities.Settlement) error {
	settlementModel := FromDomain(&settlementEntity)

	query := `
		INSERT INTO settlements
			(order_id, courier_id, distance_km, distance_source,
			 delivery_fee, tip, order_total,
			 base_payout, distance_commission, surge_amount, courier_total,
			 restaurant_commission, platform_fee, delivery_margin, platform_total,
			 guarantee_applied)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (order_id) DO UPDATE SET
			courier_id = EXCLUDED.courier_id,
			distance_km = EXCLUDED.distance_km,
			distance_source = EXCLUDED.distance_source,
			delivery_fee = EXCLUDED.delivery_fee,
			tip = EXCLUDED.tip,
			order_total = EXCLUDED.order_total,
			base_payout = EXCLUDED.base_payout,
			distance_commission = EXCLUDED.distance_commission,
			surge_amount = EXCLUDED.surge_amount,
			courier_total = EXCLUDED.courier_total,
			restaurant_commission = EXCLUDED.restaurant_commission,
			platform_fee = EXCLUDED.platform_fee,
			delivery_margin = EXCLUDED.delivery_margin,
			platform_total = EXCLUDED.platform_total,
			guarantee_applied = EXCLUDED.guarantee_applied,
			updated_at = NOW()
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		settlementModel.OrderID,
		settlementModel.CourierID,
		settlementModel.DistanceKm,
		settlementModel.DistanceSource,
		settlementModel.DeliveryFee,
		settlementModel.Tip,
		settlementModel.OrderTotal,
		settlementModel.BasePayout,
		settlementModel.DistanceCommission,
		settlementModel.SurgeAmount,
		settlementModel.CourierTotal,
		settlementModel.RestaurantCommission,
		settlementModel.PlatformFee,
		settlementModel.DeliveryMargin,
		settlementModel.PlatformTotal,
		settlementModel.GuaranteeApplied,
	)
	if err != nil {
		return fmt.Errorf("unexpected settlement repository upsert error: %w", err)
	}

	return nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Settlement, error) {
	query := `
		SELECT order_id, courier_id, distance_km, distance_source,
			delivery_fee, tip, order_total,
			base_payout, distance_commission, surge_amount, courier_total,
			restaurant_commission, platform_fee, delivery_margin, platform_total,
			guarantee_applied, created_at, updated_at
		FROM settlements
		WHERE order_id = $1
	`

	var settlementModel SettlementDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&settlementModel.OrderID,
			&settlementModel.CourierID,
			&settlementModel.DistanceKm,
			&settlementModel.DistanceSource,
			&settlementModel.DeliveryFee,
			&settlementModel.Tip,
			&settlementModel.OrderTotal,
			&settlementModel.BasePayout,
			&settlementModel.DistanceCommission,
			&settlementModel.SurgeAmount,
			&settlementModel.CourierTotal,
			&settlementModel.RestaurantCommission,
			&settlementModel.PlatformFee,
			&settlementModel.DeliveryMargin,
			&settlementModel.PlatformTotal,
			&settlementModel.GuaranteeApplied,
			&settlementModel.CreatedAt,
			&settlementModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlementsvc.ErrSettlementNotFound
		}

		return nil, fmt.Errorf("unexpected settlement repository getbyorderid error: %w", err)
	}

	return ToDomain(&settlementModel), nil
}
