package courier

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	couriersvc "dispatch/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `c.id, c.name, c.phone, c.status,
		c.last_longitude, c.last_latitude, c.last_fix_at, c.zone_id,
		COALESCE(w.cash_in_hand, 0), COALESCE(w.cash_limit, $1),
		c.offered_order_id, c.offered_at, c.created_at, c.updated_at`

type Repository struct {
	querier          Querier
	defaultCashLimit float64
}

func New(querier Querier, defaultCashLimit float64) *Repository {
	return &Repository{
		querier:          querier,
		defaultCashLimit: defaultCashLimit,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (name, phone, status, last_longitude, last_latitude, last_fix_at, zone_id)
		VALUES ($1, $2, $3, COALESCE($4, 0), COALESCE($5, 0), COALESCE($6, NOW()), $7)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.Name,
		courierModifyModel.Phone,
		courierModifyModel.Status,
		courierModifyModel.LastLongitude,
		courierModifyModel.LastLatitude,
		courierModifyModel.LastFixAt,
		courierModifyModel.ZoneID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, couriersvc.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers AS c")

	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.LastLongitude != nil {
		builder = builder.Set("last_longitude", courierModifyModel.LastLongitude)
	}
	if courierModifyModel.LastLatitude != nil {
		builder = builder.Set("last_latitude", courierModifyModel.LastLatitude)
	}
	if courierModifyModel.LastFixAt != nil {
		builder = builder.Set("last_fix_at", courierModifyModel.LastFixAt)
	}
	if courierModifyModel.ZoneID != nil {
		builder = builder.Set("zone_id", courierModifyModel.ZoneID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix(`RETURNING id, name, phone, status,
			last_longitude, last_latitude, last_fix_at, zone_id,
			offered_order_id, offered_at, created_at, updated_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var courierModel CourierDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Phone,
			&courierModel.Status,
			&courierModel.LastLongitude,
			&courierModel.LastLatitude,
			&courierModel.LastFixAt,
			&courierModel.ZoneID,
			&courierModel.OfferedOrderID,
			&courierModel.OfferedAt,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, couriersvc.ErrCourierNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, couriersvc.ErrConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	courierModel.CashLimit = r.defaultCashLimit
	return ToDomain(&courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers c
		LEFT JOIN wallets w ON w.courier_id = c.id
		WHERE c.id = $2`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, r.defaultCashLimit, id).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Phone,
			&courierModel.Status,
			&courierModel.LastLongitude,
			&courierModel.LastLatitude,
			&courierModel.LastFixAt,
			&courierModel.ZoneID,
			&courierModel.CashInHand,
			&courierModel.CashLimit,
			&courierModel.OfferedOrderID,
			&courierModel.OfferedAt,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, couriersvc.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers c
		LEFT JOIN wallets w ON w.courier_id = c.id
		ORDER BY c.id`

	rows, err := r.querier.Query(ctx, query, r.defaultCashLimit)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Phone,
			&courierModel.Status,
			&courierModel.LastLongitude,
			&courierModel.LastLatitude,
			&courierModel.LastFixAt,
			&courierModel.ZoneID,
			&courierModel.CashInHand,
			&courierModel.CashLimit,
			&courierModel.OfferedOrderID,
			&courierModel.OfferedAt,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

// ListAvailable returns couriers eligible for assignment: available status and
// a position fix newer than maxFixAge. Cash figures come from the wallet join
// so the ledger stays the single source of cash-in-hand.
func (r *Repository) ListAvailable(ctx context.Context, maxFixAge time.Duration) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers c
		LEFT JOIN wallets w ON w.courier_id = c.id
		WHERE c.status = 'available'
		  AND c.last_fix_at >= NOW() - $2::interval
		ORDER BY c.id`

	rows, err := r.querier.Query(ctx, query, r.defaultCashLimit, maxFixAge)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository listavailable error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Phone,
			&courierModel.Status,
			&courierModel.LastLongitude,
			&courierModel.LastLatitude,
			&courierModel.LastFixAt,
			&courierModel.ZoneID,
			&courierModel.CashInHand,
			&courierModel.CashLimit,
			&courierModel.OfferedOrderID,
			&courierModel.OfferedAt,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository listavailable error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository listavailable error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

// MarkOffered transitions a courier from available to offered. The status
// guard in WHERE makes the transition conditional: the courier lost to a
// concurrent assignment yields zero rows, not a double offer.
func (r *Repository) MarkOffered(ctx context.Context, courierID int64, orderID string, at time.Time) (bool, error) {
	query := `
		UPDATE couriers
		SET status = 'offered',
		    offered_order_id = $2,
		    offered_at = $3,
		    updated_at = NOW()
		WHERE id = $1 AND status = 'available'
	`

	result, err := r.querier.Exec(ctx, query, courierID, orderID, at)
	if err != nil {
		return false, fmt.Errorf("unexpected courier repository markoffered error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ConfirmOffer transitions offered -> busy for the courier holding orderID.
func (r *Repository) ConfirmOffer(ctx context.Context, courierID int64, orderID string) (bool, error) {
	query := `
		UPDATE couriers
		SET status = 'busy',
		    updated_at = NOW()
		WHERE id = $1 AND status = 'offered' AND offered_order_id = $2
	`

	result, err := r.querier.Exec(ctx, query, courierID, orderID)
	if err != nil {
		return false, fmt.Errorf("unexpected courier repository confirmoffer error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ReleaseOffer returns an offered courier to the available pool.
func (r *Repository) ReleaseOffer(ctx context.Context, courierID int64, orderID string) (bool, error) {
	query := `
		UPDATE couriers
		SET status = 'available',
		    offered_order_id = NULL,
		    offered_at = NULL,
		    updated_at = NOW()
		WHERE id = $1 AND status = 'offered' AND offered_order_id = $2
	`

	result, err := r.querier.Exec(ctx, query, courierID, orderID)
	if err != nil {
		return false, fmt.Errorf("unexpected courier repository releaseoffer error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ReleaseBusy returns a busy courier to the pool once the delivery finished.
func (r *Repository) ReleaseBusy(ctx context.Context, courierID int64) (bool, error) {
	query := `
		UPDATE couriers
		SET status = 'available',
		    offered_order_id = NULL,
		    offered_at = NULL,
		    updated_at = NOW()
		WHERE id = $1 AND status = 'busy'
	`

	result, err := r.querier.Exec(ctx, query, courierID)
	if err != nil {
		return false, fmt.Errorf("unexpected courier repository releasebusy error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ReleaseExpiredOffers frees couriers whose offer window elapsed without an
// acceptance.
func (r *Repository) ReleaseExpiredOffers(ctx context.Context, ttl time.Duration) (int64, error) {
	query := `
		UPDATE couriers
		SET status = 'available',
		    offered_order_id = NULL,
		    offered_at = NULL,
		    updated_at = NOW()
		WHERE status = 'offered'
		  AND offered_at < NOW() - $1::interval
	`

	result, err := r.querier.Exec(ctx, query, ttl)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier repository release expired offers error: %w", err)
	}

	return result.RowsAffected(), nil
}
