package zone

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/assignment"
)

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{querier: querier}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Zone, error) {
	query := `SELECT id, name, polygon FROM zones WHERE id = $1`

	var zoneModel ZoneDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(&zoneModel.ID, &zoneModel.Name, &zoneModel.Polygon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrZoneNotFound
		}

		return nil, fmt.Errorf("unexpected zone repository getbyid error: %w", err)
	}

	return ToDomain(&zoneModel)
}
