package zone

import (
	"encoding/json"
	"fmt"

	"dispatch/internal/entities"
)

func ToDomain(zoneModel *ZoneDB) (*entities.Zone, error) {
	var polygon []entities.Coordinate
	err := json.Unmarshal(zoneModel.Polygon, &polygon)
	if err != nil {
		return nil, fmt.Errorf("decode zone polygon: %w", err)
	}

	return &entities.Zone{
		ID:      zoneModel.ID,
		Name:    zoneModel.Name,
		Polygon: polygon,
	}, nil
}
