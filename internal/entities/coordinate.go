package entities

// Coordinate is a geographic point in decimal degrees, canonical order
// (longitude, latitude).
type Coordinate struct {
	Longitude float64
	Latitude  float64
}

// IsZero reports a degenerate (0,0) point. Couriers reporting it are treated
// as having no position fix: it almost always means an uninitialized device.
func (c Coordinate) IsZero() bool {
	return c.Longitude == 0 && c.Latitude == 0
}
