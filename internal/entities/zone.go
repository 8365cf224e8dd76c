package entities

// Zone is a named polygonal service area. A courier belongs to at most one
// zone at lookup time; membership is decided by polygon containment of the
// courier's last known position.
type Zone struct {
	ID      int64
	Name    string
	Polygon []Coordinate
}

// Contains runs a ray-casting point-in-polygon test over the zone ring.
func (z *Zone) Contains(point Coordinate) bool {
	if z == nil || len(z.Polygon) < 3 {
		return false
	}

	inside := false
	j := len(z.Polygon) - 1
	for i := 0; i < len(z.Polygon); i++ {
		pi := z.Polygon[i]
		pj := z.Polygon[j]

		intersects := (pi.Latitude > point.Latitude) != (pj.Latitude > point.Latitude) &&
			point.Longitude < (pj.Longitude-pi.Longitude)*(point.Latitude-pi.Latitude)/(pj.Latitude-pi.Latitude)+pi.Longitude
		if intersects {
			inside = !inside
		}
		j = i
	}
	return inside
}
