// Package geo normalizes the coordinate shapes seen in order and courier
// payloads and computes great-circle distances between them.
package geo

import (
	"math"

	"dispatch/internal/entities"
)

const earthRadiusKm = 6371

// Normalize extracts a canonical (longitude, latitude) pair from one of the
// accepted input shapes:
//
//   - an ordered pair: []float64{lng, lat} or [2]any
//   - a named object: {"latitude": …, "longitude": …} or {"lat": …, "lng": …}
//   - GeoJSON style: {"coordinates": [lng, lat]}
//
// each optionally nested one level under a "location" key. The second return
// is false when no valid numeric pair is extractable; callers must treat that
// as "cannot compute distance", never as a fatal condition.
func Normalize(input any) (entities.Coordinate, bool) {
	coord, ok := normalize(input, true)
	if !ok {
		return entities.Coordinate{}, false
	}
	if !valid(coord) {
		return entities.Coordinate{}, false
	}
	return coord, true
}

// allowNested permits one "location" unwrap; the recursion always passes
// false, so deeper nesting is rejected.
func normalize(input any, allowNested bool) (entities.Coordinate, bool) {
	switch v := input.(type) {
	case entities.Coordinate:
		return v, true
	case *entities.Coordinate:
		if v == nil {
			return entities.Coordinate{}, false
		}
		return *v, true
	case []float64:
		return fromPair(v)
	case []any:
		pair := make([]float64, 0, len(v))
		for _, item := range v {
			num, ok := toFloat(item)
			if !ok {
				return entities.Coordinate{}, false
			}
			pair = append(pair, num)
		}
		return fromPair(pair)
	case map[string]any:
		return fromObject(v, allowNested)
	default:
		return entities.Coordinate{}, false
	}
}

func fromPair(pair []float64) (entities.Coordinate, bool) {
	if len(pair) != 2 {
		return entities.Coordinate{}, false
	}
	return entities.Coordinate{Longitude: pair[0], Latitude: pair[1]}, true
}

func fromObject(obj map[string]any, allowNested bool) (entities.Coordinate, bool) {
	// GeoJSON shape takes precedence: its order is unambiguous.
	if raw, ok := obj["coordinates"]; ok {
		return normalize(raw, false)
	}

	lat, latOK := numField(obj, "latitude", "lat")
	lng, lngOK := numField(obj, "longitude", "lng")
	if latOK && lngOK {
		return entities.Coordinate{Longitude: lng, Latitude: lat}, true
	}

	// One level of "location" nesting, at most.
	if nested, ok := obj["location"]; ok && allowNested {
		return normalize(nested, false)
	}

	return entities.Coordinate{}, false
}

func numField(obj map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if raw, ok := obj[key]; ok {
			return toFloat(raw)
		}
	}
	return 0, false
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func valid(c entities.Coordinate) bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Distance returns the haversine great-circle distance between two points in
// kilometers. Identical points yield exactly 0.
func Distance(a, b entities.Coordinate) float64 {
	if a == b {
		return 0
	}

	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// DistanceBetween normalizes both inputs and returns the distance. The second
// return is false when either input fails normalization.
func DistanceBetween(a, b any) (float64, bool) {
	from, ok := Normalize(a)
	if !ok {
		return 0, false
	}
	to, ok := Normalize(b)
	if !ok {
		return 0, false
	}
	return Distance(from, to), true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
