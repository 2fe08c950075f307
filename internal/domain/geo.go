package domain

// GeoCoordinate is an immutable latitude/longitude pair.
// Values are not range-checked: out-of-range floats round-trip untouched.
type GeoCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Region is a map viewport: a center plus a latitude/longitude span.
type Region struct {
	Center   GeoCoordinate `json:"center"`
	LatDelta float64       `json:"lat_delta"`
	LonDelta float64       `json:"lon_delta"`
}

// regionPadding widens a fitted region so markers don't sit on the edge.
const regionPadding = 1.4

// FitRegion returns the smallest padded region containing both coordinates.
func FitRegion(a, b GeoCoordinate) Region {
	minLat, maxLat := a.Latitude, b.Latitude
	if minLat > maxLat {
		minLat, maxLat = maxLat, minLat
	}
	minLon, maxLon := a.Longitude, b.Longitude
	if minLon > maxLon {
		minLon, maxLon = maxLon, minLon
	}
	return Region{
		Center: GeoCoordinate{
			Latitude:  (minLat + maxLat) / 2,
			Longitude: (minLon + maxLon) / 2,
		},
		LatDelta: (maxLat - minLat) * regionPadding,
		LonDelta: (maxLon - minLon) * regionPadding,
	}
}

// StraightLine is the degenerate two-point polyline between start and end.
// Used as the route fallback when the directions service is unreachable.
func StraightLine(start, end GeoCoordinate) []GeoCoordinate {
	return []GeoCoordinate{start, end}
}
