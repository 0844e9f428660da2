package deployment

import "math"

// MinDistanceKm is the floor applied to computed ground distances so that
// downstream logarithms stay finite when a tower coincides with a sample
// point.
const MinDistanceKm = 0.01

// DistanceKm computes the planar ground distance in km between a tower and a
// grid point, using the same 111 km/deg and cos-scaled longitude constants
// as the grid generator. The approximation is only meant for short ranges
// (tens of km); it is not a geodesic. Results below MinDistanceKm are
// clamped up to it.
func DistanceKm(towerLat, towerLon, lat, lon float64) float64 {
	dlat := (lat - towerLat) * KmPerDegLat
	dlon := (lon - towerLon) * KmPerDegLat * math.Cos(towerLat*math.Pi/180.0)
	d := math.Sqrt(dlat*dlat + dlon*dlon)
	if d < MinDistanceKm {
		return MinDistanceKm
	}
	return d
}
