package deployment_test

import (
	"math"
	"testing"

	"github.com/wiless/coverage/deployment"
)

func TestDistanceFloor(t *testing.T) {
	// Tower coincident with the grid point.
	if got := deployment.DistanceKm(47.9212, 106.9186, 47.9212, 106.9186); got != deployment.MinDistanceKm {
		t.Errorf("coincident distance = %v, want the %v floor", got, deployment.MinDistanceKm)
	}

	// A few meters away still clamps.
	if got := deployment.DistanceKm(47.9212, 106.9186, 47.92121, 106.91861); got != deployment.MinDistanceKm {
		t.Errorf("near-coincident distance = %v, want the %v floor", got, deployment.MinDistanceKm)
	}
}

func TestDistanceLatitudeDegree(t *testing.T) {
	// One degree of latitude is exactly the fixed conversion.
	got := deployment.DistanceKm(47, 106, 48, 106)
	if math.Abs(got-deployment.KmPerDegLat) > 1e-9 {
		t.Errorf("1 deg latitude = %v km, want %v", got, deployment.KmPerDegLat)
	}
}

func TestDistanceLongitudeScaled(t *testing.T) {
	// One degree of longitude at the tower latitude shrinks by cos(lat).
	towerLat := 60.0
	got := deployment.DistanceKm(towerLat, 106, towerLat, 107)
	want := deployment.KmPerDegLat * math.Cos(towerLat*math.Pi/180)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("1 deg longitude at %v = %v km, want %v", towerLat, got, want)
	}
}

func TestDistanceAlwaysAboveFloor(t *testing.T) {
	for _, dlat := range []float64{0, 1e-6, 1e-4, 0.01, 0.1} {
		if got := deployment.DistanceKm(47, 106, 47+dlat, 106); got < deployment.MinDistanceKm {
			t.Errorf("distance %v below floor for dlat %v", got, dlat)
		}
	}
}
