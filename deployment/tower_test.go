package deployment_test

import (
	"strings"
	"testing"

	"github.com/wiless/coverage/deployment"
)

func TestTowerValidate(t *testing.T) {
	good := deployment.Tower{ID: "TOWER_001", Lat: 47.9212, Lon: 106.9186, HeightM: 30, PowerDBm: 43, FreqMHz: 900}
	if err := good.Validate(); err != nil {
		t.Fatal(err)
	}

	bad := good
	bad.HeightM = 0
	err := bad.Validate()
	if err == nil {
		t.Fatal("zero height accepted")
	}
	if !strings.Contains(err.Error(), "HeightM") || !strings.Contains(err.Error(), "TOWER_001") {
		t.Errorf("error should name the field and tower : %v", err)
	}

	bad = good
	bad.FreqMHz = -1
	err = bad.Validate()
	if err == nil {
		t.Fatal("negative frequency accepted")
	}
	if !strings.Contains(err.Error(), "FreqMHz") {
		t.Errorf("error should name the field : %v", err)
	}
}

func TestTowersFromRaw(t *testing.T) {
	raw := []map[string]interface{}{
		{"id": "TOWER_001", "type": "Communication_Tower", "lat": 47.9212, "lon": 106.9186,
			"height": 30, "power": 43, "freq": 900},
		// String-typed attributes coerce once, at ingestion.
		{"id": "TOWER_002", "type": "Antenna", "lat": "47.9250", "lon": "106.9200",
			"height": "25", "power": "40", "freq": "900"},
	}
	towers, err := deployment.TowersFromRaw(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(towers) != 2 {
		t.Fatalf("got %d towers, want 2", len(towers))
	}
	if towers[1].HeightM != 25 || towers[1].FreqMHz != 900 {
		t.Errorf("string attributes not coerced : %+v", towers[1])
	}
	if towers[0].ID != "TOWER_001" || towers[1].Type != "Antenna" {
		t.Errorf("identity not preserved : %+v", towers)
	}
}

func TestTowersFromRawRejectsInvalid(t *testing.T) {
	raw := []map[string]interface{}{
		{"id": "TOWER_003", "lat": 47.0, "lon": 106.0, "height": 0, "power": 40, "freq": 900},
	}
	if _, err := deployment.TowersFromRaw(raw); err == nil {
		t.Error("zero-height record accepted")
	}
}
