package export_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wiless/coverage"
	"github.com/wiless/coverage/export"
	"github.com/wiless/coverage/propagation"
)

func sampleDataset() coverage.CoverageDataset {
	return coverage.CoverageDataset{
		{
			Latitude: 47.9212, Longitude: 106.9186,
			TowerLat: 47.9212, TowerLon: 106.9186,
			TowerHeight: 30, TowerPower: 43, FreqMHz: 900,
			DistanceKm: 0.01, PathLossDb: 55.95, SignalDbm: -12.95,
			ErrorDb: 1.0, CellID: "MN-001", TowerType: "macro",
			Environment: propagation.Urban, ModelName: "Hata_Okahamaru",
		},
		{
			Latitude: 47.95, Longitude: 106.95,
			TowerLat: 47.9212, TowerLon: 106.9186,
			TowerHeight: 30, TowerPower: 43, FreqMHz: 900,
			DistanceKm: 3.9, PathLossDb: 141.2, SignalDbm: -98.2,
			ErrorDb: 2.28, CellID: "MN-001", TowerType: "macro",
			Environment: propagation.Suburban, ModelName: "Hata_Okahamaru",
		},
	}
}

func TestSnapshotName(t *testing.T) {
	at := time.Date(2026, 8, 31, 9, 30, 5, 0, time.UTC)
	got := export.SnapshotName(at)
	want := "radio_coverage_arcgis_20260831_093005.csv"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestWriteCSV(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "coverage.csv")
	ds := sampleDataset()
	if err := export.WriteCSV(fname, ds); err != nil {
		t.Fatal(err)
	}

	fid, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer fid.Close()
	rows, err := csv.NewReader(fid).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != len(ds)+1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(ds)+1)
	}
	for i, name := range coverage.FieldOrder {
		if rows[0][i] != name {
			t.Errorf("column %d = %s, want %s", i, rows[0][i], name)
		}
	}
	if rows[1][11] != "MN-001" || rows[1][13] != "Urban" || rows[2][13] != "Suburban" {
		t.Errorf("label columns wrong : %v / %v", rows[1], rows[2])
	}
	if rows[1][9] != "-12.95" {
		t.Errorf("signal column = %s, want -12.95", rows[1][9])
	}
}

func TestWriteSnapshot(t *testing.T) {
	dir := t.TempDir()
	fname, err := export.WriteSnapshot(dir, sampleDataset())
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(fname) != dir {
		t.Errorf("snapshot written outside %s : %s", dir, fname)
	}
	if _, err := os.Stat(fname); err != nil {
		t.Error(err)
	}
}
