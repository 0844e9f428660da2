package export

import (
	"database/sql"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wiless/coverage"
)

// WriteSQLite writes the dataset into a fresh SQLite database: a `coverage`
// table with the same columns as the CSV snapshot and a `metadata` table
// describing the run. GIS tools that prefer a database over delimited text
// read this directly.
func WriteSQLite(dbPath, runID string, ds coverage.CoverageDataset) error {
	os.Remove(dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE coverage (
			latitude REAL,
			longitude REAL,
			tower_lat REAL,
			tower_lon REAL,
			tower_height_m REAL,
			tower_power_dbm REAL,
			frequency_mhz REAL,
			distance_km REAL,
			path_loss_db REAL,
			signal_strength_dbm REAL,
			error_db REAL,
			cell_id TEXT,
			tower_type TEXT,
			environment_type TEXT,
			model_type TEXT
		);
		CREATE TABLE metadata (
			name TEXT,
			value TEXT,
			PRIMARY KEY (name)
		);
		CREATE INDEX idx_coverage_cell ON coverage (cell_id);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO metadata VALUES ('run_id', ?), ('created', ?), ('points', ?)`,
		runID, time.Now().Format(time.RFC3339), len(ds))
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO coverage VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range ds {
		_, err = stmt.Exec(
			p.Latitude, p.Longitude,
			p.TowerLat, p.TowerLon,
			p.TowerHeight, p.TowerPower, p.FreqMHz,
			p.DistanceKm, p.PathLossDb, p.SignalDbm, p.ErrorDb,
			p.CellID, p.TowerType, p.Environment.String(), p.ModelName,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
