// Package export holds the collaborators that consume the aggregated
// dataset: tabular snapshots, heatmap rasters, the tower map and the height
// report. All file I/O lives here, never in the coverage core.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wiless/coverage"
)

// SnapshotName builds the uniquely timestamped file name of one run.
func SnapshotName(t time.Time) string {
	return "radio_coverage_arcgis_" + t.Format("20060102_150405") + ".csv"
}

// WriteCSV writes the dataset with the fixed column order.
func WriteCSV(fname string, ds coverage.CoverageDataset) error {
	fid, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer fid.Close()

	w := csv.NewWriter(fid)
	if err := w.Write(coverage.FieldOrder[:]); err != nil {
		return err
	}
	for _, p := range ds {
		if err := w.Write(p.Record()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteSnapshot writes a timestamped dataset snapshot into dir and returns
// its path.
func WriteSnapshot(dir string, ds coverage.CoverageDataset) (string, error) {
	fname := filepath.Join(dir, SnapshotName(time.Now()))
	if err := WriteCSV(fname, ds); err != nil {
		return "", err
	}
	log.Infof("export: %d coverage points written to %s", len(ds), fname)
	return fname, nil
}
