package export

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/wiless/coverage/geodata"
)

// HeightReport summarizes the tower/height records of one run.
type HeightReport struct {
	Count     int
	Estimated int
	Excluded  int
	MeanM     float64
	MinM      float64
	MaxM      float64
	heights   vlib.VectorF
}

// BuildHeightReport computes the summary statistics. Excluded counts the
// features the collaborator dropped for lack of any resolvable height.
func BuildHeightReport(records []geodata.TowerHeight, excluded int) HeightReport {
	report := HeightReport{Excluded: excluded}
	report.heights = vlib.NewVectorF(len(records))
	for i, r := range records {
		report.heights[i] = r.HeightM
		if r.Estimated {
			report.Estimated++
		}
	}
	report.Count = len(records)
	if report.Count > 0 {
		report.MeanM = stat.Mean(report.heights, nil)
		report.MinM = floats.Min(report.heights)
		report.MaxM = floats.Max(report.heights)
	}
	return report
}

// Print writes the report the way the run summary is printed.
func (r HeightReport) Print(w io.Writer) {
	title := color.New(color.FgCyan, color.Bold)
	title.Fprintln(w, "=== Tower Height Report ===")
	if r.Count == 0 {
		color.New(color.FgYellow).Fprintln(w, "No towers with height information found.")
		return
	}
	fmt.Fprintf(w, "Total towers with height data: %d\n", r.Count)
	fmt.Fprintf(w, "Estimated heights: %d\n", r.Estimated)
	if r.Excluded > 0 {
		color.New(color.FgYellow).Fprintf(w, "Excluded (no height): %d\n", r.Excluded)
	}
	fmt.Fprintf(w, "Average height: %.1f m\n", r.MeanM)
	fmt.Fprintf(w, "Minimum height: %.1f m\n", r.MinM)
	fmt.Fprintf(w, "Maximum height: %.1f m\n", r.MaxM)
}

// ExportHistogram dumps the height vector with a histogram command to a
// matlab script for offline plotting.
func (r HeightReport) ExportHistogram(mname string) {
	matlab := vlib.NewMatlab(mname)
	matlab.Silent = true
	matlab.Export("towerheights", r.heights)
	matlab.Command("hist(towerheights, 10);")
	matlab.Command("xlabel('Height (meters)');ylabel('Number of Towers');")
	matlab.Close()
}
