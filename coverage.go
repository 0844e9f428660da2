// Package coverage estimates radio signal coverage around transmitter towers
// by evaluating an empirical path-loss model over a geographic grid.
package coverage

import (
	"strconv"

	"github.com/wiless/coverage/deployment"
	"github.com/wiless/coverage/propagation"
	"github.com/wiless/vlib"
)

type GenericStruct map[string]interface{}

// CoveragePoint links one tower and one grid point. It is computed once and
// never mutated. ErrorDb is an independent uncertainty estimate reported
// alongside the loss; it is never subtracted from it.
type CoveragePoint struct {
	Latitude    float64
	Longitude   float64
	TowerLat    float64
	TowerLon    float64
	TowerHeight float64
	TowerPower  float64
	FreqMHz     float64
	DistanceKm  float64
	PathLossDb  float64
	SignalDbm   float64
	ErrorDb     float64
	CellID      string
	TowerType   string
	Environment propagation.Environment
	ModelName   string
}

// FieldOrder is the fixed column order of the tabular export.
var FieldOrder = [...]string{
	"Latitude",
	"Longitude",
	"Tower_Lat",
	"Tower_Lon",
	"Tower_Height_m",
	"Tower_Power_dBm",
	"Frequency_MHz",
	"Distance_km",
	"Path_Loss_dB",
	"Signal_Strength_dBm",
	"Error_dB",
	"Cell_ID",
	"Tower_Type",
	"Environment_Type",
	"Model_Type",
}

// Record renders the point as strings in FieldOrder.
func (p CoveragePoint) Record() []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return []string{
		f(p.Latitude),
		f(p.Longitude),
		f(p.TowerLat),
		f(p.TowerLon),
		f(p.TowerHeight),
		f(p.TowerPower),
		f(p.FreqMHz),
		f(p.DistanceKm),
		f(p.PathLossDb),
		f(p.SignalDbm),
		f(p.ErrorDb),
		p.CellID,
		p.TowerType,
		p.Environment.String(),
		p.ModelName,
	}
}

// CoverageDataset is the ordered output sequence: outer order follows the
// tower configuration, inner order the grid generation (row-major).
type CoverageDataset []CoveragePoint

// SignalDbm extracts the received power column.
func (d CoverageDataset) SignalDbm() vlib.VectorF {
	result := vlib.NewVectorF(len(d))
	for i, p := range d {
		result[i] = p.SignalDbm
	}
	return result
}

// ErrorDb extracts the uncertainty column.
func (d CoverageDataset) ErrorDb() vlib.VectorF {
	result := vlib.NewVectorF(len(d))
	for i, p := range d {
		result[i] = p.ErrorDb
	}
	return result
}

// TowerField is the per-tower matrix view consumed by heatmap renderers.
type TowerField struct {
	Tower     deployment.Tower
	LatGrid   []vlib.VectorF
	LonGrid   []vlib.VectorF
	SignalDbm []vlib.VectorF
}
