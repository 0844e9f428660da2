// Package deployment describes the transmitter towers and the geographic
// sample grid the coverage engine evaluates.
package deployment

import (
	"fmt"
	"math"

	"github.com/wiless/vlib"
)

// KmPerDegLat is the fixed latitude conversion used by both the grid
// generator and the distance calculation. The two must never diverge.
const KmPerDegLat = 111.0

// GridConfig fully determines a square sample grid: re-generating with the
// same values yields an identical grid.
type GridConfig struct {
	CenterLat float64
	CenterLon float64
	GridSize  int
	AreaKm    float64
}

func (g GridConfig) Validate() error {
	if g.GridSize <= 0 {
		return fmt.Errorf("grid: GridSize = %d, must be > 0", g.GridSize)
	}
	if g.AreaKm <= 0 {
		return fmt.Errorf("grid: AreaKm = %v, must be > 0", g.AreaKm)
	}
	return nil
}

// Grid holds N x N coordinate matrices. Rows walk latitude south to north,
// columns walk longitude west to east; that order is the contractual
// generation order of the dataset.
type Grid struct {
	Size int
	Lat  []vlib.VectorF
	Lon  []vlib.VectorF
}

// NumPoints returns the total number of sample points.
func (g *Grid) NumPoints() int {
	return g.Size * g.Size
}

// At returns the coordinate of row i, column j.
func (g *Grid) At(i, j int) (lat, lon float64) {
	return g.Lat[i][j], g.Lon[i][j]
}

// Generate builds the grid around the configured center. The latitude span
// is AreaKm at 111 km/deg; the longitude span is widened by cos(center
// latitude) to approximate equirectangular distortion. Both endpoints are
// included, matching linspace semantics; GridSize 1 degenerates to the
// center point.
func Generate(cfg GridConfig) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dlat := cfg.AreaKm / KmPerDegLat
	dlon := cfg.AreaKm / (KmPerDegLat * math.Cos(cfg.CenterLat*math.Pi/180.0))

	lats := linspace(cfg.CenterLat-dlat/2, cfg.CenterLat+dlat/2, cfg.GridSize)
	lons := linspace(cfg.CenterLon-dlon/2, cfg.CenterLon+dlon/2, cfg.GridSize)

	result := &Grid{Size: cfg.GridSize}
	result.Lat = make([]vlib.VectorF, cfg.GridSize)
	result.Lon = make([]vlib.VectorF, cfg.GridSize)
	for i := 0; i < cfg.GridSize; i++ {
		result.Lat[i] = vlib.NewVectorF(cfg.GridSize)
		result.Lon[i] = vlib.NewVectorF(cfg.GridSize)
		for j := 0; j < cfg.GridSize; j++ {
			result.Lat[i][j] = lats[i]
			result.Lon[i][j] = lons[j]
		}
	}
	return result, nil
}

func linspace(from, to float64, n int) vlib.VectorF {
	result := vlib.NewVectorF(n)
	if n == 1 {
		result[0] = (from + to) / 2
		return result
	}
	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		result[i] = from + float64(i)*step
	}
	return result
}
