package coverage

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/wiless/coverage/deployment"
	"github.com/wiless/coverage/propagation"
	"github.com/wiless/vlib"
)

// CSystem evaluates coverage for towers over a sample grid. Computation per
// (tower, grid point) pair is pure and stateless; only the emission order of
// the dataset is fixed.
type CSystem struct {
	Model       propagation.Model
	Uncertainty propagation.Uncertainty
	// Parallel fans evaluation out across towers. The dataset order does
	// not change.
	Parallel bool
}

func NewCSystem() CSystem {
	var result CSystem
	result.Model = NewDefaultModel()
	result.Uncertainty = propagation.NewLogDistanceUncertainty()
	return result
}

// NewDefaultModel returns the urban Hata model with default settings.
func NewDefaultModel() propagation.Model {
	return propagation.NewHataUrban()
}

// EvaluateTower computes one tower's block of the dataset in grid row-major
// order. No point is dropped or deduplicated; filtering is an external
// concern.
func (s CSystem) EvaluateTower(tw deployment.Tower, g *deployment.Grid) ([]CoveragePoint, error) {
	if err := tw.Validate(); err != nil {
		return nil, err
	}

	modelName := s.Model.Get().Name
	block := make([]CoveragePoint, 0, g.NumPoints())
	for i := 0; i < g.Size; i++ {
		for j := 0; j < g.Size; j++ {
			lat, lon := g.At(i, j)
			distKm := deployment.DistanceKm(tw.Lat, tw.Lon, lat, lon)
			lossDb, err := s.Model.LossInDb(tw.HeightM, tw.FreqMHz, distKm)
			if err != nil {
				return nil, err
			}
			errDb := s.Uncertainty.ErrorInDb(tw.FreqMHz, distKm)

			block = append(block, CoveragePoint{
				Latitude:    lat,
				Longitude:   lon,
				TowerLat:    tw.Lat,
				TowerLon:    tw.Lon,
				TowerHeight: tw.HeightM,
				TowerPower:  tw.PowerDBm,
				FreqMHz:     tw.FreqMHz,
				DistanceKm:  distKm,
				PathLossDb:  lossDb,
				SignalDbm:   tw.PowerDBm - lossDb,
				ErrorDb:     errDb,
				CellID:      tw.ID,
				TowerType:   tw.Type,
				Environment: propagation.Classify(distKm),
				ModelName:   modelName,
			})
		}
	}
	return block, nil
}

// EvaluateCoverage computes the full dataset for the tower list in
// configuration order. All towers are validated before any block is
// computed, so a configuration error surfaces before any loss value is
// produced.
func (s CSystem) EvaluateCoverage(towers []deployment.Tower, g *deployment.Grid) (CoverageDataset, error) {
	for _, tw := range towers {
		if err := tw.Validate(); err != nil {
			return nil, err
		}
	}

	log.Infof("Evaluating coverage : %d towers x %d grid points", len(towers), g.NumPoints())

	blocks := make([][]CoveragePoint, len(towers))
	errs := make([]error, len(towers))

	if s.Parallel && len(towers) > 1 {
		var wg sync.WaitGroup
		for i := range towers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				blocks[i], errs[i] = s.EvaluateTower(towers[i], g)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range towers {
			blocks[i], errs[i] = s.EvaluateTower(towers[i], g)
		}
	}

	result := make(CoverageDataset, 0, len(towers)*g.NumPoints())
	for i := range towers {
		if errs[i] != nil {
			return nil, errs[i]
		}
		result = append(result, blocks[i]...)
	}
	return result, nil
}

// EvaluateField computes the matrix view of a single tower's received power,
// for renderers that consume (lat grid, lon grid, signal matrix).
func (s CSystem) EvaluateField(tw deployment.Tower, g *deployment.Grid) (TowerField, error) {
	block, err := s.EvaluateTower(tw, g)
	if err != nil {
		return TowerField{}, err
	}

	field := TowerField{Tower: tw}
	field.LatGrid = make([]vlib.VectorF, g.Size)
	field.LonGrid = make([]vlib.VectorF, g.Size)
	field.SignalDbm = make([]vlib.VectorF, g.Size)
	for i := 0; i < g.Size; i++ {
		field.LatGrid[i] = vlib.NewVectorF(g.Size)
		field.LonGrid[i] = vlib.NewVectorF(g.Size)
		field.SignalDbm[i] = vlib.NewVectorF(g.Size)
		for j := 0; j < g.Size; j++ {
			p := block[i*g.Size+j]
			field.LatGrid[i][j] = p.Latitude
			field.LonGrid[i][j] = p.Longitude
			field.SignalDbm[i][j] = p.SignalDbm
		}
	}
	return field, nil
}
