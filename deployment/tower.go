package deployment

import (
	"fmt"

	ms "github.com/mitchellh/mapstructure"
	"github.com/wiless/vlib"
)

// Tower is one configured transmitter. Towers are created from
// configuration, validated once, and never mutated afterwards.
type Tower struct {
	ID       string
	Type     string
	Lat      float64
	Lon      float64
	HeightM  float64
	PowerDBm float64
	FreqMHz  float64
	// HeightEstimated marks heights derived from a levels-based fallback
	// rather than a surveyed value.
	HeightEstimated bool
}

// Validate rejects parameters the propagation model cannot evaluate. The
// error names the offending field and value.
func (t Tower) Validate() error {
	if t.HeightM <= 0 {
		return fmt.Errorf("tower %s: HeightM = %v, must be > 0", t.ID, t.HeightM)
	}
	if t.FreqMHz <= 0 {
		return fmt.Errorf("tower %s: FreqMHz = %v, must be > 0", t.ID, t.FreqMHz)
	}
	return nil
}

// LoadTowers reads an ordered tower list from a JSON file. The order of the
// file is the evaluation order of the dataset.
func LoadTowers(fname string) ([]Tower, error) {
	var towers []Tower
	vlib.LoadStructure(fname, &towers)
	if len(towers) == 0 {
		return nil, fmt.Errorf("towers: no tower records in %s", fname)
	}
	for _, t := range towers {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return towers, nil
}

// TowersFromRaw decodes loosely-typed tower records (as delivered by external
// catalogs) into typed Towers. Attribute coercion happens once here; use
// sites never probe tags.
func TowersFromRaw(raw []map[string]interface{}) ([]Tower, error) {
	towers := make([]Tower, 0, len(raw))
	for i, attrs := range raw {
		var rec struct {
			ID     string  `mapstructure:"id"`
			Type   string  `mapstructure:"type"`
			Lat    float64 `mapstructure:"lat"`
			Lon    float64 `mapstructure:"lon"`
			Height float64 `mapstructure:"height"`
			Power  float64 `mapstructure:"power"`
			Freq   float64 `mapstructure:"freq"`
		}
		dec, err := ms.NewDecoder(&ms.DecoderConfig{WeaklyTypedInput: true, Result: &rec})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(attrs); err != nil {
			return nil, fmt.Errorf("towers: record %d: %v", i, err)
		}
		t := Tower{
			ID:       rec.ID,
			Type:     rec.Type,
			Lat:      rec.Lat,
			Lon:      rec.Lon,
			HeightM:  rec.Height,
			PowerDBm: rec.Power,
			FreqMHz:  rec.Freq,
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		towers = append(towers, t)
	}
	return towers, nil
}
