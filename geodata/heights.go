package geodata

import (
	ms "github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
)

// MetersPerLevel is the estimation fallback when a feature only reports a
// building level count.
const MetersPerLevel = 3.0

// TowerHeight is one resolved tower/height record for reporting and map
// rendering. Independent of CoveragePoint.
type TowerHeight struct {
	Type      string
	Lat       float64
	Lon       float64
	HeightM   float64
	Estimated bool
}

type heightTags struct {
	Height         *float64 `mapstructure:"height"`
	BuildingHeight *float64 `mapstructure:"building:height"`
	TowerHeight    *float64 `mapstructure:"tower:height"`
	Elevation      *float64 `mapstructure:"ele"`
	Levels         *float64 `mapstructure:"building:levels"`
}

type featureTags struct {
	Type string  `mapstructure:"type"`
	Lat  float64 `mapstructure:"lat"`
	Lon  float64 `mapstructure:"lon"`
}

func decodeWeak(in, out interface{}) error {
	dec, err := ms.NewDecoder(&ms.DecoderConfig{WeaklyTypedInput: true, Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// ResolveHeight resolves a feature's height once: the height tags are tried
// in order, then a levels-based estimate marks the result as estimated. ok
// is false when no height can be determined at all.
func ResolveHeight(f RawFeature) (heightM float64, estimated bool, ok bool) {
	var tags heightTags
	// Malformed tag values behave like absent ones; the remaining tags
	// still decode.
	if err := decodeWeak(map[string]interface{}(f), &tags); err != nil {
		log.Debugf("geodata: height tags : %v", err)
	}

	for _, h := range []*float64{tags.Height, tags.BuildingHeight, tags.TowerHeight, tags.Elevation} {
		if h != nil {
			return *h, false, true
		}
	}
	if tags.Levels != nil {
		return *tags.Levels * MetersPerLevel, true, true
	}
	return 0, false, false
}

// ExtractTowerHeights resolves every feature of the given layers. Features
// without any resolvable height are excluded here, by the collaborator, not
// by the coverage core. The number of exclusions is returned for reporting.
func ExtractTowerHeights(layers []Layer) (records []TowerHeight, excluded int) {
	for _, layer := range layers {
		if !layer.Available {
			continue
		}
		for _, f := range layer.Features {
			h, estimated, ok := ResolveHeight(f)
			if !ok {
				excluded++
				continue
			}
			var pos featureTags
			if err := decodeWeak(map[string]interface{}(f), &pos); err != nil {
				log.Debugf("geodata: feature tags : %v", err)
			}
			if pos.Type == "" {
				pos.Type = layer.Name
			}
			records = append(records, TowerHeight{
				Type:      pos.Type,
				Lat:       pos.Lat,
				Lon:       pos.Lon,
				HeightM:   h,
				Estimated: estimated,
			})
		}
	}
	if excluded > 0 {
		log.Infof("geodata: %d features without resolvable height excluded from reporting", excluded)
	}
	return records, excluded
}
