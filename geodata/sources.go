// Package geodata models the optional external data layers (buildings,
// elevation, population, imagery, tower catalogs). Every layer may be
// unavailable; the coverage core never depends on any of them.
package geodata

import (
	log "github.com/sirupsen/logrus"
)

// RawFeature is a loosely tagged record as delivered by external catalogs.
// Tags are resolved into typed values once, at ingestion.
type RawFeature map[string]interface{}

// Layer is the result of one acquisition. An unavailable layer carries no
// features and is passed downstream explicitly instead of a sentinel value.
type Layer struct {
	Name      string
	Available bool
	Features  []RawFeature
}

// Unavailable builds the explicit absent marker for a layer.
func Unavailable(name string) Layer {
	return Layer{Name: name}
}

// Source acquires one layer. Fetch errors degrade the layer to unavailable;
// they never abort the run.
type Source interface {
	Name() string
	Fetch() (Layer, error)
}

// Outcome records how one source acquisition went, for aggregate reporting.
type Outcome struct {
	Source string
	OK     bool
	Reason string
}

// Collect queries every source. A failing source yields an unavailable layer
// and a failure outcome with its reason; the run continues.
func Collect(sources ...Source) ([]Layer, []Outcome) {
	layers := make([]Layer, len(sources))
	outcomes := make([]Outcome, len(sources))
	for i, src := range sources {
		layer, err := src.Fetch()
		if err != nil {
			log.Warnf("geodata: %s unavailable : %v", src.Name(), err)
			layers[i] = Unavailable(src.Name())
			outcomes[i] = Outcome{Source: src.Name(), Reason: err.Error()}
			continue
		}
		layers[i] = layer
		outcomes[i] = Outcome{Source: src.Name(), OK: true}
	}
	return layers, outcomes
}

// StaticSource serves features already extracted to disk or memory, e.g. a
// cached tower catalog.
type StaticSource struct {
	Layer    string
	Features []RawFeature
}

func (s StaticSource) Name() string { return s.Layer }

func (s StaticSource) Fetch() (Layer, error) {
	return Layer{Name: s.Layer, Available: true, Features: s.Features}, nil
}

// UnavailableSource stands in for catalogs this build does not acquire
// (DEM, population, satellite imagery). It reports a clean unavailable
// layer, not an error.
type UnavailableSource struct {
	Layer string
}

func (u UnavailableSource) Name() string { return u.Layer }

func (u UnavailableSource) Fetch() (Layer, error) {
	return Unavailable(u.Layer), nil
}
