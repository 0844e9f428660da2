package propagation_test

import (
	"testing"

	"github.com/wiless/coverage/propagation"
)

func TestClassifyBands(t *testing.T) {
	cases := []struct {
		distKm float64
		want   propagation.Environment
	}{
		{0, propagation.Urban},
		{0.01, propagation.Urban},
		{1.999, propagation.Urban},
		{2.0, propagation.Suburban},
		{4.999, propagation.Suburban},
		{5.0, propagation.Rural},
		{100, propagation.Rural},
	}
	for _, c := range cases {
		if got := propagation.Classify(c.distKm); got != c.want {
			t.Errorf("Classify(%v) = %v, want %v", c.distKm, got, c.want)
		}
	}
}

func TestEnvironmentString(t *testing.T) {
	if propagation.Urban.String() != "Urban" ||
		propagation.Suburban.String() != "Suburban" ||
		propagation.Rural.String() != "Rural" {
		t.Error("environment names do not match the export vocabulary")
	}
}
