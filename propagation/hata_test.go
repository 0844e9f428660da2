package propagation_test

import (
	"math"
	"testing"

	"github.com/wiless/coverage/propagation"
)

func TestLossInDbReference(t *testing.T) {
	// Tower height 30m, 900 MHz, receiver on top of the tower position
	// (distance clamped to 0.01 km upstream).
	model := propagation.NewHataUrban()

	loss, err := model.LossInDb(30, 900, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(loss-55.94) > 0.05 {
		t.Errorf("LossInDb(30, 900, 0.01) = %f, want about 55.94", loss)
	}
}

func TestLossInDbMonotonicInDistance(t *testing.T) {
	model := propagation.NewHataUrban()

	prev := math.Inf(-1)
	for d := 0.01; d < 20.0; d *= 1.5 {
		loss, err := model.LossInDb(30, 900, d)
		if err != nil {
			t.Fatal(err)
		}
		if loss < prev {
			t.Errorf("loss decreased at %f km : %f < %f", d, loss, prev)
		}
		prev = loss
	}
}

func TestLossInDbRejectsBadInput(t *testing.T) {
	model := propagation.NewHataUrban()

	if _, err := model.LossInDb(0, 900, 1); err == nil {
		t.Error("zero tx height accepted")
	}
	if _, err := model.LossInDb(-5, 900, 1); err == nil {
		t.Error("negative tx height accepted")
	}
	if _, err := model.LossInDb(30, 0, 1); err == nil {
		t.Error("zero frequency accepted")
	}
	if _, err := model.LossInDb(30, 900, 0); err == nil {
		t.Error("zero distance accepted")
	}
}

func TestInDesignRange(t *testing.T) {
	model := propagation.NewHataUrban()

	if !model.InDesignRange(30, 900, 1) {
		t.Error("30m / 900MHz / 1km should be inside the calibrated range")
	}
	if model.InDesignRange(30, 900, 0.01) {
		t.Error("0.01 km is below the calibrated distance range")
	}
	if model.InDesignRange(10, 900, 1) {
		t.Error("10m tower is below the calibrated height range")
	}
	if model.InDesignRange(30, 2400, 1) {
		t.Error("2400 MHz is outside the calibrated band")
	}
}

func TestUncertaintyReference(t *testing.T) {
	u := propagation.NewLogDistanceUncertainty()

	// At the reference frequency the frequency term vanishes:
	// 2.0 + 0.5*log10(0.01) = 1.0
	got := u.ErrorInDb(900, 0.01)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("ErrorInDb(900, 0.01) = %f, want 1.0", got)
	}

	// Grows with distance.
	if u.ErrorInDb(900, 10) <= u.ErrorInDb(900, 1) {
		t.Error("uncertainty should grow with distance")
	}
}
