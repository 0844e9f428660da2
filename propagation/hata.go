package propagation

import (
	"fmt"
	"math"
)

// HataUrban is the empirical urban (large city) Hata path-loss model.
//
// The base formula is calibrated for tx heights >= 30m, 150-1500 MHz and
// distances >= 1 km. Closer to the origin it still evaluates to a finite
// number but the value is physically unrealistic, possibly negative. That is
// a known limitation of the formula and is left visible to the caller.
type HataUrban struct {
	setting ModelSetting
}

func NewHataUrban() *HataUrban {
	result := new(HataUrban)
	result.setting = *NewModelSetting()
	return result
}

func (h *HataUrban) Set(s ModelSetting) {
	h.setting = s
}

func (h HataUrban) Get() ModelSetting {
	return h.setting
}

// LossInDb evaluates the urban Hata formula. Non-positive tx height or
// frequency is an input-domain error and is rejected before any logarithm
// is taken.
func (h HataUrban) LossInDb(txHeightM, freqMHz, distKm float64) (plDb float64, err error) {
	if txHeightM <= 0 {
		return 0, fmt.Errorf("hata: TxHeightM = %v, must be > 0", txHeightM)
	}
	if freqMHz <= 0 {
		return 0, fmt.Errorf("hata: FreqMHz = %v, must be > 0", freqMHz)
	}
	if distKm <= 0 {
		return 0, fmt.Errorf("hata: DistKm = %v, must be > 0", distKm)
	}

	rxHeightM := h.setting.RxHeightM
	aHm := (1.1*math.Log10(freqMHz)-0.7)*rxHeightM - (1.56*math.Log10(freqMHz) - 0.8)
	result := 69.55 + 26.16*math.Log10(freqMHz) - 13.82*math.Log10(txHeightM) - aHm +
		(44.9-6.55*math.Log10(txHeightM))*math.Log10(distKm)

	return result, nil
}

// InDesignRange reports whether the inputs fall inside the range the base
// formula was calibrated for.
func (h HataUrban) InDesignRange(txHeightM, freqMHz, distKm float64) bool {
	return txHeightM >= h.setting.MinTxHeightM &&
		freqMHz >= h.setting.MinFreqMHz && freqMHz <= h.setting.MaxFreqMHz &&
		distKm >= 1.0
}
