package propagation

import "math"

// LogDistanceUncertainty grows with distance and with deviation from a
// reference frequency, modelling how the accuracy of the base formula
// degrades at longer range and off-reference carriers. It carries no physical
// derivation; swap in another Uncertainty if a calibrated estimator exists.
type LogDistanceUncertainty struct {
	BaseDb     float64
	DistSlope  float64
	FreqSlope  float64
	RefFreqMHz float64
}

func NewLogDistanceUncertainty() *LogDistanceUncertainty {
	return &LogDistanceUncertainty{
		BaseDb:     2.0,
		DistSlope:  0.5,
		FreqSlope:  0.3,
		RefFreqMHz: 900.0,
	}
}

func (u LogDistanceUncertainty) ErrorInDb(freqMHz, distKm float64) float64 {
	return u.BaseDb + u.DistSlope*math.Log10(distKm) + u.FreqSlope*math.Log10(freqMHz/u.RefFreqMHz)
}
