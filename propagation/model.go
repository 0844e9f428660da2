// Package propagation implements empirical radio propagation models that
// predict path loss between a transmitter and a receiver location.
package propagation

import (
	"encoding/json"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Model is the interface implemented by the path-loss models. Loss is a pure
// function of the transmitter height, carrier frequency and ground distance;
// implementations must reject out-of-domain inputs instead of propagating NaN.
type Model interface {
	Set(ModelSetting)
	Get() ModelSetting
	LossInDb(txHeightM, freqMHz, distKm float64) (plDb float64, err error)
}

// Uncertainty estimates an auxiliary error magnitude (dB) reported alongside
// the path loss. It is a replaceable heuristic, never a correction: the
// aggregator must not fold it into the predicted loss.
type Uncertainty interface {
	ErrorInDb(freqMHz, distKm float64) float64
}

type ModelSetting struct {
	Name         string
	RxHeightM    float64
	MinFreqMHz   float64
	MaxFreqMHz   float64
	MinTxHeightM float64
	Param        []float64
	pNames       []string
	param        map[string]float64 /// always use capital letters for parameter name
}

// Value returns the value of the parameter set for the model
func (m *ModelSetting) Value(pname string) float64 {
	if m.param == nil {
		return 0
	}
	pname = strings.ToUpper(pname)
	return m.param[pname]
}

func (m *ModelSetting) Parameters() []string {
	return m.pNames
}

func (m *ModelSetting) AddParam(name string, value float64) *ModelSetting {
	if m.param == nil {
		m.param = make(map[string]float64)
	}
	name = strings.ToUpper(name)
	m.param[name] = value
	m.pNames = append(m.pNames, name)
	m.Param = append(m.Param, value)
	return m
}

func (m *ModelSetting) SetDefault() {
	m.Name = "Hata_Okahamaru"
	m.RxHeightM = 1.5
	m.MinFreqMHz = 150
	m.MaxFreqMHz = 1500
	m.MinTxHeightM = 30
}

func NewModelSetting() *ModelSetting {
	result := new(ModelSetting)
	result.param = make(map[string]float64)
	result.SetDefault()
	return result
}

func (s *ModelSetting) Set(str string) {
	err := json.Unmarshal([]byte(str), s)
	if err != nil {
		log.Print("Error ", err)
	}
}
