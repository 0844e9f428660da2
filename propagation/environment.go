package propagation

// Environment is a coarse morphology label derived from ground distance.
type Environment int

const (
	Urban Environment = iota
	Suburban
	Rural
)

var Environments = [...]string{
	"Urban",
	"Suburban",
	"Rural",
}

func (e Environment) String() string {
	if int(e) >= len(Environments) {
		return "Unknown-Environment"
	}
	return Environments[e]
}

// Distance bands in km. Lower edges are inclusive.
const (
	UrbanMaxKm    = 2.0
	SuburbanMaxKm = 5.0
)

// Classify maps a ground distance to its environment band:
// [0,2) Urban, [2,5) Suburban, [5,inf) Rural.
func Classify(distKm float64) Environment {
	switch {
	case distKm < UrbanMaxKm:
		return Urban
	case distKm < SuburbanMaxKm:
		return Suburban
	default:
		return Rural
	}
}
