package catalog

import "math"

// Material constants (kip-inch units)

const (
	// ESteel is the elastic modulus of structural steel (ksi)
	ESteel = 29000.0

	// FcGirder is the default concrete strength for girders/caps (ksi)
	FcGirder = 5.0

	// FcColumn is the default concrete strength for columns (ksi)
	FcColumn = 4.0
)

// ConcreteE returns the elastic modulus of normal-weight concrete (ksi)
// for a compressive strength f'c in ksi, Ec = 1820*sqrt(f'c).
// AASHTO LRFD 5.4.2.4 simplified form.
func ConcreteE(fcKsi float64) float64 {
	return 1820 * math.Sqrt(fcKsi)
}
