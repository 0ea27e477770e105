package bridge

import (
	"math"

	"github.com/alexiusacademia/gobridge/internal/model"
)

// Triple friction pendulum isolator defaults (kip-inch units), from the
// reference isolator sizing used by the downstream solver examples.
var (
	tfpInnerSurface = model.FrictionSurface{MuSlow: 0.012, MuFast: 0.018, TransRate: 100}
	tfpOuterSurface = model.FrictionSurface{MuSlow: 0.052, MuFast: 0.12, TransRate: 100}
)

const (
	tfpYieldDisplacementIn = 0.04
	tfpToleranceDefault    = 1e-5

	// MinVerticalStiffness floors the bearing's vertical spring (kip/in)
	// so lightly loaded bearings stay numerically stable in the solver.
	MinVerticalStiffness = 500.0

	// verticalStiffnessPerKip scales the vertical spring with the seated
	// gravity load.
	verticalStiffnessPerKip = 100.0
)

var (
	tfpRadiiIn          = [3]float64{3, 40, 3}
	tfpDispCapacitiesIn = [3]float64{1, 15, 1}
)

func newTFPBearing(id, nodeI, nodeJ int, weight float64) model.Bearing {
	return model.Bearing{
		ID:                id,
		NodeI:             nodeI,
		NodeJ:             nodeJ,
		Surfaces:          [4]model.FrictionSurface{tfpInnerSurface, tfpOuterSurface, tfpOuterSurface, tfpInnerSurface},
		Radii:             tfpRadiiIn,
		DispCapacities:    tfpDispCapacitiesIn,
		Weight:            weight,
		YieldDisplacement: tfpYieldDisplacementIn,
		VerticalStiffness: math.Max(MinVerticalStiffness, verticalStiffnessPerKip*weight),
		Tolerance:         tfpToleranceDefault,
	}
}

// buildBearings generates the isolation devices. Bearing-level isolation
// seats one isolator per girder per support line between the cap band and
// the deck; base-level isolation seats one isolator per bent column
// between the fixed ground node and the column base. Single-span bridges
// generate no bearings.
func buildBearings(p *Params, t *nodeTable, gravity map[nodeKey]float64) []model.Bearing {
	if p.NumPiers() == 0 {
		return nil
	}

	var bearings []model.Bearing
	nextID := 1

	switch p.Isolation {
	case BearingIsolation:
		for line := 0; line < p.NumSupportLines(); line++ {
			for g := 0; g < p.NumGirders; g++ {
				weight := gravity[deckKey(line, g)]
				bearings = append(bearings,
					newTFPBearing(nextID, t.id(capKey(line, g)), t.id(deckKey(line, g)), weight))
				nextID++
			}
		}
	case BaseIsolation:
		for pier := 0; pier < p.NumPiers(); pier++ {
			line := pier + 1
			lineWeight := 0.0
			for g := 0; g < p.NumGirders; g++ {
				lineWeight += gravity[deckKey(line, g)]
			}
			perColumn := lineWeight / float64(p.ColumnsPerBent)
			for c := 0; c < p.ColumnsPerBent; c++ {
				bearings = append(bearings,
					newTFPBearing(nextID, t.id(groundKey(pier, c)), t.id(baseKey(pier, c)), perColumn))
				nextID++
			}
		}
	}

	return bearings
}
