package bridge

// Stability is the outcome of the longitudinal stability check.
type Stability struct {
	Stable bool
	Reason string
}

// CheckStability reports whether a conventional topology has a longitudinal
// load path. A conventional multi-span bridge whose piers are all EXP
// leaves the superstructure free to slide along the alignment (abutment
// rollers do not restrain the longitudinal DOF): a rigid-body mechanism.
// Isolated bridges restrain the deck through the isolator hysteresis and
// single-span bridges have no pier connections to check.
func CheckStability(p *Params) Stability {
	if p.NumPiers() == 0 || p.Isolation != NoIsolation {
		return Stability{Stable: true}
	}
	for i := 0; i < p.NumPiers(); i++ {
		if p.pierType(i) == Fix {
			return Stability{Stable: true}
		}
	}
	return Stability{
		Stable: false,
		Reason: "no FIX pier: the superstructure has a longitudinal rigid-body mechanism",
	}
}

// stabilization describes the correction applied to an unstable topology.
type stabilization struct {
	promotePier int // pier index promoted to FIX, -1 if none
	anchorPier  int // pier index receiving a DOF-1 anchor, -1 if none
	note        string
}

// planStabilization decides how to restore a longitudinal load path.
// Multi-column bents can take the longitudinal shear of a FIX connection,
// so the first pier is promoted. Single-column bents keep their EXP
// connections and instead receive one longitudinal-only anchor constraint
// at the girder nearest the column line.
func planStabilization(p *Params) *stabilization {
	if CheckStability(p).Stable {
		return nil
	}
	if p.ColumnsPerBent > 1 {
		return &stabilization{
			promotePier: 0,
			anchorPier:  -1,
			note:        "stability: pier 1 promoted from EXP to FIX to restore the longitudinal load path",
		}
	}
	return &stabilization{
		promotePier: -1,
		anchorPier:  0,
		note:        "stability: longitudinal anchor (DOF 1) added at pier 1 nearest girder",
	}
}

// effectivePierType applies a planned promotion on top of the configured
// pier types.
func effectivePierType(p *Params, fix *stabilization, pier int) PierType {
	if fix != nil && fix.promotePier == pier {
		return Fix
	}
	return p.pierType(pier)
}
