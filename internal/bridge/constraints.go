package bridge

import (
	"sort"

	"github.com/alexiusacademia/gobridge/internal/model"
)

// DOF indices of the equal-DOF constraints (1-based, [Tx Ty Tz Rx Ry Rz]).
var (
	dofsFix       = []int{1, 2, 3}
	dofsExp       = []int{2}
	dofsExpGuided = []int{2, 3}
	dofsAnchor    = []int{1}
)

// buildConstraints generates the conventional pier connections: one
// equal-DOF constraint per girder per pier tying the deck node to the cap
// node underneath it. FIX piers constrain all three translations (the
// rotations stay free, modeling a pinned bearing seat); EXP piers constrain
// vertical only, or vertical plus transverse when the expansion bearings
// are guided. A planned stabilization is applied here: either the first
// pier builds with FIX DOFs, or a longitudinal-only anchor constraint is
// appended at the girder nearest the first pier's column line.
//
// Bearing-isolated bridges replace these ties with isolators; base-isolated
// bridges keep them, since their isolation interface is under the columns
// and the cap-to-deck connection stays conventional.
func buildConstraints(p *Params, t *nodeTable, fix *stabilization) []model.EqualDOF {
	if p.NumPiers() == 0 || p.Isolation == BearingIsolation {
		return nil
	}

	var constraints []model.EqualDOF
	nextID := 1

	for pier := 0; pier < p.NumPiers(); pier++ {
		line := pier + 1
		dofs := dofsExp
		switch {
		case effectivePierType(p, fix, pier) == Fix:
			dofs = dofsFix
		case p.GuidedExpansion:
			dofs = dofsExpGuided
		}
		for g := 0; g < p.NumGirders; g++ {
			constraints = append(constraints, model.EqualDOF{
				ID:              nextID,
				RetainedNode:    t.id(capKey(line, g)),
				ConstrainedNode: t.id(deckKey(line, g)),
				DOFs:            dofs,
			})
			nextID++
		}
	}

	if fix != nil && fix.anchorPier >= 0 {
		line := fix.anchorPier + 1
		g := nearestGirder(p.girderOffsetsIn(), p.columnOffsetsIn()[0])
		constraints = append(constraints, model.EqualDOF{
			ID:              nextID,
			RetainedNode:    t.id(capKey(line, g)),
			ConstrainedNode: t.id(deckKey(line, g)),
			DOFs:            dofsAnchor,
		})
	}

	return constraints
}

// buildDiaphragm groups every deck and chord node into one rigid
// diaphragm normal to the vertical axis: the deck acts as a single rigid
// body in plan. The first deck node is the master.
func buildDiaphragm(t *nodeTable) []model.RigidDiaphragm {
	var deckIDs []int
	for k, id := range t.index {
		if k.cat == catDeck || k.cat == catChord {
			deckIDs = append(deckIDs, id)
		}
	}
	sort.Ints(deckIDs)
	if len(deckIDs) < 2 {
		return nil
	}
	return []model.RigidDiaphragm{{
		ID:               1,
		MasterNode:       deckIDs[0],
		ConstrainedNodes: deckIDs[1:],
		Axis:             1, // Y vertical
	}}
}
