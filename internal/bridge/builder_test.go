package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobridge/internal/catalog"
	"github.com/alexiusacademia/gobridge/internal/cogo"
	"github.com/alexiusacademia/gobridge/internal/model"
)

func singleSpanParams() *Params {
	p := DefaultParams()
	p.SpanLengthsFt = []float64{100}
	p.NumGirders = 3
	p.PierTypes = nil
	p.ColumnHeightsFt = nil
	return p
}

func countKind(elements []model.Element, kind model.ElementKind) int {
	n := 0
	for _, e := range elements {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestBuildSingleSpan(t *testing.T) {
	res, err := Build(singleSpanParams(), Options{})
	require.NoError(t, err)
	m := res.Model

	// Two support lines times three girders, nothing below the deck.
	assert.Len(t, m.Nodes, 6)
	assert.Empty(t, m.Bearings)
	assert.Empty(t, m.EqualDOF)
	assert.Equal(t, 3, countKind(m.Elements, model.Girder))
	assert.Equal(t, 4, countKind(m.Elements, model.CrossBeam))
	assert.Zero(t, countKind(m.Elements, model.PierCap))
	assert.Zero(t, countKind(m.Elements, model.Column))

	// Abutment seats roll, every deck node carries a gravity load.
	for _, n := range m.Nodes {
		assert.Equal(t, model.Roller, n.Restraint, "node %d", n.ID)
	}
	assert.Len(t, m.Loads, 6)
	for _, ld := range m.Loads {
		assert.Negative(t, ld.FY)
		assert.Zero(t, ld.FX)
		assert.Zero(t, ld.FZ)
	}

	assert.True(t, res.Stability.Stable)
}

func TestBuildThreeSpanDefault(t *testing.T) {
	res, err := Build(DefaultParams(), Options{})
	require.NoError(t, err)
	m := res.Model

	// 24 deck + 12 cap + 4 base nodes.
	assert.Len(t, m.Nodes, 40)
	assert.Equal(t, 18, countKind(m.Elements, model.Girder))
	assert.Equal(t, 20, countKind(m.Elements, model.CrossBeam))
	assert.Equal(t, 10, countKind(m.Elements, model.PierCap))
	assert.Equal(t, 4, countKind(m.Elements, model.Column))
	assert.Len(t, m.Loads, 24)
	assert.Empty(t, m.Bearings)

	// One cap-to-deck tie per girder per pier, all FIX.
	require.Len(t, m.EqualDOF, 12)
	for _, c := range m.EqualDOF {
		assert.Equal(t, []int{1, 2, 3}, c.DOFs)
	}

	// All deck nodes share one rigid diaphragm in plan.
	require.Len(t, m.Diaphragms, 1)
	d := m.Diaphragms[0]
	assert.Equal(t, 1, d.Axis)
	assert.Len(t, d.ConstrainedNodes, 23)
	assert.NotContains(t, d.ConstrainedNodes, d.MasterNode)

	assert.Equal(t, "kip-in", m.Info.Units)
	assert.True(t, res.Stability.Stable)
	assert.Empty(t, res.Notes)
}

func TestBuildNodeIDsDenseAndUnique(t *testing.T) {
	variants := map[string]*Params{
		"single span": singleSpanParams(),
		"default":     DefaultParams(),
	}
	exp := DefaultParams()
	exp.PierTypes = []PierType{Fix, Exp}
	variants["fix-exp"] = exp

	guided := DefaultParams()
	guided.PierTypes = []PierType{Fix, Exp}
	guided.GuidedExpansion = true
	variants["guided expansion"] = guided

	bearing := DefaultParams()
	bearing.Isolation = BearingIsolation
	variants["bearing isolation"] = bearing

	base := DefaultParams()
	base.Isolation = BaseIsolation
	variants["base isolation"] = base

	curved := DefaultParams()
	curved.Alignment = &cogo.Spec{
		EntryBearing: 15,
		EntryGrade:   1.5,
		Horizontal: []cogo.HorizontalCurve{
			{PCStation: 100, Deflection: 20, Radius: 800, Direction: cogo.Right},
		},
		Vertical:      []cogo.VerticalCurve{{PVIStation: 195, ExitGrade: -1.5, Length: 150}},
		ChordsPerSpan: 4,
	}
	curved.Isolation = BaseIsolation
	variants["curved base-isolated"] = curved

	for name, p := range variants {
		t.Run(name, func(t *testing.T) {
			res, err := Build(p, Options{})
			require.NoError(t, err)

			// IDs are dense: 1..N in creation order. Referential integrity
			// is covered by the model validation inside Build.
			for i, n := range res.Model.Nodes {
				assert.Equal(t, i+1, n.ID)
			}
		})
	}
}

func TestBuildExpansionPierDOFs(t *testing.T) {
	p := DefaultParams()
	p.PierTypes = []PierType{Fix, Exp}

	res, err := Build(p, Options{})
	require.NoError(t, err)
	require.Len(t, res.Model.EqualDOF, 12)
	for i, c := range res.Model.EqualDOF {
		if i < 6 {
			assert.Equal(t, []int{1, 2, 3}, c.DOFs, "pier 1 girder %d", i+1)
		} else {
			assert.Equal(t, []int{2}, c.DOFs, "pier 2 girder %d", i-5)
		}
	}

	p.GuidedExpansion = true
	res, err = Build(p, Options{})
	require.NoError(t, err)
	for _, c := range res.Model.EqualDOF[6:] {
		assert.Equal(t, []int{2, 3}, c.DOFs)
	}
}

func TestBuildBearingIsolation(t *testing.T) {
	p := DefaultParams()
	p.Isolation = BearingIsolation

	res, err := Build(p, Options{})
	require.NoError(t, err)
	m := res.Model

	// One isolator per girder per support line, no equal-DOF ties.
	assert.Len(t, m.Bearings, 24)
	assert.Empty(t, m.EqualDOF)

	// 24 deck + 24 cap (abutment seats included) + 4 base nodes.
	assert.Len(t, m.Nodes, 52)

	for _, b := range m.Bearings {
		assert.Positive(t, b.Weight)
		assert.GreaterOrEqual(t, b.VerticalStiffness, MinVerticalStiffness)
		assert.InDelta(t, 0.04, b.YieldDisplacement, 1e-9)
		assert.Equal(t, [3]float64{3, 40, 3}, b.Radii)
		assert.Equal(t, [3]float64{1, 15, 1}, b.DispCapacities)
		// Inner surfaces slide first, outer surfaces carry the large stroke.
		assert.InDelta(t, 0.012, b.Surfaces[0].MuSlow, 1e-9)
		assert.InDelta(t, 0.12, b.Surfaces[1].MuFast, 1e-9)
	}

	// The deck floats on the isolators: no rollers left anywhere above.
	for _, n := range m.Nodes {
		if n.Restraint == model.Roller {
			t.Fatalf("node %d still has a roller restraint", n.ID)
		}
	}
}

func TestBuildBaseIsolation(t *testing.T) {
	p := DefaultParams()
	p.Isolation = BaseIsolation

	res, err := Build(p, Options{})
	require.NoError(t, err)
	m := res.Model

	// One isolator per bent column, between ground and base.
	assert.Len(t, m.Bearings, 4)

	// 24 deck + 12 cap + 4 base + 4 ground nodes.
	assert.Len(t, m.Nodes, 44)

	// The cap-to-deck ties stay: the isolation interface is under the
	// columns, not at the bearing seats.
	assert.Len(t, m.EqualDOF, 12)

	// Column bases are freed, the ground nodes below them are fixed.
	free, fixed := 0, 0
	for _, n := range m.Nodes[36:] { // base + ground block
		switch n.Restraint {
		case model.Free:
			free++
		case model.Fixed:
			fixed++
		}
	}
	assert.Equal(t, 4, free)
	assert.Equal(t, 4, fixed)
}

func TestBuildChordDiscretization(t *testing.T) {
	p := DefaultParams()
	p.Alignment = &cogo.Spec{
		EntryBearing:  0,
		ChordsPerSpan: 4,
		Horizontal: []cogo.HorizontalCurve{
			{PCStation: 50, Deflection: 25, Radius: 1000, Direction: cogo.Right},
		},
	}

	plain := DefaultParams()
	resPlain, err := Build(plain, Options{})
	require.NoError(t, err)
	res, err := Build(p, Options{})
	require.NoError(t, err)

	// 3 spans x 3 interior points x 6 girders extra nodes.
	assert.Len(t, res.Model.Nodes, len(resPlain.Model.Nodes)+3*3*6)

	// Each girder line splits into 4 segments but keeps its endpoints on
	// the same support-line deck nodes.
	assert.Equal(t, 4*18, countKind(res.Model.Elements, model.Girder))

	firstPlain := resPlain.Model.Elements[0]
	first := res.Model.Elements[0]
	assert.Equal(t, firstPlain.NodeI, first.NodeI)

	// Chord nodes carry no loads; loads stay one per support-line node.
	assert.Len(t, res.Model.Loads, len(resPlain.Model.Loads))

	// Chord nodes join the deck diaphragm.
	require.Len(t, res.Model.Diaphragms, 1)
	assert.Len(t, res.Model.Diaphragms[0].ConstrainedNodes, 24+3*3*6-1)
}

func TestCheckStability(t *testing.T) {
	assert.True(t, CheckStability(singleSpanParams()).Stable)
	assert.True(t, CheckStability(DefaultParams()).Stable)

	allExp := DefaultParams()
	allExp.PierTypes = []PierType{Exp, Exp}
	s := CheckStability(allExp)
	assert.False(t, s.Stable)
	assert.Contains(t, s.Reason, "longitudinal")

	// Isolated bridges restrain the deck through the isolators.
	allExp.Isolation = BearingIsolation
	assert.True(t, CheckStability(allExp).Stable)
}

func TestBuildAutoStabilizePromotesPier(t *testing.T) {
	p := DefaultParams()
	p.PierTypes = []PierType{Exp, Exp}

	res, err := Build(p, Options{AutoStabilize: true})
	require.NoError(t, err)

	// Multi-column bents take the FIX shear: pier 1 is promoted.
	require.Len(t, res.Model.EqualDOF, 12)
	for _, c := range res.Model.EqualDOF[:6] {
		assert.Equal(t, []int{1, 2, 3}, c.DOFs)
	}
	for _, c := range res.Model.EqualDOF[6:] {
		assert.Equal(t, []int{2}, c.DOFs)
	}
	require.Len(t, res.Notes, 1)
	assert.Contains(t, res.Notes[0], "promoted")
}

func TestBuildAutoStabilizeAnchorsSingleColumnBent(t *testing.T) {
	p := DefaultParams()
	p.PierTypes = []PierType{Exp, Exp}
	p.ColumnsPerBent = 1

	res, err := Build(p, Options{AutoStabilize: true})
	require.NoError(t, err)

	// EXP ties stay, one longitudinal-only anchor is appended.
	require.Len(t, res.Model.EqualDOF, 13)
	for _, c := range res.Model.EqualDOF[:12] {
		assert.Equal(t, []int{2}, c.DOFs)
	}
	assert.Equal(t, []int{1}, res.Model.EqualDOF[12].DOFs)
}

func TestBuildWithoutAutoStabilizeReportsMechanism(t *testing.T) {
	p := DefaultParams()
	p.PierTypes = []PierType{Exp, Exp}

	res, err := Build(p, Options{})
	require.NoError(t, err)

	assert.False(t, res.Stability.Stable)
	assert.Empty(t, res.Notes)
	for _, c := range res.Model.EqualDOF {
		assert.Equal(t, []int{2}, c.DOFs)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"no spans", func(p *Params) { p.SpanLengthsFt = nil }},
		{"negative span", func(p *Params) { p.SpanLengthsFt = []float64{120, -10} }},
		{"no girders", func(p *Params) { p.NumGirders = 0 }},
		{"zero spacing", func(p *Params) { p.GirderSpacingFt = 0 }},
		{"bad girder type", func(p *Params) { p.GirderType = "timber" }},
		{"bad isolation", func(p *Params) { p.Isolation = "rubber" }},
		{"bad pier type", func(p *Params) { p.PierTypes = []PierType{"PIN"} }},
		{"no columns", func(p *Params) { p.ColumnsPerBent = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestSectionSelection(t *testing.T) {
	res, err := Build(DefaultParams(), Options{})
	require.NoError(t, err)
	m := res.Model

	// The 150 ft center span governs the girder tier.
	require.NotEmpty(t, m.Sections)
	assert.Equal(t, catalog.GirderForSpan(150, catalog.Steel).Name, m.Sections[0].Name)

	// Steel girders pair with the steel material, columns with concrete.
	require.Len(t, m.Materials, 2)
	assert.InDelta(t, catalog.ESteel, m.Materials[0].E, 1e-9)
	assert.InDelta(t, catalog.ConcreteE(catalog.FcGirder), m.Materials[1].E, 1e-9)

	concrete := DefaultParams()
	concrete.GirderType = catalog.Concrete
	res, err = Build(concrete, Options{})
	require.NoError(t, err)
	assert.Equal(t, "AASHTO-PCI BT-72", res.Model.Sections[0].Name)
	assert.Equal(t, "Cast-in-place diaphragm", res.Model.Sections[1].Name)
}

func TestColumnHeightGovernsGeometry(t *testing.T) {
	p := DefaultParams()
	p.ColumnHeightsFt = []float64{30, 25}

	res, err := Build(p, Options{})
	require.NoError(t, err)

	// The deck reference plane clears the tallest column: 30 ft = 360 in.
	for _, n := range res.Model.Nodes[:24] {
		assert.InDelta(t, 360.0, n.Y, 1e-9, "deck node %d", n.ID)
	}
}
