// Package bridge builds complete finite-element-ready bridge models from a
// small engineering parameter set: span layout, girder arrangement, pier
// and isolation configuration, load intensities and an optional curved
// alignment.
//
// The builder is a pure, synchronous pipeline: geometry plan, section plan,
// nodes, elements, loads, bearings, constraints, diaphragms. Each phase
// consumes only the outputs of the phases before it, and every invocation
// is fully reproducible from its parameters.
package bridge

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/aashto"
	"github.com/alexiusacademia/gobridge/internal/catalog"
	"github.com/alexiusacademia/gobridge/internal/cogo"
)

// PierType is the pier-to-superstructure connection type.
type PierType string

const (
	// Fix is a fixed (pinned bearing seat) connection
	Fix PierType = "FIX"

	// Exp is an expansion (sliding) connection
	Exp PierType = "EXP"
)

// Isolation selects the seismic isolation strategy.
type Isolation string

const (
	// NoIsolation is a conventional bridge with equal-DOF pier connections
	NoIsolation Isolation = "none"

	// BearingIsolation places one TFP isolator per girder per support line
	BearingIsolation Isolation = "bearing"

	// BaseIsolation places one TFP isolator under each bent column
	BaseIsolation Isolation = "base"
)

// DefaultColumnHeightFt substitutes for missing per-pier column heights.
const DefaultColumnHeightFt = 20.0

// LoadParams holds the gravity load intensities.
type LoadParams struct {
	Surface         aashto.DeadLoadPSF `json:"surface"`
	BarrierKLF      float64            `json:"barrierKlf"`
	LiveLoadPercent float64            `json:"liveLoadPercent"`
}

// Params is the immutable input of one build. All lengths in feet.
type Params struct {
	Name            string             `json:"name,omitempty"`
	SpanLengthsFt   []float64          `json:"spans"`
	NumGirders      int                `json:"girders"`
	GirderSpacingFt float64            `json:"girderSpacing"`
	DeckOverhangFt  float64            `json:"deckOverhang"`
	GirderType      catalog.GirderType `json:"girderType"`
	PierTypes       []PierType         `json:"pierTypes,omitempty"`
	GuidedExpansion bool               `json:"guidedExpansion,omitempty"`
	ColumnsPerBent  int                `json:"columnsPerBent"`
	ColumnHeightsFt []float64          `json:"columnHeights,omitempty"`
	Isolation       Isolation          `json:"isolation"`
	Loads           LoadParams         `json:"loads"`
	Alignment       *cogo.Spec         `json:"alignment,omitempty"`
}

// DefaultParams returns the reference three-span configuration.
func DefaultParams() *Params {
	return &Params{
		Name:            "Three-span bridge",
		SpanLengthsFt:   []float64{120, 150, 120},
		NumGirders:      6,
		GirderSpacingFt: 8,
		DeckOverhangFt:  3,
		GirderType:      catalog.Steel,
		PierTypes:       []PierType{Fix, Fix},
		ColumnsPerBent:  2,
		ColumnHeightsFt: []float64{DefaultColumnHeightFt, DefaultColumnHeightFt},
		Isolation:       NoIsolation,
		Loads: LoadParams{
			Surface: aashto.DeadLoadPSF{
				Overlay:       25,
				CrossFrames:   10,
				Utilities:     5,
				FutureWearing: 25,
				Misc:          5,
			},
			BarrierKLF:      0.43,
			LiveLoadPercent: 100,
		},
	}
}

// Validate rejects structurally malformed parameter sets. Degenerate values
// (missing heights, short pier type lists, out-of-range lookups) are not
// errors; they are substituted during the build.
func (p *Params) Validate() error {
	if len(p.SpanLengthsFt) == 0 {
		return fmt.Errorf("at least one span is required")
	}
	for i, s := range p.SpanLengthsFt {
		if s <= 0 {
			return fmt.Errorf("span %d has non-positive length %.2f ft", i+1, s)
		}
	}
	if p.NumGirders < 1 {
		return fmt.Errorf("at least one girder line is required, got %d", p.NumGirders)
	}
	if p.NumGirders > 1 && p.GirderSpacingFt <= 0 {
		return fmt.Errorf("girder spacing must be positive, got %.2f ft", p.GirderSpacingFt)
	}
	if p.GirderType != catalog.Steel && p.GirderType != catalog.Concrete {
		return fmt.Errorf("unknown girder type %q", p.GirderType)
	}
	switch p.Isolation {
	case NoIsolation, BearingIsolation, BaseIsolation:
	default:
		return fmt.Errorf("unknown isolation strategy %q", p.Isolation)
	}
	for i, t := range p.PierTypes {
		if t != Fix && t != Exp {
			return fmt.Errorf("pier %d has unknown type %q", i+1, t)
		}
	}
	if p.NumPiers() > 0 && p.ColumnsPerBent < 1 {
		return fmt.Errorf("at least one column per bent is required, got %d", p.ColumnsPerBent)
	}
	return nil
}

// NumSupportLines returns the abutment + pier cross-section count.
func (p *Params) NumSupportLines() int {
	return len(p.SpanLengthsFt) + 1
}

// NumPiers returns the interior support count.
func (p *Params) NumPiers() int {
	n := len(p.SpanLengthsFt) - 1
	if n < 0 {
		return 0
	}
	return n
}

// RoadwayWidthFt returns the out-to-out deck width.
func (p *Params) RoadwayWidthFt() float64 {
	if p.NumGirders <= 1 {
		return p.GirderSpacingFt + 2*p.DeckOverhangFt
	}
	return float64(p.NumGirders-1)*p.GirderSpacingFt + 2*p.DeckOverhangFt
}

// pierType returns the connection type of pier i, defaulting to FIX when
// the pier type list is shorter than the pier count.
func (p *Params) pierType(i int) PierType {
	if i < len(p.PierTypes) {
		return p.PierTypes[i]
	}
	return Fix
}

// columnHeightFt returns the column height of pier i with the default
// substituted for missing entries.
func (p *Params) columnHeightFt(i int) float64 {
	if i < len(p.ColumnHeightsFt) && p.ColumnHeightsFt[i] > 0 {
		return p.ColumnHeightsFt[i]
	}
	return DefaultColumnHeightFt
}

// girderOffsetsIn returns the transverse girder line offsets (in) centered
// on the alignment, leftmost first.
func (p *Params) girderOffsetsIn() []float64 {
	n := p.NumGirders
	offsets := make([]float64, n)
	if n == 1 {
		return offsets
	}
	spacing := p.GirderSpacingFt * 12
	for j := 0; j < n; j++ {
		offsets[j] = (float64(j) - float64(n-1)/2) * spacing
	}
	return offsets
}

// columnOffsetsIn returns the transverse bent column offsets (in), evenly
// distributed between the exterior girder lines with equal end insets.
func (p *Params) columnOffsetsIn() []float64 {
	c := p.ColumnsPerBent
	if c < 1 {
		c = 1
	}
	offsets := make([]float64, c)
	width := float64(p.NumGirders-1) * p.GirderSpacingFt * 12
	if p.NumGirders <= 1 || c == 1 {
		return offsets // single line on the alignment
	}
	for i := 0; i < c; i++ {
		offsets[i] = -width/2 + width*(float64(i)+0.5)/float64(c)
	}
	return offsets
}

// AlignmentSpec returns the alignment, substituting a straight, level
// alignment when none is given.
func (p *Params) AlignmentSpec() cogo.Spec {
	if p.Alignment == nil {
		return cogo.Spec{}
	}
	return *p.Alignment
}

// chordsPerSpan returns the chord discretization count, minimum 1.
func (p *Params) chordsPerSpan() int {
	a := p.AlignmentSpec()
	if a.ChordsPerSpan < 1 {
		return 1
	}
	return a.ChordsPerSpan
}
