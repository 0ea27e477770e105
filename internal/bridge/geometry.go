package bridge

import (
	"math"

	"github.com/alexiusacademia/gobridge/internal/cogo"
)

// MinDeckClearanceIn is the minimum height of the deck reference plane
// above the alignment datum, guaranteeing vertical clearance under the
// shortest superstructure.
const MinDeckClearanceIn = 240.0

// geometryPlan is the immutable output of the geometry phase: stations,
// evaluated alignment poses and elevations for every support line and
// interior chord point. All coordinates in inches, stations in feet.
type geometryPlan struct {
	spec       cogo.Spec
	stations   []float64      // per support line (ft)
	points     []cogo.Point   // per support line
	chordStas  [][]float64    // per span, interior chord stations (ft)
	chords     [][]cogo.Point // per span, interior chord poses
	refDeckY   float64        // deck reference plane above datum (in)
	deckY      []float64      // deck elevation per support line (in)
	colHeights []float64      // column height per pier (in)
}

// planGeometry evaluates the alignment at every support line and, when the
// span is chord-discretized, at every interior chord station. The deck
// reference plane sits at least MinDeckClearanceIn above the datum and
// never below the tallest pier column.
func planGeometry(p *Params) geometryPlan {
	spec := p.AlignmentSpec()
	lines := p.NumSupportLines()

	plan := geometryPlan{
		spec:       spec,
		stations:   make([]float64, lines),
		points:     make([]cogo.Point, lines),
		deckY:      make([]float64, lines),
		colHeights: make([]float64, p.NumPiers()),
	}

	station := 0.0
	for i := 0; i < lines; i++ {
		plan.stations[i] = station
		plan.points[i] = spec.PointAt(station)
		if i < len(p.SpanLengthsFt) {
			station += p.SpanLengthsFt[i]
		}
	}

	plan.refDeckY = MinDeckClearanceIn
	for i := range plan.colHeights {
		plan.colHeights[i] = p.columnHeightFt(i) * 12
		plan.refDeckY = math.Max(plan.refDeckY, plan.colHeights[i])
	}

	for i := 0; i < lines; i++ {
		plan.deckY[i] = plan.refDeckY + plan.points[i].Y
	}

	if chords := p.chordsPerSpan(); chords > 1 {
		plan.chordStas = make([][]float64, len(p.SpanLengthsFt))
		plan.chords = make([][]cogo.Point, len(p.SpanLengthsFt))
		for s := range p.SpanLengthsFt {
			stas := cogo.InteriorStations(plan.stations[s], plan.stations[s+1], chords)
			plan.chordStas[s] = stas
			pts := make([]cogo.Point, len(stas))
			for i, sta := range stas {
				pts[i] = spec.PointAt(sta)
			}
			plan.chords[s] = pts
		}
	}

	return plan
}
