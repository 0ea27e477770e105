package bridge

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobridge/internal/model"
)

// buildElements generates the frame elements: girder chains per span and
// girder line (single segment, or chordsPerSpan segments through interior
// chord nodes), cross beams between adjacent girders at every support
// line, pier cap beams between adjacent cap nodes, and columns from each
// base node to the cap node of the nearest girder line.
func buildElements(p *Params, t *nodeTable, sec sectionPlan) []model.Element {
	var elements []model.Element
	nextID := 1
	add := func(kind model.ElementKind, nodeI, nodeJ, sectionID, materialID int, label string) {
		elements = append(elements, model.Element{
			ID:         nextID,
			Kind:       kind,
			NodeI:      nodeI,
			NodeJ:      nodeJ,
			SectionID:  sectionID,
			MaterialID: materialID,
			Label:      label,
		})
		nextID++
	}

	lines := p.NumSupportLines()
	chords := p.chordsPerSpan()

	// Girders: a chord-discretized span still starts and ends on the same
	// support line deck nodes, so subdivision never changes the span.
	for span := 0; span < len(p.SpanLengthsFt); span++ {
		for g := 0; g < p.NumGirders; g++ {
			start := t.id(deckKey(span, g))
			end := t.id(deckKey(span+1, g))
			if chords <= 1 {
				add(model.Girder, start, end, secGirder, sec.girderMaterial,
					fmt.Sprintf("Girder S%d G%d", span+1, g+1))
				continue
			}
			prev := start
			for i := 0; i < chords-1; i++ {
				next := t.id(chordKey(span, g, i))
				add(model.Girder, prev, next, secGirder, sec.girderMaterial,
					fmt.Sprintf("Girder S%d G%d seg %d", span+1, g+1, i+1))
				prev = next
			}
			add(model.Girder, prev, end, secGirder, sec.girderMaterial,
				fmt.Sprintf("Girder S%d G%d seg %d", span+1, g+1, chords))
		}
	}

	// Cross beams between adjacent girders at every support line.
	for line := 0; line < lines; line++ {
		for g := 0; g < p.NumGirders-1; g++ {
			add(model.CrossBeam, t.id(deckKey(line, g)), t.id(deckKey(line, g+1)),
				secCrossBeam, sec.crossMaterial,
				fmt.Sprintf("Cross beam L%d G%d-G%d", line+1, g+1, g+2))
		}
	}

	// Pier cap beams between adjacent cap nodes.
	for pier := 0; pier < p.NumPiers(); pier++ {
		line := pier + 1
		for g := 0; g < p.NumGirders-1; g++ {
			add(model.PierCap, t.id(capKey(line, g)), t.id(capKey(line, g+1)),
				secPierCap, matConcrete,
				fmt.Sprintf("Pier cap P%d G%d-G%d", pier+1, g+1, g+2))
		}
	}

	// Columns from base to the cap node of the nearest girder line.
	girderOffsets := p.girderOffsetsIn()
	columnOffsets := p.columnOffsetsIn()
	for pier := 0; pier < p.NumPiers(); pier++ {
		line := pier + 1
		for c, colOff := range columnOffsets {
			g := nearestGirder(girderOffsets, colOff)
			add(model.Column, t.id(baseKey(pier, c)), t.id(capKey(line, g)),
				secColumn, matConcrete,
				fmt.Sprintf("Column P%d C%d", pier+1, c+1))
		}
	}

	return elements
}

// nearestGirder returns the index of the girder offset closest to the
// column offset, lower index winning ties.
func nearestGirder(girderOffsets []float64, columnOffset float64) int {
	best := 0
	bestDist := math.Abs(girderOffsets[0] - columnOffset)
	for g := 1; g < len(girderOffsets); g++ {
		if d := math.Abs(girderOffsets[g] - columnOffset); d < bestDist {
			best = g
			bestDist = d
		}
	}
	return best
}
