package bridge

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/cogo"
	"github.com/alexiusacademia/gobridge/internal/model"
)

// nodeCategory tags the structural role of a node. Nodes are addressed by
// typed keys during the build and resolved to a single dense integer ID
// space in creation order at emission, so IDs are collision-free by
// construction for any parameter combination.
type nodeCategory int

const (
	catDeck nodeCategory = iota
	catChord
	catCap
	catBase
	catGround
)

// nodeKey identifies one node within its category. Unused index fields
// stay zero.
type nodeKey struct {
	cat    nodeCategory
	line   int // support line (deck, cap) or pier index (base, ground)
	girder int // girder line (deck, chord, cap)
	span   int // span index (chord)
	chord  int // interior chord index (chord)
	col    int // bent column index (base, ground)
}

func deckKey(line, girder int) nodeKey  { return nodeKey{cat: catDeck, line: line, girder: girder} }
func capKey(line, girder int) nodeKey   { return nodeKey{cat: catCap, line: line, girder: girder} }
func baseKey(pier, col int) nodeKey     { return nodeKey{cat: catBase, line: pier, col: col} }
func groundKey(pier, col int) nodeKey   { return nodeKey{cat: catGround, line: pier, col: col} }
func chordKey(span, girder, i int) nodeKey {
	return nodeKey{cat: catChord, span: span, girder: girder, chord: i}
}

// nodeTable owns node creation: every node is created exactly once and
// assigned the next dense ID.
type nodeTable struct {
	nodes []model.Node
	index map[nodeKey]int
}

func newNodeTable() *nodeTable {
	return &nodeTable{index: make(map[nodeKey]int)}
}

func (t *nodeTable) add(k nodeKey, x, y, z float64, r model.Restraint, label string) int {
	id := len(t.nodes) + 1
	t.nodes = append(t.nodes, model.Node{ID: id, X: x, Y: y, Z: z, Restraint: r, Label: label})
	t.index[k] = id
	return id
}

// id resolves a key created earlier in the pipeline. Later phases only
// reference nodes the node phase created, so a miss is a builder bug.
func (t *nodeTable) id(k nodeKey) int {
	id, ok := t.index[k]
	if !ok {
		panic(fmt.Sprintf("bridge: unresolved node key %+v", k))
	}
	return id
}

// buildNodes generates every node category: deck nodes per support line
// and girder, interior chord nodes, cap bands, column bases and, for
// base-isolated bridges, fixed ground nodes under each base.
func buildNodes(p *Params, geo geometryPlan, sec sectionPlan) *nodeTable {
	t := newNodeTable()
	lines := p.NumSupportLines()
	lastLine := lines - 1
	girderOffsets := p.girderOffsetsIn()
	columnOffsets := p.columnOffsetsIn()

	// Deck nodes. Abutment seats roll unless the deck sits on isolators
	// (single-span bridges keep their rollers: no bearings are generated).
	bearingIsolated := p.Isolation == BearingIsolation && p.NumPiers() > 0
	for line := 0; line < lines; line++ {
		abutment := line == 0 || line == lastLine
		restraint := model.Free
		if abutment && !bearingIsolated {
			restraint = model.Roller
		}
		for g, off := range girderOffsets {
			pt := cogo.TransverseOffset(geo.points[line], off)
			t.add(deckKey(line, g), pt.X, geo.deckY[line], pt.Z, restraint,
				fmt.Sprintf("Deck L%d G%d", line+1, g+1))
		}
	}

	// Interior chord nodes ride the deck reference plane like the support
	// line nodes they interpolate between.
	for span, pts := range geo.chords {
		for i, pt := range pts {
			for g, off := range girderOffsets {
				cp := cogo.TransverseOffset(pt, off)
				t.add(chordKey(span, g, i), cp.X, geo.refDeckY+pt.Y, cp.Z, model.Free,
					fmt.Sprintf("Chord S%d G%d C%d", span+1, g+1, i+1))
			}
		}
	}

	// Cap bands: every pier always, plus abutment bearing seats when the
	// bridge is bearing-isolated (the isolators need a substructure node).
	if p.NumPiers() > 0 {
		for line := 0; line < lines; line++ {
			abutment := line == 0 || line == lastLine
			if abutment && p.Isolation != BearingIsolation {
				continue
			}
			restraint := model.Free
			if abutment {
				restraint = model.Fixed // abutment seat
			}
			capY := geo.deckY[line] - sec.girderDepth
			for g, off := range girderOffsets {
				pt := cogo.TransverseOffset(geo.points[line], off)
				t.add(capKey(line, g), pt.X, capY, pt.Z, restraint,
					fmt.Sprintf("Cap L%d G%d", line+1, g+1))
			}
		}
	}

	// Base nodes extend downward from the deck elevation by the pier's
	// column height. Ground nodes duplicate them, fixed, when the columns
	// sit on isolators.
	for pier := 0; pier < p.NumPiers(); pier++ {
		line := pier + 1
		restraint := model.Fixed
		if p.Isolation == BaseIsolation {
			restraint = model.Free
		}
		baseY := geo.deckY[line] - geo.colHeights[pier]
		for c, off := range columnOffsets {
			pt := cogo.TransverseOffset(geo.points[line], off)
			t.add(baseKey(pier, c), pt.X, baseY, pt.Z, restraint,
				fmt.Sprintf("Base P%d C%d", pier+1, c+1))
		}
	}
	if p.Isolation == BaseIsolation {
		for pier := 0; pier < p.NumPiers(); pier++ {
			line := pier + 1
			baseY := geo.deckY[line] - geo.colHeights[pier]
			for c, off := range columnOffsets {
				pt := cogo.TransverseOffset(geo.points[line], off)
				t.add(groundKey(pier, c), pt.X, baseY, pt.Z, model.Fixed,
					fmt.Sprintf("Ground P%d C%d", pier+1, c+1))
			}
		}
	}

	return t
}
