package bridge

import (
	"github.com/alexiusacademia/gobridge/internal/aashto"
	"github.com/alexiusacademia/gobridge/internal/model"
)

// buildLoads generates one vertical gravity load per support line deck
// node from the tributary dead and live loads. The returned gravity map
// (keyed by support line and girder) carries the positive load magnitude
// for the bearing phase.
func buildLoads(p *Params, t *nodeTable) ([]model.NodalLoad, map[nodeKey]float64) {
	width := p.RoadwayWidthFt()
	var loads []model.NodalLoad
	gravity := make(map[nodeKey]float64)

	for line := 0; line < p.NumSupportLines(); line++ {
		tribLen := aashto.TributaryLength(p.SpanLengthsFt, line)
		for g := 0; g < p.NumGirders; g++ {
			exterior := g == 0 || g == p.NumGirders-1
			tribWidth := aashto.TributaryWidth(g, p.NumGirders, p.GirderSpacingFt, p.DeckOverhangFt)

			dead := aashto.NodeDeadLoad(p.Loads.Surface, tribWidth, tribLen, p.Loads.BarrierKLF, exterior)
			live := aashto.NodeLiveLoad(width, tribLen, p.Loads.LiveLoadPercent, p.NumGirders)
			total := dead + live

			key := deckKey(line, g)
			gravity[key] = total
			loads = append(loads, model.NodalLoad{NodeID: t.id(key), FY: -total})
		}
	}

	return loads, gravity
}
