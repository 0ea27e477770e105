package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobridge/internal/cogo"
)

// ProfileASCII renders the vertical profile of an alignment between two
// stations as a terminal graph (elevation in feet against station).
func ProfileASCII(spec cogo.Spec, startFt, endFt float64, samples int) string {
	if samples < 2 {
		samples = 2
	}
	step := (endFt - startFt) / float64(samples-1)
	series := make([]float64, samples)
	for i := 0; i < samples; i++ {
		sta := startFt + float64(i)*step
		series[i] = cogo.Elevation(sta, spec.RefElevation, spec.EntryGrade, spec.Vertical)
	}

	var b strings.Builder
	b.WriteString("\nVERTICAL PROFILE (elevation ft vs station)\n")
	b.WriteString("───────────────────────────────────────────────────────────────\n")
	b.WriteString(asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Precision(1),
	))
	b.WriteString(fmt.Sprintf("\n  Station %.1f ft to %.1f ft, %d samples\n", startFt, endFt, samples))
	return b.String()
}

// PlanASCII renders the horizontal alignment in plan as a terminal graph
// (transverse position against station). A quick curvature sanity check
// before exporting a proper plan drawing.
func PlanASCII(spec cogo.Spec, startFt, endFt float64, samples int) string {
	if samples < 2 {
		samples = 2
	}
	step := (endFt - startFt) / float64(samples-1)
	series := make([]float64, samples)
	for i := 0; i < samples; i++ {
		sta := startFt + float64(i)*step
		_, z, _ := cogo.HorizontalPosition(sta, spec.EntryBearing, spec.Horizontal)
		series[i] = z
	}

	var b strings.Builder
	b.WriteString("\nPLAN VIEW (transverse offset ft vs station)\n")
	b.WriteString("───────────────────────────────────────────────────────────────\n")
	b.WriteString(asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Precision(1),
	))
	b.WriteString(fmt.Sprintf("\n  Station %.1f ft to %.1f ft, %d samples\n", startFt, endFt, samples))
	return b.String()
}
