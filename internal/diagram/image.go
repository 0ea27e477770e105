package diagram

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobridge/internal/cogo"
	"github.com/alexiusacademia/gobridge/internal/model"
)

// ExportPlanDiagram draws the horizontal alignment in plan (X-Z plane,
// feet) together with the generated deck nodes, and saves it to filename.
// The format follows the file extension (png, svg, pdf).
func ExportPlanDiagram(spec cogo.Spec, m *model.BridgeModel, startFt, endFt float64, filename string) error {
	if err := checkExtension(filename); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Alignment Plan"
	p.X.Label.Text = "X (ft)"
	p.Y.Label.Text = "Z (ft)"

	const samples = 200
	centerline := make(plotter.XYs, samples)
	step := (endFt - startFt) / float64(samples-1)
	for i := 0; i < samples; i++ {
		x, z, _ := cogo.HorizontalPosition(startFt+float64(i)*step, spec.EntryBearing, spec.Horizontal)
		centerline[i] = plotter.XY{X: x, Y: z}
	}

	line, err := plotter.NewLine(centerline)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)
	p.Legend.Add("centerline", line)

	if m != nil {
		var pts plotter.XYs
		for _, n := range m.Nodes {
			if strings.HasPrefix(n.Label, "Deck") || strings.HasPrefix(n.Label, "Chord") {
				pts = append(pts, plotter.XY{X: n.X / 12, Y: n.Z / 12})
			}
		}
		if len(pts) > 0 {
			scatter, err := plotter.NewScatter(pts)
			if err != nil {
				return err
			}
			scatter.GlyphStyle.Shape = draw.CircleGlyph{}
			scatter.GlyphStyle.Radius = vg.Points(1.5)
			scatter.GlyphStyle.Color = color.RGBA{R: 30, G: 100, B: 200, A: 255}
			p.Add(scatter)
			p.Legend.Add("deck nodes", scatter)
		}
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}

// ExportProfileDiagram draws the vertical profile (elevation in feet
// against station) and saves it to filename.
func ExportProfileDiagram(spec cogo.Spec, startFt, endFt float64, filename string) error {
	if err := checkExtension(filename); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Vertical Profile"
	p.X.Label.Text = "Station (ft)"
	p.Y.Label.Text = "Elevation (ft)"

	const samples = 200
	profile := make(plotter.XYs, samples)
	step := (endFt - startFt) / float64(samples-1)
	for i := 0; i < samples; i++ {
		sta := startFt + float64(i)*step
		profile[i] = plotter.XY{
			X: sta,
			Y: cogo.Elevation(sta, spec.RefElevation, spec.EntryGrade, spec.Vertical),
		}
	}

	line, err := plotter.NewLine(profile)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 180, G: 60, B: 30, A: 255}
	p.Add(line)

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

func checkExtension(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".tif", ".tiff", ".eps":
		return nil
	default:
		return fmt.Errorf("unsupported image format %q (use png, svg or pdf)", filepath.Ext(filename))
	}
}
