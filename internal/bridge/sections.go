package bridge

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/catalog"
	"github.com/alexiusacademia/gobridge/internal/model"
)

// Material and section tags of the emitted document.
const (
	matSteel    = 1
	matConcrete = 2

	secGirder    = 1
	secCrossBeam = 2
	secPierCap   = 3
	secColumn    = 4
)

// sectionPlan is the immutable output of the section selection phase.
type sectionPlan struct {
	materials []model.Material
	sections  []model.Section

	girderMaterial int
	crossMaterial  int

	girderDepth    float64 // in
	columnDiameter float64 // in
}

// planSections selects the governing sections: girder by the longest span,
// column by the tallest pier, pier cap from girder spacing and column
// diameter, cross beam fixed per girder type (steel bridges use a rolled
// channel, concrete bridges reuse the cap section).
func planSections(p *Params, geo geometryPlan) sectionPlan {
	longestSpan := 0.0
	for _, s := range p.SpanLengthsFt {
		if s > longestSpan {
			longestSpan = s
		}
	}
	girder := catalog.GirderForSpan(longestSpan, p.GirderType)

	plan := sectionPlan{
		materials: []model.Material{
			{ID: matSteel, Name: "Structural steel", E: catalog.ESteel},
			{ID: matConcrete, Name: fmt.Sprintf("Concrete f'c %.0f ksi", catalog.FcGirder), E: catalog.ConcreteE(catalog.FcGirder)},
		},
		girderMaterial: matSteel,
		crossMaterial:  matSteel,
		girderDepth:    girder.Depth,
	}
	if p.GirderType == catalog.Concrete {
		plan.girderMaterial = matConcrete
		plan.crossMaterial = matConcrete
	}

	plan.sections = append(plan.sections, model.Section{
		ID:         secGirder,
		Name:       girder.Name,
		Area:       girder.Area,
		Ix:         girder.Ix,
		Iy:         girder.Iy,
		Depth:      girder.Depth,
		MaterialID: plan.girderMaterial,
	})

	// Cap geometry is needed for concrete cross beams even on single-span
	// bridges, so derive it unconditionally.
	tallest := 0.0
	for _, h := range geo.colHeights {
		if h > tallest {
			tallest = h
		}
	}
	column := catalog.ColumnForHeight(tallest / 12)
	plan.columnDiameter = column.Diameter
	cap := catalog.PierCapSection(p.GirderSpacingFt*12, column.Diameter)

	cross := catalog.CrossFrameSteel
	if p.GirderType == catalog.Concrete {
		cross = cap
		cross.Name = "Cast-in-place diaphragm"
	}
	plan.sections = append(plan.sections, model.Section{
		ID:         secCrossBeam,
		Name:       cross.Name,
		Area:       cross.Area,
		Ix:         cross.Ix,
		Iy:         cross.Iy,
		Depth:      cross.Depth,
		MaterialID: plan.crossMaterial,
	})

	if p.NumPiers() > 0 {
		colArea, colIx, _ := catalog.CircularProperties(column.Diameter)
		plan.sections = append(plan.sections,
			model.Section{
				ID:         secPierCap,
				Name:       cap.Name,
				Area:       cap.Area,
				Ix:         cap.Ix,
				Iy:         cap.Iy,
				Depth:      cap.Depth,
				MaterialID: matConcrete,
			},
			model.Section{
				ID:         secColumn,
				Name:       fmt.Sprintf("Circular column %.0f in", column.Diameter),
				Area:       colArea,
				Ix:         colIx,
				Iy:         colIx,
				Depth:      column.Diameter,
				MaterialID: matConcrete,
			},
		)
	}

	return plan
}
