// Package catalog holds the tiered cross-section tables used to assign
// girder, column and cap sections from governing span lengths and column
// heights. Tables are ordered ascending by threshold; lookups return the
// first tier whose threshold covers the (clamped) input.
package catalog

import "math"

// GirderType selects the superstructure material family.
type GirderType string

const (
	Steel    GirderType = "steel"
	Concrete GirderType = "concrete"
)

// GirderSection is one tier of a girder lookup table.
// Dimensions in inches, properties in inch units.
type GirderSection struct {
	Name            string
	MaxSpanFt       float64 // governs up to this span length
	Area            float64 // in²
	Ix              float64 // in⁴ strong axis
	Iy              float64 // in⁴ weak axis
	Depth           float64 // in
	FlangeWidth     float64 // in
	FlangeThickness float64 // in
	WebThickness    float64 // in
}

// ColumnSection is one tier of the circular column table.
type ColumnSection struct {
	MaxHeightFt float64
	Diameter    float64 // in
}

// GirderForSpan returns the girder tier governing the given span length.
// Spans outside the table range clamp to the lightest/heaviest tier.
func GirderForSpan(spanFt float64, girderType GirderType) GirderSection {
	table := SteelGirders
	if girderType == Concrete {
		table = ConcreteGirders
	}
	for _, tier := range table {
		if spanFt <= tier.MaxSpanFt {
			return tier
		}
	}
	// Defensive fallback: heaviest tier.
	return table[len(table)-1]
}

// ColumnForHeight returns the circular column tier for a column height.
func ColumnForHeight(heightFt float64) ColumnSection {
	for _, tier := range ConcreteColumns {
		if heightFt <= tier.MaxHeightFt {
			return tier
		}
	}
	return ConcreteColumns[len(ConcreteColumns)-1]
}

// CircularProperties returns area, moment of inertia and plastic section
// modulus of a solid circular section of diameter d (in).
func CircularProperties(d float64) (area, inertia, plasticModulus float64) {
	area = math.Pi * d * d / 4
	inertia = math.Pi * math.Pow(d, 4) / 64
	plasticModulus = math.Pow(d, 3) / 6
	return
}

// RectangularProperties returns area, strong-axis moment of inertia and
// plastic section modulus of a rectangular section b wide by h deep (in).
func RectangularProperties(b, h float64) (area, inertia, plasticModulus float64) {
	area = b * h
	inertia = b * math.Pow(h, 3) / 12
	plasticModulus = b * h * h / 4
	return
}

// PierCapSection derives the rectangular pier cap from the girder spacing
// and column diameter: the cap must seat the bearings between girder lines
// and wrap the column. Width and depth in inches.
func PierCapSection(girderSpacingIn, columnDiameterIn float64) GirderSection {
	depth := math.Max(42, columnDiameterIn+6)
	width := math.Max(48, girderSpacingIn/2)
	area, ix, _ := RectangularProperties(width, depth)
	_, iy, _ := RectangularProperties(depth, width)
	return GirderSection{
		Name:  "Cast-in-place cap",
		Area:  area,
		Ix:    ix,
		Iy:    iy,
		Depth: depth,
	}
}

// CrossFrameSteel is the rolled channel used for intermediate and support
// cross-frames on steel bridges. Concrete bridges reuse the cap section.
var CrossFrameSteel = GirderSection{
	Name:            "MC18x42.7",
	Area:            12.6,
	Ix:              554,
	Iy:              14.4,
	Depth:           18,
	FlangeWidth:     3.95,
	FlangeThickness: 0.625,
	WebThickness:    0.45,
}
