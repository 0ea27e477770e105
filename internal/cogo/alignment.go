// Package cogo implements coordinate-geometry (COGO) evaluation of road
// alignments: compound horizontal circular curves and parabolic vertical
// curves, addressed by station (arc-length distance along the centerline).
//
// Conventions:
//   - Stations, radii, curve lengths and elevations are in feet.
//   - Bearings are measured in the plan (X-Z) plane from the +X axis,
//     positive counter-clockwise. Entry bearings are given in degrees.
//   - Evaluated poses (Point) are in inches with bearings in radians,
//     matching the model document units.
package cogo

import "math"

// Direction is the turning direction of a horizontal curve.
type Direction string

const (
	Left  Direction = "L"
	Right Direction = "R"
)

// HorizontalCurve is a circular curve on the horizontal alignment.
type HorizontalCurve struct {
	PCStation  float64   `json:"pcStation"`  // Point of curvature station (ft)
	Deflection float64   `json:"deflection"` // Total deflection angle (deg)
	Radius     float64   `json:"radius"`     // Curve radius (ft); <= 0 means skip
	Direction  Direction `json:"direction"`  // L or R
}

// VerticalCurve is a parabolic vertical curve at a PVI.
// Length = 0 models a sharp grade break (kink) at the PVI.
type VerticalCurve struct {
	PVIStation   float64 `json:"pviStation"`   // ft
	PVIElevation float64 `json:"pviElevation"` // ft (informational)
	ExitGrade    float64 `json:"exitGrade"`    // percent
	Length       float64 `json:"length"`       // curve length (ft)
}

// Spec describes a complete alignment.
type Spec struct {
	RefElevation  float64           `json:"refElevation"` // ft
	EntryBearing  float64           `json:"entryBearing"` // deg
	EntryGrade    float64           `json:"entryGrade"`   // percent
	Horizontal    []HorizontalCurve `json:"horizontalCurves,omitempty"`
	Vertical      []VerticalCurve   `json:"verticalCurves,omitempty"`
	ChordsPerSpan int               `json:"chordsPerSpan,omitempty"`
}

// Point is the evaluated pose at a station. Coordinates are in inches,
// bearing in radians. Y is the vertical axis.
type Point struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Bearing float64 `json:"bearing"`
}

// PointAt evaluates the full 3D pose at a station. Horizontal position and
// elevation are evaluated independently and combined; the feet-to-inches
// conversion happens here so the curve math stays in survey units.
func (s *Spec) PointAt(stationFt float64) Point {
	x, z, bearing := HorizontalPosition(stationFt, s.EntryBearing, s.Horizontal)
	y := Elevation(stationFt, s.RefElevation, s.EntryGrade, s.Vertical)
	return Point{X: x * 12, Y: y * 12, Z: z * 12, Bearing: bearing}
}

// TransverseOffset returns p moved perpendicular to its bearing by offsetIn
// inches toward the left (bearing + 90 degrees). Negative offsets move right.
func TransverseOffset(p Point, offsetIn float64) Point {
	p.X += offsetIn * math.Cos(p.Bearing+math.Pi/2)
	p.Z += offsetIn * math.Sin(p.Bearing+math.Pi/2)
	return p
}

// InteriorStations returns numChords-1 evenly spaced stations strictly
// between start and end, used to subdivide a span into straight chords.
// Returns nil for numChords <= 1 (no interior subdivision).
func InteriorStations(startFt, endFt float64, numChords int) []float64 {
	if numChords <= 1 {
		return nil
	}
	step := (endFt - startFt) / float64(numChords)
	stations := make([]float64, 0, numChords-1)
	for i := 1; i < numChords; i++ {
		stations = append(stations, startFt+float64(i)*step)
	}
	return stations
}
