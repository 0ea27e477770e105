package cogo

import (
	"math"
	"sort"
)

// HorizontalPosition evaluates the horizontal alignment at a station.
// It walks the curve list (sorted ascending by PC station) maintaining a
// cursor at the last consumed station, advancing along straight tangents
// between curves and rotating around curve centers within them.
//
// Sign convention: a Right curve deflects the bearing clockwise (bearing
// decreases by the deflection angle), a Left curve counter-clockwise.
// Curves with Radius <= 0 are degenerate and treated as absent.
//
// Returns the position in feet and the bearing in radians.
func HorizontalPosition(stationFt, entryBearingDeg float64, curves []HorizontalCurve) (x, z, bearing float64) {
	bearing = entryBearingDeg * math.Pi / 180

	sorted := make([]HorizontalCurve, len(curves))
	copy(sorted, curves)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PCStation < sorted[j].PCStation })

	var cx, cz float64 // cursor position (ft)
	consumed := 0.0    // station at the cursor

	for _, c := range sorted {
		if c.Radius <= 0 {
			continue
		}
		if stationFt <= c.PCStation {
			// Query lies on the tangent before this curve.
			d := stationFt - consumed
			return cx + d*math.Cos(bearing), cz + d*math.Sin(bearing), bearing
		}

		// Advance the cursor along the tangent to the PC.
		run := c.PCStation - consumed
		cx += run * math.Cos(bearing)
		cz += run * math.Sin(bearing)
		consumed = c.PCStation

		delta := c.Deflection * math.Pi / 180
		arcLen := c.Radius * delta

		// Center lies perpendicular to the bearing at the PC.
		sign := 1.0
		if c.Direction == Right {
			sign = -1
		}
		centerX := cx + c.Radius*math.Cos(bearing+sign*math.Pi/2)
		centerZ := cz + c.Radius*math.Sin(bearing+sign*math.Pi/2)
		pcAngle := math.Atan2(cz-centerZ, cx-centerX)

		if stationFt <= consumed+arcLen {
			// Query lies within the curve: rotate the PC around the center
			// by the swept angle for the arc distance traveled.
			swept := (stationFt - consumed) / c.Radius
			angle := pcAngle + sign*swept
			x = centerX + c.Radius*math.Cos(angle)
			z = centerZ + c.Radius*math.Sin(angle)
			return x, z, bearing + sign*swept
		}

		// Consume the whole curve and continue on the exit tangent.
		angle := pcAngle + sign*delta
		cx = centerX + c.Radius*math.Cos(angle)
		cz = centerZ + c.Radius*math.Sin(angle)
		bearing += sign * delta
		consumed += arcLen
	}

	// Past the last curve: extrapolate on the final tangent.
	d := stationFt - consumed
	return cx + d*math.Cos(bearing), cz + d*math.Sin(bearing), bearing
}
