package cogo

import "sort"

// Elevation evaluates the vertical alignment at a station and returns the
// elevation in feet.
//
// With no vertical curves the profile is linear on the entry grade. With
// curves (sorted by PVI station) the profile is walked segment by segment:
// a PVI with Length = 0 is a sharp grade break at the PVI station; a PVI
// with Length > 0 places a parabola between PVC = PVI - L/2 and
// PVT = PVI + L/2 with tangent-matched endpoints, so the profile is
// continuous at PVC and PVT by construction. Past the last PVI the profile
// extrapolates on the final exit grade.
func Elevation(stationFt, refElevFt, entryGradePct float64, curves []VerticalCurve) float64 {
	grade := entryGradePct / 100

	sorted := make([]VerticalCurve, len(curves))
	copy(sorted, curves)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PVIStation < sorted[j].PVIStation })

	elev := refElevFt
	cursor := 0.0 // station at elev

	for _, c := range sorted {
		exitGrade := c.ExitGrade / 100

		if c.Length <= 0 {
			// Sharp break: tangent up to the PVI, then the grade updates.
			if stationFt <= c.PVIStation {
				return elev + (stationFt-cursor)*grade
			}
			elev += (c.PVIStation - cursor) * grade
			cursor = c.PVIStation
			grade = exitGrade
			continue
		}

		pvc := c.PVIStation - c.Length/2
		pvt := c.PVIStation + c.Length/2

		if stationFt <= pvc {
			return elev + (stationFt-cursor)*grade
		}

		elevPVC := elev + (pvc-cursor)*grade
		if stationFt <= pvt {
			// Parabolic correction on top of the incoming tangent.
			x := stationFt - pvc
			return elevPVC + grade*x + (exitGrade-grade)/(2*c.Length)*x*x
		}

		// Elevation at PVT equals the mean-grade rise over the curve.
		elev = elevPVC + (grade+exitGrade)/2*c.Length
		cursor = pvt
		grade = exitGrade
	}

	return elev + (stationFt-cursor)*grade
}
