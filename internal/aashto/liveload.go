// Package aashto implements the AASHTO LRFD lane-count, multiple-presence
// and tributary load-distribution rules used to assign gravity loads to
// deck nodes.
package aashto

import "math"

// Live load constants
// AASHTO LRFD 3.6.1.2.4 design lane load
const (
	// LaneLoadKLFPerLane is the HL-93 design lane load (kip/ft per lane)
	LaneLoadKLFPerLane = 0.64

	// MinRoadwayForLaneFt is the narrowest roadway carrying a design lane
	MinRoadwayForLaneFt = 20.0

	// DesignLaneWidthFt is the width of one design lane
	DesignLaneWidthFt = 12.0
)

// LaneCount returns the number of design lanes for a roadway width.
// AASHTO LRFD 3.6.1.1.1: integer part of width/12, with a single lane for
// roadways between 20 and 24 ft. Widths under 20 ft carry no design lane.
func LaneCount(roadwayWidthFt float64) int {
	lanes := int(math.Floor(roadwayWidthFt / DesignLaneWidthFt))
	if lanes < 1 {
		if roadwayWidthFt >= MinRoadwayForLaneFt {
			return 1
		}
		return 0
	}
	return lanes
}

// MultiplePresenceFactor returns the AASHTO LRFD Table 3.6.1.1.2-1 factor
// for the number of loaded lanes.
func MultiplePresenceFactor(lanes int) float64 {
	switch {
	case lanes <= 1:
		return 1.20
	case lanes == 2:
		return 1.00
	case lanes == 3:
		return 0.85
	default:
		return 0.65
	}
}

// LaneLoadKLF returns the total design lane load intensity (kip/ft) across
// the full roadway width: 0.64 klf per lane times lanes times the multiple
// presence factor.
func LaneLoadKLF(roadwayWidthFt float64) float64 {
	lanes := LaneCount(roadwayWidthFt)
	if lanes == 0 {
		return 0
	}
	return LaneLoadKLFPerLane * float64(lanes) * MultiplePresenceFactor(lanes)
}

// NodeLiveLoad returns the vertical live load (kips) at one girder node:
// the roadway lane load over the tributary length, scaled by the applied
// live load percentage and apportioned equally across the girder lines at
// the cross-section.
func NodeLiveLoad(roadwayWidthFt, tributaryLengthFt, liveLoadPercent float64, numGirders int) float64 {
	if numGirders < 1 {
		numGirders = 1
	}
	return LaneLoadKLF(roadwayWidthFt) * tributaryLengthFt * (liveLoadPercent / 100) / float64(numGirders)
}
