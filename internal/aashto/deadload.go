package aashto

// DeadLoadPSF collects the superimposed dead load surface components
// applied over the deck tributary area (psf).
type DeadLoadPSF struct {
	Overlay       float64 `json:"overlayPsf"`
	CrossFrames   float64 `json:"crossFramesPsf"`
	Utilities     float64 `json:"utilitiesPsf"`
	FutureWearing float64 `json:"futureWearingPsf"`
	Misc          float64 `json:"miscPsf"`
}

// Total returns the summed surface load (psf).
func (d DeadLoadPSF) Total() float64 {
	return d.Overlay + d.CrossFrames + d.Utilities + d.FutureWearing + d.Misc
}

// TributaryLength returns the deck length (ft) tributary to a support line:
// half the adjacent span at abutments, the average of the two adjacent
// spans at piers.
func TributaryLength(spansFt []float64, line int) float64 {
	n := len(spansFt)
	if n == 0 {
		return 0
	}
	switch {
	case line <= 0:
		return spansFt[0] / 2
	case line >= n:
		return spansFt[n-1] / 2
	default:
		return (spansFt[line-1] + spansFt[line]) / 2
	}
}

// TributaryWidth returns the deck width (ft) tributary to a girder line.
// Exterior girders take half the girder spacing plus the deck overhang;
// interior girders take a full spacing. A single-girder section takes the
// whole roadway width.
func TributaryWidth(girder, numGirders int, spacingFt, overhangFt float64) float64 {
	if numGirders <= 1 {
		return spacingFt + 2*overhangFt
	}
	if girder == 0 || girder == numGirders-1 {
		return spacingFt/2 + overhangFt
	}
	return spacingFt
}

// NodeDeadLoad returns the vertical dead load (kips) at one girder node:
// the surface components over the tributary area plus, on exterior girders
// only, the barrier line load over the tributary length.
func NodeDeadLoad(components DeadLoadPSF, tributaryWidthFt, tributaryLengthFt, barrierKLF float64, exterior bool) float64 {
	load := components.Total() / 1000 * tributaryWidthFt * tributaryLengthFt
	if exterior {
		load += barrierKLF * tributaryLengthFt
	}
	return load
}
