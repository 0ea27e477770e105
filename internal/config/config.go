// Package config loads bridge build parameters from files. Two formats
// are supported: plain JSON (decoded straight into bridge.Params) and HCL
// for hand-written parameter files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/alexiusacademia/gobridge/internal/aashto"
	"github.com/alexiusacademia/gobridge/internal/bridge"
	"github.com/alexiusacademia/gobridge/internal/catalog"
	"github.com/alexiusacademia/gobridge/internal/cogo"
)

// Load reads a parameter file (.json or .hcl), applies defaults for
// omitted fields and validates the result.
func Load(path string) (*bridge.Params, error) {
	var (
		params *bridge.Params
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		params, err = loadHCL(path)
	case ".json":
		params, err = loadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported parameter file extension %q (want .json or .hcl)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	applyDefaults(params)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

func loadJSON(path string) (*bridge.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var params bridge.Params
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &params, nil
}

// applyDefaults substitutes conventional values for omitted fields.
func applyDefaults(p *bridge.Params) {
	if p.GirderType == "" {
		p.GirderType = catalog.Steel
	}
	if p.Isolation == "" {
		p.Isolation = bridge.NoIsolation
	}
	if p.ColumnsPerBent == 0 {
		p.ColumnsPerBent = 2
	}
	if p.Loads.LiveLoadPercent == 0 {
		p.Loads.LiveLoadPercent = 100
	}
}

// HCL parameter file schema.

type hclFile struct {
	Name            string        `hcl:"name,optional"`
	Spans           []float64     `hcl:"spans"`
	Girders         int           `hcl:"girders"`
	GirderSpacing   float64       `hcl:"girder_spacing"`
	DeckOverhang    float64       `hcl:"deck_overhang,optional"`
	GirderType      string        `hcl:"girder_type,optional"`
	PierTypes       []string      `hcl:"pier_types,optional"`
	GuidedExpansion bool          `hcl:"guided_expansion,optional"`
	ColumnsPerBent  int           `hcl:"columns_per_bent,optional"`
	ColumnHeights   []float64     `hcl:"column_heights,optional"`
	Isolation       string        `hcl:"isolation,optional"`
	Loads           *hclLoads     `hcl:"loads,block"`
	Alignment       *hclAlignment `hcl:"alignment,block"`
}

type hclLoads struct {
	OverlayPSF       float64 `hcl:"overlay_psf,optional"`
	CrossFramesPSF   float64 `hcl:"cross_frames_psf,optional"`
	UtilitiesPSF     float64 `hcl:"utilities_psf,optional"`
	FutureWearingPSF float64 `hcl:"future_wearing_psf,optional"`
	MiscPSF          float64 `hcl:"misc_psf,optional"`
	BarrierKLF       float64 `hcl:"barrier_klf,optional"`
	LiveLoadPercent  float64 `hcl:"live_load_percent,optional"`
}

type hclAlignment struct {
	RefElevation  float64          `hcl:"ref_elevation,optional"`
	EntryBearing  float64          `hcl:"entry_bearing,optional"`
	EntryGrade    float64          `hcl:"entry_grade,optional"`
	ChordsPerSpan int              `hcl:"chords_per_span,optional"`
	Horizontal    []hclHorizontal  `hcl:"horizontal_curve,block"`
	Vertical      []hclVertical    `hcl:"vertical_curve,block"`
}

type hclHorizontal struct {
	PCStation  float64 `hcl:"pc_station"`
	Deflection float64 `hcl:"deflection"`
	Radius     float64 `hcl:"radius"`
	Direction  string  `hcl:"direction"`
}

type hclVertical struct {
	PVIStation   float64 `hcl:"pvi_station"`
	PVIElevation float64 `hcl:"pvi_elevation,optional"`
	ExitGrade    float64 `hcl:"exit_grade"`
	Length       float64 `hcl:"length,optional"`
}

// parseDirection accepts "L", "R", "left" or "right" in any case.
func parseDirection(s string) cogo.Direction {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(s)), "R") {
		return cogo.Right
	}
	return cogo.Left
}

func loadHCL(path string) (*bridge.Params, error) {
	var file hclFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	params := &bridge.Params{
		Name:            file.Name,
		SpanLengthsFt:   file.Spans,
		NumGirders:      file.Girders,
		GirderSpacingFt: file.GirderSpacing,
		DeckOverhangFt:  file.DeckOverhang,
		GirderType:      catalog.GirderType(file.GirderType),
		GuidedExpansion: file.GuidedExpansion,
		ColumnsPerBent:  file.ColumnsPerBent,
		ColumnHeightsFt: file.ColumnHeights,
		Isolation:       bridge.Isolation(file.Isolation),
	}
	for _, t := range file.PierTypes {
		params.PierTypes = append(params.PierTypes, bridge.PierType(strings.ToUpper(t)))
	}

	if file.Loads != nil {
		params.Loads = bridge.LoadParams{
			Surface: aashto.DeadLoadPSF{
				Overlay:       file.Loads.OverlayPSF,
				CrossFrames:   file.Loads.CrossFramesPSF,
				Utilities:     file.Loads.UtilitiesPSF,
				FutureWearing: file.Loads.FutureWearingPSF,
				Misc:          file.Loads.MiscPSF,
			},
			BarrierKLF:      file.Loads.BarrierKLF,
			LiveLoadPercent: file.Loads.LiveLoadPercent,
		}
	}

	if file.Alignment != nil {
		spec := &cogo.Spec{
			RefElevation:  file.Alignment.RefElevation,
			EntryBearing:  file.Alignment.EntryBearing,
			EntryGrade:    file.Alignment.EntryGrade,
			ChordsPerSpan: file.Alignment.ChordsPerSpan,
		}
		for _, c := range file.Alignment.Horizontal {
			spec.Horizontal = append(spec.Horizontal, cogo.HorizontalCurve{
				PCStation:  c.PCStation,
				Deflection: c.Deflection,
				Radius:     c.Radius,
				Direction:  parseDirection(c.Direction),
			})
		}
		for _, c := range file.Alignment.Vertical {
			spec.Vertical = append(spec.Vertical, cogo.VerticalCurve{
				PVIStation:   c.PVIStation,
				PVIElevation: c.PVIElevation,
				ExitGrade:    c.ExitGrade,
				Length:       c.Length,
			})
		}
		params.Alignment = spec
	}

	return params, nil
}
