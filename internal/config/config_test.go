package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobridge/internal/bridge"
	"github.com/alexiusacademia/gobridge/internal/catalog"
	"github.com/alexiusacademia/gobridge/internal/cogo"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const hclParams = `
name           = "River crossing"
spans          = [120, 150, 120]
girders        = 6
girder_spacing = 8
deck_overhang  = 3
girder_type    = "steel"
pier_types     = ["fix", "exp"]
column_heights = [25, 30]
isolation      = "none"

loads {
  overlay_psf       = 25
  cross_frames_psf  = 10
  utilities_psf     = 5
  future_wearing_psf = 25
  misc_psf          = 5
  barrier_klf       = 0.43
  live_load_percent = 100
}

alignment {
  entry_bearing   = 10
  entry_grade     = 1.5
  chords_per_span = 4

  horizontal_curve {
    pc_station = 100
    deflection = 20
    radius     = 800
    direction  = "right"
  }

  vertical_curve {
    pvi_station = 195
    exit_grade  = -1.5
    length      = 150
  }
}
`

const jsonParams = `{
  "name": "River crossing",
  "spans": [120, 150, 120],
  "girders": 6,
  "girderSpacing": 8,
  "deckOverhang": 3,
  "girderType": "steel",
  "pierTypes": ["FIX", "EXP"],
  "columnHeights": [25, 30],
  "isolation": "none",
  "loads": {
    "surface": {
      "overlayPsf": 25,
      "crossFramesPsf": 10,
      "utilitiesPsf": 5,
      "futureWearingPsf": 25,
      "miscPsf": 5
    },
    "barrierKlf": 0.43,
    "liveLoadPercent": 100
  },
  "alignment": {
    "entryBearing": 10,
    "entryGrade": 1.5,
    "chordsPerSpan": 4,
    "horizontalCurves": [
      {"pcStation": 100, "deflection": 20, "radius": 800, "direction": "R"}
    ],
    "verticalCurves": [
      {"pviStation": 195, "exitGrade": -1.5, "length": 150}
    ]
  }
}`

func TestLoadHCLAndJSONAgree(t *testing.T) {
	fromHCL, err := Load(writeTemp(t, "bridge.hcl", hclParams))
	require.NoError(t, err)
	fromJSON, err := Load(writeTemp(t, "bridge.json", jsonParams))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromHCL)
}

func TestLoadHCL(t *testing.T) {
	p, err := Load(writeTemp(t, "bridge.hcl", hclParams))
	require.NoError(t, err)

	assert.Equal(t, "River crossing", p.Name)
	assert.Equal(t, []float64{120, 150, 120}, p.SpanLengthsFt)
	assert.Equal(t, 6, p.NumGirders)
	assert.Equal(t, catalog.Steel, p.GirderType)
	assert.Equal(t, []bridge.PierType{bridge.Fix, bridge.Exp}, p.PierTypes)
	assert.Equal(t, bridge.NoIsolation, p.Isolation)
	assert.InDelta(t, 0.43, p.Loads.BarrierKLF, 1e-9)
	assert.InDelta(t, 70.0, p.Loads.Surface.Total(), 1e-9)

	require.NotNil(t, p.Alignment)
	assert.Equal(t, 4, p.Alignment.ChordsPerSpan)
	require.Len(t, p.Alignment.Horizontal, 1)
	assert.Equal(t, cogo.Right, p.Alignment.Horizontal[0].Direction)
	require.Len(t, p.Alignment.Vertical, 1)
	assert.InDelta(t, -1.5, p.Alignment.Vertical[0].ExitGrade, 1e-9)

	// Omitted columns_per_bent falls back to the default bent.
	assert.Equal(t, 2, p.ColumnsPerBent)
}

func TestLoadAppliesDefaults(t *testing.T) {
	p, err := Load(writeTemp(t, "minimal.hcl", `
spans          = [100]
girders        = 4
girder_spacing = 9
`))
	require.NoError(t, err)

	assert.Equal(t, catalog.Steel, p.GirderType)
	assert.Equal(t, bridge.NoIsolation, p.Isolation)
	assert.Equal(t, 2, p.ColumnsPerBent)
	assert.InDelta(t, 100.0, p.Loads.LiveLoadPercent, 1e-9)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load(writeTemp(t, "bridge.yaml", "spans: [100]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported parameter file extension")
}

func TestLoadRejectsInvalidParams(t *testing.T) {
	_, err := Load(writeTemp(t, "bad.hcl", `
spans          = []
girders        = 4
girder_spacing = 9
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one span")
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, cogo.Right, parseDirection("R"))
	assert.Equal(t, cogo.Right, parseDirection("right"))
	assert.Equal(t, cogo.Right, parseDirection(" Rt "))
	assert.Equal(t, cogo.Left, parseDirection("L"))
	assert.Equal(t, cogo.Left, parseDirection("left"))
}
