package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModel() *BridgeModel {
	return &BridgeModel{
		Info: Info{Name: "Test bridge", Units: "kip-in"},
		Nodes: []Node{
			{ID: 1, X: 0, Y: 240, Z: 0, Restraint: Roller},
			{ID: 2, X: 1200, Y: 240, Z: 0, Restraint: Roller},
			{ID: 3, X: 600, Y: 0, Z: 0, Restraint: Fixed},
		},
		Materials: []Material{{ID: 1, Name: "Steel", E: 29000}},
		Sections:  []Section{{ID: 1, Name: "PG48", Area: 36, Ix: 16200, Iy: 343, MaterialID: 1}},
		Elements: []Element{
			{ID: 1, Kind: Girder, NodeI: 1, NodeJ: 2, SectionID: 1, MaterialID: 1},
		},
		Loads: []NodalLoad{{NodeID: 1, FY: -120}},
		EqualDOF: []EqualDOF{
			{ID: 1, RetainedNode: 3, ConstrainedNode: 1, DOFs: []int{1, 2, 3}},
		},
		Diaphragms: []RigidDiaphragm{
			{ID: 1, MasterNode: 1, ConstrainedNodes: []int{2}, Axis: 1},
		},
	}
}

func TestValidateAcceptsWellFormedModel(t *testing.T) {
	require.NoError(t, validModel().Validate())
}

func TestValidateRejectsMalformedModels(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BridgeModel)
		errSub string
	}{
		{
			"duplicate node id",
			func(m *BridgeModel) { m.Nodes[1].ID = 1 },
			"duplicate node id",
		},
		{
			"non-positive node id",
			func(m *BridgeModel) { m.Nodes[0].ID = 0 },
			"must be positive",
		},
		{
			"element with dangling node",
			func(m *BridgeModel) { m.Elements[0].NodeJ = 99 },
			"unknown node",
		},
		{
			"element with dangling section",
			func(m *BridgeModel) { m.Elements[0].SectionID = 7 },
			"unknown section",
		},
		{
			"section with dangling material",
			func(m *BridgeModel) { m.Sections[0].MaterialID = 9 },
			"unknown material",
		},
		{
			"load on missing node",
			func(m *BridgeModel) { m.Loads[0].NodeID = 42 },
			"unknown node",
		},
		{
			"constraint dof out of range",
			func(m *BridgeModel) { m.EqualDOF[0].DOFs = []int{0} },
			"out-of-range dof",
		},
		{
			"bearing with dangling node",
			func(m *BridgeModel) {
				m.Bearings = []Bearing{{ID: 1, NodeI: 3, NodeJ: 88}}
			},
			"unknown node",
		},
		{
			"diaphragm master constrains itself",
			func(m *BridgeModel) { m.Diaphragms[0].ConstrainedNodes = []int{1} },
			"its own constrained set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validModel()
			tt.mutate(m)
			err := m.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	m := validModel()
	m.Bearings = []Bearing{
		{
			ID: 1, NodeI: 3, NodeJ: 1,
			Surfaces: [4]FrictionSurface{
				{MuSlow: 0.012, MuFast: 0.018, TransRate: 100},
				{MuSlow: 0.012, MuFast: 0.018, TransRate: 100},
				{MuSlow: 0.052, MuFast: 0.12, TransRate: 100},
				{MuSlow: 0.052, MuFast: 0.12, TransRate: 100},
			},
			Radii:             [3]float64{3, 40, 3},
			DispCapacities:    [3]float64{1, 15, 1},
			Weight:            250,
			YieldDisplacement: 0.04,
			VerticalStiffness: 25000,
			Tolerance:         1e-5,
		},
	}

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, m.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, m.Info, loaded.Info)
	assert.Equal(t, m.Nodes, loaded.Nodes)
	assert.Equal(t, m.Elements, loaded.Elements)
	assert.Equal(t, m.Bearings, loaded.Bearings)
	assert.Equal(t, m.EqualDOF, loaded.EqualDOF)
	assert.Equal(t, m.Diaphragms, loaded.Diaphragms)
}

func TestLoadFromFileRejectsInvalidDocument(t *testing.T) {
	m := validModel()
	m.Elements[0].NodeJ = 404

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, m.SaveToFile(path))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown node")
}
