// Package model defines the structural model document emitted by the
// bridge generator and consumed by the external viewer/solver service.
//
// Units: geometry in inches, forces in kips, stiffness in kip-in.
// DOF order per node: [Tx, Ty, Tz, Rx, Ry, Rz] with Y vertical; a restraint
// flag of true means the DOF is fixed.
package model

import (
	"encoding/json"
	"os"
)

// Restraint is the 6-DOF boundary condition tuple of a node.
type Restraint [6]bool

// Restraint presets
var (
	// Fixed restrains all six DOFs
	Fixed = Restraint{true, true, true, true, true, true}

	// Free leaves all six DOFs unrestrained
	Free = Restraint{}

	// Roller restrains vertical and transverse translation only,
	// used at conventional abutment seats
	Roller = Restraint{false, true, true, false, false, false}
)

// Node is a structural node. Coordinates in inches.
type Node struct {
	ID        int       `json:"id"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Z         float64   `json:"z"`
	Restraint Restraint `json:"restraint"`
	Label     string    `json:"label,omitempty"`
}

// ElementKind classifies a frame element.
type ElementKind string

const (
	Girder    ElementKind = "girder"
	CrossBeam ElementKind = "crossBeam"
	PierCap   ElementKind = "pierCap"
	Column    ElementKind = "column"
)

// Element is a two-node frame element.
type Element struct {
	ID         int         `json:"id"`
	Kind       ElementKind `json:"kind"`
	NodeI      int         `json:"nodeI"`
	NodeJ      int         `json:"nodeJ"`
	SectionID  int         `json:"sectionId"`
	MaterialID int         `json:"materialId"`
	Label      string      `json:"label,omitempty"`
}

// FrictionSurface describes one sliding surface of a triple friction
// pendulum isolator (velocity-dependent friction model).
type FrictionSurface struct {
	MuSlow    float64 `json:"muSlow"`
	MuFast    float64 `json:"muFast"`
	TransRate float64 `json:"transRate"`
}

// Bearing is a triple friction pendulum isolation bearing between a
// substructure node (I) and a superstructure node (J).
type Bearing struct {
	ID                int                `json:"id"`
	NodeI             int                `json:"nodeI"`
	NodeJ             int                `json:"nodeJ"`
	Surfaces          [4]FrictionSurface `json:"surfaces"`
	Radii             [3]float64         `json:"radii"`          // in
	DispCapacities    [3]float64         `json:"dispCapacities"` // in
	Weight            float64            `json:"weight"`         // kips
	YieldDisplacement float64            `json:"yieldDisplacement"`
	VerticalStiffness float64            `json:"vertStiffness"` // kip/in
	Tolerance         float64            `json:"tol"`
}

// NodalLoad is a static force applied at a node (kips).
type NodalLoad struct {
	NodeID int     `json:"nodeId"`
	FX     float64 `json:"fx"`
	FY     float64 `json:"fy"`
	FZ     float64 `json:"fz"`
}

// EqualDOF ties the listed DOFs (1-based indices into the DOF order) of the
// constrained node to the retained node.
type EqualDOF struct {
	ID              int   `json:"id"`
	RetainedNode    int   `json:"retainedNode"`
	ConstrainedNode int   `json:"constrainedNode"`
	DOFs            []int `json:"dofs"`
}

// RigidDiaphragm makes the constrained nodes move as a rigid body in the
// plane normal to Axis (0=X, 1=Y, 2=Z), driven by the master node.
type RigidDiaphragm struct {
	ID               int   `json:"id"`
	MasterNode       int   `json:"masterNode"`
	ConstrainedNodes []int `json:"constrainedNodes"`
	Axis             int   `json:"axis"`
}

// Section is an immutable catalog row referenced by elements.
type Section struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Area       float64 `json:"area"` // in²
	Ix         float64 `json:"Ix"`   // in⁴
	Iy         float64 `json:"Iy"`   // in⁴
	Depth      float64 `json:"depth,omitempty"`
	MaterialID int     `json:"materialId"`
}

// Material is an immutable elastic material row.
type Material struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	E    float64 `json:"E"` // ksi
}

// Info is the model metadata block.
type Info struct {
	Name  string `json:"name"`
	Units string `json:"units"`
}

// BridgeModel is the complete generated model document.
type BridgeModel struct {
	Info       Info             `json:"modelInfo"`
	Nodes      []Node           `json:"nodes"`
	Materials  []Material       `json:"materials"`
	Sections   []Section        `json:"sections"`
	Elements   []Element        `json:"elements"`
	Bearings   []Bearing        `json:"bearings,omitempty"`
	Loads      []NodalLoad      `json:"loads"`
	EqualDOF   []EqualDOF       `json:"equalDofConstraints,omitempty"`
	Diaphragms []RigidDiaphragm `json:"rigidDiaphragms,omitempty"`
}

// SaveToFile writes the model document as indented JSON.
func (m *BridgeModel) SaveToFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads and validates a model document from a JSON file.
func LoadFromFile(path string) (*BridgeModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m BridgeModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}
