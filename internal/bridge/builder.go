package bridge

import (
	"fmt"

	"github.com/alexiusacademia/gobridge/internal/model"
)

// Options control build behavior that changes the emitted model.
type Options struct {
	// AutoStabilize applies the planned stability correction (pier
	// promotion or longitudinal anchor) when the configured topology has
	// a longitudinal mechanism. When false the model is built exactly as
	// configured and the mechanism is reported in the result.
	AutoStabilize bool
}

// BuildResult carries the generated model together with the stability
// outcome and any corrections applied during the build.
type BuildResult struct {
	Model     *model.BridgeModel
	Stability Stability
	Notes     []string
}

// Build runs the full generation pipeline and returns the model document.
// The pipeline is a fixed sequence of phases, each consuming only the
// outputs of the phases before it: geometry, sections, nodes, elements,
// loads, bearings, constraints, diaphragms.
func Build(p *Params, opts Options) (*BuildResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	result := &BuildResult{Stability: CheckStability(p)}

	var fix *stabilization
	if !result.Stability.Stable && opts.AutoStabilize {
		fix = planStabilization(p)
		if fix != nil {
			result.Notes = append(result.Notes, fix.note)
		}
	}

	geo := planGeometry(p)
	sec := planSections(p, geo)
	nodes := buildNodes(p, geo, sec)
	elements := buildElements(p, nodes, sec)
	loads, gravity := buildLoads(p, nodes)

	name := p.Name
	if name == "" {
		name = fmt.Sprintf("%d-span bridge", len(p.SpanLengthsFt))
	}

	m := &model.BridgeModel{
		Info:       model.Info{Name: name, Units: "kip-in"},
		Nodes:      nodes.nodes,
		Materials:  sec.materials,
		Sections:   sec.sections,
		Elements:   elements,
		Loads:      loads,
		Bearings:   buildBearings(p, nodes, gravity),
		EqualDOF:   buildConstraints(p, nodes, fix),
		Diaphragms: buildDiaphragm(nodes),
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("generated model failed validation: %w", err)
	}

	result.Model = m
	return result, nil
}
