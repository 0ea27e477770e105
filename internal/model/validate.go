package model

import "fmt"

// Validate cross-checks the model document: node IDs must be unique and
// every element, bearing, load, constraint and diaphragm reference must
// resolve to an existing node; diaphragm masters must not appear in their
// own constrained set.
func (m *BridgeModel) Validate() error {
	nodeIDs := make(map[int]bool, len(m.Nodes))
	for _, n := range m.Nodes {
		if n.ID <= 0 {
			return fmt.Errorf("node id must be positive, got %d", n.ID)
		}
		if nodeIDs[n.ID] {
			return fmt.Errorf("duplicate node id %d", n.ID)
		}
		nodeIDs[n.ID] = true
	}

	matIDs := make(map[int]bool, len(m.Materials))
	for _, mat := range m.Materials {
		if matIDs[mat.ID] {
			return fmt.Errorf("duplicate material id %d", mat.ID)
		}
		matIDs[mat.ID] = true
	}

	secIDs := make(map[int]bool, len(m.Sections))
	for _, s := range m.Sections {
		if secIDs[s.ID] {
			return fmt.Errorf("duplicate section id %d", s.ID)
		}
		secIDs[s.ID] = true
		if !matIDs[s.MaterialID] {
			return fmt.Errorf("section %d references unknown material %d", s.ID, s.MaterialID)
		}
	}

	elemIDs := make(map[int]bool, len(m.Elements))
	for _, e := range m.Elements {
		if elemIDs[e.ID] {
			return fmt.Errorf("duplicate element id %d", e.ID)
		}
		elemIDs[e.ID] = true
		if !nodeIDs[e.NodeI] {
			return fmt.Errorf("element %d references unknown node %d", e.ID, e.NodeI)
		}
		if !nodeIDs[e.NodeJ] {
			return fmt.Errorf("element %d references unknown node %d", e.ID, e.NodeJ)
		}
		if !secIDs[e.SectionID] {
			return fmt.Errorf("element %d references unknown section %d", e.ID, e.SectionID)
		}
		if !matIDs[e.MaterialID] {
			return fmt.Errorf("element %d references unknown material %d", e.ID, e.MaterialID)
		}
	}

	for _, b := range m.Bearings {
		if !nodeIDs[b.NodeI] {
			return fmt.Errorf("bearing %d references unknown node %d", b.ID, b.NodeI)
		}
		if !nodeIDs[b.NodeJ] {
			return fmt.Errorf("bearing %d references unknown node %d", b.ID, b.NodeJ)
		}
	}

	for _, ld := range m.Loads {
		if !nodeIDs[ld.NodeID] {
			return fmt.Errorf("load references unknown node %d", ld.NodeID)
		}
	}

	for _, c := range m.EqualDOF {
		if !nodeIDs[c.RetainedNode] {
			return fmt.Errorf("constraint %d references unknown node %d", c.ID, c.RetainedNode)
		}
		if !nodeIDs[c.ConstrainedNode] {
			return fmt.Errorf("constraint %d references unknown node %d", c.ID, c.ConstrainedNode)
		}
		for _, dof := range c.DOFs {
			if dof < 1 || dof > 6 {
				return fmt.Errorf("constraint %d has out-of-range dof %d", c.ID, dof)
			}
		}
	}

	for _, d := range m.Diaphragms {
		if !nodeIDs[d.MasterNode] {
			return fmt.Errorf("diaphragm %d references unknown master node %d", d.ID, d.MasterNode)
		}
		for _, id := range d.ConstrainedNodes {
			if !nodeIDs[id] {
				return fmt.Errorf("diaphragm %d references unknown node %d", d.ID, id)
			}
			if id == d.MasterNode {
				return fmt.Errorf("diaphragm %d master node %d appears in its own constrained set", d.ID, id)
			}
		}
	}

	return nil
}
