// Package report exports a generated bridge model to an Excel workbook
// for review: a summary sheet plus one sheet per model table.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobridge/internal/model"
)

// Export writes the model document to an .xlsx workbook at path.
func Export(m *model.BridgeModel, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummary(f, m); err != nil {
		return err
	}
	if err := writeNodes(f, m); err != nil {
		return err
	}
	if err := writeElements(f, m); err != nil {
		return err
	}
	if err := writeLoads(f, m); err != nil {
		return err
	}
	if len(m.Bearings) > 0 {
		if err := writeBearings(f, m); err != nil {
			return err
		}
	}
	if len(m.EqualDOF) > 0 {
		if err := writeConstraints(f, m); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, m *model.BridgeModel) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Model", m.Info.Name},
		{"Units", m.Info.Units},
		{"Nodes", len(m.Nodes)},
		{"Elements", len(m.Elements)},
		{"Loads", len(m.Loads)},
		{"Bearings", len(m.Bearings)},
		{"Equal-DOF constraints", len(m.EqualDOF)},
		{"Rigid diaphragms", len(m.Diaphragms)},
		{"Sections", len(m.Sections)},
		{"Materials", len(m.Materials)},
	}
	for i, r := range rows {
		if err := writeRow(f, sheet, i+1, r); err != nil {
			return err
		}
	}
	return nil
}

func writeNodes(f *excelize.File, m *model.BridgeModel) error {
	const sheet = "Nodes"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, []string{"ID", "X (in)", "Y (in)", "Z (in)", "Restraint", "Label"}); err != nil {
		return err
	}
	for i, n := range m.Nodes {
		if err := writeRow(f, sheet, i+2, []interface{}{
			n.ID, n.X, n.Y, n.Z, restraintString(n.Restraint), n.Label,
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeElements(f *excelize.File, m *model.BridgeModel) error {
	const sheet = "Elements"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, []string{"ID", "Kind", "Node I", "Node J", "Section", "Material", "Label"}); err != nil {
		return err
	}
	for i, e := range m.Elements {
		if err := writeRow(f, sheet, i+2, []interface{}{
			e.ID, string(e.Kind), e.NodeI, e.NodeJ, e.SectionID, e.MaterialID, e.Label,
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeLoads(f *excelize.File, m *model.BridgeModel) error {
	const sheet = "Loads"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, []string{"Node", "FX (kip)", "FY (kip)", "FZ (kip)"}); err != nil {
		return err
	}
	for i, ld := range m.Loads {
		if err := writeRow(f, sheet, i+2, []interface{}{ld.NodeID, ld.FX, ld.FY, ld.FZ}); err != nil {
			return err
		}
	}
	return nil
}

func writeBearings(f *excelize.File, m *model.BridgeModel) error {
	const sheet = "Bearings"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, []string{"ID", "Node I", "Node J", "Weight (kip)", "Kv (kip/in)", "R2 (in)", "D2 (in)"}); err != nil {
		return err
	}
	for i, b := range m.Bearings {
		if err := writeRow(f, sheet, i+2, []interface{}{
			b.ID, b.NodeI, b.NodeJ, b.Weight, b.VerticalStiffness, b.Radii[1], b.DispCapacities[1],
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeConstraints(f *excelize.File, m *model.BridgeModel) error {
	const sheet = "Constraints"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, []string{"ID", "Retained", "Constrained", "DOFs"}); err != nil {
		return err
	}
	for i, c := range m.EqualDOF {
		if err := writeRow(f, sheet, i+2, []interface{}{
			c.ID, c.RetainedNode, c.ConstrainedNode, fmt.Sprint(c.DOFs),
		}); err != nil {
			return err
		}
	}
	return nil
}

func restraintString(r [6]bool) string {
	labels := [6]string{"Tx", "Ty", "Tz", "Rx", "Ry", "Rz"}
	s := ""
	for i, fixed := range r {
		if fixed {
			if s != "" {
				s += "+"
			}
			s += labels[i]
		}
	}
	if s == "" {
		return "free"
	}
	return s
}
