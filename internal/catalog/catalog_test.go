package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGirderForSpanTiers(t *testing.T) {
	tests := []struct {
		spanFt     float64
		girderType GirderType
		want       string
	}{
		{60, Steel, "PG48 (48x5/16 web, 14x3/4 flanges)"},
		{80, Steel, "PG48 (48x5/16 web, 14x3/4 flanges)"},
		{81, Steel, "PG54 (54x3/8 web, 16x7/8 flanges)"},
		{150, Steel, "PG72 (72x1/2 web, 20x1-1/4 flanges)"},
		{50, Concrete, "AASHTO Type II"},
		{100, Concrete, "AASHTO Type IV"},
		{150, Concrete, "AASHTO-PCI BT-72"},
	}
	for _, tt := range tests {
		got := GirderForSpan(tt.spanFt, tt.girderType)
		assert.Equal(t, tt.want, got.Name, "span %.0f ft %s", tt.spanFt, tt.girderType)
	}
}

func TestGirderForSpanClampsToHeaviestTier(t *testing.T) {
	steel := GirderForSpan(400, Steel)
	assert.Equal(t, SteelGirders[len(SteelGirders)-1].Name, steel.Name)

	concrete := GirderForSpan(400, Concrete)
	assert.Equal(t, ConcreteGirders[len(ConcreteGirders)-1].Name, concrete.Name)
}

func TestColumnForHeight(t *testing.T) {
	assert.InDelta(t, 36.0, ColumnForHeight(15).Diameter, 1e-9)
	assert.InDelta(t, 36.0, ColumnForHeight(20).Diameter, 1e-9)
	assert.InDelta(t, 42.0, ColumnForHeight(21).Diameter, 1e-9)
	assert.InDelta(t, 84.0, ColumnForHeight(100).Diameter, 1e-9)
	// Taller than the table clamps to the largest diameter.
	assert.InDelta(t, 84.0, ColumnForHeight(150).Diameter, 1e-9)
}

func TestCircularProperties(t *testing.T) {
	const d = 36.0
	area, inertia, z := CircularProperties(d)
	assert.InDelta(t, math.Pi*d*d/4, area, 1e-9)
	assert.InDelta(t, math.Pi*math.Pow(d, 4)/64, inertia, 1e-9)
	assert.InDelta(t, math.Pow(d, 3)/6, z, 1e-9)
}

func TestRectangularProperties(t *testing.T) {
	area, inertia, z := RectangularProperties(48, 42)
	assert.InDelta(t, 2016.0, area, 1e-9)
	assert.InDelta(t, 48*math.Pow(42, 3)/12, inertia, 1e-9)
	assert.InDelta(t, 48*42*42/4, z, 1e-9)
}

func TestPierCapSection(t *testing.T) {
	// Small spacing and column: the minimums govern.
	cap := PierCapSection(60, 30)
	assert.InDelta(t, 42.0, cap.Depth, 1e-9)
	assert.InDelta(t, 48*42.0, cap.Area, 1e-9)

	// Large column: depth wraps the column.
	cap = PierCapSection(96, 72)
	assert.InDelta(t, 78.0, cap.Depth, 1e-9)
	assert.InDelta(t, 48*78.0, cap.Area, 1e-9)

	// Wide spacing: width follows half the spacing.
	cap = PierCapSection(144, 30)
	assert.InDelta(t, 72*42.0, cap.Area, 1e-9)
}

func TestConcreteE(t *testing.T) {
	assert.InDelta(t, 1820*math.Sqrt(5.0), ConcreteE(FcGirder), 1e-9)
	assert.InDelta(t, 3640.0, ConcreteE(4.0), 1e-9)
}

func TestTablesOrderedAscending(t *testing.T) {
	for i := 1; i < len(SteelGirders); i++ {
		assert.Greater(t, SteelGirders[i].MaxSpanFt, SteelGirders[i-1].MaxSpanFt)
	}
	for i := 1; i < len(ConcreteGirders); i++ {
		assert.Greater(t, ConcreteGirders[i].MaxSpanFt, ConcreteGirders[i-1].MaxSpanFt)
	}
	for i := 1; i < len(ConcreteColumns); i++ {
		assert.Greater(t, ConcreteColumns[i].MaxHeightFt, ConcreteColumns[i-1].MaxHeightFt)
	}
}
