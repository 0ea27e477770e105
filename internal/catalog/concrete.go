package catalog

// ConcreteGirders maps governing span length to an AASHTO precast
// prestressed I-girder (PCI Bridge Design Manual gross properties).
// Ordered ascending by MaxSpanFt.
var ConcreteGirders = []GirderSection{
	{
		Name:            "AASHTO Type II",
		MaxSpanFt:       55,
		Area:            369,
		Ix:              50979,
		Iy:              5333,
		Depth:           36,
		FlangeWidth:     12,
		FlangeThickness: 6,
		WebThickness:    6,
	},
	{
		Name:            "AASHTO Type III",
		MaxSpanFt:       80,
		Area:            560,
		Ix:              125390,
		Iy:              12217,
		Depth:           45,
		FlangeWidth:     16,
		FlangeThickness: 7,
		WebThickness:    7,
	},
	{
		Name:            "AASHTO Type IV",
		MaxSpanFt:       100,
		Area:            789,
		Ix:              260730,
		Iy:              24347,
		Depth:           54,
		FlangeWidth:     20,
		FlangeThickness: 8,
		WebThickness:    8,
	},
	{
		Name:            "AASHTO-PCI BT-54",
		MaxSpanFt:       115,
		Area:            659,
		Ix:              268077,
		Iy:              37634,
		Depth:           54,
		FlangeWidth:     42,
		FlangeThickness: 3.5,
		WebThickness:    6,
	},
	{
		Name:            "AASHTO-PCI BT-63",
		MaxSpanFt:       130,
		Area:            713,
		Ix:              392638,
		Iy:              37716,
		Depth:           63,
		FlangeWidth:     42,
		FlangeThickness: 3.5,
		WebThickness:    6,
	},
	{
		Name:            "AASHTO-PCI BT-72",
		MaxSpanFt:       150,
		Area:            767,
		Ix:              545894,
		Iy:              37797,
		Depth:           72,
		FlangeWidth:     42,
		FlangeThickness: 3.5,
		WebThickness:    6,
	},
}

// ConcreteColumns maps column height to circular column diameter.
// Diameter increases stepwise with height to keep slenderness in range.
// Ordered ascending by MaxHeightFt.
var ConcreteColumns = []ColumnSection{
	{MaxHeightFt: 20, Diameter: 36},
	{MaxHeightFt: 30, Diameter: 42},
	{MaxHeightFt: 40, Diameter: 48},
	{MaxHeightFt: 55, Diameter: 60},
	{MaxHeightFt: 75, Diameter: 72},
	{MaxHeightFt: 100, Diameter: 84},
}
