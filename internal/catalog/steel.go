package catalog

// SteelGirders maps governing span length to a welded plate girder.
// Tiers follow typical economical depths (span/25 rule of thumb) for
// composite multi-girder highway bridges. Ordered ascending by MaxSpanFt.
var SteelGirders = []GirderSection{
	{
		Name:            "PG48 (48x5/16 web, 14x3/4 flanges)",
		MaxSpanFt:       80,
		Area:            36.0,
		Ix:              16200,
		Iy:              343,
		Depth:           49.5,
		FlangeWidth:     14,
		FlangeThickness: 0.75,
		WebThickness:    0.3125,
	},
	{
		Name:            "PG54 (54x3/8 web, 16x7/8 flanges)",
		MaxSpanFt:       100,
		Area:            48.3,
		Ix:              26900,
		Iy:              597,
		Depth:           55.75,
		FlangeWidth:     16,
		FlangeThickness: 0.875,
		WebThickness:    0.375,
	},
	{
		Name:            "PG60 (60x7/16 web, 18x1 flanges)",
		MaxSpanFt:       120,
		Area:            62.3,
		Ix:              41800,
		Iy:              972,
		Depth:           62,
		FlangeWidth:     18,
		FlangeThickness: 1.0,
		WebThickness:    0.4375,
	},
	{
		Name:            "PG72 (72x1/2 web, 20x1-1/4 flanges)",
		MaxSpanFt:       150,
		Area:            86.0,
		Ix:              78200,
		Iy:              1667,
		Depth:           74.5,
		FlangeWidth:     20,
		FlangeThickness: 1.25,
		WebThickness:    0.5,
	},
	{
		Name:            "PG84 (84x9/16 web, 22x1-1/2 flanges)",
		MaxSpanFt:       180,
		Area:            113.3,
		Ix:              130000,
		Iy:              2662,
		Depth:           87,
		FlangeWidth:     22,
		FlangeThickness: 1.5,
		WebThickness:    0.5625,
	},
	{
		Name:            "PG96 (96x5/8 web, 24x1-3/4 flanges)",
		MaxSpanFt:       220,
		Area:            144.0,
		Ix:              202000,
		Iy:              4033,
		Depth:           99.5,
		FlangeWidth:     24,
		FlangeThickness: 1.75,
		WebThickness:    0.625,
	},
}
