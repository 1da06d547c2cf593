package colour

// NamedColour is a fashion colour name with a hand-tuned wheel position.
type NamedColour struct {
	Name string
	HSL  HSL
}

// namedColours is searched in declaration order by the fuzzy lookup, so the
// first entry whose name overlaps the input wins. Keep the order stable.
var namedColours = []NamedColour{
	// Neutrals.
	{"black", HSL{0, 0, 5}},
	{"white", HSL{0, 0, 98}},
	{"gray", HSL{0, 0, 50}},
	{"grey", HSL{0, 0, 50}},
	{"charcoal", HSL{210, 8, 25}},
	{"silver", HSL{0, 0, 75}},
	{"ivory", HSL{50, 60, 95}},
	{"cream", HSL{45, 55, 90}},
	{"beige", HSL{38, 18, 80}},
	{"tan", HSL{34, 18, 62}},
	{"khaki", HSL{48, 18, 65}},
	{"taupe", HSL{30, 10, 45}},
	{"stone", HSL{40, 10, 70}},
	{"off-white", HSL{40, 20, 94}},

	// Blues.
	{"navy", HSL{225, 60, 20}},
	{"royal blue", HSL{225, 75, 45}},
	{"cobalt", HSL{215, 90, 40}},
	{"sky blue", HSL{200, 70, 75}},
	{"light blue", HSL{200, 60, 80}},
	{"baby blue", HSL{205, 65, 84}},
	{"teal", HSL{180, 70, 30}},
	{"turquoise", HSL{175, 70, 50}},
	{"denim", HSL{215, 40, 45}},
	{"blue", HSL{220, 80, 50}},

	// Reds.
	{"red", HSL{0, 80, 50}},
	{"burgundy", HSL{345, 65, 25}},
	{"maroon", HSL{0, 60, 25}},
	{"wine", HSL{350, 55, 30}},
	{"crimson", HSL{348, 85, 45}},
	{"scarlet", HSL{5, 90, 50}},

	// Oranges.
	{"orange", HSL{30, 90, 55}},
	{"coral", HSL{16, 85, 65}},
	{"rust", HSL{18, 70, 40}},
	{"terracotta", HSL{15, 55, 50}},
	{"peach", HSL{28, 90, 80}},

	// Yellows.
	{"yellow", HSL{55, 90, 55}},
	{"mustard", HSL{45, 75, 45}},
	{"gold", HSL{45, 80, 50}},
	{"lemon", HSL{55, 95, 70}},

	// Greens.
	{"green", HSL{120, 60, 40}},
	{"olive", HSL{75, 40, 35}},
	{"emerald", HSL{145, 70, 35}},
	{"sage", HSL{100, 22, 65}},
	{"mint", HSL{150, 55, 80}},
	{"forest green", HSL{130, 55, 25}},
	{"lime", HSL{90, 80, 50}},
	{"hunter green", HSL{140, 45, 25}},

	// Purples.
	{"purple", HSL{275, 60, 45}},
	{"lavender", HSL{260, 50, 80}},
	{"lilac", HSL{280, 45, 75}},
	{"plum", HSL{300, 40, 30}},
	{"violet", HSL{270, 75, 55}},
	{"mauve", HSL{310, 25, 60}},

	// Pinks.
	{"pink", HSL{340, 80, 80}},
	{"blush", HSL{350, 55, 85}},
	{"hot pink", HSL{330, 90, 60}},
	{"fuchsia", HSL{310, 90, 55}},
	{"magenta", HSL{300, 90, 50}},
	{"rose", HSL{345, 60, 65}},
	{"dusty rose", HSL{350, 30, 65}},

	// Browns.
	{"brown", HSL{30, 50, 30}},
	{"camel", HSL{33, 50, 55}},
	{"chocolate", HSL{25, 60, 25}},
	{"cognac", HSL{22, 70, 35}},
	{"mocha", HSL{25, 30, 35}},
	{"caramel", HSL{30, 65, 50}},
	{"bronze", HSL{30, 60, 40}},
	{"copper", HSL{20, 65, 45}},
	{"nude", HSL{25, 40, 75}},
	{"oatmeal", HSL{40, 15, 85}},
}

// NamedColours returns a copy of the colour dictionary in lookup order.
func NamedColours() []NamedColour {
	out := make([]NamedColour, len(namedColours))
	copy(out, namedColours)
	return out
}
