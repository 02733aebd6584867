package avatargen

// A Palette is a named, immutable set of colors. Colors is the flat list that
// buffer cells index into; the role slices (Skin, Hair, ...) are ordered
// subsets of Colors that the feature-selection code picks from. Drawing always
// goes back through the flat list: a role pick is resolved to its position in
// Colors, and that position is what gets written into the buffer.
type Palette struct {
	Name    string
	Colors  []string
	Skin    []string
	Hair    []string
	Eyes    []string
	Clothes []string
	Accent  []string
}

// ColorIndex returns hex's position in the flat color list, or 0 if it isn't
// there. Falling back to 0 instead of erroring keeps drawing infallible; a
// miss just paints the wrong color.
func (p *Palette) ColorIndex(hex string) int {
	for i, c := range p.Colors {
		if c == hex {
			return i
		}
	}
	return 0
}

// roleColor resolves entry i of a role sublist to a drawable flat-list index.
// Out-of-range picks clamp to the first entry rather than failing.
func (p *Palette) roleColor(role []string, i int) int {
	if len(role) == 0 {
		return 0
	}
	if i < 0 || i >= len(role) {
		i = 0
	}
	return p.ColorIndex(role[i])
}

// DefaultPaletteName is what LookupPalette falls back to for names it doesn't
// recognize.
const DefaultPaletteName = "nes"

// The registry is built once and never written afterwards, so concurrent
// lookups are fine.
var palettes = map[string]*Palette{
	"nes": {
		Name: "nes",
		Colors: []string{
			"#000000", "#fcfcfc", "#bcbcbc", "#7c7c7c",
			"#a81000", "#e45c10", "#f8b800", "#fca044",
			"#f8d878", "#503000", "#ac7c00", "#00a800",
			"#0058f8", "#0000bc", "#6844fc", "#f878f8",
		},
		Skin:    []string{"#f8d878", "#fca044", "#ac7c00", "#503000"},
		Hair:    []string{"#000000", "#503000", "#ac7c00", "#f8b800", "#bcbcbc"},
		Eyes:    []string{"#000000", "#0000bc"},
		Clothes: []string{"#a81000", "#00a800", "#0058f8", "#6844fc", "#e45c10"},
		Accent:  []string{"#f8b800", "#f878f8", "#fcfcfc"},
	},
	"gameboy": {
		Name: "gameboy",
		Colors: []string{
			"#0f380f", "#306230", "#8bac0f", "#9bbc0f",
		},
		Skin:    []string{"#9bbc0f", "#8bac0f"},
		Hair:    []string{"#0f380f", "#306230"},
		Eyes:    []string{"#0f380f"},
		Clothes: []string{"#306230", "#0f380f"},
		Accent:  []string{"#8bac0f"},
	},
	"slso8": {
		Name: "slso8",
		Colors: []string{
			"#0d2b45", "#203c56", "#544e68", "#8d697a",
			"#d08159", "#ffaa5e", "#ffd4a3", "#ffecd6",
		},
		Skin:    []string{"#ffecd6", "#ffd4a3", "#ffaa5e", "#d08159"},
		Hair:    []string{"#0d2b45", "#544e68", "#8d697a"},
		Eyes:    []string{"#0d2b45"},
		Clothes: []string{"#203c56", "#544e68", "#8d697a"},
		Accent:  []string{"#ffaa5e", "#8d697a"},
	},
}

// LookupPalette returns the palette registered under name, or the default
// palette if the name is unknown. It never fails.
func LookupPalette(name string) *Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[DefaultPaletteName]
}

// PaletteNames lists the registered palette names (for the form page).
func PaletteNames() []string {
	return []string{"nes", "gameboy", "slso8"}
}
