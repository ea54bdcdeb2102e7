package render

import (
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette maps particle mass and attractor state to colors
// Blends run in HCL so hue shifts stay perceptually even
type Palette struct {
	Name string

	Background RGB

	// Light particles sit at Cool, heavy merged ones move through Warm toward Hot
	Cool colorful.Color
	Warm colorful.Color
	Hot  colorful.Color

	AttractorGlow colorful.Color
	AttractorCore colorful.Color
	Line          colorful.Color
}

var palettes = map[string]*Palette{
	"aurora": {
		Name:          "aurora",
		Background:    RGB{6, 8, 18},
		Cool:          mustHex("#9fd8ff"),
		Warm:          mustHex("#c7a6ff"),
		Hot:           mustHex("#fff2d6"),
		AttractorGlow: mustHex("#5d7bff"),
		AttractorCore: mustHex("#e8f0ff"),
		Line:          mustHex("#7fa8d8"),
	},
	"ember": {
		Name:          "ember",
		Background:    RGB{14, 8, 6},
		Cool:          mustHex("#ffb070"),
		Warm:          mustHex("#ff6a3d"),
		Hot:           mustHex("#fff0c0"),
		AttractorGlow: mustHex("#ff5a1f"),
		AttractorCore: mustHex("#fff4e0"),
		Line:          mustHex("#d08050"),
	},
	"mono": {
		Name:          "mono",
		Background:    RGB{8, 8, 8},
		Cool:          mustHex("#b8b8b8"),
		Warm:          mustHex("#dcdcdc"),
		Hot:           mustHex("#ffffff"),
		AttractorGlow: mustHex("#808080"),
		AttractorCore: mustHex("#ffffff"),
		Line:          mustHex("#9a9a9a"),
	},
}

// DefaultPalette is used when no palette is configured
const DefaultPalette = "aurora"

// LookupPalette returns a palette by name
func LookupPalette(name string) (*Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

// PaletteNames lists the available palettes in sorted order
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// mustHex parses a palette literal; a bad literal is a programming error
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("render: bad palette color %q: %v", s, err))
	}
	return c
}

func toRGB(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Particle returns the color for a particle of the given mass
// Mass 1 is Cool, mass 4 reaches Warm, mass 8 and above reaches Hot
func (p *Palette) Particle(mass float64) RGB {
	switch {
	case mass <= 1:
		return toRGB(p.Cool)
	case mass < 4:
		return toRGB(p.Cool.BlendHcl(p.Warm, (mass-1)/3))
	case mass < 8:
		return toRGB(p.Warm.BlendHcl(p.Hot, (mass-4)/4))
	default:
		return toRGB(p.Hot)
	}
}

// Glow returns the attractor glow color, warmed toward the core by brightness
func (p *Palette) Glow(brightness float64) RGB {
	t := brightness * 2
	if t > 1 {
		t = 1
	}
	return toRGB(p.AttractorGlow.BlendHcl(p.AttractorCore, t*0.4))
}

// Core returns the attractor core color
func (p *Palette) Core() RGB {
	return toRGB(p.AttractorCore)
}

// Connection returns the connection line color
func (p *Palette) Connection() RGB {
	return toRGB(p.Line)
}
