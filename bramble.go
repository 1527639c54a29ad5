package bramble

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts a bramble Color to a color.RGBA (premultiplied).
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// RGBA implements [color.Color] with premultiplied 16-bit channels, so a
// Color can be passed directly to Ebitengine draw calls.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R*c.A) * 0xffff)
	g = uint32(clamp01(c.G*c.A) * 0xffff)
	b = uint32(clamp01(c.B*c.A) * 0xffff)
	a = uint32(clamp01(c.A) * 0xffff)
	return
}

// clamp01 clamps v into [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

const (
	// DefaultMaxDepth is the number of branch levels grown when
	// Config.MaxDepth is zero.
	DefaultMaxDepth = 8
	// DefaultBranchFactor is the number of children per branch grown when
	// Config.BranchFactor is zero.
	DefaultBranchFactor = 2
	// DefaultSpeed is the rotation speed a fresh State starts with.
	DefaultSpeed = 1.0
)

// canvasWidth is the fixed logical width of the drawing canvas. The canvas
// height follows from the viewport aspect ratio at replant time.
const canvasWidth = 2000.0

// Config controls how branch trees are grown. The zero value selects
// DefaultMaxDepth, DefaultBranchFactor, and the package-global random source.
type Config struct {
	// MaxDepth is the deepest branch level. The root is level 1; branches at
	// MaxDepth have no children. Zero selects DefaultMaxDepth.
	MaxDepth int
	// BranchFactor is the number of children grown per branch above the
	// deepest level. Zero selects DefaultBranchFactor.
	BranchFactor int
	// Source supplies the random draws used while growing. Nil selects the
	// package-global source. Inject a seeded source for reproducible trees.
	Source Source
}

// withDefaults returns the config with zero fields resolved to defaults.
// Negative depth or branch factor is a programmer error.
func (c Config) withDefaults() Config {
	if c.MaxDepth < 0 || c.BranchFactor < 0 {
		panic("bramble: Config.MaxDepth and Config.BranchFactor must not be negative")
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.BranchFactor == 0 {
		c.BranchFactor = DefaultBranchFactor
	}
	if c.Source == nil {
		c.Source = globalSource{}
	}
	return c
}
