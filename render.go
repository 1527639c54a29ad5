package bramble

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandStroke CommandType = iota // branch segment, drawn as a stroked line
	CommandJoint                     // branch joint, drawn as a filled circle
)

// color32 is a compact RGBA color using float32, for render commands only.
type color32 struct {
	R, G, B, A float32
}

// rgba converts a color32 to a premultiplied color.RGBA.
func (c color32) rgba() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(float64(c.R*c.A)) * 255),
		G: uint8(clamp01(float64(c.G*c.A)) * 255),
		B: uint8(clamp01(float64(c.B*c.A)) * 255),
		A: uint8(clamp01(float64(c.A)) * 255),
	}
}

// RenderCommand is a single draw instruction emitted during tree compilation.
// Coordinates are in canvas space; the viewport scale is applied at
// submission.
type RenderCommand struct {
	Type  CommandType
	Level int
	// Stroke endpoints. Joints use only X1, Y1.
	X1, Y1, X2, Y2 float32
	// Width is the stroke width; Radius the joint radius.
	Width  float32
	Radius float32
	Color  color32
}

// Style controls how a tree is drawn. The zero value selects the defaults.
type Style struct {
	// Background fills the screen before the tree is drawn. A fully
	// transparent background skips the fill, letting callers paint their
	// own backdrop first.
	Background Color
	// Branch is the stroke color. Its alpha is scaled by the per-level
	// fade, 1/(level+1).
	Branch Color
	// Joint is the fill color for joint circles, scaled like Branch.
	Joint Color
	// BaseLineWidth is the stroke width at level 1, in canvas units.
	// Deeper levels thin out by 1/level. Zero selects the default.
	BaseLineWidth float64
}

// withDefaults returns the style with zero fields resolved to defaults.
func (st Style) withDefaults() Style {
	zero := Color{}
	if st.Background == zero {
		st.Background = Color{R: 0.098, G: 0.098, B: 0.137, A: 1}
	}
	if st.Branch == zero {
		st.Branch = Color{R: 0.914, G: 0.735, B: 0.416, A: 1}
	}
	if st.Joint == zero {
		st.Joint = Color{R: 0.957, G: 0.878, B: 0.686, A: 1}
	}
	if st.BaseLineWidth == 0 {
		st.BaseLineWidth = 10
	}
	return st
}

// Renderer compiles a tree into per-level batched render commands and
// submits them with the vector package. Compilation is pure and reuses its
// buffers, so a Renderer held across frames stops allocating once the
// command list reaches its high-water mark.
type Renderer struct {
	// Style is the draw style. Mutable between frames.
	Style Style
	// Alpha is a global alpha multiplier applied on top of the per-level
	// fade. The replant grow-in animates it from 0 back to 1.
	Alpha float64

	commands []RenderCommand
	frontier []*Branch
	nextBuf  []*Branch
}

// NewRenderer creates a Renderer with the given style. Zero style fields
// resolve to defaults.
func NewRenderer(style Style) *Renderer {
	return &Renderer{
		Style: style.withDefaults(),
		Alpha: 1,
	}
}

// Compile walks the tree breadth-first and rebuilds the renderer's command
// list: per level, one stroke command per branch, then one joint command per
// branch, then the flattened children of the level. Grouping by level keeps
// the style state (width, alpha) constant within a batch. The returned slice
// is valid until the next Compile.
func (r *Renderer) Compile(tree *Branch) []RenderCommand {
	r.commands = r.commands[:0]
	r.frontier = append(r.frontier[:0], tree)

	for len(r.frontier) > 0 {
		level := r.frontier[0].Level
		width := float32(r.Style.BaseLineWidth / float64(level))
		stroke := r.levelColor(r.Style.Branch, level)
		joint := r.levelColor(r.Style.Joint, level)

		for _, b := range r.frontier {
			r.commands = append(r.commands, RenderCommand{
				Type:  CommandStroke,
				Level: level,
				X1:    float32(b.X),
				Y1:    float32(b.Y),
				X2:    float32(b.EndX),
				Y2:    float32(b.EndY),
				Width: width,
				Color: stroke,
			})
		}
		for _, b := range r.frontier {
			r.commands = append(r.commands, RenderCommand{
				Type:   CommandJoint,
				Level:  level,
				X1:     float32(b.X),
				Y1:     float32(b.Y),
				Radius: float32(b.Length / 40),
				Color:  joint,
			})
		}

		r.nextBuf = r.nextBuf[:0]
		for _, b := range r.frontier {
			for i := range b.Children {
				r.nextBuf = append(r.nextBuf, &b.Children[i])
			}
		}
		r.frontier, r.nextBuf = r.nextBuf, r.frontier
	}
	return r.commands
}

// levelColor folds the per-level fade and the global Alpha into a color.
func (r *Renderer) levelColor(c Color, level int) color32 {
	a := c.A * r.Alpha / float64(level+1)
	return color32{float32(c.R), float32(c.G), float32(c.B), float32(a)}
}

// Draw compiles the state's tree and submits it to the screen, scaling
// canvas coordinates to the screen size.
func (r *Renderer) Draw(screen *ebiten.Image, state *State) {
	if r.Style.Background.A > 0 {
		screen.Fill(r.Style.Background.toRGBA())
	}
	scale := float64(screen.Bounds().Dx()) / state.Width
	r.Compile(&state.Tree)
	r.submit(screen, scale)
}

// submit issues one vector call per command, in compiled order.
func (r *Renderer) submit(screen *ebiten.Image, scale float64) {
	sc := float32(scale)
	for i := range r.commands {
		cmd := &r.commands[i]
		switch cmd.Type {
		case CommandStroke:
			vector.StrokeLine(screen,
				cmd.X1*sc, cmd.Y1*sc, cmd.X2*sc, cmd.Y2*sc,
				cmd.Width*sc, cmd.Color.rgba(), true)
		case CommandJoint:
			vector.DrawFilledCircle(screen,
				cmd.X1*sc, cmd.Y1*sc, cmd.Radius*sc, cmd.Color.rgba(), true)
		}
	}
}
