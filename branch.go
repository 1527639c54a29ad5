package bramble

import "math"

// Branch is one limb of a clockwork tree. Branches are plain values: Build
// and Update return fresh trees and never mutate their input, so a Branch
// held across frames stays valid.
//
// Level, Length, and RotationChange are fixed at growth time. X, Y, Rotation,
// EndX, and EndY are pose fields, re-derived on every update.
type Branch struct {
	// Level is the depth from the root, which is level 1.
	Level int
	// X, Y is the branch origin, anchored to the parent's endpoint (or to
	// the tree origin for the root).
	X, Y float64
	// EndX, EndY is the branch endpoint, always derived from X, Y, Length,
	// and Rotation. Children originate here.
	EndX, EndY float64
	// Length is the segment length: zero for the root, otherwise a random
	// scale shrunk by 1/Level.
	Length float64
	// Rotation is the current angle in degrees, kept in [0, 360].
	Rotation float64
	// RotationChange is the signed rotation delta in degrees applied per
	// update at speed 1.
	RotationChange float64
	// Children holds the next level. Branches at the depth cap have none.
	Children []Branch
}

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Build grows a new tree rooted at level with its origin at (x, y), drawing
// lengths and rotations from cfg.Source. The root of a full tree is level 1
// and has zero length, so it renders as a joint pinned to the origin.
//
// Each branch is positioned with the same geometry step Update applies,
// before its children are grown, so children originate at the positioned
// endpoint. Levels at or beyond cfg.MaxDepth grow no children.
func Build(cfg Config, level int, x, y, speed float64) Branch {
	if level < 1 {
		panic("bramble: Build level must be >= 1")
	}
	cfg = cfg.withDefaults()
	return grow(cfg, level, x, y, speed)
}

// grow recursively builds one branch and its subtree.
func grow(cfg Config, level int, x, y, speed float64) Branch {
	b := Branch{Level: level}
	if level > 1 {
		b.Length = randomLengthScale(cfg.Source) / float64(level)
	}
	b.Rotation = randomRotation(cfg.Source)
	b.RotationChange = randomRotationChange(cfg.Source)

	b = advance(b, x, y, speed)

	if level < cfg.MaxDepth {
		b.Children = make([]Branch, cfg.BranchFactor)
		for i := range b.Children {
			b.Children[i] = grow(cfg, level+1, b.EndX, b.EndY, speed)
		}
	}
	return b
}

// Update returns a new tree with every branch advanced by one rotation step
// at the given speed and re-anchored: b moves to (originX, originY) and each
// child re-anchors to its parent's freshly derived endpoint. Topology
// (Level, Length, RotationChange, child count) is unchanged. The input tree
// is not mutated.
func Update(b Branch, originX, originY, speed float64) Branch {
	b = advance(b, originX, originY, speed)
	if len(b.Children) == 0 {
		return b
	}
	children := make([]Branch, len(b.Children))
	for i, child := range b.Children {
		children[i] = Update(child, b.EndX, b.EndY, speed)
	}
	b.Children = children
	return b
}

// advance applies one geometry step to a single branch: rotate by
// RotationChange*speed, wrap, anchor at the origin, and derive the endpoint.
func advance(b Branch, originX, originY, speed float64) Branch {
	b.X = originX
	b.Y = originY
	b.Rotation = wrapRotation(b.Rotation + b.RotationChange*speed)
	r := b.Rotation * degToRad
	b.EndX = originX + b.Length*math.Cos(r)
	b.EndY = originY + b.Length*math.Sin(r)
	return b
}

// wrapRotation normalizes an angle into [0, 360] by snapping at the
// boundaries: past 360 resets to 0, below 0 resets to 360. The snap is NOT a
// modulo. An overshoot restarts the sweep from the boundary no matter how far
// past it the step landed. Angles already in range pass through untouched.
func wrapRotation(deg float64) float64 {
	if deg > 360 {
		return 0
	}
	if deg < 0 {
		return 360
	}
	return deg
}

// Count returns the number of branches in the subtree rooted at b,
// including b itself.
func (b Branch) Count() int {
	n := 1
	for _, child := range b.Children {
		n += child.Count()
	}
	return n
}

// Depth returns the number of levels in the subtree rooted at b. A childless
// branch has depth 1.
func (b Branch) Depth() int {
	deepest := 0
	for _, child := range b.Children {
		if d := child.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
