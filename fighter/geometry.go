package fighter

import "github.com/go-gl/mathgl/mgl64"

// BoundingBox is an axis-aligned rectangle with a top-left origin. +Y is
// down.
type BoundingBox struct {
	X, Y, W, H float64
}

// BoxAround returns a w by h box centered on c.
func BoxAround(c mgl64.Vec2, w, h float64) BoundingBox {
	return BoundingBox{X: c.X() - w/2, Y: c.Y() - h/2, W: w, H: h}
}

func (b BoundingBox) Left() float64   { return b.X }
func (b BoundingBox) Right() float64  { return b.X + b.W }
func (b BoundingBox) Top() float64    { return b.Y }
func (b BoundingBox) Bottom() float64 { return b.Y + b.H }

func (b BoundingBox) Center() mgl64.Vec2 {
	return mgl64.Vec2{b.X + b.W/2, b.Y + b.H/2}
}

// Intersects reports whether the boxes overlap with positive area.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Top() < o.Bottom() && o.Top() < b.Bottom()
}

// OverlapsX reports whether the horizontal extents overlap.
func (b BoundingBox) OverlapsX(o BoundingBox) bool {
	return b.Left() < o.Right() && o.Left() < b.Right()
}

// Union returns the smallest box containing both.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	left := min(b.Left(), o.Left())
	top := min(b.Top(), o.Top())
	right := max(b.Right(), o.Right())
	bottom := max(b.Bottom(), o.Bottom())
	return BoundingBox{X: left, Y: top, W: right - left, H: bottom - top}
}

func (b BoundingBox) Translate(d mgl64.Vec2) BoundingBox {
	b.X += d.X()
	b.Y += d.Y()
	return b
}

// Platform is a piece of stage geometry as seen by the integrator. Only the
// top surface collides; PassThrough platforms can be dropped through.
type Platform struct {
	ID          int
	Box         BoundingBox
	PassThrough bool
}

// PlatformIndex is the broad-phase stage query the integrator consumes. It is
// never mutated by a fighter.
type PlatformIndex interface {
	// Query returns the platforms intersecting or touching region.
	Query(region BoundingBox) []Platform
	// Bounds is the stage rectangle fighters are clamped to.
	Bounds() BoundingBox
}
