package fighter

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/shared/gamemath"
)

// stageFloorID marks the stage's bottom edge when it acts as the ground.
const stageFloorID = -1

// landingEpsilon tolerates float drift when the feet rest exactly on a top.
const landingEpsilon = 1e-6

type body struct {
	pos       mgl64.Vec2 // center of the standing box
	force     mgl64.Vec2 // x: horizontal speed, y: vertical velocity (units/s, +y down)
	facing    float64
	grounded  bool
	ground    Platform
	jumpsLeft int

	ignoring bool
	ignored  Platform // pass-through platform skipped for the current descent
}

func (b *body) place(center mgl64.Vec2, extraJumps int) {
	b.pos = center
	b.force = mgl64.Vec2{}
	b.grounded = false
	b.ground = Platform{}
	b.jumpsLeft = extraJumps
	b.ignoring = false
}

func (b *body) jump() {
	b.force[1] = -config.Physics.JumpVelocity
	b.grounded = false
}

// launch sends the fighter upward at speed, leaving the ground.
func (b *body) launch(speed float64) {
	b.force[1] = -speed
	b.grounded = false
}

func (b *body) land(p Platform) {
	b.grounded = true
	b.ground = p
	b.force[1] = 0
}

// BoundingBox returns the fighter's hurtbox. Crouching shortens it while
// keeping the feet in place.
func (f *Fighter) BoundingBox() BoundingBox {
	w := config.Fighter.Width
	h := config.Fighter.Height
	bottom := f.body.pos.Y() + h/2
	if f.action == ActionCrouching {
		h = config.Fighter.CrouchHeight
	}
	return BoundingBox{X: f.body.pos.X() - w/2, Y: bottom - h, W: w, H: h}
}

func (f *Fighter) setFeet(box BoundingBox) {
	f.body.pos = mgl64.Vec2{box.Center().X(), box.Bottom() - config.Fighter.Height/2}
}

func (f *Fighter) updateCrouch() {
	switch {
	case f.action == ActionIdle && f.intent.Crouch && f.body.grounded:
		f.action = ActionCrouching
	case f.action == ActionCrouching && (!f.intent.Crouch || !f.body.grounded):
		f.action = ActionIdle
	}
}

func (f *Fighter) canJump() bool {
	return f.action != ActionDashing && f.action != ActionUppercutting
}

// integrate advances position and velocity by elapsedMs against the stage.
func (f *Fighter) integrate(elapsedMs float64, platforms PlatformIndex) {
	b := &f.body
	dt := elapsedMs / 1000
	in, prev := f.intent, f.prevIntent

	f.updateCrouch()

	dir := in.Direction()
	switch {
	case f.action == ActionDashing:
		b.force[0] = b.facing * config.Yam.DashSpeed
	case dir != 0 && f.action != ActionCrouching:
		b.force[0] = dir * f.stats.Speed
		b.facing = dir
	default:
		if dir != 0 {
			b.facing = dir
		}
		b.force[0] = gamemath.ApplyFriction(b.force.X(), config.Physics.Friction*dt)
	}

	if b.grounded && b.ground.PassThrough && pressed(in.PassThrough, prev.PassThrough) {
		b.ignoring = true
		b.ignored = b.ground
		b.grounded = false
		if f.action == ActionCrouching {
			f.action = ActionIdle
		}
	}

	if pressed(in.Jump, prev.Jump) && f.canJump() {
		switch {
		case b.grounded:
			b.jump()
		case b.jumpsLeft > 0:
			b.jumpsLeft--
			b.jump()
		}
		if !b.grounded && f.action == ActionCrouching {
			f.action = ActionIdle
		}
	}

	if !b.grounded {
		b.force[1] = gamemath.ClampFall(b.force.Y()+config.Physics.Gravity*dt, config.Physics.TerminalVelocity)
	}

	old := f.BoundingBox()
	next := old.Translate(b.force.Mul(dt))
	bounds := platforms.Bounds()

	if next.Left() < bounds.Left() {
		next.X = bounds.Left()
		b.force[0] = 0
	} else if next.Right() > bounds.Right() {
		next.X = bounds.Right() - next.W
		b.force[0] = 0
	}
	if next.Top() < bounds.Top() {
		next.Y = bounds.Top()
		if b.force.Y() < 0 {
			b.force[1] = 0
		}
	}

	wasGrounded := b.grounded
	b.grounded = false

	if b.force.Y() >= 0 {
		probe := 0.0
		if wasGrounded {
			probe = config.Physics.GroundProbe
		}
		region := old.Union(next)
		region.H += probe
		if p, ok := b.findLanding(platforms.Query(region), old, next, probe); ok {
			next.Y = p.Box.Top() - next.H
			b.land(p)
		}
	}
	if !b.grounded && next.Bottom() >= bounds.Bottom() {
		next.Y = bounds.Bottom() - next.H
		b.land(Platform{
			ID:  stageFloorID,
			Box: BoundingBox{X: bounds.X, Y: bounds.Bottom(), W: bounds.W},
		})
	}
	landed := b.grounded && !wasGrounded

	if b.ignoring && next.Top() > b.ignored.Box.Bottom() {
		b.ignoring = false
	}

	f.setFeet(next)

	if landed {
		b.jumpsLeft = f.abilities.extraJumps()
		b.ignoring = false
		f.startSquash()
	}
}

// findLanding picks the highest platform top crossed by the move from old
// to next. probe extends the feet downward to keep a resting fighter
// grounded.
func (b *body) findLanding(candidates []Platform, old, next BoundingBox, probe float64) (Platform, bool) {
	var best Platform
	found := false
	for _, p := range candidates {
		if b.ignoring && p.ID == b.ignored.ID {
			continue
		}
		if !next.OverlapsX(p.Box) {
			continue
		}
		top := p.Box.Top()
		if old.Bottom() > top+landingEpsilon || next.Bottom()+probe < top {
			continue
		}
		if !found || top < best.Box.Top() {
			best = p
			found = true
		}
	}
	return best, found
}
