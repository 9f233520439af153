package fighter

import "github.com/go-gl/mathgl/mgl64"

// ProjectileHandle refers to a slot in a ProjectilePool. A handle goes stale
// as soon as its slot is released, even if the slot is reused.
type ProjectileHandle struct {
	index      uint32
	generation uint32
}

// Valid reports whether the handle was ever issued. It does not say whether
// the projectile is still alive; use ProjectilePool.Get for that.
func (h ProjectileHandle) Valid() bool {
	return h.generation != 0
}

// Projectile is a pool-owned attack that persists across ticks.
type Projectile struct {
	Handle     ProjectileHandle
	OwnerID    int
	Kind       AttackKind
	Box        BoundingBox
	Velocity   mgl64.Vec2 // units/s
	Damage     int
	Gravity    bool
	LifespanMs float64 // <= 0 never expires
}

type poolSlot struct {
	projectile Projectile
	generation uint32
	used       bool
}

// ProjectilePool is a per-fighter arena of live projectiles. Released slots
// are recycled with a bumped generation.
type ProjectilePool struct {
	slots []poolSlot
	free  []uint32
	live  int
}

func NewProjectilePool() *ProjectilePool {
	return &ProjectilePool{}
}

// Spawn stores p and returns its handle.
func (pp *ProjectilePool) Spawn(p Projectile) ProjectileHandle {
	var idx uint32
	if n := len(pp.free); n > 0 {
		idx = pp.free[n-1]
		pp.free = pp.free[:n-1]
	} else {
		pp.slots = append(pp.slots, poolSlot{})
		idx = uint32(len(pp.slots) - 1)
	}

	slot := &pp.slots[idx]
	slot.generation++
	if slot.generation == 0 {
		slot.generation = 1
	}
	slot.used = true

	p.Handle = ProjectileHandle{index: idx, generation: slot.generation}
	slot.projectile = p
	pp.live++
	return p.Handle
}

func (pp *ProjectilePool) slot(h ProjectileHandle) *poolSlot {
	if !h.Valid() || int(h.index) >= len(pp.slots) {
		return nil
	}
	s := &pp.slots[h.index]
	if !s.used || s.generation != h.generation {
		return nil
	}
	return s
}

// Get returns a copy of the projectile behind h.
func (pp *ProjectilePool) Get(h ProjectileHandle) (Projectile, bool) {
	s := pp.slot(h)
	if s == nil {
		return Projectile{}, false
	}
	return s.projectile, true
}

// Release frees the slot behind h. Stale handles are ignored.
func (pp *ProjectilePool) Release(h ProjectileHandle) bool {
	s := pp.slot(h)
	if s == nil {
		return false
	}
	s.used = false
	s.projectile = Projectile{}
	pp.free = append(pp.free, h.index)
	pp.live--
	return true
}

// Len is the number of live projectiles.
func (pp *ProjectilePool) Len() int {
	return pp.live
}

// Count is the number of live projectiles of a kind.
func (pp *ProjectilePool) Count(kind AttackKind) int {
	n := 0
	for i := range pp.slots {
		if pp.slots[i].used && pp.slots[i].projectile.Kind == kind {
			n++
		}
	}
	return n
}

// Live returns a snapshot of every live projectile in slot order.
func (pp *ProjectilePool) Live() []Projectile {
	out := make([]Projectile, 0, pp.live)
	for i := range pp.slots {
		if pp.slots[i].used {
			out = append(out, pp.slots[i].projectile)
		}
	}
	return out
}

// Advance moves every projectile by elapsedMs, applies gravity to the ones
// that fall, and releases those whose lifespan ran out or that left the
// bounds expanded by margin.
func (pp *ProjectilePool) Advance(elapsedMs, gravity, terminal float64, bounds BoundingBox, margin float64) {
	dt := elapsedMs / 1000
	limits := BoundingBox{
		X: bounds.X - margin,
		Y: bounds.Y - margin,
		W: bounds.W + 2*margin,
		H: bounds.H + 2*margin,
	}

	for i := range pp.slots {
		s := &pp.slots[i]
		if !s.used {
			continue
		}
		p := &s.projectile

		if p.Gravity {
			vy := p.Velocity.Y() + gravity*dt
			if vy > terminal {
				vy = terminal
			}
			p.Velocity[1] = vy
		}
		p.Box = p.Box.Translate(p.Velocity.Mul(dt))

		expired := false
		if p.LifespanMs > 0 {
			p.LifespanMs -= elapsedMs
			expired = p.LifespanMs <= 0
		}
		if expired || !p.Box.Intersects(limits) {
			pp.Release(p.Handle)
		}
	}
}

// Clear releases every projectile.
func (pp *ProjectilePool) Clear() {
	for i := range pp.slots {
		if pp.slots[i].used {
			pp.Release(pp.slots[i].projectile.Handle)
		}
	}
}
