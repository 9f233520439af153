package fighter

import "github.com/automoto/veggievengeance/config"

type abilityContext struct {
	elapsedMs float64
	canAct    bool // offensive abilities may start this tick
	intent    Intent
	prev      Intent
}

// abilitySet is the closed set of per-archetype ability machines. Each one
// advances its own timers every tick and yields at most one Attack.
type abilitySet interface {
	update(f *Fighter, ctx abilityContext) *Attack
	// interrupt drops in-progress charges and wind-ups (hurt, block start).
	interrupt()
	// reset clears every archetype flag and timer (death, respawn, match reset).
	reset()
	// busy reports a wind-up or charge that excludes the punch shell.
	busy() bool
	extraJumps() int
	// state is the presentation state while an ability owns the fighter, or
	// config.StateNone.
	state() config.StateID
}

func newAbilitySet(a config.Archetype) abilitySet {
	switch a {
	case config.ArchetypeBroccoli:
		return &broccoliAbilities{}
	case config.ArchetypeEggplant:
		return &eggplantAbilities{}
	case config.ArchetypeYam:
		return &yamAbilities{}
	default:
		return &potatoAbilities{}
	}
}

// frontBox places a w by h box just in front of the fighter at chest height.
func (f *Fighter) frontBox(w, h float64) BoundingBox {
	body := f.BoundingBox()
	x := body.Right()
	if f.body.facing < 0 {
		x = body.Left() - w
	}
	return BoundingBox{X: x, Y: body.Top() + body.H/3 - h/2, W: w, H: h}
}

// spawnProjectile stores p in the fighter's pool and returns the matching
// descriptor.
func (f *Fighter) spawnProjectile(p Projectile) *Attack {
	p.OwnerID = f.id
	h := f.pool.Spawn(p)
	return &Attack{
		Kind:       p.Kind,
		OwnerID:    f.id,
		Box:        p.Box,
		Damage:     p.Damage,
		Velocity:   p.Velocity,
		LifespanMs: p.LifespanMs,
		Gravity:    p.Gravity,
		Handle:     h,
	}
}
