package fighter

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/shared/gamemath"
)

// broccoliAbilities: passive double jump, uppercut (Ability1) and charged
// cauliflower toss (Ability2).
type broccoliAbilities struct {
	uppercutCooldownMs float64

	charging              bool
	charge                float64
	cauliflowerCooldownMs float64
}

func (b *broccoliAbilities) update(f *Fighter, ctx abilityContext) *Attack {
	b.uppercutCooldownMs = gamemath.CountDown(b.uppercutCooldownMs, ctx.elapsedMs)
	b.cauliflowerCooldownMs = gamemath.CountDown(b.cauliflowerCooldownMs, ctx.elapsedMs)

	if b.charging {
		if !ctx.intent.Ability2 {
			b.charging = false
			return b.toss(f)
		}
		b.charge = gamemath.AccumulateCharge(b.charge, config.Broccoli.CauliflowerChargeRate,
			ctx.elapsedMs, config.TickMs, config.Broccoli.CauliflowerMaxSpeed)
		return nil
	}

	if !ctx.canAct {
		return nil
	}
	switch {
	case ctx.intent.Ability1 && b.uppercutCooldownMs == 0:
		return b.uppercut(f)
	case pressed(ctx.intent.Ability2, ctx.prev.Ability2) && b.cauliflowerCooldownMs == 0:
		b.charging = true
		b.charge = 0
	}
	return nil
}

func (b *broccoliAbilities) uppercut(f *Fighter) *Attack {
	b.uppercutCooldownMs = config.Broccoli.UppercutCooldownMs
	f.action = ActionUppercutting
	f.actionMs = config.Broccoli.UppercutMs
	f.body.launch(config.Broccoli.UppercutVelocity)

	body := f.BoundingBox()
	w, h := config.Broccoli.UppercutWidth, config.Broccoli.UppercutHeight
	x := body.Right()
	if f.body.facing < 0 {
		x = body.Left() - w
	}
	return &Attack{
		Kind:    AttackUppercut,
		OwnerID: f.id,
		Box:     BoundingBox{X: x, Y: body.Bottom() - h, W: w, H: h},
		Damage:  config.Broccoli.UppercutDamage,
	}
}

// toss fires a cauliflower unless the on-stage cap is reached, in which case
// the release is dropped and no cooldown starts.
func (b *broccoliAbilities) toss(f *Fighter) *Attack {
	charge := b.charge
	b.charge = 0
	if f.pool.Count(AttackProjectile) >= config.Broccoli.CauliflowerMaxOnStage {
		return nil
	}
	b.cauliflowerCooldownMs = config.Broccoli.CauliflowerCooldownMs

	perTick := gamemath.CalculateLaunchSpeed(config.Broccoli.CauliflowerBaseSpeed, charge, config.Broccoli.CauliflowerMaxSpeed)
	size := config.Broccoli.CauliflowerSize
	return f.spawnProjectile(Projectile{
		Kind:       AttackProjectile,
		Box:        f.frontBox(size, size),
		Velocity:   mgl64.Vec2{f.body.facing * perTick * 1000 / config.TickMs, -config.Broccoli.CauliflowerLift},
		Damage:     config.Broccoli.CauliflowerDamage,
		Gravity:    true,
		LifespanMs: config.Broccoli.CauliflowerLifespanMs,
	})
}

func (b *broccoliAbilities) interrupt() {
	b.charging = false
	b.charge = 0
}

func (b *broccoliAbilities) reset() {
	*b = broccoliAbilities{}
}

func (b *broccoliAbilities) busy() bool {
	return b.charging
}

func (b *broccoliAbilities) extraJumps() int {
	return config.Broccoli.ExtraJumps
}

func (b *broccoliAbilities) state() config.StateID {
	if b.charging {
		return config.StateChargingCauliflower
	}
	return config.StateNone
}
