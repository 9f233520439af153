package fighter

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/shared/gamemath"
)

// potatoAbilities: Tater Tot bomb (Ability1) and charged fries (Ability2).
type potatoAbilities struct {
	plantMs        float64
	bomb           ProjectileHandle
	fuseMs         float64
	bombCooldownMs float64

	charging        bool
	friesCharge     float64
	friesCooldownMs float64
}

func (p *potatoAbilities) update(f *Fighter, ctx abilityContext) *Attack {
	p.bombCooldownMs = gamemath.CountDown(p.bombCooldownMs, ctx.elapsedMs)
	p.friesCooldownMs = gamemath.CountDown(p.friesCooldownMs, ctx.elapsedMs)

	var out *Attack
	if p.bomb.Valid() {
		p.fuseMs = gamemath.CountDown(p.fuseMs, ctx.elapsedMs)
		if p.fuseMs == 0 {
			out = p.detonate(f)
		}
	}

	if p.plantMs > 0 {
		p.plantMs = gamemath.CountDown(p.plantMs, ctx.elapsedMs)
		if p.plantMs == 0 {
			p.placeBomb(f)
		}
		return out
	}

	if p.charging {
		if !ctx.intent.Ability2 {
			p.charging = false
			fries := p.fireFries(f)
			if out == nil {
				out = fries
			}
			return out
		}
		p.friesCharge = gamemath.AccumulateCharge(p.friesCharge, config.Potato.FriesChargeRate,
			ctx.elapsedMs, config.TickMs, config.Potato.FriesChargeCap)
		return out
	}

	if !ctx.canAct {
		return out
	}
	switch {
	case ctx.intent.Ability1 && p.bombCooldownMs == 0 && !p.bomb.Valid():
		p.plantMs = config.Potato.BombPlantMs
	case pressed(ctx.intent.Ability2, ctx.prev.Ability2) && p.friesCooldownMs == 0:
		p.charging = true
		p.friesCharge = 0
	}
	return out
}

func (p *potatoAbilities) placeBomb(f *Fighter) {
	size := config.Potato.BombSize
	feet := f.BoundingBox()
	center := mgl64.Vec2{feet.Center().X(), feet.Bottom() - size/2}
	a := f.spawnProjectile(Projectile{
		Kind: AttackBomb,
		Box:  BoxAround(center, size, size),
	})
	p.bomb = a.Handle
	p.fuseMs = config.Potato.BombFuseMs
}

func (p *potatoAbilities) detonate(f *Fighter) *Attack {
	bomb, ok := f.pool.Get(p.bomb)
	f.pool.Release(p.bomb)
	p.bomb = ProjectileHandle{}
	p.bombCooldownMs = config.Potato.BombCooldownMs
	if !ok {
		return nil
	}
	r := config.Potato.BombRadius
	return &Attack{
		Kind:    AttackBomb,
		OwnerID: f.id,
		Box:     BoxAround(bomb.Box.Center(), 2*r, 2*r),
		Damage:  config.Potato.BombDamage,
	}
}

func (p *potatoAbilities) fireFries(f *Fighter) *Attack {
	ratio := gamemath.ChargeRatio(p.friesCharge, config.Potato.FriesChargeCap)
	p.friesCharge = 0
	p.friesCooldownMs = config.Potato.FriesCooldownMs

	speed := gamemath.CalculateShotSpeed(config.Potato.FriesSpeed, ratio)
	return f.spawnProjectile(Projectile{
		Kind:       AttackBullet,
		Box:        f.frontBox(config.Potato.FriesWidth, config.Potato.FriesHeight),
		Velocity:   mgl64.Vec2{f.body.facing * speed, 0},
		Damage:     gamemath.CalculateDamage(config.Potato.FriesBaseDamage, config.Potato.FriesBonusDamage, ratio),
		LifespanMs: config.Potato.FriesLifespanMs,
	})
}

func (p *potatoAbilities) interrupt() {
	p.plantMs = 0
	p.charging = false
	p.friesCharge = 0
}

func (p *potatoAbilities) reset() {
	*p = potatoAbilities{}
}

func (p *potatoAbilities) busy() bool {
	return p.plantMs > 0 || p.charging
}

func (p *potatoAbilities) extraJumps() int { return 0 }

func (p *potatoAbilities) state() config.StateID {
	switch {
	case p.plantMs > 0:
		return config.StatePlantingBomb
	case p.charging:
		return config.StateChargingFries
	}
	return config.StateNone
}
