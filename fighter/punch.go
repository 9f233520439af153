package fighter

import (
	"github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/shared/gamemath"
)

type punchState struct {
	cooldownMs float64
	charge     float64
	atCapMs    float64 // time spent holding a full charge
	maxed      bool    // last power punch was released at cap
}

// updatePunch runs the shared punch / power-punch shell. canAct is false
// while hurt, blocking, committed or busy with an archetype ability.
func (f *Fighter) updatePunch(elapsedMs float64, canAct bool) *Attack {
	in, prev := f.intent, f.prevIntent
	p := &f.punch

	if f.action == ActionChargingPunch {
		if !in.PowerPunch {
			return f.releasePowerPunch()
		}
		p.charge = gamemath.AccumulateCharge(p.charge, config.Combat.PowerPunchRate, elapsedMs,
			config.TickMs, config.Combat.PowerPunchChargeCap)
		if p.charge >= config.Combat.PowerPunchChargeCap {
			p.atCapMs += elapsedMs
			if p.atCapMs > config.Combat.HoldingTooMuchMs {
				f.action = ActionIdle
				p.charge = 0
				p.atCapMs = 0
				f.tireOut()
				f.log.Debug("power punch held too long")
			}
		}
		return nil
	}

	if !canAct || p.cooldownMs > 0 {
		return nil
	}

	switch {
	case in.Punch:
		f.action = ActionPunching
		f.actionMs = config.Combat.PunchCooldownMs
		p.cooldownMs = config.Combat.PunchCooldownMs
		p.maxed = false
		return f.meleeAttack(AttackPunch, f.stats.Strength, config.Combat.PunchWidth, config.Combat.PunchHeight)
	case pressed(in.PowerPunch, prev.PowerPunch):
		f.action = ActionChargingPunch
		p.charge = 0
		p.atCapMs = 0
	}
	return nil
}

func (f *Fighter) releasePowerPunch() *Attack {
	p := &f.punch
	limit := config.Combat.PowerPunchChargeCap
	ratio := gamemath.ChargeRatio(p.charge, limit)
	damage := gamemath.CalculateDamage(f.stats.Strength, config.Combat.MaxPowerPunchDamage-f.stats.Strength, ratio)

	p.maxed = p.charge >= limit
	p.charge = 0
	p.atCapMs = 0
	p.cooldownMs = config.Combat.PunchCooldownMs
	f.action = ActionPowerPunching
	f.actionMs = config.Combat.PowerPunchMs

	a := f.meleeAttack(AttackPowerPunch, damage, config.Combat.PunchWidth, config.Combat.PunchHeight)
	a.Maxed = p.maxed
	return a
}

// meleeAttack builds a one-shot hit volume in front of the fighter,
// vertically centered on the body.
func (f *Fighter) meleeAttack(kind AttackKind, damage int, w, h float64) *Attack {
	body := f.BoundingBox()
	x := body.Right()
	if f.body.facing < 0 {
		x = body.Left() - w
	}
	return &Attack{
		Kind:    kind,
		OwnerID: f.id,
		Box:     BoundingBox{X: x, Y: body.Top() + (body.H-h)/2, W: w, H: h},
		Damage:  damage,
	}
}
