package fighter

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/shared/gamemath"
)

// yamAbilities: dash (Ability1) and self heal (Ability2). Healing does not
// care about hurt or blocking.
type yamAbilities struct {
	dashCooldownMs float64
	healCooldownMs float64

	healTween *gween.Tween
	healGlow  float64
}

func (y *yamAbilities) update(f *Fighter, ctx abilityContext) *Attack {
	y.dashCooldownMs = gamemath.CountDown(y.dashCooldownMs, ctx.elapsedMs)
	y.healCooldownMs = gamemath.CountDown(y.healCooldownMs, ctx.elapsedMs)

	if y.healTween != nil {
		v, done := y.healTween.Update(float32(ctx.elapsedMs / 1000))
		y.healGlow = float64(v)
		if done {
			y.healTween = nil
			y.healGlow = 0
		}
	}

	if ctx.intent.Ability2 && y.healCooldownMs == 0 {
		f.heal(config.Yam.HealPoints)
		y.healCooldownMs = config.Yam.HealCooldownMs
		y.healTween = gween.New(1, 0, float32(config.Yam.HealAnimationMs/1000), ease.OutQuad)
		y.healGlow = 1
	}

	if ctx.canAct && ctx.intent.Ability1 && y.dashCooldownMs == 0 {
		return y.dash(f)
	}
	return nil
}

func (y *yamAbilities) dash(f *Fighter) *Attack {
	y.dashCooldownMs = config.Yam.DashCooldownMs
	f.action = ActionDashing
	f.actionMs = config.Yam.DashMs
	f.body.force[0] = f.body.facing * config.Yam.DashSpeed
	return &Attack{
		Kind:     AttackDash,
		OwnerID:  f.id,
		Box:      f.BoundingBox(),
		Damage:   config.Yam.DashDamage,
		Velocity: f.body.force,
	}
}

func (y *yamAbilities) interrupt() {}

func (y *yamAbilities) reset() {
	*y = yamAbilities{}
}

func (y *yamAbilities) busy() bool      { return false }
func (y *yamAbilities) extraJumps() int { return 0 }

func (y *yamAbilities) state() config.StateID {
	if y.healTween != nil {
		return config.StateHealing
	}
	return config.StateNone
}
