package fighter

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/shared/gamemath"
)

// eggplantAbilities: summon an emoji (Ability1) and fire one (Ability2).
type eggplantAbilities struct {
	emojis          int
	spawnCooldownMs float64
	shootCooldownMs float64
}

func (e *eggplantAbilities) update(f *Fighter, ctx abilityContext) *Attack {
	e.spawnCooldownMs = gamemath.CountDown(e.spawnCooldownMs, ctx.elapsedMs)
	e.shootCooldownMs = gamemath.CountDown(e.shootCooldownMs, ctx.elapsedMs)

	if !ctx.canAct {
		return nil
	}
	if ctx.intent.Ability1 && e.spawnCooldownMs == 0 && e.emojis < config.Eggplant.MaxEmojis {
		e.emojis++
		e.spawnCooldownMs = config.Eggplant.SpawnCooldownMs
	}
	if ctx.intent.Ability2 && e.shootCooldownMs == 0 && e.emojis > 0 {
		e.emojis--
		e.shootCooldownMs = config.Eggplant.ShootCooldownMs
		size := config.Eggplant.EmojiSize
		return f.spawnProjectile(Projectile{
			Kind:       AttackEmoji,
			Box:        f.frontBox(size, size),
			Velocity:   mgl64.Vec2{f.body.facing * config.Eggplant.EmojiSpeed, 0},
			Damage:     config.Eggplant.EmojiDamage,
			LifespanMs: config.Eggplant.EmojiLifespanMs,
		})
	}
	return nil
}

func (e *eggplantAbilities) interrupt() {}

func (e *eggplantAbilities) reset() {
	*e = eggplantAbilities{}
}

func (e *eggplantAbilities) busy() bool      { return false }
func (e *eggplantAbilities) extraJumps() int { return 0 }

func (e *eggplantAbilities) state() config.StateID {
	return config.StateNone
}
