// Package fighter is the per-fighter simulation core: kinematics, status
// (health, block tank, hurt, tired-out, lives), the shared punch shell and
// one ability machine per archetype. A Fighter only ever mutates itself; hit
// resolution between fighters belongs to the caller.
package fighter

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"

	"github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/shared/gamemath"
)

// Params configures a new Fighter.
type Params struct {
	ID        int
	Name      string
	Archetype config.Archetype
	// Spawn is where the fighter's feet are placed at start and on respawn.
	Spawn mgl64.Vec2
	// Stats overrides the character table entry for Archetype.
	Stats *config.CharacterStats
	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

type Fighter struct {
	id        int
	name      string
	archetype config.Archetype
	stats     config.CharacterStats
	spawn     mgl64.Vec2

	// Presentation only. Scale.Y carries the landing squash.
	Scale    mgl64.Vec2
	Rotation float64

	body      body
	status    status
	action    Action
	actionMs  float64 // remaining duration of a committed action
	punch     punchState
	abilities abilitySet
	pool      *ProjectilePool
	// queued holds ability attacks that finished on a tick the punch shell
	// already returned one.
	queued []*Attack

	intent     Intent
	prevIntent Intent
	paused     bool

	squash *gween.Tween
	log    *logrus.Entry
}

func New(p Params) *Fighter {
	stats := config.Characters.Stats(p.Archetype)
	if p.Stats != nil {
		stats = *p.Stats
	}
	name := p.Name
	if name == "" {
		name = stats.Name
	}
	var logger logrus.FieldLogger = logrus.StandardLogger()
	if p.Logger != nil {
		logger = p.Logger
	}

	f := &Fighter{
		id:        p.ID,
		name:      name,
		archetype: p.Archetype,
		stats:     stats,
		spawn:     p.Spawn,
		Scale:     mgl64.Vec2{1, 1},
		abilities: newAbilitySet(p.Archetype),
		pool:      NewProjectilePool(),
		log: logger.WithFields(logrus.Fields{
			"fighter":   p.ID,
			"name":      name,
			"archetype": p.Archetype.String(),
		}),
	}
	f.body.facing = config.DirectionRight
	f.status.maxHealth = stats.Health
	f.status.lives = config.Fighter.StartingLives
	f.restore()
	return f
}

// Update advances the fighter by elapsedMs and returns at most one attack.
// An ability attack that lands on the same tick as a punch is returned on
// the next tick.
func (f *Fighter) Update(elapsedMs float64, platforms PlatformIndex) *Attack {
	if f.paused {
		return nil
	}
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	defer func() { f.prevIntent = f.intent }()

	if !f.advanceLifeTimers(elapsedMs) {
		return nil
	}

	f.integrate(elapsedMs, platforms)

	f.pool.Advance(elapsedMs, config.Physics.Gravity, config.Physics.TerminalVelocity,
		platforms.Bounds(), config.Match.StageMargin)

	f.updateBlocking()
	attack := f.updatePunch(elapsedMs, f.canAct() && !f.abilities.busy())

	ctx := abilityContext{
		elapsedMs: elapsedMs,
		canAct:    f.canAct() && f.action != ActionChargingPunch,
		intent:    f.intent,
		prev:      f.prevIntent,
	}
	// Input-driven abilities cannot fire while a punch starts, but timer
	// completions like a bomb detonation can. Those wait for the next tick.
	if a := f.abilities.update(f, ctx); a != nil {
		f.queued = append(f.queued, a)
	}
	if attack == nil && len(f.queued) > 0 {
		attack = f.queued[0]
		f.queued = f.queued[1:]
	}

	f.advanceCooldowns(elapsedMs)
	return attack
}

// canAct reports whether an offensive action may start.
func (f *Fighter) canAct() bool {
	s := &f.status
	return s.life == lifeAlive && s.hurtMs == 0 && !s.blocking && !f.action.Committed()
}

func (f *Fighter) advanceCooldowns(elapsedMs float64) {
	f.punch.cooldownMs = gamemath.CountDown(f.punch.cooldownMs, elapsedMs)
	f.status.tiredMs = gamemath.CountDown(f.status.tiredMs, elapsedMs)
	if f.actionMs > 0 {
		f.actionMs = gamemath.CountDown(f.actionMs, elapsedMs)
		if f.actionMs == 0 && f.action.Committed() {
			f.action = ActionIdle
		}
	}
	f.advanceBlockTank(elapsedMs)
	f.advanceSquash(elapsedMs)
}

// Reset restores the fighter to its match-start state.
func (f *Fighter) Reset() {
	f.status.lives = config.Fighter.StartingLives
	f.intent = Intent{}
	f.prevIntent = Intent{}
	f.respawn()
}

func (f *Fighter) spawnCenter() mgl64.Vec2 {
	return mgl64.Vec2{f.spawn.X(), f.spawn.Y() - config.Fighter.Height/2}
}

// SetIntent sets the inputs held for the next Update.
func (f *Fighter) SetIntent(in Intent) { f.intent = in }
func (f *Fighter) Intent() Intent      { return f.intent }

func (f *Fighter) SetPaused(paused bool) { f.paused = paused }
func (f *Fighter) Paused() bool          { return f.paused }

func (f *Fighter) ID() int                          { return f.id }
func (f *Fighter) Name() string                     { return f.name }
func (f *Fighter) Archetype() config.Archetype      { return f.archetype }
func (f *Fighter) Stats() config.CharacterStats     { return f.stats }
func (f *Fighter) Spawn() mgl64.Vec2                { return f.spawn }
func (f *Fighter) Position() mgl64.Vec2             { return f.body.pos }
func (f *Fighter) Force() mgl64.Vec2                { return f.body.force }
func (f *Fighter) Facing() float64                  { return f.body.facing }
func (f *Fighter) Action() Action                   { return f.action }
func (f *Fighter) Health() int                      { return f.status.health }
func (f *Fighter) MaxHealth() int                   { return f.status.maxHealth }
func (f *Fighter) Lives() int                       { return f.status.lives }
func (f *Fighter) BlockTank() int                   { return int(f.status.tank) }
func (f *Fighter) PunchCharge() float64             { return f.punch.charge }
func (f *Fighter) JumpsLeft() int                   { return f.body.jumpsLeft }
func (f *Fighter) IsAlive() bool                    { return f.status.life == lifeAlive }
func (f *Fighter) IsRespawning() bool               { return f.status.life == lifeRespawning }
func (f *Fighter) IsEliminated() bool               { return f.status.life == lifeEliminated }
func (f *Fighter) IsHurt() bool                     { return f.status.hurtMs > 0 }
func (f *Fighter) IsBlocking() bool                 { return f.status.blocking }
func (f *Fighter) IsTiredOut() bool                 { return f.status.tiredMs > 0 }
func (f *Fighter) IsGrounded() bool                 { return f.body.grounded }
func (f *Fighter) IsJumping() bool                  { return f.IsAlive() && !f.body.grounded }
func (f *Fighter) IsCrouching() bool                { return f.action == ActionCrouching }
func (f *Fighter) IsUppercutting() bool             { return f.action == ActionUppercutting }
func (f *Fighter) IsDashing() bool                  { return f.action == ActionDashing }
func (f *Fighter) IsPowerPunching() bool            { return f.action == ActionPowerPunching }
func (f *Fighter) IsPunching() bool                 { return f.action == ActionPunching || f.action == ActionPowerPunching }
func (f *Fighter) ProjectileCount(k AttackKind) int { return f.pool.Count(k) }

// Projectile looks up one live projectile by handle.
func (f *Fighter) Projectile(h ProjectileHandle) (Projectile, bool) {
	return f.pool.Get(h)
}

// Projectiles returns a snapshot of the fighter's live projectiles.
func (f *Fighter) Projectiles() []Projectile {
	return f.pool.Live()
}

// ReleaseProjectile frees a projectile after the caller resolved a hit with
// it. Stale handles are ignored.
func (f *Fighter) ReleaseProjectile(h ProjectileHandle) bool {
	return f.pool.Release(h)
}

// EmojiCount is the number of summoned emojis; always 0 for non-Eggplants.
func (f *Fighter) EmojiCount() int {
	if e, ok := f.abilities.(*eggplantAbilities); ok {
		return e.emojis
	}
	return 0
}

// HealAnimation is the heal glow in [0, 1]; always 0 for non-Yams.
func (f *Fighter) HealAnimation() float64 {
	if y, ok := f.abilities.(*yamAbilities); ok {
		return y.healGlow
	}
	return 0
}
