package fighter

import (
	"math"

	"github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/shared/gamemath"
)

type lifeState int

const (
	lifeAlive lifeState = iota
	lifeRespawning
	lifeEliminated
)

type status struct {
	health    int
	maxHealth int
	lives     int
	tank      float64

	blocking  bool
	hurtMs    float64
	tiredMs   float64
	respawnMs float64
	life      lifeState
}

// ApplyDamage applies raw damage, e.g. from a stage hazard.
func (f *Fighter) ApplyDamage(amount int) {
	f.takeDamage(amount, -1)
}

// ApplyDamageEffect consumes e and applies its amount. Effects aimed at a
// fighter that is not alive are left unconsumed.
func (f *Fighter) ApplyDamageEffect(e *DamageEffect) {
	if e == nil || f.status.life != lifeAlive {
		return
	}
	f.takeDamage(e.consume(), e.SourceID)
}

func (f *Fighter) takeDamage(amount, sourceID int) {
	s := &f.status
	if amount <= 0 || s.life != lifeAlive {
		return
	}

	if s.blocking && s.tank > 0 {
		absorbed := math.Min(float64(amount), s.tank)
		s.tank -= absorbed
		overflow := int(math.Ceil(float64(amount) - absorbed))
		if s.tank <= 0 {
			s.tank = 0
			f.tireOut()
		}
		if overflow <= 0 {
			return
		}
		amount = overflow
	}

	s.health = gamemath.ClampInt(s.health-amount, 0, s.maxHealth)
	if s.health == 0 {
		f.log.WithField("source", sourceID).Debug("fighter killed")
		f.die()
		return
	}
	f.hurt()
}

func (f *Fighter) hurt() {
	f.status.hurtMs = config.Fighter.HurtMs
	f.interruptOffense()
}

// interruptOffense drops every in-progress offensive action and archetype
// charge. Cooldowns already started keep running.
func (f *Fighter) interruptOffense() {
	if f.action.Offensive() {
		f.action = ActionIdle
		f.actionMs = 0
	}
	f.punch.charge = 0
	f.punch.atCapMs = 0
	f.abilities.interrupt()
}

func (f *Fighter) tireOut() {
	f.status.tiredMs = config.Block.TiredOutMs
	f.status.blocking = false
}

func (f *Fighter) heal(points int) {
	s := &f.status
	if s.life != lifeAlive || points <= 0 {
		return
	}
	s.health = min(s.health+points, s.maxHealth)
}

func (f *Fighter) die() {
	s := &f.status
	s.lives = max(s.lives-1, 0)
	f.clearFlags()
	f.body.force = f.body.force.Mul(0)

	if s.lives > 0 {
		s.life = lifeRespawning
		s.respawnMs = config.Fighter.RespawnMs
		f.log.WithField("lives", s.lives).Debug("fighter respawning")
		return
	}
	s.life = lifeEliminated
	f.log.Info("fighter eliminated")
}

func (f *Fighter) respawn() {
	f.restore()
	f.log.WithField("lives", f.status.lives).Debug("fighter respawned")
}

// restore puts the fighter back on its spawn point at full health.
func (f *Fighter) restore() {
	s := &f.status
	s.health = s.maxHealth
	s.tank = float64(config.Block.FullTank)
	s.respawnMs = 0
	s.life = lifeAlive
	f.clearFlags()
	f.body.place(f.spawnCenter(), f.abilities.extraJumps())
	f.squash = nil
	f.Scale[1] = 1
}

// clearFlags resets every action, overlay and ability flag.
func (f *Fighter) clearFlags() {
	f.action = ActionIdle
	f.actionMs = 0
	f.status.blocking = false
	f.status.hurtMs = 0
	f.status.tiredMs = 0
	f.punch = punchState{}
	f.abilities.reset()
	f.pool.Clear()
	f.queued = nil
}

// advanceLifeTimers runs the respawn and hurt countdowns. It returns false
// when the fighter is not alive for the rest of the tick.
func (f *Fighter) advanceLifeTimers(elapsedMs float64) bool {
	s := &f.status
	switch s.life {
	case lifeEliminated:
		return false
	case lifeRespawning:
		s.respawnMs = gamemath.CountDown(s.respawnMs, elapsedMs)
		if s.respawnMs == 0 {
			f.respawn()
		}
		return false
	}
	s.hurtMs = gamemath.CountDown(s.hurtMs, elapsedMs)
	return true
}

func (f *Fighter) updateBlocking() {
	s := &f.status
	if !f.intent.Block {
		s.blocking = false
		return
	}
	if s.blocking || !f.canBlock() {
		return
	}
	s.blocking = true
	if f.action == ActionChargingPunch {
		f.action = ActionIdle
	}
	f.punch.charge = 0
	f.punch.atCapMs = 0
	f.abilities.interrupt()
}

func (f *Fighter) canBlock() bool {
	s := &f.status
	return s.life == lifeAlive && s.tiredMs == 0 && s.tank > 0 && !f.action.Committed()
}

// advanceBlockTank drains the tank while blocking and refills it otherwise.
func (f *Fighter) advanceBlockTank(elapsedMs float64) {
	s := &f.status
	full := float64(config.Block.FullTank)
	if s.blocking {
		s.tank -= config.Block.DrainPerMs * elapsedMs
		if s.tank <= 0 {
			s.tank = 0
			f.tireOut()
		}
		return
	}
	s.tank = math.Min(s.tank+config.Block.RegenPerMs*elapsedMs, full)
}
