package fighter

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/veggievengeance/config"
)

const (
	landingSquash   = 0.8
	landingSquashMs = 120
)

// State derives the presentation state from the action, overlays and life
// state. The simulation never reads it back.
func (f *Fighter) State() config.StateID {
	switch f.status.life {
	case lifeEliminated:
		return config.Eliminated
	case lifeRespawning:
		return config.Die
	}
	if f.status.hurtMs > 0 {
		return config.Hit
	}

	switch f.action {
	case ActionDashing:
		return config.StateDashing
	case ActionUppercutting:
		return config.StateUppercut
	case ActionPowerPunching:
		if f.punch.maxed {
			return config.StateAttackingMaxPowerPunch
		}
		return config.StateAttackingPowerPunch
	case ActionPunching:
		return config.StateAttackingPunch
	case ActionChargingPunch:
		return config.StateChargingPunch
	}

	if s := f.abilities.state(); s != config.StateNone {
		return s
	}

	switch {
	case f.status.blocking:
		return config.Guard
	case f.status.tiredMs > 0:
		return config.TiredOut
	case f.action == ActionCrouching:
		return config.Crouch
	case !f.body.grounded:
		return config.Jump
	case f.body.force.X() != 0:
		return config.Running
	}
	return config.Idle
}

func (f *Fighter) startSquash() {
	f.squash = gween.New(landingSquash, 1, landingSquashMs/1000.0, ease.OutQuad)
	f.Scale[1] = landingSquash
}

func (f *Fighter) advanceSquash(elapsedMs float64) {
	if f.squash == nil {
		return
	}
	v, done := f.squash.Update(float32(elapsedMs / 1000))
	f.Scale[1] = float64(v)
	if done {
		f.squash = nil
		f.Scale[1] = 1
	}
}
