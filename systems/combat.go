package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/fighter"
)

func queueDamage(target *donburi.Entry, effect *fighter.DamageEffect) {
	ev := components.DamageEvent.Get(target)
	ev.Effects = append(ev.Effects, effect)
}

// UpdateDamage applies the hits queued this tick in slot order and credits
// KOs to the attacker that finished a life.
func UpdateDamage(w donburi.World, _ float64) {
	var match *components.MatchData
	if m, ok := components.Match.First(w); ok {
		match = components.Match.Get(m)
	}

	for _, e := range FighterEntries(w) {
		ev := components.DamageEvent.Get(e)
		if len(ev.Effects) == 0 {
			continue
		}
		fd := components.Fighter.Get(e)

		for _, effect := range ev.Effects {
			wasAlive := fd.IsAlive()
			before := fd.Health()
			fd.ApplyDamageEffect(effect)
			if wasAlive && (fd.Health() < before || !fd.IsAlive()) {
				TriggerDamageFlash(e)
			}
			if !wasAlive || fd.IsAlive() {
				continue
			}

			logrus.WithFields(logrus.Fields{
				"target": fd.Slot,
				"source": effect.SourceID,
				"attack": effect.Kind.String(),
				"lives":  fd.Lives(),
			}).Info("Fighter KO")
			if match != nil {
				creditKO(match, fd.Slot, effect.SourceID)
			}
		}
		ev.Effects = ev.Effects[:0]
	}
}

// noSource marks a KO nobody gets credit for, like a stage hazard.
const noSource = -1

// creditKO records a lost life for target and a KO for source. Self KOs and
// hazards only count as deaths.
func creditKO(match *components.MatchData, target, source int) {
	match.AddDeath(target)
	if source >= 0 && source != target {
		match.AddKO(source)
	}
}

// TriggerDamageFlash tints a fighter red for a short moment.
func TriggerDamageFlash(e *donburi.Entry) {
	flash := components.Flash.Get(e)
	flash.DurationMs = cfg.Match.HitFlashMs
	flash.R, flash.G, flash.B = 1, 0.3, 0.3
}
