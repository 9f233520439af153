package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/fighter"
)

// UpdateMatch ends a free-for-all once at most one fighter is not
// eliminated. A match with a single fighter never ends on its own.
func UpdateMatch(w donburi.World, elapsedMs float64) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStatePlaying {
		return
	}
	match.ElapsedMs += elapsedMs

	entries := FighterEntries(w)
	if len(entries) < 2 {
		return
	}
	standing := -1
	count := 0
	for _, e := range entries {
		fd := components.Fighter.Get(e)
		if fd.IsEliminated() {
			continue
		}
		count++
		standing = fd.Slot
	}
	if count > 1 {
		return
	}

	match.State = cfg.MatchStateFinished
	match.WinnerIndex = components.Draw
	if count == 1 {
		match.WinnerIndex = standing
	}
	logrus.WithFields(logrus.Fields{
		"winner":  match.WinnerIndex,
		"elapsed": match.ElapsedMs,
	}).Info("Match finished")
}

// ResetMatch puts every fighter back on its spawn with full lives and
// clears scores, hitboxes and knives.
func ResetMatch(w donburi.World) {
	ClearHitboxes(w)
	ClearKnives(w)
	if st, ok := components.Stage.First(w); ok {
		*components.Hazard.Get(st) = components.HazardData{TimerMs: cfg.Hazard.KnifeIntervalMs}
	}
	for _, e := range FighterEntries(w) {
		fd := components.Fighter.Get(e)
		fd.Reset()
		components.Object.Get(e).SetBox(fd.BoundingBox())
		components.DamageEvent.Get(e).Effects = nil
		components.PlayerInput.Get(e).Intent = fighter.Intent{}
	}
	if m, ok := components.Match.First(w); ok {
		match := components.Match.Get(m)
		for i := range match.Scores {
			match.Scores[i].KOs = 0
			match.Scores[i].Deaths = 0
		}
		match.State = cfg.MatchStatePlaying
		match.WinnerIndex = components.NoWinner
		match.ElapsedMs = 0
	}
	logrus.Info("Match reset")
}

// IsMatchFinished returns true if the match has ended
func IsMatchFinished(w donburi.World) bool {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return false
	}
	return components.Match.Get(matchEntry).State == cfg.MatchStateFinished
}

// Winner returns the winning slot, components.Draw, or components.NoWinner
// while the match is still running.
func Winner(w donburi.World) int {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return components.NoWinner
	}
	return components.Match.Get(matchEntry).WinnerIndex
}
