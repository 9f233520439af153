package factory

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/archetypes"
	"github.com/automoto/veggievengeance/components"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/stage"
)

// CreateStage stores the stage singleton. Fighters, hitboxes and knives
// join its resolv space. The first hazard drop waits a full interval.
func CreateStage(w donburi.World, st *stage.Stage) *donburi.Entry {
	entry := archetypes.Stage.Spawn(w)
	components.Stage.SetValue(entry, components.StageData{Stage: st})
	components.Hazard.SetValue(entry, components.HazardData{TimerMs: cfg.Hazard.KnifeIntervalMs})
	return entry
}

// CreateMatch stores the match singleton in the playing state.
func CreateMatch(w donburi.World) *donburi.Entry {
	entry := archetypes.Match.Spawn(w)
	components.Match.SetValue(entry, components.MatchData{
		State:       cfg.MatchStatePlaying,
		WinnerIndex: components.NoWinner,
	})
	return entry
}
