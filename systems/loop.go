package systems

import "github.com/yohamta/donburi"

// Pipeline is the per-tick system order. Intents are read first, hits are
// collected only after every fighter moved, and damage lands last so that
// fighters trading blows in the same tick both connect.
var Pipeline = []System{
	WithGameplayChecks(UpdateBots),
	WithGameplayChecks(UpdateIntents),
	WithGameplayChecks(UpdateFighters),
	WithGameplayChecks(UpdateHitboxes),
	WithGameplayChecks(UpdateProjectiles),
	WithGameplayChecks(UpdateHazards),
	WithGameplayChecks(UpdateDamage),
	WithGameplayChecks(UpdateStates),
	WithGameplayChecks(UpdateEffects),
	WithPauseCheck(UpdateMatch),
}

// Step runs the whole pipeline once.
func Step(w donburi.World, elapsedMs float64) {
	for _, system := range Pipeline {
		system(w, elapsedMs)
	}
}
