package systems

import (
	"slices"

	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	"github.com/automoto/veggievengeance/systems/factory"
	"github.com/automoto/veggievengeance/tags"
)

// UpdateFighters steps every fighter against the stage in slot order, keeps
// its hurtbox in the space in sync and turns returned one-shot attacks into
// hitbox entities.
func UpdateFighters(w donburi.World, elapsedMs float64) {
	stageEntry, ok := components.Stage.First(w)
	if !ok {
		return
	}
	st := components.Stage.Get(stageEntry)

	for _, e := range FighterEntries(w) {
		f := components.Fighter.Get(e)
		attack := f.Update(elapsedMs, st)
		components.Object.Get(e).SetBox(f.BoundingBox())
		if attack != nil {
			factory.CreateHitbox(w, e, attack)
		}
	}
}

// FighterEntries returns the fighter entities sorted by slot.
func FighterEntries(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	slices.SortFunc(entries, func(a, b *donburi.Entry) int {
		return components.Fighter.Get(a).Slot - components.Fighter.Get(b).Slot
	})
	return entries
}

// FighterBySlot finds the fighter entity for a player slot.
func FighterBySlot(w donburi.World, slot int) (*donburi.Entry, bool) {
	for _, e := range FighterEntries(w) {
		if components.Fighter.Get(e).Slot == slot {
			return e, true
		}
	}
	return nil, false
}
