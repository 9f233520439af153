package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	"github.com/automoto/veggievengeance/fighter"
	"github.com/automoto/veggievengeance/tags"
)

// UpdateProjectiles resolves pooled projectiles against the other fighters.
// A projectile hits at most one fighter; the owner then releases its slot.
// Planted bombs carry no damage and are left alone until they detonate.
func UpdateProjectiles(w donburi.World, _ float64) {
	stageEntry, ok := components.Stage.First(w)
	if !ok {
		return
	}
	st := components.Stage.Get(stageEntry)

	for _, ownerEntry := range FighterEntries(w) {
		owner := components.Fighter.Get(ownerEntry)
		for _, p := range owner.Projectiles() {
			if p.Damage <= 0 {
				continue
			}
			target := projectileTarget(st.Overlapping(p.Box, tags.ResolvFighter), ownerEntry)
			if target == nil {
				continue
			}
			queueDamage(target, fighter.NewProjectileDamage(p))
			owner.ReleaseProjectile(p.Handle)
		}
	}
}

// projectileTarget picks the living fighter with the lowest slot among the
// overlapped objects.
func projectileTarget(objs []*resolv.Object, owner *donburi.Entry) *donburi.Entry {
	var best *donburi.Entry
	for _, obj := range objs {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || e == owner || !e.Valid() || !components.Fighter.Get(e).IsAlive() {
			continue
		}
		if best == nil || components.Fighter.Get(e).Slot < components.Fighter.Get(best).Slot {
			best = e
		}
	}
	return best
}
