package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	"github.com/automoto/veggievengeance/fighter"
	"github.com/automoto/veggievengeance/shared/gamemath"
	"github.com/automoto/veggievengeance/tags"
)

// UpdateHitboxes tests every one-shot hitbox against the other fighters'
// hurtboxes and removes the expired ones.
func UpdateHitboxes(w donburi.World, elapsedMs float64) {
	var toRemove []*donburi.Entry

	tags.Hitbox.Each(w, func(hitboxEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitboxEntry)
		hitboxObject := components.Object.Get(hitboxEntry)

		if hitbox.Follow && !followOwner(hitbox, hitboxObject) {
			hitbox.LifetimeMs = 0
		}
		if hitbox.LifetimeMs > 0 {
			checkHitboxCollisions(hitbox, hitboxObject)
		}

		hitbox.LifetimeMs = gamemath.CountDown(hitbox.LifetimeMs, elapsedMs)
		if hitbox.LifetimeMs == 0 {
			toRemove = append(toRemove, hitboxEntry)
		}
	})

	for _, e := range toRemove {
		removeHitbox(w, e)
	}
}

// followOwner keeps a moving attack's volume attached to its owner. It
// reports false once the owner left the move.
func followOwner(hitbox *components.HitboxData, obj *components.ObjectData) bool {
	owner := hitbox.OwnerEntity
	if owner == nil || !owner.Valid() {
		return false
	}
	f := components.Fighter.Get(owner)
	switch hitbox.Attack.Kind {
	case fighter.AttackDash:
		if !f.IsDashing() {
			return false
		}
	case fighter.AttackUppercut:
		if !f.IsUppercutting() {
			return false
		}
	}

	center := f.BoundingBox().Center().Add(hitbox.Offset)
	box := fighter.BoxAround(center, hitbox.Attack.Box.W, hitbox.Attack.Box.H)
	obj.SetBox(box)
	hitbox.Attack.Box = box
	return true
}

func checkHitboxCollisions(hitbox *components.HitboxData, hitboxObject *components.ObjectData) {
	check := hitboxObject.Check(0, 0, tags.ResolvFighter)
	if check == nil {
		return
	}
	box := hitboxObject.Box()
	for _, obj := range check.Objects {
		target, ok := obj.Data.(*donburi.Entry)
		if !ok || !shouldHitTarget(hitbox, target, box, obj) {
			continue
		}
		hitbox.HitEntities[target] = true
		queueDamage(target, fighter.NewDamageEffect(&hitbox.Attack))
	}
}

func shouldHitTarget(hitbox *components.HitboxData, target *donburi.Entry, box fighter.BoundingBox, targetObject *resolv.Object) bool {
	if !target.Valid() || hitbox.OwnerEntity == target {
		return false
	}
	if hitbox.HitEntities[target] {
		return false
	}
	if !components.Fighter.Get(target).IsAlive() {
		return false
	}
	// resolv only reports shared cells.
	targetBox := fighter.BoundingBox{X: targetObject.X, Y: targetObject.Y, W: targetObject.W, H: targetObject.H}
	return box.Intersects(targetBox)
}

func removeHitbox(w donburi.World, e *donburi.Entry) {
	if st, ok := components.Stage.First(w); ok {
		components.Stage.Get(st).Space.Remove(components.Object.Get(e).Object)
	}
	w.Remove(e.Entity())
}

// ClearHitboxes removes every hitbox entity.
func ClearHitboxes(w donburi.World) {
	var all []*donburi.Entry
	tags.Hitbox.Each(w, func(e *donburi.Entry) {
		all = append(all, e)
	})
	for _, e := range all {
		removeHitbox(w, e)
	}
}
