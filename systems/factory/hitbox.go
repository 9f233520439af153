package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/archetypes"
	"github.com/automoto/veggievengeance/components"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/fighter"
	"github.com/automoto/veggievengeance/tags"
)

// CreateHitbox puts a one-shot attack into the world. Attacks backed by a
// projectile slot stay in the owner's pool instead and get no entity.
func CreateHitbox(w donburi.World, owner *donburi.Entry, attack *fighter.Attack) *donburi.Entry {
	if attack == nil || attack.IsProjectile() || attack.Damage <= 0 {
		return nil
	}

	hitbox := archetypes.Hitbox.Spawn(w)
	box := attack.Box
	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	obj.Data = hitbox // Linked for O(1) lookup
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})

	if st, ok := components.Stage.First(w); ok {
		components.Stage.Get(st).Space.Add(obj)
	}

	data := components.HitboxData{
		OwnerEntity: owner,
		Attack:      *attack,
		LifetimeMs:  cfg.Combat.HitboxLifetimeMs,
		HitEntities: make(map[*donburi.Entry]bool),
	}
	// Dashes and uppercuts carry their hit volume along for the whole move.
	switch attack.Kind {
	case fighter.AttackDash:
		data.LifetimeMs = cfg.Yam.DashMs
		data.Follow = true
	case fighter.AttackUppercut:
		data.LifetimeMs = cfg.Broccoli.UppercutMs
		data.Follow = true
	}
	if data.Follow && owner != nil {
		ownerBox := components.Fighter.Get(owner).BoundingBox()
		data.Offset = box.Center().Sub(ownerBox.Center())
	}
	components.Hitbox.SetValue(hitbox, data)
	return hitbox
}
