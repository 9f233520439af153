package archetypes

import (
	"github.com/automoto/veggievengeance/components"
	"github.com/automoto/veggievengeance/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.PlayerInput,
		components.Object,
		components.State,
		components.DamageEvent,
		components.Flash,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	Knife = newArchetype(
		tags.Knife,
		components.Knife,
		components.Object,
	)
	Stage = newArchetype(
		components.Stage,
		components.Hazard,
	)
	Match = newArchetype(
		components.Match,
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
