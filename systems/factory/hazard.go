package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/archetypes"
	"github.com/automoto/veggievengeance/components"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/tags"
)

// CreateKnife drops a knife whose center is at x and whose tip starts at y.
func CreateKnife(w donburi.World, x, y float64) *donburi.Entry {
	k := archetypes.Knife.Spawn(w)

	width, height := cfg.Hazard.KnifeWidth, cfg.Hazard.KnifeHeight
	obj := resolv.NewObject(x-width/2, y, width, height, tags.ResolvKnife)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = k
	components.Object.SetValue(k, components.ObjectData{Object: obj})

	if st, ok := components.Stage.First(w); ok {
		components.Stage.Get(st).Space.Add(obj)
	}

	components.Knife.SetValue(k, components.KnifeData{
		Damage: cfg.Hazard.KnifeDamage,
		SpeedY: cfg.Hazard.KnifeFallSpeed,
	})
	return k
}
