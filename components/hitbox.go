package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/fighter"
)

type HitboxData struct {
	OwnerEntity *donburi.Entry          // fighter that produced the attack
	Attack      fighter.Attack          // descriptor snapshot
	LifetimeMs  float64                 // time left in the world
	HitEntities map[*donburi.Entry]bool // targets already hit
	Follow      bool                    // keep Offset from the owner's box
	Offset      mgl64.Vec2
}

var Hitbox = donburi.NewComponentType[HitboxData]()
