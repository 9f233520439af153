package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Hitbox  = donburi.NewTag().SetName("Hitbox")
	Knife   = donburi.NewTag().SetName("Knife")
)

// Resolv tags for the stage space
const (
	ResolvPlatform    = "platform"
	ResolvSolid       = "solid"
	ResolvPassThrough = "passthrough"
	ResolvFighter     = "Fighter"
	ResolvHitbox      = "Hitbox"
	ResolvKnife       = "Knife"
)
