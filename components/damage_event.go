package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/fighter"
)

// DamageEventData queues the hits a fighter took this tick.
type DamageEventData struct {
	Effects []*fighter.DamageEffect
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
