package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/fighter"
)

type FighterData struct {
	*fighter.Fighter
	Slot int // player slot, also the spawn index
}

var Fighter = donburi.NewComponentType[FighterData]()
