package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/fighter"
)

// PlayerInputData is the intent a fighter will act on next tick. Keyboard
// adapters, bots and tests all write it the same way.
type PlayerInputData struct {
	PlayerIndex int
	Intent      fighter.Intent
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
