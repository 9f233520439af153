package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/config"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // ms spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
