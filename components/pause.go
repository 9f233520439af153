package components

import "github.com/yohamta/donburi"

// PauseData gates every gameplay system.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
