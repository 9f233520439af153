package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/stage"
)

// StageData is the singleton holding the loaded stage and its resolv space.
type StageData struct {
	*stage.Stage
}

var Stage = donburi.NewComponentType[StageData]()
