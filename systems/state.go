package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	"github.com/automoto/veggievengeance/tags"
)

// UpdateStates mirrors each fighter's derived presentation state and how
// long it has been in it.
func UpdateStates(w donburi.World, elapsedMs float64) {
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		state := components.State.Get(e)
		current := components.Fighter.Get(e).State()
		if current != state.CurrentState {
			state.PreviousState = state.CurrentState
			state.CurrentState = current
			state.StateTimer = 0
			return
		}
		state.StateTimer += elapsedMs
	})
}
