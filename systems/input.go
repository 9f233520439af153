package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	"github.com/automoto/veggievengeance/tags"
)

// UpdateIntents hands every fighter the intent written into its
// PlayerInput component by the keyboard adapter, a bot or a test.
func UpdateIntents(w donburi.World, _ float64) {
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)
		components.Fighter.Get(e).SetIntent(input.Intent)
	})
}
