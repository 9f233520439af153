package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	"github.com/automoto/veggievengeance/shared/gamemath"
	"github.com/automoto/veggievengeance/tags"
)

// UpdateEffects runs down the hit flashes.
func UpdateEffects(w donburi.World, elapsedMs float64) {
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.DurationMs == 0 {
			return
		}
		flash.DurationMs = gamemath.CountDown(flash.DurationMs, elapsedMs)
		if flash.DurationMs == 0 {
			flash.R, flash.G, flash.B = 1, 1, 1
		}
	})
}
