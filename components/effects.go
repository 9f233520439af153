package components

import "github.com/yohamta/donburi"

// FlashData tracks the hit tint on a fighter
type FlashData struct {
	DurationMs float64
	R, G, B    float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()
