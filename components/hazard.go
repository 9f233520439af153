package components

import "github.com/yohamta/donburi"

// KnifeData is a knife dropping from the stage's knife rack.
type KnifeData struct {
	Damage int
	SpeedY float64 // units/s, downward
}

var Knife = donburi.NewComponentType[KnifeData]()

// HazardData times the stage's hazard drops. It lives on the stage entity.
type HazardData struct {
	TimerMs float64 // until the next drop
	Drops   int     // drops so far, picks the next zone
}

var Hazard = donburi.NewComponentType[HazardData]()
