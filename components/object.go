package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/fighter"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SetBox moves and resizes the object and refreshes its space cells.
func (o ObjectData) SetBox(b fighter.BoundingBox) {
	o.X, o.Y, o.W, o.H = b.X, b.Y, b.W, b.H
	o.Update()
}

// Box returns the object's rectangle.
func (o ObjectData) Box() fighter.BoundingBox {
	return fighter.BoundingBox{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
