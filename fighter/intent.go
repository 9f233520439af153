package fighter

// Intent is the set of inputs a human or AI driver holds this tick. The
// fighter compares it with the previous tick's intent to find presses and
// releases.
type Intent struct {
	MoveLeft    bool
	MoveRight   bool
	Jump        bool
	Crouch      bool
	Block       bool
	Punch       bool
	PowerPunch  bool
	Ability1    bool
	Ability2    bool
	PassThrough bool
}

// Direction returns -1, 0 or 1 for the horizontal input.
func (in Intent) Direction() float64 {
	switch {
	case in.MoveLeft && !in.MoveRight:
		return -1
	case in.MoveRight && !in.MoveLeft:
		return 1
	}
	return 0
}

func pressed(cur, prev bool) bool  { return cur && !prev }
func released(cur, prev bool) bool { return !cur && prev }
