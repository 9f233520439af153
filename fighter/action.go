package fighter

// Action is the fighter's single exclusive activity. Blocking, hurt,
// tired-out and the life state are overlays tracked separately.
type Action int

const (
	ActionIdle Action = iota
	ActionCrouching
	ActionChargingPunch
	ActionPunching
	ActionPowerPunching
	ActionUppercutting
	ActionDashing
)

var actionNames = map[Action]string{
	ActionIdle:          "idle",
	ActionCrouching:     "crouching",
	ActionChargingPunch: "charging_punch",
	ActionPunching:      "punching",
	ActionPowerPunching: "power_punching",
	ActionUppercutting:  "uppercutting",
	ActionDashing:       "dashing",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Committed actions run for a fixed duration and ignore re-triggers.
func (a Action) Committed() bool {
	switch a {
	case ActionPunching, ActionPowerPunching, ActionUppercutting, ActionDashing:
		return true
	}
	return false
}

// Offensive actions are the ones hurt cancels.
func (a Action) Offensive() bool {
	return a == ActionChargingPunch || a.Committed()
}
