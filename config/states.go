package config

// StateID identifies what a fighter is visibly doing. It is derived from the
// fighter's action, overlays and life state each tick and only feeds
// presentation (sprite choice, debug colors).
type StateID int

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStatePlaying  MatchStateID = iota // Active gameplay
	MatchStateFinished                     // At most one fighter left standing
)

const (
	StateNone StateID = -1

	Idle StateID = iota
	Running
	Jump
	Crouch
	Guard
	Hit
	TiredOut
	Die
	Eliminated

	StateChargingPunch
	StateAttackingPunch
	StateAttackingPowerPunch
	StateAttackingMaxPowerPunch

	StatePlantingBomb
	StateChargingFries
	StateUppercut
	StateChargingCauliflower
	StateDashing
	StateHealing
)

// StateNames maps StateID to a short label used by the sandbox HUD and logs.
var StateNames = map[StateID]string{
	StateNone:                   "none",
	Idle:                        "idle",
	Running:                     "running",
	Jump:                        "jump",
	Crouch:                      "crouch",
	Guard:                       "guard",
	Hit:                         "hit",
	TiredOut:                    "tired",
	Die:                         "die",
	Eliminated:                  "eliminated",
	StateChargingPunch:          "charging_punch",
	StateAttackingPunch:         "punch",
	StateAttackingPowerPunch:    "power_punch",
	StateAttackingMaxPowerPunch: "max_power_punch",
	StatePlantingBomb:           "planting_bomb",
	StateChargingFries:          "charging_fries",
	StateUppercut:               "uppercut",
	StateChargingCauliflower:    "charging_cauliflower",
	StateDashing:                "dash",
	StateHealing:                "heal",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}
