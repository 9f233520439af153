package components

import (
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/yohamta/donburi"
)

type BotState int

const (
	BotStateIdle BotState = iota
	BotStateChase
	BotStateAttack
	BotStateGuard
	BotStateRetreat
)

// BotData drives a fighter's PlayerInput from simple AI decisions.
type BotData struct {
	Difficulty cfg.BotDifficulty
	AIState    BotState

	DecisionMs       float64
	AttackCooldownMs float64
	JumpCooldownMs   float64

	TargetSlot       int
	DistanceToTarget float64
}

var Bot = donburi.NewComponentType[BotData]()
