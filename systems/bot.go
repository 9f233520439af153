package systems

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/automoto/veggievengeance/components"
	cfg "github.com/automoto/veggievengeance/config"
	"github.com/automoto/veggievengeance/fighter"
	"github.com/automoto/veggievengeance/shared/gamemath"
)

// Random number generator for bot decision making.
// Fixed seed keeps bot behavior reproducible in tests.
var rng = rand.New(rand.NewSource(42))

type fighterInfo struct {
	entry     *donburi.Entry
	slot      int
	center    mgl64.Vec2
	attacking bool
}

// UpdateBots writes PlayerInput intents for bot-controlled fighters. It runs
// before UpdateIntents so bots and humans reach the fighters the same way.
func UpdateBots(w donburi.World, elapsedMs float64) {
	var others []fighterInfo
	for _, e := range FighterEntries(w) {
		fd := components.Fighter.Get(e)
		if !fd.IsAlive() {
			continue
		}
		others = append(others, fighterInfo{
			entry:     e,
			slot:      fd.Slot,
			center:    fd.BoundingBox().Center(),
			attacking: fd.Action().Offensive(),
		})
	}

	components.Bot.Each(w, func(e *donburi.Entry) {
		updateBotAI(e, others, elapsedMs)
	})
}

func updateBotAI(e *donburi.Entry, others []fighterInfo, elapsedMs float64) {
	bot := components.Bot.Get(e)
	input := components.PlayerInput.Get(e)
	fd := components.Fighter.Get(e)
	tuning := cfg.Bot.Difficulties[bot.Difficulty]

	bot.DecisionMs = gamemath.CountDown(bot.DecisionMs, elapsedMs)
	bot.AttackCooldownMs = gamemath.CountDown(bot.AttackCooldownMs, elapsedMs)
	bot.JumpCooldownMs = gamemath.CountDown(bot.JumpCooldownMs, elapsedMs)

	input.Intent = fighter.Intent{}
	if !fd.IsAlive() {
		bot.AIState = components.BotStateIdle
		return
	}

	center := fd.BoundingBox().Center()
	target := findNearestTarget(fd.Slot, center, others)
	if target == nil {
		bot.TargetSlot = -1
		bot.DistanceToTarget = math.MaxFloat64
		bot.AIState = components.BotStateIdle
		return
	}
	bot.TargetSlot = target.slot
	bot.DistanceToTarget = center.Sub(target.center).Len()

	if bot.DecisionMs == 0 {
		healthPercent := float64(fd.Health()) / float64(fd.MaxHealth())
		updateBotState(bot, tuning, target, healthPercent)
		bot.DecisionMs = tuning.ReactionDelayMs
	}

	delta := target.center.Sub(center)
	switch bot.AIState {
	case components.BotStateChase:
		generateChaseInputs(bot, &input.Intent, fd, delta)
	case components.BotStateAttack:
		generateAttackInputs(bot, tuning, &input.Intent, fd, delta)
	case components.BotStateGuard:
		input.Intent.Block = true
	case components.BotStateRetreat:
		generateRetreatInputs(bot, &input.Intent, delta)
	}
}

func findNearestTarget(mySlot int, me mgl64.Vec2, others []fighterInfo) *fighterInfo {
	var nearest *fighterInfo
	nearestDist := math.MaxFloat64

	for i := range others {
		o := &others[i]
		if o.slot == mySlot {
			continue
		}
		dist := me.Sub(o.center).Len()
		if dist < nearestDist {
			nearestDist = dist
			nearest = o
		}
	}
	return nearest
}

func updateBotState(bot *components.BotData, tuning cfg.BotDifficultyConfig, target *fighterInfo, healthPercent float64) {
	inRange := bot.DistanceToTarget < tuning.AttackRange

	switch {
	case inRange && target.attacking && rng.Float64() < tuning.BlockChance:
		bot.AIState = components.BotStateGuard
	case healthPercent < tuning.RetreatThreshold:
		bot.AIState = components.BotStateRetreat
	case inRange:
		bot.AIState = components.BotStateAttack
	default:
		bot.AIState = components.BotStateChase
	}
}

func moveToward(in *fighter.Intent, dx, deadZone float64) {
	if dx > deadZone {
		in.MoveRight = true
	} else if dx < -deadZone {
		in.MoveLeft = true
	}
}

func generateChaseInputs(bot *components.BotData, in *fighter.Intent, fd *components.FighterData, delta mgl64.Vec2) {
	moveToward(in, delta.X(), 10)

	// Jump if target is significantly above us
	if delta.Y() < -60 && bot.JumpCooldownMs == 0 {
		in.Jump = true
		bot.JumpCooldownMs = cfg.Ticks(45)
	}
	// Drop through shelves toward a target below
	if delta.Y() > 60 && fd.IsGrounded() {
		in.PassThrough = true
	}
}

func generateAttackInputs(bot *components.BotData, tuning cfg.BotDifficultyConfig, in *fighter.Intent, fd *components.FighterData, delta mgl64.Vec2) {
	// Turn toward the target before swinging
	if (delta.X() > 0) != (fd.Facing() > 0) {
		moveToward(in, delta.X(), 0)
		return
	}
	if math.Abs(delta.X()) > 40 {
		moveToward(in, delta.X(), 0)
	}

	if bot.AttackCooldownMs > 0 {
		return
	}

	roll := rng.Float64()
	switch {
	case roll < tuning.AbilityChance/2:
		in.Ability1 = true
	case roll < tuning.AbilityChance:
		in.Ability2 = true
	default:
		in.Punch = true
	}
	bot.AttackCooldownMs = cfg.Combat.PunchCooldownMs + tuning.ReactionDelayMs/2
}

func generateRetreatInputs(bot *components.BotData, in *fighter.Intent, delta mgl64.Vec2) {
	if bot.DistanceToTarget < 120 {
		moveToward(in, -delta.X(), 0)
	}
}
