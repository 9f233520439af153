package config

import "image/color"

// TickMs is the nominal frame length the tuning values were authored against.
// Values described in ticks are converted to milliseconds with it.
const TickMs = 1000.0 / 60.0

// MaxPowerPunchDamage caps a fully charged power punch. Character strength
// must stay below it.
const MaxPowerPunchDamage = 35

// Ticks converts a tick count into milliseconds.
func Ticks(n float64) float64 {
	return n * TickMs
}

// PhysicsConfig contains the kinematics constants shared by every fighter.
type PhysicsConfig struct {
	Gravity          float64 // units/s², applied while airborne
	TerminalVelocity float64 // max downward speed, units/s
	JumpVelocity     float64 // initial upward speed, units/s
	Friction         float64 // horizontal decay, units/s per second
	GroundProbe      float64 // distance below the feet checked for support
}

// FighterConfig contains shared fighter dimensions and life-cycle values.
type FighterConfig struct {
	Width         float64
	Height        float64
	CrouchHeight  float64
	StartingLives int
	RespawnMs     float64
	HurtMs        float64
}

// CombatConfig contains the shared punch/power-punch values.
type CombatConfig struct {
	PunchCooldownMs     float64
	PunchWidth          float64
	PunchHeight         float64
	MaxPowerPunchDamage int
	PowerPunchChargeCap float64 // charge units
	PowerPunchRate      float64 // charge units per tick
	PowerPunchMs        float64 // committed duration of the release
	HoldingTooMuchMs    float64 // time held at cap before the self penalty
	HitboxLifetimeMs    float64 // how long a one-shot hitbox lives in the match world
}

// BlockConfig contains block-tank tuning.
type BlockConfig struct {
	FullTank   int
	DrainPerMs float64 // tank spent per ms of holding block
	RegenPerMs float64 // tank restored per ms while not blocking
	TiredOutMs float64
}

// PotatoConfig contains the Tater Tot bomb and fries values.
type PotatoConfig struct {
	BombPlantMs    float64
	BombFuseMs     float64
	BombCooldownMs float64
	BombRadius     float64
	BombDamage     int
	BombSize       float64

	FriesCooldownMs  float64
	FriesChargeRate  float64 // charge units per tick
	FriesChargeCap   float64
	FriesBaseDamage  int
	FriesBonusDamage int     // extra damage at full charge
	FriesSpeed       float64 // units/s
	FriesLifespanMs  float64
	FriesWidth       float64
	FriesHeight      float64
}

// BroccoliConfig contains the double jump, uppercut and cauliflower values.
type BroccoliConfig struct {
	ExtraJumps int

	UppercutVelocity   float64 // units/s, upward
	UppercutMs         float64
	UppercutCooldownMs float64
	UppercutDamage     int
	UppercutWidth      float64
	UppercutHeight     float64

	CauliflowerCooldownMs float64
	CauliflowerChargeRate float64 // charge units per tick
	CauliflowerBaseSpeed  float64 // units per tick before charge
	CauliflowerMaxSpeed   float64 // units per tick
	CauliflowerMaxOnStage int
	CauliflowerDamage     int
	CauliflowerLift       float64 // upward launch speed, units/s
	CauliflowerLifespanMs float64
	CauliflowerSize       float64
}

// EggplantConfig contains the emoji resource values.
type EggplantConfig struct {
	SpawnCooldownMs float64
	ShootCooldownMs float64
	MaxEmojis       int
	EmojiDamage     int
	EmojiSpeed      float64 // units/s
	EmojiLifespanMs float64
	EmojiSize       float64
}

// YamConfig contains the dash and heal values.
type YamConfig struct {
	DashMs         float64
	DashCooldownMs float64
	DashSpeed      float64 // units/s
	DashDamage     int

	HealCooldownMs  float64
	HealAnimationMs float64
	HealPoints      int
}

// MatchConfig contains match loop settings.
type MatchConfig struct {
	FrameMs     float64 // fixed step used by the sandbox
	StageCellW  int     // resolv cell size
	StageCellH  int
	StageMargin float64 // projectiles beyond the stage by this much are dropped
	HitFlashMs  float64 // how long a hit fighter is tinted
}

// HazardConfig tunes stage hazards.
type HazardConfig struct {
	KnifeIntervalMs float64 // time between knife drops
	KnifeDamage     int     // raw damage, goes through the block tank
	KnifeFallSpeed  float64 // units/s
	KnifeWidth      float64
	KnifeHeight     float64
}

// Config holds general window configuration.
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains command-line toggles for the sandbox.
type DebugConfig struct {
	DrawBoxes   bool
	WatchTables bool
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Fighter FighterConfig
var Combat CombatConfig
var Block BlockConfig
var Potato PotatoConfig
var Broccoli BroccoliConfig
var Eggplant EggplantConfig
var Yam YamConfig
var Match MatchConfig
var Hazard HazardConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Brown        = color.RGBA{R: 150, G: 100, B: 50, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Physics = PhysicsConfig{
		Gravity:          800.0,
		TerminalVelocity: 400.0,
		JumpVelocity:     400.0,
		Friction:         1200.0, // residual speed bleeds off in ~0.2s
		GroundProbe:      1.0,
	}

	Fighter = FighterConfig{
		Width:         60,
		Height:        100,
		CrouchHeight:  60,
		StartingLives: 3,
		RespawnMs:     1000,
		HurtMs:        Ticks(15),
	}

	Combat = CombatConfig{
		PunchCooldownMs:     Ticks(20),
		PunchWidth:          50,
		PunchHeight:         30,
		MaxPowerPunchDamage: MaxPowerPunchDamage,
		PowerPunchChargeCap: 30,
		PowerPunchRate:      0.5,
		PowerPunchMs:        Ticks(20),
		HoldingTooMuchMs:    Ticks(120),
		HitboxLifetimeMs:    Ticks(6),
	}

	Block = BlockConfig{
		FullTank:   4000,
		DrainPerMs: 1.0, // a full tank lasts 4s of holding block
		RegenPerMs: 0.5,
		TiredOutMs: Ticks(80),
	}

	Potato = PotatoConfig{
		BombPlantMs:    Ticks(15),
		BombFuseMs:     Ticks(500),
		BombCooldownMs: Ticks(300),
		BombRadius:     90,
		BombDamage:     25,
		BombSize:       24,

		FriesCooldownMs:  Ticks(100),
		FriesChargeRate:  0.5,
		FriesChargeCap:   20,
		FriesBaseDamage:  5,
		FriesBonusDamage: 10,
		FriesSpeed:       600,
		FriesLifespanMs:  1500,
		FriesWidth:       30,
		FriesHeight:      8,
	}

	Broccoli = BroccoliConfig{
		ExtraJumps: 1,

		UppercutVelocity:   500.0,
		UppercutMs:         Ticks(20),
		UppercutCooldownMs: Ticks(200),
		UppercutDamage:     15,
		UppercutWidth:      40,
		UppercutHeight:     80,

		CauliflowerCooldownMs: Ticks(100),
		CauliflowerChargeRate: 0.5,
		CauliflowerBaseSpeed:  4,
		CauliflowerMaxSpeed:   20,
		CauliflowerMaxOnStage: 5,
		CauliflowerDamage:     8,
		CauliflowerLift:       250,
		CauliflowerLifespanMs: 3000,
		CauliflowerSize:       24,
	}

	Eggplant = EggplantConfig{
		SpawnCooldownMs: 500,
		ShootCooldownMs: Ticks(20),
		MaxEmojis:       3,
		EmojiDamage:     10,
		EmojiSpeed:      500,
		EmojiLifespanMs: 2000,
		EmojiSize:       28,
	}

	Yam = YamConfig{
		DashMs:         500,
		DashCooldownMs: 1000,
		DashSpeed:      700,
		DashDamage:     12,

		HealCooldownMs:  1000,
		HealAnimationMs: 200,
		HealPoints:      5,
	}

	Match = MatchConfig{
		FrameMs:     TickMs,
		StageCellW:  32,
		StageCellH:  32,
		StageMargin: 200,
		HitFlashMs:  Ticks(8),
	}

	Hazard = HazardConfig{
		KnifeIntervalMs: 4000,
		KnifeDamage:     10,
		KnifeFallSpeed:  350,
		KnifeWidth:      12,
		KnifeHeight:     36,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		DrawBoxes:   true,
		WatchTables: false,
	}
}
