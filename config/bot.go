package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

var botDifficultyNames = map[string]BotDifficulty{
	"easy":   BotDifficultyEasy,
	"normal": BotDifficultyNormal,
	"hard":   BotDifficultyHard,
}

// ParseBotDifficulty maps "easy", "normal" or "hard" to a difficulty.
func ParseBotDifficulty(s string) (BotDifficulty, bool) {
	d, ok := botDifficultyNames[s]
	return d, ok
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelayMs  float64 // delay between decisions
	AttackRange      float64 // Distance to start attacking
	RetreatThreshold float64 // Health % to start retreating
	BlockChance      float64 // chance to guard against an attacking target in range
	AbilityChance    float64 // chance an attack decision uses an ability instead of a punch
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelayMs:  Ticks(30), // 0.5 second reaction time
				AttackRange:      70.0,
				RetreatThreshold: 0.2, // Retreat at 20% health
				BlockChance:      0.1,
				AbilityChance:    0.15,
			},
			BotDifficultyNormal: {
				ReactionDelayMs:  Ticks(15),
				AttackRange:      80.0,
				RetreatThreshold: 0.3,
				BlockChance:      0.35,
				AbilityChance:    0.3,
			},
			BotDifficultyHard: {
				ReactionDelayMs:  Ticks(5), // Near-instant reaction
				AttackRange:      90.0,
				RetreatThreshold: 0.15,
				BlockChance:      0.6,
				AbilityChance:    0.4,
			},
		},
	}
}
