package pet

// Game constants
const (
	DefaultName = "Buddy"
	MaxStat     = 100
	MinStat     = 0
	DefaultStat = MaxStat / 2

	// Mood thresholds
	HighStatThreshold = 70
	LowStatThreshold  = 30
	NeglectThreshold  = 5 // Steps without interaction before the pet turns sad

	// Passive decay per step
	DecayRate      = 5
	HappyDecayRate = DecayRate / 2 // Happy pets degrade slower

	// Playing tires the pet out
	PlaySleepCost = 5

	// Status emojis
	StatusEmojiHappy    = "😸"
	StatusEmojiNeutral  = "🙂"
	StatusEmojiSad      = "😿"
	StatusEmojiSleeping = "😴"
	StatusEmojiDead     = "💀"
)
