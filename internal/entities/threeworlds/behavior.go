package threeworlds

// BehaviorPattern selects the intent table an enemy uses. The engine treats
// behaviors as opaque data; only the intent resolver interprets patterns.
type BehaviorPattern string

// Known behavior patterns.
const (
	// BehaviorAggressive always presses a physical attack.
	BehaviorAggressive BehaviorPattern = "aggressive"
	// BehaviorZealot favors spiritual assault when the target has a
	// willpower track.
	BehaviorZealot BehaviorPattern = "zealot"
	// BehaviorWary mixes attacks with watchful waiting, more so when hurt.
	BehaviorWary BehaviorPattern = "wary"
	// BehaviorCraven increasingly holds back as its health drops.
	BehaviorCraven BehaviorPattern = "craven"
)

// BehaviorDefinition describes how an enemy chooses intents.
type BehaviorDefinition struct {
	ID      string
	Pattern BehaviorPattern

	// SpiritBias in [0,1] weights spiritual over physical intents for
	// patterns that roll between them.
	SpiritBias float64
}
