package threeworlds

// EnemyDefinition is the authored stat block for an enemy type. Encounter
// instances copy these values; definitions are never mutated by play.
type EnemyDefinition struct {
	ID   string
	Name string

	MaxHP int
	// MaxWP of zero means the enemy has no willpower track and cannot be
	// pacified.
	MaxWP int

	Power   int
	Defense int
	Armor   int

	BehaviorID string
}
