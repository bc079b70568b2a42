package threeworlds

// HeroState is the persistent hero sheet: authored stats plus current
// condition. The save layer owns it; encounters receive a value copy and
// hand back updated numbers only on commit.
type HeroState struct {
	ID   string
	Name string

	MaxHP int
	HP    int
	// MaxWP of zero means the hero has no willpower track.
	MaxWP int
	WP    int

	Strength int
	Wisdom   int
	Power    int
	Defense  int
	Armor    int

	// Energy available for playing action cards each encounter.
	Energy int

	// CardIDs are the action cards the hero brings into an encounter.
	CardIDs []string
}
