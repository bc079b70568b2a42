package encounter

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity type tags reported through core.Entity.
const (
	EntityTypeHero  = "hero"
	EntityTypeEnemy = "enemy"
)

// Hero is the player combatant as the engine sees it: a value copy taken at
// construction, mutated only through engine actions, and handed back in the
// final result. Persistent hero data stays in the save layer.
type Hero struct {
	ID   string
	Name string

	HP    int
	MaxHP int
	// MaxWP of zero means no willpower track.
	WP    int
	MaxWP int

	Strength int
	Wisdom   int
	Power    int
	Defense  int
	Armor    int
}

// GetID implements core.Entity.
func (h Hero) GetID() string { return h.ID }

// GetType implements core.Entity.
func (h Hero) GetType() string { return EntityTypeHero }

// Alive reports whether the hero is still standing.
func (h Hero) Alive() bool { return h.HP > 0 }

// HasWill reports whether the hero has a willpower track.
func (h Hero) HasWill() bool { return h.MaxWP > 0 }

// WillBroken reports whether a present willpower track has been emptied.
func (h Hero) WillBroken() bool { return h.MaxWP > 0 && h.WP <= 0 }

// Enemy is one opposing combatant instance.
type Enemy struct {
	ID   string
	Name string

	HP    int
	MaxHP int
	// MaxWP of zero means the enemy cannot be pacified.
	WP    int
	MaxWP int

	Power   int
	Defense int
	Armor   int

	BehaviorID string
}

// GetID implements core.Entity.
func (e Enemy) GetID() string { return e.ID }

// GetType implements core.Entity.
func (e Enemy) GetType() string { return EntityTypeEnemy }

// Alive reports whether the enemy is still standing.
func (e Enemy) Alive() bool { return e.HP > 0 }

// HasWill reports whether the enemy has a willpower track.
func (e Enemy) HasWill() bool { return e.MaxWP > 0 }

// Pacified reports whether a present willpower track has been emptied
// while the enemy still stands.
func (e Enemy) Pacified() bool { return e.MaxWP > 0 && e.WP <= 0 && e.Alive() }

var (
	_ core.Entity = Hero{}
	_ core.Entity = Enemy{}
)
