// Package threeworlds implements the Three Worlds ruleset entities.
// NOTE: These are data-only structs. All resolution math lives in the
// engine packages; content authoring and the save layer treat these as
// opaque records.
package threeworlds

// Default tuning values. Every consumer reads the resolved BalanceConfig;
// none of these numbers may be repeated downstream.
const (
	DefaultMatchMultiplier    = 1.5
	DefaultSurgeBaseline      = 2
	DefaultCriticalMultiplier = 2.0
	DefaultEscalationShift    = 0.25
)

// BalanceConfig is the single source for combat tuning. A zero value field
// means "use the default"; call Normalized before handing the config to an
// engine.
type BalanceConfig struct {
	// MatchMultiplier scales keyword effects when the card suit matches
	// the resolution context.
	MatchMultiplier float64

	// SurgeBaseline is the unscaled bonus granted by the surge keyword.
	SurgeBaseline int

	// CriticalMultiplier scales a critical card's effective value.
	CriticalMultiplier float64

	// EscalationShift is the world resonance delta applied toward the Nav
	// pole when a combatant switches resolution mode against a target.
	EscalationShift float64
}

// DefaultBalance returns the stock tuning.
func DefaultBalance() BalanceConfig {
	return BalanceConfig{
		MatchMultiplier:    DefaultMatchMultiplier,
		SurgeBaseline:      DefaultSurgeBaseline,
		CriticalMultiplier: DefaultCriticalMultiplier,
		EscalationShift:    DefaultEscalationShift,
	}
}

// Normalized returns a copy with zero-valued fields replaced by defaults.
func (c BalanceConfig) Normalized() BalanceConfig {
	if c.MatchMultiplier == 0 {
		c.MatchMultiplier = DefaultMatchMultiplier
	}
	if c.SurgeBaseline == 0 {
		c.SurgeBaseline = DefaultSurgeBaseline
	}
	if c.CriticalMultiplier == 0 {
		c.CriticalMultiplier = DefaultCriticalMultiplier
	}
	if c.EscalationShift == 0 {
		c.EscalationShift = DefaultEscalationShift
	}
	return c
}
