package v1

import (
	"time"
)

// Wire types for the v1 JSON API. Domain types stay tag-free; everything
// that crosses the HTTP boundary is converted into the snake_case shapes
// below so the internal structs can evolve without breaking clients.

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// --- saves ---

type createSaveRequest struct {
	// HeroName overrides the default hero name when present.
	HeroName string `json:"hero_name"`
}

type saveResponse struct {
	Save saveJSON `json:"save"`
}

type saveJSON struct {
	ID        string    `json:"id"`
	Hero      heroJSON  `json:"hero"`
	Deck      deckJSON  `json:"deck"`
	Resonance float64   `json:"resonance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type heroJSON struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	MaxHP    int      `json:"max_hp"`
	HP       int      `json:"hp"`
	MaxWP    int      `json:"max_wp"`
	WP       int      `json:"wp"`
	Strength int      `json:"strength"`
	Wisdom   int      `json:"wisdom"`
	Power    int      `json:"power"`
	Defense  int      `json:"defense"`
	Armor    int      `json:"armor"`
	Energy   int      `json:"energy"`
	CardIDs  []string `json:"card_ids"`
}

type deckJSON struct {
	DrawPile    []fateCardJSON `json:"draw_pile"`
	DiscardPile []fateCardJSON `json:"discard_pile"`
}

type fateCardJSON struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Modifier       int                 `json:"modifier"`
	Suit           string              `json:"suit,omitempty"`
	Keyword        string              `json:"keyword,omitempty"`
	Critical       bool                `json:"critical,omitempty"`
	Sticky         bool                `json:"sticky,omitempty"`
	ResonanceRules []resonanceRuleJSON `json:"resonance_rules,omitempty"`
}

type resonanceRuleJSON struct {
	Threshold   float64 `json:"threshold"`
	ModifyValue int     `json:"modify_value"`
	Effect      string  `json:"effect,omitempty"`
}

// --- encounters ---

type startEncounterRequest struct {
	SaveID   string   `json:"save_id"`
	EnemyIDs []string `json:"enemy_ids"`

	// Seed pins the encounter's random sequence. It rides as a decimal
	// string so full 64-bit seeds survive JSON clients.
	Seed *string `json:"seed,omitempty"`
}

type encounterResponse struct {
	View viewJSON `json:"view"`
}

type resumeResponse struct {
	View    viewJSON `json:"view"`
	Resumed bool     `json:"resumed"`
}

type viewJSON struct {
	EncounterID string `json:"encounter_id"`
	SaveID      string `json:"save_id"`

	Phase       string `json:"phase"`
	Round       int    `json:"round"`
	Status      string `json:"status"`
	ActionTaken bool   `json:"action_taken"`

	Hero      combatantJSON     `json:"hero"`
	Enemies   []combatantJSON   `json:"enemies"`
	Outcomes  map[string]string `json:"outcomes"`
	Intents   []intentJSON      `json:"intents"`
	Resonance float64           `json:"resonance"`

	Hand        []actionCardJSON `json:"hand"`
	DiscardPile []actionCardJSON `json:"discard_pile"`
	ExhaustPile []actionCardJSON `json:"exhaust_pile"`

	Energy          int      `json:"energy"`
	ReservedEnergy  int      `json:"reserved_energy"`
	EffortBonus     int      `json:"effort_bonus"`
	EffortCardIDs   []string `json:"effort_card_ids,omitempty"`
	SelectedCardIDs []string `json:"selected_card_ids,omitempty"`

	DeckDrawCount    int `json:"deck_draw_count"`
	DeckDiscardCount int `json:"deck_discard_count"`

	CanFlee bool `json:"can_flee"`
}

type combatantJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	HP       int    `json:"hp"`
	MaxHP    int    `json:"max_hp"`
	WP       int    `json:"wp"`
	MaxWP    int    `json:"max_wp"`
	Strength int    `json:"strength,omitempty"`
	Wisdom   int    `json:"wisdom,omitempty"`
	Power    int    `json:"power"`
	Defense  int    `json:"defense"`
	Armor    int    `json:"armor"`
}

type intentJSON struct {
	EnemyID  string `json:"enemy_id"`
	Kind     string `json:"kind"`
	Power    int    `json:"power"`
	TargetID string `json:"target_id"`
}

type actionCardJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Cost  int    `json:"cost"`
	Bonus int    `json:"bonus"`
	Trait string `json:"trait,omitempty"`
}

// --- actions ---

type actionRequest struct {
	Kind     string `json:"kind"`
	TargetID string `json:"target_id,omitempty"`
	CardID   string `json:"card_id,omitempty"`
	EnemyID  string `json:"enemy_id,omitempty"`
}

type actionResponse struct {
	View        viewJSON         `json:"view"`
	Action      *actionResult    `json:"action,omitempty"`
	EnemyAction *enemyActionJSON `json:"enemy_action,omitempty"`
}

type actionResult struct {
	Action      string        `json:"action"`
	TargetID    string        `json:"target_id,omitempty"`
	Fate        *fateDrawJSON `json:"fate,omitempty"`
	EffortBonus int           `json:"effort_bonus"`
	BonusDamage int           `json:"bonus_damage"`
	TotalAttack int           `json:"total_attack"`
	Damage      int           `json:"damage"`
	Healed      int           `json:"healed"`
	TargetHP    int           `json:"target_hp"`
	TargetWP    int           `json:"target_wp"`

	// TargetOutcome is the target's standing after the action: ongoing,
	// killed or pacified. Empty when the action had no target.
	TargetOutcome string `json:"target_outcome,omitempty"`
}

type fateDrawJSON struct {
	Card           fateCardJSON `json:"card"`
	BaseValue      int          `json:"base_value"`
	EffectiveValue int          `json:"effective_value"`
	Keyword        string       `json:"keyword,omitempty"`
	KeywordBonus   int          `json:"keyword_bonus"`
	SuitMatch      string       `json:"suit_match"`
	Critical       bool         `json:"critical"`
	Retained       bool         `json:"retained"`
	Effects        []string     `json:"effects,omitempty"`
	Total          int          `json:"total"`
}

type enemyActionJSON struct {
	EnemyID string     `json:"enemy_id"`
	Intent  intentJSON `json:"intent"`
	Damage  int        `json:"damage"`
	HeroHP  int        `json:"hero_hp"`
	HeroWP  int        `json:"hero_wp"`
}

type discardResponse struct {
	Discarded bool `json:"discarded"`
}

// --- commit and archive ---

type commitResponse struct {
	Save   saveJSON   `json:"save"`
	Result resultJSON `json:"result"`
}

type resultJSON struct {
	EncounterID string    `json:"encounter_id"`
	SaveID      string    `json:"save_id"`
	Status      string    `json:"status"`
	Victory     string    `json:"victory,omitempty"`
	Nonviolent  bool      `json:"nonviolent"`
	Rounds      int       `json:"rounds"`
	Seed        string    `json:"seed"`
	Resonance   float64   `json:"resonance"`
	HeroHP      int       `json:"hero_hp"`
	HeroWP      int       `json:"hero_wp"`
	CreatedAt   time.Time `json:"created_at"`
}

type archiveListResponse struct {
	Results []resultJSON `json:"results"`
}

type archivedEncounterResponse struct {
	Result  resultJSON   `json:"result"`
	Changes []changeJSON `json:"changes"`
}

type changeJSON struct {
	Seq      int     `json:"seq"`
	Round    int     `json:"round"`
	Kind     string  `json:"kind"`
	EntityID string  `json:"entity_id,omitempty"`
	Amount   int     `json:"amount"`
	Value    float64 `json:"value"`
	Detail   string  `json:"detail,omitempty"`
}
