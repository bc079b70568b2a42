package v1

import (
	"strconv"

	engine "github.com/triglav-games/encounter-api/internal/engine/encounter"
	"github.com/triglav-games/encounter-api/internal/engine/fate"
	"github.com/triglav-games/encounter-api/internal/entities/threeworlds"
	"github.com/triglav-games/encounter-api/internal/orchestrators/encounter"
	"github.com/triglav-games/encounter-api/internal/repositories/archive"
	"github.com/triglav-games/encounter-api/internal/repositories/save"
)

func toSaveJSON(data *save.SaveData) saveJSON {
	return saveJSON{
		ID:        data.ID,
		Hero:      toHeroJSON(data.Hero),
		Deck:      toDeckJSON(data.Deck),
		Resonance: data.Resonance,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toHeroJSON(hero threeworlds.HeroState) heroJSON {
	return heroJSON{
		ID:       hero.ID,
		Name:     hero.Name,
		MaxHP:    hero.MaxHP,
		HP:       hero.HP,
		MaxWP:    hero.MaxWP,
		WP:       hero.WP,
		Strength: hero.Strength,
		Wisdom:   hero.Wisdom,
		Power:    hero.Power,
		Defense:  hero.Defense,
		Armor:    hero.Armor,
		Energy:   hero.Energy,
		CardIDs:  hero.CardIDs,
	}
}

func toDeckJSON(deck fate.DeckState) deckJSON {
	return deckJSON{
		DrawPile:    toFateCardsJSON(deck.DrawPile),
		DiscardPile: toFateCardsJSON(deck.DiscardPile),
	}
}

func toFateCardsJSON(cards []fate.Card) []fateCardJSON {
	out := make([]fateCardJSON, len(cards))
	for i, c := range cards {
		out[i] = toFateCardJSON(c)
	}
	return out
}

func toFateCardJSON(card fate.Card) fateCardJSON {
	out := fateCardJSON{
		ID:       card.ID,
		Name:     card.Name,
		Modifier: card.Modifier,
		Suit:     string(card.Suit),
		Keyword:  string(card.Keyword),
		Critical: card.Critical,
		Sticky:   card.Sticky,
	}
	for _, rule := range card.ResonanceRules {
		out.ResonanceRules = append(out.ResonanceRules, resonanceRuleJSON{
			Threshold:   rule.Threshold,
			ModifyValue: rule.ModifyValue,
			Effect:      string(rule.Effect),
		})
	}
	return out
}

func toViewJSON(view *encounter.EncounterView) viewJSON {
	out := viewJSON{
		EncounterID: view.EncounterID,
		SaveID:      view.SaveID,

		Phase:       string(view.Phase),
		Round:       view.Round,
		Status:      string(view.Status),
		ActionTaken: view.ActionTaken,

		Hero:      heroCombatant(view.Hero),
		Enemies:   make([]combatantJSON, len(view.Enemies)),
		Outcomes:  make(map[string]string, len(view.Outcomes)),
		Intents:   make([]intentJSON, len(view.Intents)),
		Resonance: view.Resonance,

		Hand:        toActionCardsJSON(view.Hand),
		DiscardPile: toActionCardsJSON(view.DiscardPile),
		ExhaustPile: toActionCardsJSON(view.ExhaustPile),

		Energy:          view.Energy,
		ReservedEnergy:  view.ReservedEnergy,
		EffortBonus:     view.EffortBonus,
		EffortCardIDs:   view.EffortCardIDs,
		SelectedCardIDs: view.SelectedCardIDs,

		DeckDrawCount:    view.DeckDrawCount,
		DeckDiscardCount: view.DeckDiscardCount,

		CanFlee: view.CanFlee,
	}
	for i, enemy := range view.Enemies {
		out.Enemies[i] = enemyCombatant(enemy)
	}
	for id, outcome := range view.Outcomes {
		out.Outcomes[id] = string(outcome)
	}
	for i, intent := range view.Intents {
		out.Intents[i] = toIntentJSON(intent)
	}
	return out
}

func heroCombatant(hero engine.Hero) combatantJSON {
	return combatantJSON{
		ID:       hero.ID,
		Name:     hero.Name,
		HP:       hero.HP,
		MaxHP:    hero.MaxHP,
		WP:       hero.WP,
		MaxWP:    hero.MaxWP,
		Strength: hero.Strength,
		Wisdom:   hero.Wisdom,
		Power:    hero.Power,
		Defense:  hero.Defense,
		Armor:    hero.Armor,
	}
}

func enemyCombatant(enemy engine.Enemy) combatantJSON {
	return combatantJSON{
		ID:      enemy.ID,
		Name:    enemy.Name,
		HP:      enemy.HP,
		MaxHP:   enemy.MaxHP,
		WP:      enemy.WP,
		MaxWP:   enemy.MaxWP,
		Power:   enemy.Power,
		Defense: enemy.Defense,
		Armor:   enemy.Armor,
	}
}

func toIntentJSON(intent engine.Intent) intentJSON {
	return intentJSON{
		EnemyID:  intent.EnemyID,
		Kind:     string(intent.Kind),
		Power:    intent.Power,
		TargetID: intent.TargetID,
	}
}

func toActionCardsJSON(cards []threeworlds.ActionCard) []actionCardJSON {
	out := make([]actionCardJSON, len(cards))
	for i, c := range cards {
		out[i] = actionCardJSON{
			ID:    c.ID,
			Name:  c.Name,
			Kind:  string(c.Kind),
			Cost:  c.Cost,
			Bonus: c.Bonus,
			Trait: string(c.Trait),
		}
	}
	return out
}

func toActionResult(res *engine.ActionResult) *actionResult {
	if res == nil {
		return nil
	}
	return &actionResult{
		Action:        string(res.Action),
		TargetID:      res.TargetID,
		Fate:          toFateDrawJSON(res.Fate),
		EffortBonus:   res.EffortBonus,
		BonusDamage:   res.BonusDamage,
		TotalAttack:   res.TotalAttack,
		Damage:        res.Damage,
		Healed:        res.Healed,
		TargetHP:      res.TargetHP,
		TargetWP:      res.TargetWP,
		TargetOutcome: string(res.TargetOutcome),
	}
}

func toFateDrawJSON(res *fate.Resolution) *fateDrawJSON {
	if res == nil {
		return nil
	}
	out := &fateDrawJSON{
		Card:           toFateCardJSON(res.Card),
		BaseValue:      res.BaseValue,
		EffectiveValue: res.EffectiveValue,
		Keyword:        string(res.Keyword),
		KeywordBonus:   res.KeywordEffect.Bonus,
		SuitMatch:      string(res.SuitMatch),
		Critical:       res.Critical,
		Retained:       res.Retained,
		Total:          res.Total,
	}
	for _, effect := range res.Effects {
		out.Effects = append(out.Effects, string(effect))
	}
	return out
}

func toEnemyActionJSON(res *engine.EnemyActionResult) *enemyActionJSON {
	if res == nil {
		return nil
	}
	return &enemyActionJSON{
		EnemyID: res.EnemyID,
		Intent:  toIntentJSON(res.Intent),
		Damage:  res.Damage,
		HeroHP:  res.HeroHP,
		HeroWP:  res.HeroWP,
	}
}

func toResultJSON(rec archive.ResultRecord) resultJSON {
	return resultJSON{
		EncounterID: rec.EncounterID,
		SaveID:      rec.SaveID,
		Status:      rec.Status,
		Victory:     rec.Victory,
		Nonviolent:  rec.Nonviolent,
		Rounds:      rec.Rounds,
		Seed:        strconv.FormatUint(rec.Seed, 10),
		Resonance:   rec.Resonance,
		HeroHP:      rec.HeroHP,
		HeroWP:      rec.HeroWP,
		CreatedAt:   rec.CreatedAt,
	}
}

func toChangesJSON(changes []archive.ChangeRecord) []changeJSON {
	out := make([]changeJSON, len(changes))
	for i, c := range changes {
		out[i] = changeJSON{
			Seq:      c.Seq,
			Round:    c.Round,
			Kind:     c.Kind,
			EntityID: c.EntityID,
			Amount:   c.Amount,
			Value:    c.Value,
			Detail:   c.Detail,
		}
	}
	return out
}
