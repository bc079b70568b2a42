package encounter_test

import (
	"context"

	"go.uber.org/mock/gomock"

	engine "github.com/triglav-games/encounter-api/internal/engine/encounter"
	"github.com/triglav-games/encounter-api/internal/errors"
	"github.com/triglav-games/encounter-api/internal/orchestrators/encounter"
	"github.com/triglav-games/encounter-api/internal/repositories/archive"
	"github.com/triglav-games/encounter-api/internal/repositories/attempt"
	"github.com/triglav-games/encounter-api/internal/repositories/save"
)

// act applies one action to the running test encounter and requires it to
// succeed.
func (s *OrchestratorTestSuite) act(action encounter.Action) *encounter.ExecuteActionOutput {
	out, err := s.orchestrator.ExecuteAction(s.ctx, &encounter.ExecuteActionInput{
		EncounterID: "test_1",
		Action:      action,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	return out
}

func (s *OrchestratorTestSuite) TestExecuteAction_AdvancePhase() {
	s.startEncounter()

	out := s.act(encounter.Action{Kind: encounter.ActionAdvance})
	s.Equal(engine.PhasePlayerAction, out.View.Phase)
	s.Equal(1, out.View.Round)
	s.Nil(out.Action)
	s.Nil(out.EnemyAction)
}

func (s *OrchestratorTestSuite) TestExecuteAction_AttackKillsEnemy() {
	s.startEncounter()
	s.act(encounter.Action{Kind: encounter.ActionAdvance})

	// The test deck is unshuffled, so the first draw is ash (+2):
	// strength 10 + 2 = 12 against defense 1 kills the 10 HP bolotnik.
	out := s.act(encounter.Action{Kind: encounter.ActionAttack, TargetID: "bolotnik"})

	res := out.Action
	s.Require().NotNil(res)
	s.Equal(engine.ActionAttack, res.Action)
	s.Equal("bolotnik", res.TargetID)
	s.Require().NotNil(res.Fate)
	s.Equal("ash", res.Fate.Card.ID)
	s.Equal(12, res.TotalAttack)
	s.Equal(11, res.Damage)
	s.Zero(res.TargetHP)
	s.Equal(engine.OutcomeKilled, res.TargetOutcome)
	s.Nil(out.EnemyAction)

	view := out.View
	s.Equal(engine.StatusVictory, view.Status)
	s.Equal(engine.OutcomeKilled, view.Outcomes["bolotnik"])
	s.Zero(view.Enemies[0].HP)
	s.Equal(3, view.DeckDrawCount)
	s.Equal(1, view.DeckDiscardCount)
}

func (s *OrchestratorTestSuite) TestExecuteAction_SpiritAttackPacifiesEnemy() {
	s.startEncounter()
	s.act(encounter.Action{Kind: encounter.ActionAdvance})

	// Wisdom 6 + ash 2 erodes 7 will past defense 1; the bolotnik's 5 WP
	// breaks without a drop of blood.
	out := s.act(encounter.Action{Kind: encounter.ActionSpiritAttack, TargetID: "bolotnik"})

	res := out.Action
	s.Require().NotNil(res)
	s.Equal(engine.ActionSpiritAttack, res.Action)
	s.Equal(8, res.TotalAttack)
	s.Equal(7, res.Damage)
	s.Zero(res.TargetWP)
	s.Equal(engine.OutcomePacified, res.TargetOutcome)

	view := out.View
	s.Equal(engine.StatusVictory, view.Status)
	s.Equal(engine.OutcomePacified, view.Outcomes["bolotnik"])
	s.Equal(10, view.Enemies[0].HP)
}

func (s *OrchestratorTestSuite) TestExecuteAction_CardFlow() {
	s.startEncounter()
	s.act(encounter.Action{Kind: encounter.ActionAdvance})

	out := s.act(encounter.Action{Kind: encounter.ActionSelectCard, CardID: "cleave"})
	s.Equal([]string{"cleave"}, out.View.SelectedCardIDs)
	s.Equal(1, out.View.ReservedEnergy)
	s.Equal(3, out.View.Energy)

	out = s.act(encounter.Action{Kind: encounter.ActionBurnEffort, CardID: "birch-balm"})
	s.Equal(1, out.View.EffortBonus)
	s.Equal([]string{"birch-balm"}, out.View.EffortCardIDs)
	s.Len(out.View.Hand, 1)

	// Strength 10 + ash 2 + effort 1 + cleave 2 = 15, minus defense 1.
	out = s.act(encounter.Action{Kind: encounter.ActionPlayCard, CardID: "cleave", TargetID: "bolotnik"})

	res := out.Action
	s.Require().NotNil(res)
	s.Equal(engine.ActionUseCard, res.Action)
	s.Equal(1, res.EffortBonus)
	s.Equal(15, res.TotalAttack)
	s.Equal(14, res.Damage)
	s.Equal(engine.OutcomeKilled, res.TargetOutcome)

	view := out.View
	s.Equal(engine.StatusVictory, view.Status)
	s.Empty(view.Hand)
	s.Require().Len(view.DiscardPile, 2)
	s.Equal("cleave", view.DiscardPile[0].ID)
	s.Equal("birch-balm", view.DiscardPile[1].ID)
	s.Empty(view.ExhaustPile)
	s.Equal(2, view.Energy)
	s.Zero(view.ReservedEnergy)
	s.Zero(view.EffortBonus)
	s.Empty(view.SelectedCardIDs)
}

func (s *OrchestratorTestSuite) TestExecuteAction_DeselectCardFreesEnergy() {
	s.startEncounter()
	s.act(encounter.Action{Kind: encounter.ActionAdvance})

	out := s.act(encounter.Action{Kind: encounter.ActionSelectCard, CardID: "cleave"})
	s.Equal(1, out.View.ReservedEnergy)

	out = s.act(encounter.Action{Kind: encounter.ActionDeselectCard, CardID: "cleave"})
	s.Zero(out.View.ReservedEnergy)
	s.Empty(out.View.SelectedCardIDs)
	s.Len(out.View.Hand, 2)
}

func (s *OrchestratorTestSuite) TestExecuteAction_UndoEffortRestoresHand() {
	s.startEncounter()
	s.act(encounter.Action{Kind: encounter.ActionAdvance})

	out := s.act(encounter.Action{Kind: encounter.ActionBurnEffort, CardID: "birch-balm"})
	s.Equal(1, out.View.EffortBonus)
	s.Len(out.View.Hand, 1)

	out = s.act(encounter.Action{Kind: encounter.ActionUndoEffort, CardID: "birch-balm"})
	s.Zero(out.View.EffortBonus)
	s.Empty(out.View.EffortCardIDs)
	s.Require().Len(out.View.Hand, 2)
	s.Equal("cleave", out.View.Hand[0].ID)
	s.Equal("birch-balm", out.View.Hand[1].ID)

	// Nothing left to undo.
	_, err := s.orchestrator.ExecuteAction(s.ctx, &encounter.ExecuteActionInput{
		EncounterID: "test_1",
		Action:      encounter.Action{Kind: encounter.ActionUndoEffort, CardID: "birch-balm"},
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestExecuteAction_RoundCycle() {
	s.startEncounter()

	s.act(encounter.Action{Kind: encounter.ActionAdvance})
	out := s.act(encounter.Action{Kind: encounter.ActionWait})
	s.Require().NotNil(out.Action)
	s.Equal(engine.ActionWait, out.Action.Action)
	s.Nil(out.Action.Fate)
	s.True(out.View.ActionTaken)

	out = s.act(encounter.Action{Kind: encounter.ActionAdvance})
	s.Equal(engine.PhaseEnemyResolution, out.View.Phase)

	out = s.act(encounter.Action{Kind: encounter.ActionResolveEnemy, EnemyID: "bolotnik"})
	enemy := out.EnemyAction
	s.Require().NotNil(enemy)
	s.Equal("bolotnik", enemy.EnemyID)
	s.Equal(engine.IntentAttack, enemy.Intent.Kind)
	// Power 3 cannot pierce armor 5.
	s.Zero(enemy.Damage)
	s.Equal(100, enemy.HeroHP)
	s.Equal(40, enemy.HeroWP)

	out = s.act(encounter.Action{Kind: encounter.ActionAdvance})
	s.Equal(engine.PhaseRoundEnd, out.View.Phase)

	out = s.act(encounter.Action{Kind: encounter.ActionAdvance})
	view := out.View
	s.Equal(engine.PhaseIntent, view.Phase)
	s.Equal(2, view.Round)
	s.False(view.ActionTaken)
	s.Require().Len(view.Intents, 1)
	s.Equal(engine.IntentAttack, view.Intents[0].Kind)

	// Waiting never touches the deck.
	s.Equal(4, view.DeckDrawCount)
	s.Zero(view.DeckDiscardCount)
}

func (s *OrchestratorTestSuite) TestExecuteAction_FleeEndsEscaped() {
	s.startEncounter()
	s.act(encounter.Action{Kind: encounter.ActionAdvance})

	out := s.act(encounter.Action{Kind: encounter.ActionFlee})
	s.Require().NotNil(out.Action)
	s.Equal(engine.ActionFlee, out.Action.Action)
	s.Equal(engine.StatusEscaped, out.View.Status)
}

func (s *OrchestratorTestSuite) TestExecuteAction_IllegalActionLeavesStateUntouched() {
	s.mockSaves.EXPECT().
		Get(s.ctx, save.GetInput{ID: "save_123"}).
		Return(&save.GetOutput{Save: s.testSave()}, nil)

	// Exactly one attempt write: the initial snapshot. A rejected action
	// must not write another.
	s.mockAttempts.EXPECT().
		Put(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input attempt.PutInput) (*attempt.PutOutput, error) {
			return &attempt.PutOutput{Attempt: input.Attempt}, nil
		}).
		Times(1)

	seed := testSeed
	_, err := s.orchestrator.StartEncounter(s.ctx, &encounter.StartEncounterInput{
		SaveID:   "save_123",
		EnemyIDs: []string{"bolotnik"},
		Seed:     &seed,
	})
	s.Require().NoError(err)

	// Attacking during the intent phase is rejected.
	out, err := s.orchestrator.ExecuteAction(s.ctx, &encounter.ExecuteActionInput{
		EncounterID: "test_1",
		Action:      encounter.Action{Kind: encounter.ActionAttack, TargetID: "bolotnik"},
	})
	s.Nil(out)
	s.True(errors.IsFailedPrecondition(err))

	got, err := s.orchestrator.GetEncounter(s.ctx, &encounter.GetEncounterInput{EncounterID: "test_1"})
	s.Require().NoError(err)
	s.Equal(engine.PhaseIntent, got.View.Phase)
	s.Equal(10, got.View.Enemies[0].HP)
	s.Equal(4, got.View.DeckDrawCount)
}

func (s *OrchestratorTestSuite) TestExecuteAction_UnknownKind() {
	s.startEncounter()

	out, err := s.orchestrator.ExecuteAction(s.ctx, &encounter.ExecuteActionInput{
		EncounterID: "test_1",
		Action:      encounter.Action{Kind: "tapdance"},
	})
	s.Nil(out)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "tapdance")
}

func (s *OrchestratorTestSuite) TestExecuteAction_PersistsAfterEveryAction() {
	s.mockSaves.EXPECT().
		Get(s.ctx, save.GetInput{ID: "save_123"}).
		Return(&save.GetOutput{Save: s.testSave()}, nil)

	// Start, advance, wait: three snapshots.
	s.mockAttempts.EXPECT().
		Put(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input attempt.PutInput) (*attempt.PutOutput, error) {
			return &attempt.PutOutput{Attempt: input.Attempt}, nil
		}).
		Times(3)

	seed := testSeed
	_, err := s.orchestrator.StartEncounter(s.ctx, &encounter.StartEncounterInput{
		SaveID:   "save_123",
		EnemyIDs: []string{"bolotnik"},
		Seed:     &seed,
	})
	s.Require().NoError(err)

	s.act(encounter.Action{Kind: encounter.ActionAdvance})
	s.act(encounter.Action{Kind: encounter.ActionWait})
}

func (s *OrchestratorTestSuite) TestExecuteAction_NotFound() {
	s.mockAttempts.EXPECT().
		Get(s.ctx, attempt.GetInput{EncounterID: "ghost"}).
		Return(nil, errors.NotFoundf("encounter attempt %s not found", "ghost"))

	out, err := s.orchestrator.ExecuteAction(s.ctx, &encounter.ExecuteActionInput{
		EncounterID: "ghost",
		Action:      encounter.Action{Kind: encounter.ActionAdvance},
	})
	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestExecuteAction_RequiresEncounterID() {
	out, err := s.orchestrator.ExecuteAction(s.ctx, &encounter.ExecuteActionInput{
		Action: encounter.Action{Kind: encounter.ActionAdvance},
	})
	s.Nil(out)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCommitEncounter() {
	s.startEncounter()
	s.act(encounter.Action{Kind: encounter.ActionAdvance})
	s.act(encounter.Action{Kind: encounter.ActionAttack, TargetID: "bolotnik"})

	s.mockSaves.EXPECT().
		Get(s.ctx, save.GetInput{ID: "save_123"}).
		Return(&save.GetOutput{Save: s.testSave()}, nil)

	var updated *save.SaveData
	s.mockSaves.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input save.UpdateInput) (*save.UpdateOutput, error) {
			updated = input.Save
			return &save.UpdateOutput{Save: input.Save}, nil
		})

	var archived archive.SaveInput
	s.mockArchive.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input archive.SaveInput) (*archive.SaveOutput, error) {
			archived = input
			result := input.Result
			return &archive.SaveOutput{Result: &result}, nil
		})

	s.mockAttempts.EXPECT().
		Delete(s.ctx, attempt.DeleteInput{EncounterID: "test_1"}).
		Return(&attempt.DeleteOutput{Deleted: true}, nil)

	out, err := s.orchestrator.CommitEncounter(s.ctx, &encounter.CommitEncounterInput{EncounterID: "test_1"})
	s.Require().NoError(err)
	s.Require().NotNil(out)

	// The slot carries the encounter's aftermath: untouched hero, the ash
	// draw in the discard pile, the world resonance as it stood.
	s.Require().NotNil(updated)
	s.Same(updated, out.Save)
	s.Equal(100, out.Save.Hero.HP)
	s.Equal(40, out.Save.Hero.WP)
	s.Equal(4, out.Save.Deck.Count())
	s.Len(out.Save.Deck.DrawPile, 3)
	s.Require().Len(out.Save.Deck.DiscardPile, 1)
	s.Equal("ash", out.Save.Deck.DiscardPile[0].ID)
	s.InDelta(-0.25, out.Save.Resonance, 1e-9)

	record := out.Result
	s.Require().NotNil(record)
	s.Equal("test_1", record.EncounterID)
	s.Equal("save_123", record.SaveID)
	s.Equal("victory", record.Status)
	s.Equal("killed", record.Victory)
	s.False(record.Nonviolent)
	s.Equal(1, record.Rounds)
	s.Equal(testSeed, record.Seed)
	s.InDelta(-0.25, record.Resonance, 1e-9)
	s.Equal(100, record.HeroHP)
	s.Equal(40, record.HeroWP)

	// The change log tells the whole story in order.
	changes := archived.Changes
	s.Require().Len(changes, 4)
	s.Equal("intentDeclared", changes[0].Kind)
	s.Equal("bolotnik", changes[0].EntityID)
	s.Equal("fateDrawn", changes[1].Kind)
	s.Equal("ash", changes[1].Detail)
	s.Equal("damageDealt", changes[2].Kind)
	s.Equal("bolotnik", changes[2].EntityID)
	s.Equal(11, changes[2].Amount)
	s.Equal("enemyKilled", changes[3].Kind)
	for i := 1; i < len(changes); i++ {
		s.Greater(changes[i].Seq, changes[i-1].Seq)
	}

	// Committed encounters are gone.
	s.mockAttempts.EXPECT().
		Get(s.ctx, attempt.GetInput{EncounterID: "test_1"}).
		Return(nil, errors.NotFoundf("encounter attempt %s not found", "test_1"))

	got, err := s.orchestrator.GetEncounter(s.ctx, &encounter.GetEncounterInput{EncounterID: "test_1"})
	s.Nil(got)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCommitEncounter_StillOngoing() {
	s.startEncounter()

	out, err := s.orchestrator.CommitEncounter(s.ctx, &encounter.CommitEncounterInput{EncounterID: "test_1"})
	s.Nil(out)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "still ongoing")
}

func (s *OrchestratorTestSuite) TestCommitEncounter_ArchiveFailureIsRetryable() {
	s.startEncounter()
	s.act(encounter.Action{Kind: encounter.ActionAdvance})
	s.act(encounter.Action{Kind: encounter.ActionAttack, TargetID: "bolotnik"})

	// First commit: the save lands but the archive write fails; the
	// attempt must survive so the commit can be retried.
	s.mockSaves.EXPECT().
		Get(s.ctx, save.GetInput{ID: "save_123"}).
		Return(&save.GetOutput{Save: s.testSave()}, nil).
		Times(2)
	s.mockSaves.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input save.UpdateInput) (*save.UpdateOutput, error) {
			return &save.UpdateOutput{Save: input.Save}, nil
		}).
		Times(2)

	s.mockArchive.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("sqlite is locked"))

	_, err := s.orchestrator.CommitEncounter(s.ctx, &encounter.CommitEncounterInput{EncounterID: "test_1"})
	s.Require().Error(err)

	// Second commit: everything goes through.
	s.mockArchive.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input archive.SaveInput) (*archive.SaveOutput, error) {
			result := input.Result
			return &archive.SaveOutput{Result: &result}, nil
		})
	s.mockAttempts.EXPECT().
		Delete(s.ctx, attempt.DeleteInput{EncounterID: "test_1"}).
		Return(&attempt.DeleteOutput{Deleted: true}, nil)

	out, err := s.orchestrator.CommitEncounter(s.ctx, &encounter.CommitEncounterInput{EncounterID: "test_1"})
	s.Require().NoError(err)
	s.Equal("victory", out.Result.Status)
	s.Equal(1, out.Result.Rounds)
}
