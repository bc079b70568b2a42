package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	engine "github.com/triglav-games/encounter-api/internal/engine/encounter"
	"github.com/triglav-games/encounter-api/internal/engine/fate"
	"github.com/triglav-games/encounter-api/internal/errors"
	v1 "github.com/triglav-games/encounter-api/internal/handlers/v1"
	"github.com/triglav-games/encounter-api/internal/orchestrators/encounter"
	encountermock "github.com/triglav-games/encounter-api/internal/orchestrators/encounter/mock"
	"github.com/triglav-games/encounter-api/internal/repositories/archive"
	"github.com/triglav-games/encounter-api/internal/repositories/save"
	"github.com/triglav-games/encounter-api/internal/testutils"
	"github.com/triglav-games/encounter-api/internal/testutils/builders"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *encountermock.MockService
	router      http.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = encountermock.NewMockService(s.ctrl)

	handler, err := v1.NewHandler(&v1.Config{
		EncounterService: s.mockService,
	})
	s.Require().NoError(err)
	s.router = handler.Routes()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// do sends a request through the router, marshaling body when present.
func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) doRaw(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *HandlerTestSuite) errorMessage(rec *httptest.ResponseRecorder) string {
	var body struct {
		Error string `json:"error"`
	}
	s.decode(rec, &body)
	return body.Error
}

func testSaveData() *save.SaveData {
	return builders.NewSaveDataBuilder().
		WithID("save_123").
		WithResonance(-0.25).
		Build()
}

func testView() *encounter.EncounterView {
	return &encounter.EncounterView{
		EncounterID: "test_1",
		SaveID:      "save_123",
		Phase:       engine.PhaseIntent,
		Round:       1,
		Status:      engine.StatusOngoing,
		Hero: engine.Hero{
			ID: "hero-test-001", Name: testutils.TestHeroName,
			HP: 100, MaxHP: 100, WP: 40, MaxWP: 40,
			Strength: 10, Wisdom: 6, Defense: 2, Armor: 5,
		},
		Enemies: []engine.Enemy{{
			ID: "bolotnik", Name: "Bolotnik",
			HP: 10, MaxHP: 10, WP: 5, MaxWP: 5,
			Power: 3, Defense: 1,
		}},
		Outcomes: map[string]engine.EntityOutcome{"bolotnik": engine.OutcomeOngoing},
		Intents: []engine.Intent{
			{EnemyID: "bolotnik", Kind: engine.IntentAttack, Power: 3, TargetID: "hero-test-001"},
		},
		Resonance:     -0.25,
		Hand:          testutils.CreateTestActionCards(),
		Energy:        3,
		DeckDrawCount: 4,
		CanFlee:       true,
	}
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Status string `json:"status"`
	}
	s.decode(rec, &body)
	s.Equal("ok", body.Status)
}

func (s *HandlerTestSuite) TestCreateSave() {
	var captured *encounter.CreateSaveInput
	s.mockService.EXPECT().
		CreateSave(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *encounter.CreateSaveInput) (*encounter.CreateSaveOutput, error) {
			captured = input
			return &encounter.CreateSaveOutput{Save: testSaveData()}, nil
		})

	rec := s.do(http.MethodPost, "/v1/saves", map[string]any{"hero_name": "Vedma Olya"})

	s.Equal(http.StatusCreated, rec.Code)
	s.Require().NotNil(captured)
	s.Equal("Vedma Olya", captured.HeroName)

	var body struct {
		Save struct {
			ID   string `json:"id"`
			Hero struct {
				Name    string   `json:"name"`
				HP      int      `json:"hp"`
				MaxHP   int      `json:"max_hp"`
				Energy  int      `json:"energy"`
				CardIDs []string `json:"card_ids"`
			} `json:"hero"`
			Deck struct {
				DrawPile []struct {
					ID       string `json:"id"`
					Modifier int    `json:"modifier"`
					Suit     string `json:"suit"`
				} `json:"draw_pile"`
				DiscardPile []any `json:"discard_pile"`
			} `json:"deck"`
			Resonance float64 `json:"resonance"`
		} `json:"save"`
	}
	s.decode(rec, &body)
	s.Equal("save_123", body.Save.ID)
	s.Equal(testutils.TestHeroName, body.Save.Hero.Name)
	s.Equal(100, body.Save.Hero.HP)
	s.Equal(3, body.Save.Hero.Energy)
	s.Equal([]string{"cleave", "birch-balm"}, body.Save.Hero.CardIDs)
	s.Require().Len(body.Save.Deck.DrawPile, 4)
	s.Equal("ash", body.Save.Deck.DrawPile[0].ID)
	s.Equal(2, body.Save.Deck.DrawPile[0].Modifier)
	s.Equal("nav", body.Save.Deck.DrawPile[0].Suit)
	s.Empty(body.Save.Deck.DiscardPile)
	s.InDelta(-0.25, body.Save.Resonance, 0.0001)
}

func (s *HandlerTestSuite) TestCreateSave_EmptyBody() {
	s.mockService.EXPECT().
		CreateSave(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *encounter.CreateSaveInput) (*encounter.CreateSaveOutput, error) {
			s.Empty(input.HeroName)
			return &encounter.CreateSaveOutput{Save: testSaveData()}, nil
		})

	rec := s.do(http.MethodPost, "/v1/saves", nil)

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *HandlerTestSuite) TestCreateSave_MalformedBody() {
	rec := s.doRaw(http.MethodPost, "/v1/saves", `{"hero_name":`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("invalid request body", s.errorMessage(rec))
}

func (s *HandlerTestSuite) TestGetSave() {
	s.mockService.EXPECT().
		GetSave(gomock.Any(), &encounter.GetSaveInput{SaveID: "save_123"}).
		Return(&encounter.GetSaveOutput{Save: testSaveData()}, nil)

	rec := s.do(http.MethodGet, "/v1/saves/save_123", nil)

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Save struct {
			ID string `json:"id"`
		} `json:"save"`
	}
	s.decode(rec, &body)
	s.Equal("save_123", body.Save.ID)
}

func (s *HandlerTestSuite) TestGetSave_NotFound() {
	s.mockService.EXPECT().
		GetSave(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("save save_999 not found"))

	rec := s.do(http.MethodGet, "/v1/saves/save_999", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(s.errorMessage(rec), "save_999")
}

func (s *HandlerTestSuite) TestStartEncounter() {
	var captured *encounter.StartEncounterInput
	s.mockService.EXPECT().
		StartEncounter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *encounter.StartEncounterInput) (*encounter.StartEncounterOutput, error) {
			captured = input
			return &encounter.StartEncounterOutput{View: testView()}, nil
		})

	rec := s.do(http.MethodPost, "/v1/encounters", map[string]any{
		"save_id":   "save_123",
		"enemy_ids": []string{"bolotnik"},
		"seed":      "42",
	})

	s.Equal(http.StatusCreated, rec.Code)
	s.Require().NotNil(captured)
	s.Equal("save_123", captured.SaveID)
	s.Equal([]string{"bolotnik"}, captured.EnemyIDs)
	s.Require().NotNil(captured.Seed)
	s.Equal(uint64(42), *captured.Seed)

	var body struct {
		View struct {
			EncounterID string `json:"encounter_id"`
			SaveID      string `json:"save_id"`
			Phase       string `json:"phase"`
			Round       int    `json:"round"`
			Status      string `json:"status"`
			Hero        struct {
				ID       string `json:"id"`
				HP       int    `json:"hp"`
				Strength int    `json:"strength"`
			} `json:"hero"`
			Enemies []struct {
				ID    string `json:"id"`
				Name  string `json:"name"`
				HP    int    `json:"hp"`
				Power int    `json:"power"`
			} `json:"enemies"`
			Outcomes map[string]string `json:"outcomes"`
			Intents  []struct {
				EnemyID  string `json:"enemy_id"`
				Kind     string `json:"kind"`
				Power    int    `json:"power"`
				TargetID string `json:"target_id"`
			} `json:"intents"`
			Hand []struct {
				ID   string `json:"id"`
				Kind string `json:"kind"`
				Cost int    `json:"cost"`
			} `json:"hand"`
			Energy        int  `json:"energy"`
			DeckDrawCount int  `json:"deck_draw_count"`
			CanFlee       bool `json:"can_flee"`
		} `json:"view"`
	}
	s.decode(rec, &body)
	s.Equal("test_1", body.View.EncounterID)
	s.Equal("save_123", body.View.SaveID)
	s.Equal("intent", body.View.Phase)
	s.Equal(1, body.View.Round)
	s.Equal("ongoing", body.View.Status)
	s.Equal("hero-test-001", body.View.Hero.ID)
	s.Equal(100, body.View.Hero.HP)
	s.Equal(10, body.View.Hero.Strength)
	s.Require().Len(body.View.Enemies, 1)
	s.Equal("bolotnik", body.View.Enemies[0].ID)
	s.Equal("Bolotnik", body.View.Enemies[0].Name)
	s.Equal(10, body.View.Enemies[0].HP)
	s.Equal(3, body.View.Enemies[0].Power)
	s.Equal(map[string]string{"bolotnik": "ongoing"}, body.View.Outcomes)
	s.Require().Len(body.View.Intents, 1)
	s.Equal("attack", body.View.Intents[0].Kind)
	s.Equal("hero-test-001", body.View.Intents[0].TargetID)
	s.Require().Len(body.View.Hand, 2)
	s.Equal("cleave", body.View.Hand[0].ID)
	s.Equal("attack", body.View.Hand[0].Kind)
	s.Equal(3, body.View.Energy)
	s.Equal(4, body.View.DeckDrawCount)
	s.True(body.View.CanFlee)
}

func (s *HandlerTestSuite) TestStartEncounter_SeedOptional() {
	s.mockService.EXPECT().
		StartEncounter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *encounter.StartEncounterInput) (*encounter.StartEncounterOutput, error) {
			s.Nil(input.Seed)
			return &encounter.StartEncounterOutput{View: testView()}, nil
		})

	rec := s.do(http.MethodPost, "/v1/encounters", map[string]any{
		"save_id":   "save_123",
		"enemy_ids": []string{"bolotnik"},
	})

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *HandlerTestSuite) TestStartEncounter_BadSeed() {
	rec := s.do(http.MethodPost, "/v1/encounters", map[string]any{
		"save_id":   "save_123",
		"enemy_ids": []string{"bolotnik"},
		"seed":      "12x",
	})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.errorMessage(rec), "seed")
}

func (s *HandlerTestSuite) TestStartEncounter_ValidationError() {
	s.mockService.EXPECT().
		StartEncounter(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("enemyIDs: is required"))

	rec := s.do(http.MethodPost, "/v1/encounters", map[string]any{"save_id": "save_123"})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.errorMessage(rec), "enemyIDs")
}

func (s *HandlerTestSuite) TestGetEncounter() {
	s.mockService.EXPECT().
		GetEncounter(gomock.Any(), &encounter.GetEncounterInput{EncounterID: "test_1"}).
		Return(&encounter.GetEncounterOutput{View: testView()}, nil)

	rec := s.do(http.MethodGet, "/v1/encounters/test_1", nil)

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		View struct {
			EncounterID string `json:"encounter_id"`
			Phase       string `json:"phase"`
		} `json:"view"`
	}
	s.decode(rec, &body)
	s.Equal("test_1", body.View.EncounterID)
	s.Equal("intent", body.View.Phase)
}

func (s *HandlerTestSuite) TestGetEncounter_NotFound() {
	s.mockService.EXPECT().
		GetEncounter(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("encounter ghost not found"))

	rec := s.do(http.MethodGet, "/v1/encounters/ghost", nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestResumeEncounter() {
	s.mockService.EXPECT().
		ResumeEncounter(gomock.Any(), &encounter.ResumeEncounterInput{EncounterID: "test_1"}).
		Return(&encounter.ResumeEncounterOutput{View: testView(), Resumed: true}, nil)

	rec := s.do(http.MethodPost, "/v1/encounters/test_1/resume", nil)

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		View struct {
			EncounterID string `json:"encounter_id"`
		} `json:"view"`
		Resumed bool `json:"resumed"`
	}
	s.decode(rec, &body)
	s.Equal("test_1", body.View.EncounterID)
	s.True(body.Resumed)
}

func (s *HandlerTestSuite) TestExecuteAction() {
	view := testView()
	view.Phase = engine.PhasePlayerAction
	view.Status = engine.StatusVictory
	view.ActionTaken = true
	view.Enemies[0].HP = 0
	view.Outcomes["bolotnik"] = engine.OutcomeKilled
	view.DeckDrawCount = 3
	view.DeckDiscardCount = 1

	var captured *encounter.ExecuteActionInput
	s.mockService.EXPECT().
		ExecuteAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *encounter.ExecuteActionInput) (*encounter.ExecuteActionOutput, error) {
			captured = input
			return &encounter.ExecuteActionOutput{
				View: view,
				Action: &engine.ActionResult{
					Action:   engine.ActionAttack,
					TargetID: "bolotnik",
					Fate: &fate.Resolution{
						Card:           fate.Card{ID: "ash", Name: "Ash", Modifier: 2, Suit: fate.SuitNav},
						BaseValue:      10,
						EffectiveValue: 2,
						SuitMatch:      fate.SuitNeutral,
						Total:          12,
					},
					TotalAttack:   12,
					Damage:        11,
					TargetHP:      0,
					TargetOutcome: engine.OutcomeKilled,
				},
			}, nil
		})

	rec := s.do(http.MethodPost, "/v1/encounters/test_1/actions", map[string]any{
		"kind":      "attack",
		"target_id": "bolotnik",
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(captured)
	s.Equal("test_1", captured.EncounterID)
	s.Equal(encounter.ActionAttack, captured.Action.Kind)
	s.Equal("bolotnik", captured.Action.TargetID)

	var body struct {
		View struct {
			Status  string `json:"status"`
			Enemies []struct {
				HP int `json:"hp"`
			} `json:"enemies"`
			Outcomes map[string]string `json:"outcomes"`
		} `json:"view"`
		Action struct {
			Action string `json:"action"`
			Fate   struct {
				Card struct {
					ID string `json:"id"`
				} `json:"card"`
				BaseValue int    `json:"base_value"`
				SuitMatch string `json:"suit_match"`
				Total     int    `json:"total"`
			} `json:"fate"`
			TotalAttack   int    `json:"total_attack"`
			Damage        int    `json:"damage"`
			TargetHP      int    `json:"target_hp"`
			TargetOutcome string `json:"target_outcome"`
		} `json:"action"`
		EnemyAction *struct{} `json:"enemy_action"`
	}
	s.decode(rec, &body)
	s.Equal("victory", body.View.Status)
	s.Equal(0, body.View.Enemies[0].HP)
	s.Equal("killed", body.View.Outcomes["bolotnik"])
	s.Equal("attack", body.Action.Action)
	s.Equal("ash", body.Action.Fate.Card.ID)
	s.Equal(10, body.Action.Fate.BaseValue)
	s.Equal("neutral", body.Action.Fate.SuitMatch)
	s.Equal(12, body.Action.Fate.Total)
	s.Equal(12, body.Action.TotalAttack)
	s.Equal(11, body.Action.Damage)
	s.Equal(0, body.Action.TargetHP)
	s.Equal("killed", body.Action.TargetOutcome)
	s.Nil(body.EnemyAction)
}

func (s *HandlerTestSuite) TestExecuteAction_EnemyResolution() {
	view := testView()
	s.mockService.EXPECT().
		ExecuteAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *encounter.ExecuteActionInput) (*encounter.ExecuteActionOutput, error) {
			s.Equal(encounter.ActionResolveEnemy, input.Action.Kind)
			s.Equal("bolotnik", input.Action.EnemyID)
			return &encounter.ExecuteActionOutput{
				View: view,
				EnemyAction: &engine.EnemyActionResult{
					EnemyID: "bolotnik",
					Intent:  engine.Intent{EnemyID: "bolotnik", Kind: engine.IntentAttack, Power: 3, TargetID: "hero-test-001"},
					Damage:  0,
					HeroHP:  100,
					HeroWP:  40,
				},
			}, nil
		})

	rec := s.do(http.MethodPost, "/v1/encounters/test_1/actions", map[string]any{
		"kind":     "resolveEnemy",
		"enemy_id": "bolotnik",
	})

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Action      *struct{} `json:"action"`
		EnemyAction struct {
			EnemyID string `json:"enemy_id"`
			Intent  struct {
				Kind  string `json:"kind"`
				Power int    `json:"power"`
			} `json:"intent"`
			Damage int `json:"damage"`
			HeroHP int `json:"hero_hp"`
			HeroWP int `json:"hero_wp"`
		} `json:"enemy_action"`
	}
	s.decode(rec, &body)
	s.Nil(body.Action)
	s.Equal("bolotnik", body.EnemyAction.EnemyID)
	s.Equal("attack", body.EnemyAction.Intent.Kind)
	s.Equal(3, body.EnemyAction.Intent.Power)
	s.Equal(0, body.EnemyAction.Damage)
	s.Equal(100, body.EnemyAction.HeroHP)
	s.Equal(40, body.EnemyAction.HeroWP)
}

func (s *HandlerTestSuite) TestExecuteAction_IllegalPhase() {
	s.mockService.EXPECT().
		ExecuteAction(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("attack is not legal during the intent phase"))

	rec := s.do(http.MethodPost, "/v1/encounters/test_1/actions", map[string]any{
		"kind":      "attack",
		"target_id": "bolotnik",
	})

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(s.errorMessage(rec), "intent phase")
}

func (s *HandlerTestSuite) TestExecuteAction_MalformedBody() {
	rec := s.doRaw(http.MethodPost, "/v1/encounters/test_1/actions", `{"kind"`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestCommitEncounter() {
	result := &archive.ResultRecord{
		EncounterID: "test_1",
		SaveID:      "save_123",
		Status:      "victory",
		Victory:     "killed",
		Rounds:      1,
		Seed:        18446744073709551615,
		Resonance:   -0.25,
		HeroHP:      100,
		HeroWP:      40,
		CreatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	s.mockService.EXPECT().
		CommitEncounter(gomock.Any(), &encounter.CommitEncounterInput{EncounterID: "test_1"}).
		Return(&encounter.CommitEncounterOutput{Save: testSaveData(), Result: result}, nil)

	rec := s.do(http.MethodPost, "/v1/encounters/test_1/commit", nil)

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Save struct {
			ID string `json:"id"`
		} `json:"save"`
		Result struct {
			EncounterID string  `json:"encounter_id"`
			Status      string  `json:"status"`
			Victory     string  `json:"victory"`
			Rounds      int     `json:"rounds"`
			Seed        string  `json:"seed"`
			Resonance   float64 `json:"resonance"`
			HeroHP      int     `json:"hero_hp"`
		} `json:"result"`
	}
	s.decode(rec, &body)
	s.Equal("save_123", body.Save.ID)
	s.Equal("test_1", body.Result.EncounterID)
	s.Equal("victory", body.Result.Status)
	s.Equal("killed", body.Result.Victory)
	s.Equal(1, body.Result.Rounds)
	// Full 64-bit seeds ride as strings so JSON clients keep every bit.
	s.Equal("18446744073709551615", body.Result.Seed)
	s.InDelta(-0.25, body.Result.Resonance, 0.0001)
	s.Equal(100, body.Result.HeroHP)
}

func (s *HandlerTestSuite) TestCommitEncounter_StillOngoing() {
	s.mockService.EXPECT().
		CommitEncounter(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("encounter test_1 is still ongoing"))

	rec := s.do(http.MethodPost, "/v1/encounters/test_1/commit", nil)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(s.errorMessage(rec), "still ongoing")
}

func (s *HandlerTestSuite) TestDiscardEncounter() {
	s.mockService.EXPECT().
		DiscardEncounter(gomock.Any(), &encounter.DiscardEncounterInput{EncounterID: "test_1"}).
		Return(&encounter.DiscardEncounterOutput{}, nil)

	rec := s.do(http.MethodPost, "/v1/encounters/test_1/discard", nil)

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Discarded bool `json:"discarded"`
	}
	s.decode(rec, &body)
	s.True(body.Discarded)
}

func (s *HandlerTestSuite) TestDiscardEncounter_NotFound() {
	s.mockService.EXPECT().
		DiscardEncounter(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("encounter ghost not found"))

	rec := s.do(http.MethodPost, "/v1/encounters/ghost/discard", nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestListArchive() {
	var captured *encounter.ListArchiveInput
	s.mockService.EXPECT().
		ListArchive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *encounter.ListArchiveInput) (*encounter.ListArchiveOutput, error) {
			captured = input
			return &encounter.ListArchiveOutput{
				Results: []archive.ResultRecord{
					{EncounterID: "test_2", SaveID: "save_123", Status: "escaped", Rounds: 3, Seed: 7},
					{EncounterID: "test_1", SaveID: "save_123", Status: "victory", Victory: "pacified", Nonviolent: true, Rounds: 2, Seed: 42},
				},
			}, nil
		})

	rec := s.do(http.MethodGet, "/v1/saves/save_123/archive?limit=5&offset=10", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(captured)
	s.Equal("save_123", captured.SaveID)
	s.Equal(5, captured.Limit)
	s.Equal(10, captured.Offset)

	var body struct {
		Results []struct {
			EncounterID string `json:"encounter_id"`
			Status      string `json:"status"`
			Nonviolent  bool   `json:"nonviolent"`
			Seed        string `json:"seed"`
		} `json:"results"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Results, 2)
	s.Equal("test_2", body.Results[0].EncounterID)
	s.Equal("escaped", body.Results[0].Status)
	s.Equal("7", body.Results[0].Seed)
	s.Equal("test_1", body.Results[1].EncounterID)
	s.True(body.Results[1].Nonviolent)
}

func (s *HandlerTestSuite) TestListArchive_DefaultPaging() {
	s.mockService.EXPECT().
		ListArchive(gomock.Any(), &encounter.ListArchiveInput{SaveID: "save_123"}).
		Return(&encounter.ListArchiveOutput{}, nil)

	rec := s.do(http.MethodGet, "/v1/saves/save_123/archive", nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestListArchive_BadLimit() {
	rec := s.do(http.MethodGet, "/v1/saves/save_123/archive?limit=many", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.errorMessage(rec), "limit")
}

func (s *HandlerTestSuite) TestArchivedEncounter() {
	result := &archive.ResultRecord{
		EncounterID: "test_1",
		SaveID:      "save_123",
		Status:      "victory",
		Victory:     "killed",
		Rounds:      1,
		Seed:        42,
	}
	changes := []archive.ChangeRecord{
		{Seq: 1, Round: 1, Kind: "intentDeclared", EntityID: "bolotnik", Amount: 3, Detail: "attack"},
		{Seq: 2, Round: 1, Kind: "fateDrawn", EntityID: "hero-test-001", Amount: 2, Detail: "ash"},
		{Seq: 3, Round: 1, Kind: "damageDealt", EntityID: "bolotnik", Amount: 11},
		{Seq: 4, Round: 1, Kind: "enemyKilled", EntityID: "bolotnik"},
	}
	s.mockService.EXPECT().
		GetArchivedEncounter(gomock.Any(), &encounter.GetArchivedEncounterInput{EncounterID: "test_1"}).
		Return(&encounter.GetArchivedEncounterOutput{Result: result, Changes: changes}, nil)

	rec := s.do(http.MethodGet, "/v1/archive/test_1", nil)

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Result struct {
			EncounterID string `json:"encounter_id"`
			Victory     string `json:"victory"`
		} `json:"result"`
		Changes []struct {
			Seq      int    `json:"seq"`
			Kind     string `json:"kind"`
			EntityID string `json:"entity_id"`
			Amount   int    `json:"amount"`
			Detail   string `json:"detail"`
		} `json:"changes"`
	}
	s.decode(rec, &body)
	s.Equal("test_1", body.Result.EncounterID)
	s.Equal("killed", body.Result.Victory)
	s.Require().Len(body.Changes, 4)
	s.Equal("intentDeclared", body.Changes[0].Kind)
	s.Equal("attack", body.Changes[0].Detail)
	s.Equal("damageDealt", body.Changes[2].Kind)
	s.Equal(11, body.Changes[2].Amount)
	s.Equal("enemyKilled", body.Changes[3].Kind)
	for i, change := range body.Changes {
		s.Equal(i+1, change.Seq)
	}
}

func (s *HandlerTestSuite) TestArchivedEncounter_NotFound() {
	s.mockService.EXPECT().
		GetArchivedEncounter(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("no archived encounter ghost"))

	rec := s.do(http.MethodGet, "/v1/archive/ghost", nil)

	s.Equal(http.StatusNotFound, rec.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestNewHandler_RequiresConfig(t *testing.T) {
	handler, err := v1.NewHandler(nil)
	if err == nil {
		t.Fatal("expected error for nil config")
	}
	if handler != nil {
		t.Fatal("expected nil handler")
	}
}

func TestNewHandler_RequiresService(t *testing.T) {
	handler, err := v1.NewHandler(&v1.Config{})
	if err == nil {
		t.Fatal("expected error for missing service")
	}
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if handler != nil {
		t.Fatal("expected nil handler")
	}
}
