package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/cobra"

	"github.com/triglav-games/encounter-api/internal/clients/content"
	engine "github.com/triglav-games/encounter-api/internal/engine/encounter"
	"github.com/triglav-games/encounter-api/internal/orchestrators/encounter"
	"github.com/triglav-games/encounter-api/internal/pkg/clock"
	"github.com/triglav-games/encounter-api/internal/pkg/idgen"
	redisclient "github.com/triglav-games/encounter-api/internal/redis"
	"github.com/triglav-games/encounter-api/internal/repositories/archive"
	"github.com/triglav-games/encounter-api/internal/repositories/attempt"
	"github.com/triglav-games/encounter-api/internal/repositories/save"
)

var (
	simSeed      uint64
	simEnemies   []string
	simSpirit    bool
	simMaxRounds int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one scripted encounter offline",
	Long: `Run a complete encounter against embedded storage and print the change
log and result. The same seed always produces the same fight. Examples:

  simulate --seed 42
  simulate --enemies bolotnik,upyr --spirit
  simulate --enemies leshy --max-rounds 30`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 42, "world seed for the fate deck shuffle")
	simulateCmd.Flags().StringSliceVar(&simEnemies, "enemies", []string{"bolotnik"}, "enemy content IDs to fight")
	simulateCmd.Flags().BoolVar(&simSpirit, "spirit", false, "pacify with spirit attacks instead of striking")
	simulateCmd.Flags().IntVar(&simMaxRounds, "max-rounds", 20, "abort the run after this many rounds")
}

// simResult is the printable outcome of a simulated run.
type simResult struct {
	EncounterID string  `json:"encounter_id"`
	Status      string  `json:"status"`
	Victory     string  `json:"victory,omitempty"`
	Nonviolent  bool    `json:"nonviolent"`
	Rounds      int     `json:"rounds"`
	Seed        string  `json:"seed"`
	Resonance   float64 `json:"resonance"`
	HeroHP      int     `json:"hero_hp"`
	HeroWP      int     `json:"hero_wp"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Embedded stores; the whole run happens in-process and vanishes on exit.
	mr, err := miniredis.Run()
	if err != nil {
		return fmt.Errorf("failed to start embedded redis: %w", err)
	}
	defer mr.Close()

	redisClient, err := redisclient.NewClient(mr.Addr(), nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	clk := clock.New()

	saveRepo, err := save.NewRedis(&save.Config{Client: redisClient, Clock: clk})
	if err != nil {
		return err
	}
	attemptRepo, err := attempt.NewRedis(&attempt.Config{Client: redisClient, Clock: clk})
	if err != nil {
		return err
	}
	archiveRepo, err := archive.NewSQLite(&archive.Config{Path: ":memory:", Clock: clk})
	if err != nil {
		return err
	}
	defer func() { _ = archiveRepo.Close() }()

	service, err := encounter.NewOrchestrator(&encounter.Config{
		SaveRepo:      saveRepo,
		AttemptRepo:   attemptRepo,
		ArchiveRepo:   archiveRepo,
		ContentClient: content.NewStatic(),
		IDGenerator:   idgen.NewSequential("sim"),
		Clock:         clk,
	})
	if err != nil {
		return err
	}

	created, err := service.CreateSave(ctx, &encounter.CreateSaveInput{})
	if err != nil {
		return err
	}

	started, err := service.StartEncounter(ctx, &encounter.StartEncounterInput{
		SaveID:   created.Save.ID,
		EnemyIDs: simEnemies,
		Seed:     &simSeed,
	})
	if err != nil {
		return err
	}

	view := started.View
	fmt.Printf("%s (HP %d, WP %d) faces %s, seed %d\n\n",
		view.Hero.Name, view.Hero.HP, view.Hero.WP, strings.Join(simEnemies, ", "), simSeed)

	for view.Status == engine.StatusOngoing && view.Round <= simMaxRounds {
		view, err = playRound(ctx, service, view)
		if err != nil {
			return err
		}
	}

	if view.Status == engine.StatusOngoing {
		if _, err := service.DiscardEncounter(ctx, &encounter.DiscardEncounterInput{
			EncounterID: view.EncounterID,
		}); err != nil {
			return err
		}
		fmt.Printf("\nNo result after %d rounds, encounter discarded\n", simMaxRounds)
		return nil
	}

	committed, err := service.CommitEncounter(ctx, &encounter.CommitEncounterInput{
		EncounterID: view.EncounterID,
	})
	if err != nil {
		return err
	}

	archived, err := service.GetArchivedEncounter(ctx, &encounter.GetArchivedEncounterInput{
		EncounterID: view.EncounterID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nChange log (%d entries):\n", len(archived.Changes))
	for _, c := range archived.Changes {
		fmt.Printf("  %3d  round %d  %-16s %-14s %4d  %s\n",
			c.Seq, c.Round, c.Kind, c.EntityID, c.Amount, c.Detail)
	}

	res := committed.Result
	summary := simResult{
		EncounterID: res.EncounterID,
		Status:      res.Status,
		Victory:     res.Victory,
		Nonviolent:  res.Nonviolent,
		Rounds:      res.Rounds,
		Seed:        strconv.FormatUint(res.Seed, 10),
		Resonance:   res.Resonance,
		HeroHP:      res.HeroHP,
		HeroWP:      res.HeroWP,
	}
	buf, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}

	fmt.Printf("\n⚔️  Encounter Result:\n")
	fmt.Printf("====================\n")
	fmt.Println(string(buf))
	return nil
}

// playRound drives one full phase cycle: advance into the player action,
// strike the first ongoing enemy, resolve every enemy response, and close
// the round. It returns early as soon as the encounter turns terminal.
func playRound(ctx context.Context, service encounter.Service, view *encounter.EncounterView) (*encounter.EncounterView, error) {
	view, err := step(ctx, service, view.EncounterID, encounter.Action{Kind: encounter.ActionAdvance})
	if err != nil {
		return nil, err
	}

	kind := encounter.ActionAttack
	if simSpirit {
		kind = encounter.ActionSpiritAttack
	}
	view, err = step(ctx, service, view.EncounterID, encounter.Action{
		Kind:     kind,
		TargetID: firstOngoing(view),
	})
	if err != nil {
		return nil, err
	}
	if view.Status != engine.StatusOngoing {
		return view, nil
	}

	view, err = step(ctx, service, view.EncounterID, encounter.Action{Kind: encounter.ActionAdvance})
	if err != nil {
		return nil, err
	}

	for _, enemy := range view.Enemies {
		if view.Outcomes[enemy.ID] != engine.OutcomeOngoing {
			continue
		}
		view, err = step(ctx, service, view.EncounterID, encounter.Action{
			Kind:    encounter.ActionResolveEnemy,
			EnemyID: enemy.ID,
		})
		if err != nil {
			return nil, err
		}
		if view.Status != engine.StatusOngoing {
			return view, nil
		}
	}

	view, err = step(ctx, service, view.EncounterID, encounter.Action{Kind: encounter.ActionAdvance})
	if err != nil {
		return nil, err
	}
	return step(ctx, service, view.EncounterID, encounter.Action{Kind: encounter.ActionAdvance})
}

func step(ctx context.Context, service encounter.Service, encounterID string, action encounter.Action) (*encounter.EncounterView, error) {
	out, err := service.ExecuteAction(ctx, &encounter.ExecuteActionInput{
		EncounterID: encounterID,
		Action:      action,
	})
	if err != nil {
		return nil, err
	}
	describe(out)
	return out.View, nil
}

func describe(out *encounter.ExecuteActionOutput) {
	view := out.View
	if res := out.Action; res != nil && res.Fate != nil {
		verb, track := "dealt", "damage"
		if res.Action == engine.ActionSpiritAttack {
			verb, track = "eroded", "will"
		}
		fmt.Printf("  Round %d: %s on %s: drew %s, total %d, %s %d %s (%s)\n",
			view.Round, res.Action, res.TargetID, res.Fate.Card.Name,
			res.TotalAttack, verb, res.Damage, track, res.TargetOutcome)
		return
	}
	if res := out.EnemyAction; res != nil {
		fmt.Printf("  Round %d: %s resolves %s (power %d): hero HP %d, WP %d\n",
			view.Round, res.EnemyID, res.Intent.Kind, res.Intent.Power, res.HeroHP, res.HeroWP)
	}
}

func firstOngoing(view *encounter.EncounterView) string {
	for _, enemy := range view.Enemies {
		if view.Outcomes[enemy.ID] == engine.OutcomeOngoing {
			return enemy.ID
		}
	}
	return ""
}
