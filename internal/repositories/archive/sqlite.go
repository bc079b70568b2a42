package archive

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/triglav-games/encounter-api/internal/errors"
	"github.com/triglav-games/encounter-api/internal/pkg/clock"
)

const (
	defaultListLimit = 50

	// Error messages
	errEncounterIDEmpty = "encounter ID cannot be empty"
	errSaveIDEmpty      = "save ID cannot be empty"
)

// Config holds the configuration for the SQLite repository
type Config struct {
	// Path is the database file, created on first open
	Path  string
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Path == "" {
		return errors.InvalidArgument("database path is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

// SQLiteRepository implements Repository on a local SQLite file.
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// Ensure SQLiteRepository implements Repository
var _ Repository = (*SQLiteRepository)(nil)

// NewSQLite opens the database, enables WAL mode and runs migrations.
func NewSQLite(cfg *Config) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database")
	}

	// WAL mode for better concurrency between the write path and recap reads
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to enable WAL mode")
	}

	repo := &SQLiteRepository{db: db, clock: cfg.Clock}
	if err := repo.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return repo, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS encounter_results (
			encounter_id TEXT PRIMARY KEY,
			save_id TEXT NOT NULL,
			status TEXT NOT NULL,
			victory TEXT NOT NULL DEFAULT '',
			nonviolent INTEGER NOT NULL DEFAULT 0,
			rounds INTEGER NOT NULL,
			seed TEXT NOT NULL,
			resonance REAL NOT NULL,
			hero_hp INTEGER NOT NULL,
			hero_wp INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS state_changes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			encounter_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			round INTEGER NOT NULL,
			kind TEXT NOT NULL,
			entity_id TEXT NOT NULL DEFAULT '',
			amount INTEGER NOT NULL DEFAULT 0,
			value REAL NOT NULL DEFAULT 0,
			detail TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (encounter_id) REFERENCES encounter_results(encounter_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_state_changes_encounter ON state_changes(encounter_id, seq)`,
		`CREATE INDEX IF NOT EXISTS idx_results_save ON encounter_results(save_id, created_at)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return errors.Wrapf(err, "migration failed")
		}
	}

	return nil
}

// Save archives a finished encounter and its change log in one transaction
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Result.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}
	if input.Result.SaveID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM encounter_results WHERE encounter_id = ?`,
		input.Result.EncounterID,
	).Scan(&exists)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("encounter %s is already archived", input.Result.EncounterID)
	}

	stored := input.Result
	stored.CreatedAt = r.clock.Now().UTC()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO encounter_results (
			encounter_id, save_id, status, victory, nonviolent, rounds,
			seed, resonance, hero_hp, hero_wp, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.EncounterID, stored.SaveID, stored.Status, stored.Victory,
		stored.Nonviolent, stored.Rounds, strconv.FormatUint(stored.Seed, 10),
		stored.Resonance, stored.HeroHP, stored.HeroWP,
		stored.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to insert result")
	}

	if len(input.Changes) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO state_changes (encounter_id, seq, round, kind, entity_id, amount, value, detail)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to prepare change insert")
		}
		defer func() { _ = stmt.Close() }()

		for _, change := range input.Changes {
			_, err := stmt.ExecContext(ctx,
				stored.EncounterID, change.Seq, change.Round, change.Kind,
				change.EntityID, change.Amount, change.Value, change.Detail,
			)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to insert change seq %d", change.Seq)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit archive")
	}

	return &SaveOutput{Result: &stored}, nil
}

// Get retrieves an archived encounter with its ordered change log
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT encounter_id, save_id, status, victory, nonviolent, rounds,
			seed, resonance, hero_hp, hero_wp, created_at
		FROM encounter_results WHERE encounter_id = ?`,
		input.EncounterID,
	)

	result, err := scanResult(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("archived encounter %s not found", input.EncounterID)
		}
		return nil, errors.Wrapf(err, "failed to get result")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, round, kind, entity_id, amount, value, detail
		FROM state_changes WHERE encounter_id = ?
		ORDER BY seq`,
		input.EncounterID,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query changes")
	}
	defer func() { _ = rows.Close() }()

	var changes []ChangeRecord
	for rows.Next() {
		var change ChangeRecord
		err := rows.Scan(&change.Seq, &change.Round, &change.Kind,
			&change.EntityID, &change.Amount, &change.Value, &change.Detail)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan change")
		}
		changes = append(changes, change)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read changes")
	}

	return &GetOutput{Result: result, Changes: changes}, nil
}

// ListBySave returns a save's archived encounters, newest first
func (r *SQLiteRepository) ListBySave(ctx context.Context, input ListBySaveInput) (*ListBySaveOutput, error) {
	if input.SaveID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT encounter_id, save_id, status, victory, nonviolent, rounds,
			seed, resonance, hero_hp, hero_wp, created_at
		FROM encounter_results WHERE save_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ? OFFSET ?`,
		input.SaveID, limit, input.Offset,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query results")
	}
	defer func() { _ = rows.Close() }()

	var results []ResultRecord
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan result")
		}
		results = append(results, *result)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read results")
	}

	return &ListBySaveOutput{Results: results}, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(s scanner) (*ResultRecord, error) {
	var (
		result    ResultRecord
		seed      string
		createdAt string
	)
	err := s.Scan(&result.EncounterID, &result.SaveID, &result.Status,
		&result.Victory, &result.Nonviolent, &result.Rounds,
		&seed, &result.Resonance, &result.HeroHP, &result.HeroWP, &createdAt)
	if err != nil {
		return nil, err
	}

	result.Seed, err = strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return nil, errors.Internalf("corrupt seed column %q: %v", seed, err)
	}
	result.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, errors.Internalf("corrupt created_at column %q: %v", createdAt, err)
	}

	return &result, nil
}
