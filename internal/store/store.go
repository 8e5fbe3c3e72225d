package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/cogniz/ent"
	"github.com/abhisek/cogniz/ent/adaptivesettings"
	"github.com/abhisek/cogniz/ent/attemptevent"
	"github.com/abhisek/cogniz/ent/badge"
	"github.com/abhisek/cogniz/ent/learner"
	"github.com/abhisek/cogniz/ent/reviewentry"
	"github.com/abhisek/cogniz/ent/sessionevent"
	"github.com/abhisek/cogniz/ent/skillstate"
	"github.com/abhisek/cogniz/ent/snapshot"
	"github.com/abhisek/cogniz/ent/streak"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("init sequence counter: %w", err)
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Events returns the event repository backed by this store.
func (s *Store) Events() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// Learners returns the learner repository backed by this store.
func (s *Store) Learners() LearnerRepo {
	return &learnerRepo{client: s.client}
}

// SkillStates returns the skill state repository backed by this store.
func (s *Store) SkillStates() SkillStateRepo {
	return &skillStateRepo{client: s.client}
}

// Reviews returns the review queue repository backed by this store.
func (s *Store) Reviews() ReviewRepo {
	return &reviewRepo{client: s.client}
}

// Badges returns the badge repository backed by this store.
func (s *Store) Badges() BadgeRepo {
	return &badgeRepo{client: s.client}
}

// Settings returns the settings repository backed by this store.
func (s *Store) Settings() SettingsRepo {
	return &settingsRepo{client: s.client}
}

// Streaks returns the streak repository backed by this store.
func (s *Store) Streaks() StreakRepo {
	return &streakRepo{client: s.client}
}

// Snapshots returns the snapshot repository backed by this store.
func (s *Store) Snapshots() SnapshotRepo {
	return &snapshotRepo{client: s.client, seq: s.seq}
}

// ResetLearner deletes all progress for a learner: skill states, review
// queue, badges, streak, settings, and events. The learner profile itself
// and any snapshots taken beforehand are kept.
func (s *Store) ResetLearner(ctx context.Context, learnerID string) error {
	c := s.client
	steps := []func() error{
		func() error {
			_, err := c.SkillState.Delete().Where(skillstate.LearnerID(learnerID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := c.ReviewEntry.Delete().Where(reviewentry.LearnerID(learnerID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := c.Badge.Delete().Where(badge.LearnerID(learnerID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := c.Streak.Delete().Where(streak.LearnerID(learnerID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := c.AdaptiveSettings.Delete().Where(adaptivesettings.LearnerID(learnerID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := c.AttemptEvent.Delete().Where(attemptevent.LearnerID(learnerID)).Exec(ctx)
			return err
		},
		func() error {
			_, err := c.SessionEvent.Delete().Where(sessionevent.LearnerID(learnerID)).Exec(ctx)
			return err
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("reset learner: %w", err)
		}
	}
	return nil
}

// DeleteLearner removes a learner profile and everything recorded under
// it, snapshots included. Unlike ResetLearner this is not recoverable.
func (s *Store) DeleteLearner(ctx context.Context, learnerID string) error {
	if err := s.ResetLearner(ctx, learnerID); err != nil {
		return err
	}
	c := s.client
	if _, err := c.Snapshot.Delete().Where(snapshot.LearnerID(learnerID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete learner snapshots: %w", err)
	}
	if _, err := c.Learner.Delete().Where(learner.ID(learnerID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete learner: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. COGNIZ_DB environment variable
// 2. $XDG_DATA_HOME/cogniz/cogniz.db
// 3. ~/.local/share/cogniz/cogniz.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("COGNIZ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "cogniz", "cogniz.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
