// Package seed loads the built-in quiz dataset into Postgres.
// Seeding is idempotent: categories that already exist are left untouched.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/m3rciful/quizbot/core/logger"
)

// Run inserts every missing category with its paragraphs and questions.
func Run(ctx context.Context, db *sqlx.DB) error {
	inserted := 0
	for _, cat := range categories {
		ok, err := seedCategory(ctx, db, cat)
		if err != nil {
			return fmt.Errorf("seed %q: %w", cat.Name, err)
		}
		if ok {
			inserted++
		}
	}
	logger.SEED.LogAttrs(ctx, slog.LevelInfo, "seeding complete",
		slog.String("event", "seed.done"),
		slog.Int("categories", len(categories)),
		slog.Int("inserted", inserted),
	)
	return nil
}

// Reset wipes all quiz content and reloads the dataset. Participant progress
// rows survive but their selections may now point at nothing, which the
// conversation flow treats as a prompt to restart.
func Reset(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reset begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range []string{
		`DELETE FROM questions`,
		`DELETE FROM paragraphs`,
		`DELETE FROM categories`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset content: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reset commit: %w", err)
	}
	logger.SEED.LogAttrs(ctx, slog.LevelWarn, "content wiped",
		slog.String("event", "seed.reset"),
	)
	return Run(ctx, db)
}

func seedCategory(ctx context.Context, db *sqlx.DB, cat categorySeed) (bool, error) {
	var exists bool
	err := db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE category_name = $1)`, cat.Name)
	if err != nil {
		return false, fmt.Errorf("check: %w", err)
	}
	if exists {
		logger.SEED.LogAttrs(ctx, slog.LevelDebug, "category present",
			slog.String("event", "seed.skip"),
			slog.String("category", cat.Name),
		)
		return false, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	categoryID := uuid.New()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO categories (id, category_name) VALUES ($1, $2)`,
		categoryID, cat.Name); err != nil {
		return false, fmt.Errorf("insert category: %w", err)
	}

	for pi, par := range cat.Paragraphs {
		paragraphID := uuid.New()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO paragraphs (id, category_id, position, paragraph_data)
			 VALUES ($1, $2, $3, $4)`,
			paragraphID, categoryID, pi, par.Text); err != nil {
			return false, fmt.Errorf("insert paragraph %d: %w", pi, err)
		}

		for qi, q := range par.Questions {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO questions (id, paragraph_id, position, question_data, all_options, correct_answer)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				uuid.New(), paragraphID, qi, q.Text, pq.StringArray(q.Options), q.Answer); err != nil {
				return false, fmt.Errorf("insert question %d: %w", qi, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	logger.SEED.LogAttrs(ctx, slog.LevelInfo, "category seeded",
		slog.String("event", "seed.category"),
		slog.String("category", cat.Name),
		slog.Int("paragraphs", len(cat.Paragraphs)),
	)
	return true, nil
}
