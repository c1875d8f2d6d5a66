package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/quizbot/core/logger"
	"github.com/m3rciful/quizbot/internal/models"
)

const progressColumns = `telegram_id, username, selected_category_id, selected_paragraph_id,
	current_question_id, current_question_index, correct_answer_count, wrong_answer_count,
	created_at, updated_at`

// ProgressStore persists per-participant quiz progress keyed by Telegram user id.
type ProgressStore struct {
	db *sqlx.DB
}

// NewProgressStore returns a store backed by the given database handle.
func NewProgressStore(db *sqlx.DB) *ProgressStore {
	return &ProgressStore{db: db}
}

// Get returns the progress row for a participant.
func (s *ProgressStore) Get(ctx context.Context, telegramID int64) (models.UserProgress, error) {
	var out models.UserProgress
	err := s.db.GetContext(ctx, &out,
		`SELECT `+progressColumns+` FROM user_progress WHERE telegram_id = $1`, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProgress{}, ErrNotFound
	}
	if err != nil {
		return models.UserProgress{}, fmt.Errorf("get progress: %w", err)
	}
	return out, nil
}

// StartSession creates the progress row on first contact or resets an existing
// one for a fresh run. Counters and selections are zeroed either way; the
// username is captured only when the row is created.
func (s *ProgressStore) StartSession(ctx context.Context, telegramID int64, username string) (models.UserProgress, error) {
	var out models.UserProgress
	err := s.db.GetContext(ctx, &out, `
		INSERT INTO user_progress (telegram_id, username)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO UPDATE SET
			selected_category_id = NULL,
			selected_paragraph_id = NULL,
			current_question_id = NULL,
			current_question_index = 0,
			correct_answer_count = 0,
			wrong_answer_count = 0,
			updated_at = now()
		RETURNING `+progressColumns, telegramID, username)
	if err != nil {
		return models.UserProgress{}, fmt.Errorf("start session: %w", err)
	}
	logger.SVCProgress.LogAttrs(ctx, slog.LevelDebug, "session started",
		slog.String("event", "progress.session.start"),
		slog.Int64("user_id", telegramID),
	)
	return out, nil
}

// SetSelectedCategory records the category chosen for the current run.
func (s *ProgressStore) SetSelectedCategory(ctx context.Context, telegramID int64, categoryID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE user_progress SET
			selected_category_id = $2,
			selected_paragraph_id = NULL,
			current_question_id = NULL,
			current_question_index = 0,
			correct_answer_count = 0,
			wrong_answer_count = 0,
			updated_at = now()
		WHERE telegram_id = $1`, telegramID, categoryID)
	if err != nil {
		return fmt.Errorf("set category: %w", err)
	}
	return requireRow(res)
}

// SetSelectedParagraph records the paragraph assigned for the current run and
// rewinds the question cursor.
func (s *ProgressStore) SetSelectedParagraph(ctx context.Context, telegramID int64, paragraphID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE user_progress SET
			selected_paragraph_id = $2,
			current_question_id = NULL,
			current_question_index = 0,
			correct_answer_count = 0,
			wrong_answer_count = 0,
			updated_at = now()
		WHERE telegram_id = $1`, telegramID, paragraphID)
	if err != nil {
		return fmt.Errorf("set paragraph: %w", err)
	}
	return requireRow(res)
}

// SetCurrentQuestion points the cursor at the question being asked.
func (s *ProgressStore) SetCurrentQuestion(ctx context.Context, telegramID int64, questionID uuid.UUID, index int) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE user_progress SET
			current_question_id = $2,
			current_question_index = $3,
			updated_at = now()
		WHERE telegram_id = $1`, telegramID, questionID, index)
	if err != nil {
		return fmt.Errorf("set current question: %w", err)
	}
	return requireRow(res)
}

// RecordAnswer increments the matching counter and advances the question
// cursor in a single statement so concurrent taps cannot double count.
func (s *ProgressStore) RecordAnswer(ctx context.Context, telegramID int64, correct bool) (models.UserProgress, error) {
	correctInc, wrongInc := 0, 1
	if correct {
		correctInc, wrongInc = 1, 0
	}

	var out models.UserProgress
	err := s.db.GetContext(ctx, &out, `
		UPDATE user_progress SET
			correct_answer_count = correct_answer_count + $2,
			wrong_answer_count = wrong_answer_count + $3,
			current_question_index = current_question_index + 1,
			current_question_id = NULL,
			updated_at = now()
		WHERE telegram_id = $1
		RETURNING `+progressColumns, telegramID, correctInc, wrongInc)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProgress{}, ErrNotFound
	}
	if err != nil {
		return models.UserProgress{}, fmt.Errorf("record answer: %w", err)
	}
	logger.SVCProgress.LogAttrs(ctx, slog.LevelDebug, "answer recorded",
		slog.String("event", "progress.answer.record"),
		slog.Int64("user_id", telegramID),
		slog.Bool("correct", correct),
		slog.Int("question_index", out.CurrentQuestionIndex),
	)
	return out, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
