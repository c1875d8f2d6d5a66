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

// ContentStore reads quiz content: categories, paragraphs and questions.
type ContentStore struct {
	db *sqlx.DB
}

// NewContentStore returns a store backed by the given database handle.
func NewContentStore(db *sqlx.DB) *ContentStore {
	return &ContentStore{db: db}
}

// ListCategories returns all categories ordered by name.
func (s *ContentStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := s.db.SelectContext(ctx, &out,
		`SELECT id, category_name FROM categories ORDER BY category_name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// GetCategory returns a single category by id.
func (s *ContentStore) GetCategory(ctx context.Context, id uuid.UUID) (models.Category, error) {
	var out models.Category
	err := s.db.GetContext(ctx, &out,
		`SELECT id, category_name FROM categories WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("get category: %w", err)
	}
	return out, nil
}

// ListParagraphs returns the paragraphs of a category ordered by position.
func (s *ContentStore) ListParagraphs(ctx context.Context, categoryID uuid.UUID) ([]models.Paragraph, error) {
	var out []models.Paragraph
	err := s.db.SelectContext(ctx, &out,
		`SELECT id, category_id, position, paragraph_data
		   FROM paragraphs
		  WHERE category_id = $1
		  ORDER BY position`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list paragraphs: %w", err)
	}
	return out, nil
}

// GetParagraph returns a single paragraph by id.
func (s *ContentStore) GetParagraph(ctx context.Context, id uuid.UUID) (models.Paragraph, error) {
	var out models.Paragraph
	err := s.db.GetContext(ctx, &out,
		`SELECT id, category_id, position, paragraph_data FROM paragraphs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Paragraph{}, ErrNotFound
	}
	if err != nil {
		return models.Paragraph{}, fmt.Errorf("get paragraph: %w", err)
	}
	return out, nil
}

// GetQuestion returns a single question by id.
func (s *ContentStore) GetQuestion(ctx context.Context, id uuid.UUID) (models.Question, error) {
	var out models.Question
	err := s.db.GetContext(ctx, &out,
		`SELECT id, paragraph_id, position, question_data, all_options, correct_answer
		   FROM questions WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("get question: %w", err)
	}
	return out, nil
}

// QuestionAt returns the question at the given zero-based position within a paragraph.
func (s *ContentStore) QuestionAt(ctx context.Context, paragraphID uuid.UUID, index int) (models.Question, error) {
	var out models.Question
	err := s.db.GetContext(ctx, &out,
		`SELECT id, paragraph_id, position, question_data, all_options, correct_answer
		   FROM questions
		  WHERE paragraph_id = $1
		  ORDER BY position
		  OFFSET $2 LIMIT 1`, paragraphID, index)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("question at %d: %w", index, err)
	}
	return out, nil
}

// CountQuestions returns the number of questions bound to a paragraph.
func (s *ContentStore) CountQuestions(ctx context.Context, paragraphID uuid.UUID) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM questions WHERE paragraph_id = $1`, paragraphID)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	logger.SVCContent.LogAttrs(ctx, slog.LevelDebug, "questions counted",
		slog.String("event", "content.questions.count"),
		slog.String("paragraph_id", paragraphID.String()),
		slog.Int("questions_total", n),
	)
	return n, nil
}
