// Package models defines the persisted entities of the quiz domain.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Category groups paragraphs by topic, e.g. "History" or "Science".
type Category struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"category_name"`
}

// Paragraph is a reading passage that a set of questions refers to.
type Paragraph struct {
	ID         uuid.UUID `db:"id"`
	CategoryID uuid.UUID `db:"category_id"`
	Position   int       `db:"position"`
	Text       string    `db:"paragraph_data"`
}

// Question is a multiple-choice question bound to a paragraph.
// CorrectAnswer holds the canonical option letter ("A".."D").
type Question struct {
	ID            uuid.UUID      `db:"id"`
	ParagraphID   uuid.UUID      `db:"paragraph_id"`
	Position      int            `db:"position"`
	Text          string         `db:"question_data"`
	Options       pq.StringArray `db:"all_options"`
	CorrectAnswer string         `db:"correct_answer"`
}

// UserProgress tracks a single participant's position in the current quiz run.
// A fresh run zeroes the counters and clears the selections.
type UserProgress struct {
	TelegramID           int64         `db:"telegram_id"`
	Username             string        `db:"username"`
	SelectedCategoryID   uuid.NullUUID `db:"selected_category_id"`
	SelectedParagraphID  uuid.NullUUID `db:"selected_paragraph_id"`
	CurrentQuestionID    uuid.NullUUID `db:"current_question_id"`
	CurrentQuestionIndex int           `db:"current_question_index"`
	CorrectAnswerCount   int           `db:"correct_answer_count"`
	WrongAnswerCount     int           `db:"wrong_answer_count"`
	CreatedAt            time.Time     `db:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at"`
}

// Answered reports how many questions the participant has answered in the current run.
func (p UserProgress) Answered() int {
	return p.CorrectAnswerCount + p.WrongAnswerCount
}
