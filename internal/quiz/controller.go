// Package quiz implements the conversation flow of the quiz bot:
// category selection, paragraph reading, sequential questions and the
// final score summary.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/m3rciful/quizbot/core/logger"
	"github.com/m3rciful/quizbot/internal/models"
	"github.com/m3rciful/quizbot/internal/storage"
)

// User identifies the participant of the current turn.
type User struct {
	ID        int64
	Username  string
	FirstName string
}

// Choice is a single inline button: visible label plus callback payload.
type Choice struct {
	Label string
	Data  string
}

// Replier delivers controller output to the participant. The Telegram
// adapter implements it; tests use an in-memory recorder.
type Replier interface {
	Text(msg string) error
	Choices(msg string, rows [][]Choice) error
}

// ContentStore provides read access to quiz content.
type ContentStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (models.Category, error)
	ListParagraphs(ctx context.Context, categoryID uuid.UUID) ([]models.Paragraph, error)
	GetParagraph(ctx context.Context, id uuid.UUID) (models.Paragraph, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (models.Question, error)
	QuestionAt(ctx context.Context, paragraphID uuid.UUID, index int) (models.Question, error)
	CountQuestions(ctx context.Context, paragraphID uuid.UUID) (int, error)
}

// ProgressStore persists per-participant conversation state.
type ProgressStore interface {
	Get(ctx context.Context, telegramID int64) (models.UserProgress, error)
	StartSession(ctx context.Context, telegramID int64, username string) (models.UserProgress, error)
	SetSelectedCategory(ctx context.Context, telegramID int64, categoryID uuid.UUID) error
	SetSelectedParagraph(ctx context.Context, telegramID int64, paragraphID uuid.UUID) error
	SetCurrentQuestion(ctx context.Context, telegramID int64, questionID uuid.UUID, index int) error
	RecordAnswer(ctx context.Context, telegramID int64, correct bool) (models.UserProgress, error)
}

const optionLetters = "ABCDEFGH"

// Controller drives the quiz conversation. All operations are safe to call
// in any order: stale or malformed input degrades to a hint, never a crash.
type Controller struct {
	content  ContentStore
	progress ProgressStore
	opts     Options

	// intn picks the random paragraph; injectable for deterministic tests.
	intn func(n int) int
}

// NewController wires a controller over the given stores.
func NewController(content ContentStore, progress ProgressStore, opts Options) *Controller {
	return &Controller{
		content:  content,
		progress: progress,
		opts:     opts,
		intn:     rand.IntN,
	}
}

// Start greets the participant and points them at /startquiz.
func (c *Controller) Start(ctx context.Context, user User, r Replier) error {
	name := strings.TrimSpace(user.FirstName)
	if name == "" {
		name = "there"
	}
	if err := r.Text(fmt.Sprintf("Hello %s!", name)); err != nil {
		return c.fail(ctx, r, "start", err)
	}
	if err := r.Text("Please enter or press /startquiz to start the quiz!"); err != nil {
		return c.fail(ctx, r, "start", err)
	}
	return nil
}

// StartQuiz resets the participant's run and offers the category keyboard.
func (c *Controller) StartQuiz(ctx context.Context, user User, r Replier) error {
	if _, err := c.progress.StartSession(ctx, user.ID, user.Username); err != nil {
		return c.fail(ctx, r, "startquiz", err)
	}
	logger.Info(ctx, "quiz", "session.start", slog.Int64("user_id", user.ID))

	if err := r.Text("Welcome to the Quiz world!"); err != nil {
		return c.fail(ctx, r, "startquiz", err)
	}
	return c.sendCategories(ctx, r)
}

// FreeText answers any plain message outside the command flow.
func (c *Controller) FreeText(ctx context.Context, user User, r Replier) error {
	return r.Text("We are still working on other features. You can use the quiz bot by typing /startquiz")
}

// HandleCallback decodes a callback payload and dispatches it. Malformed
// payloads are dropped silently so replayed or foreign buttons do nothing.
func (c *Controller) HandleCallback(ctx context.Context, user User, r Replier, data string) error {
	p, err := DecodePayload(data)
	if err != nil {
		logger.Debug(ctx, "quiz", "payload.drop",
			slog.Int64("user_id", user.ID),
			slog.String("err", err.Error()),
		)
		return nil
	}

	switch p.Kind {
	case PayloadCategory:
		return c.selectCategory(ctx, user, r, p.Category)
	case PayloadParagraph:
		return c.confirmParagraph(ctx, user, r, p.Paragraph)
	case PayloadOption:
		return c.answerOption(ctx, user, r, p.Option)
	case PayloadAction:
		switch p.Action {
		case ActionNextQuestion:
			return c.nextQuestion(ctx, user, r)
		case ActionSelectCategory:
			return c.selectAnotherCategory(ctx, user, r)
		}
	}
	return nil
}

func (c *Controller) sendCategories(ctx context.Context, r Replier) error {
	categories, err := c.content.ListCategories(ctx)
	if err != nil {
		return c.fail(ctx, r, "categories", err)
	}
	if len(categories) == 0 {
		return r.Text("No quiz categories are available yet. Please try again later.")
	}

	row := make([]Choice, 0, len(categories))
	for _, cat := range categories {
		row = append(row, Choice{Label: cat.Name, Data: CategoryPayload(cat.ID)})
	}
	logger.Debug(ctx, "quiz", "categories.sent", slog.Int("categories", len(categories)))
	return r.Choices("Please select a category and click on it:", [][]Choice{row})
}

func (c *Controller) selectCategory(ctx context.Context, user User, r Replier, categoryID uuid.UUID) error {
	if _, err := c.requireProgress(ctx, user, r); err != nil {
		return nil
	}

	category, err := c.content.GetCategory(ctx, categoryID)
	if err != nil {
		return c.fail(ctx, r, "category.select", err)
	}
	if err := c.progress.SetSelectedCategory(ctx, user.ID, category.ID); err != nil {
		return c.fail(ctx, r, "category.select", err)
	}

	paragraphs, err := c.content.ListParagraphs(ctx, category.ID)
	if err != nil {
		return c.fail(ctx, r, "category.select", err)
	}
	if len(paragraphs) == 0 {
		if err := r.Text("This category has no reading material yet. Please pick another one."); err != nil {
			return c.fail(ctx, r, "category.select", err)
		}
		return c.sendCategories(ctx, r)
	}

	paragraph := paragraphs[c.intn(len(paragraphs))]
	if err := c.progress.SetSelectedParagraph(ctx, user.ID, paragraph.ID); err != nil {
		return c.fail(ctx, r, "category.select", err)
	}
	logger.Info(ctx, "quiz", "category.selected",
		slog.Int64("user_id", user.ID),
		slog.String("category_id", category.ID.String()),
		slog.String("paragraph_id", paragraph.ID.String()),
	)

	if err := r.Text("Please read the paragraph carefully before starting!"); err != nil {
		return c.fail(ctx, r, "category.select", err)
	}
	if err := r.Text(paragraph.Text); err != nil {
		return c.fail(ctx, r, "category.select", err)
	}
	return r.Choices("After reading the paragraph, press Start to begin the quiz.", [][]Choice{
		{{Label: "Start Quiz", Data: ParagraphPayload(paragraph.ID)}},
	})
}

func (c *Controller) confirmParagraph(ctx context.Context, user User, r Replier, paragraphID uuid.UUID) error {
	progress, err := c.requireProgress(ctx, user, r)
	if err != nil {
		return nil
	}
	// A stale Start button from a previous run must not hijack the current one.
	if progress.SelectedParagraphID.Valid && progress.SelectedParagraphID.UUID != paragraphID {
		logger.Debug(ctx, "quiz", "paragraph.stale",
			slog.Int64("user_id", user.ID),
			slog.String("paragraph_id", paragraphID.String()),
		)
		return nil
	}

	if _, err := c.content.GetParagraph(ctx, paragraphID); err != nil {
		return c.fail(ctx, r, "paragraph.confirm", err)
	}
	if err := c.progress.SetSelectedParagraph(ctx, user.ID, paragraphID); err != nil {
		return c.fail(ctx, r, "paragraph.confirm", err)
	}
	return c.askQuestion(ctx, user, r, paragraphID, 0)
}

func (c *Controller) askQuestion(ctx context.Context, user User, r Replier, paragraphID uuid.UUID, index int) error {
	question, err := c.content.QuestionAt(ctx, paragraphID, index)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			if txtErr := r.Text("This paragraph has no questions yet. Type /startquiz to pick another category."); txtErr != nil {
				return c.fail(ctx, r, "question.ask", txtErr)
			}
			return nil
		}
		return c.fail(ctx, r, "question.ask", err)
	}
	if err := c.progress.SetCurrentQuestion(ctx, user.ID, question.ID, index); err != nil {
		return c.fail(ctx, r, "question.ask", err)
	}

	rows := make([][]Choice, 0, len(question.Options))
	for i, opt := range question.Options {
		if i >= len(optionLetters) {
			break
		}
		letter := string(optionLetters[i])
		rows = append(rows, []Choice{{
			Label: fmt.Sprintf("(%s). %s", letter, opt),
			Data:  OptionPayload(letter),
		}})
	}
	logger.Debug(ctx, "quiz", "question.sent",
		slog.Int64("user_id", user.ID),
		slog.String("question_id", question.ID.String()),
		slog.Int("question_index", index),
	)
	return r.Choices(fmt.Sprintf("%d.  %s", index+1, question.Text), rows)
}

func (c *Controller) answerOption(ctx context.Context, user User, r Replier, letter string) error {
	progress, err := c.requireProgress(ctx, user, r)
	if err != nil {
		return nil
	}
	// No question pending: late tap after the answer was already recorded.
	if !progress.CurrentQuestionID.Valid {
		logger.Debug(ctx, "quiz", "answer.stale", slog.Int64("user_id", user.ID))
		return nil
	}

	question, err := c.content.GetQuestion(ctx, progress.CurrentQuestionID.UUID)
	if err != nil {
		return c.fail(ctx, r, "answer", err)
	}

	idx := letterIndex(letter)
	if idx < 0 || idx >= len(question.Options) {
		logger.Debug(ctx, "quiz", "answer.drop",
			slog.Int64("user_id", user.ID),
			slog.String("option", letter),
		)
		return nil
	}

	correct := c.isCorrect(question, letter, idx)
	updated, err := c.progress.RecordAnswer(ctx, user.ID, correct)
	if err != nil {
		return c.fail(ctx, r, "answer", err)
	}
	logger.Info(ctx, "quiz", "answer.recorded",
		slog.Int64("user_id", user.ID),
		slog.String("question_id", question.ID.String()),
		slog.Bool("correct", correct),
		slog.Int("question_index", updated.CurrentQuestionIndex),
	)

	if correct {
		if err := r.Text("Great job! That's correct!"); err != nil {
			return c.fail(ctx, r, "answer", err)
		}
	} else {
		if err := r.Text(fmt.Sprintf("Good try! The correct answer is\n%q", c.correctAnswerText(question))); err != nil {
			return c.fail(ctx, r, "answer", err)
		}
	}

	if !updated.SelectedParagraphID.Valid {
		return c.fail(ctx, r, "answer", fmt.Errorf("progress without paragraph for user %d", user.ID))
	}
	total, err := c.content.CountQuestions(ctx, updated.SelectedParagraphID.UUID)
	if err != nil {
		return c.fail(ctx, r, "answer", err)
	}

	if updated.CurrentQuestionIndex >= total {
		return c.finish(ctx, user, r, updated, total)
	}

	if c.opts.AdvanceMode == AdvanceAuto {
		return c.askQuestion(ctx, user, r, updated.SelectedParagraphID.UUID, updated.CurrentQuestionIndex)
	}
	return r.Choices(
		"Click on Next Question to move to the next question.\nClick on Select Another Category to start a new quiz.",
		[][]Choice{
			{{Label: "Next Question", Data: ActionPayload(ActionNextQuestion)}},
			{{Label: "Select Another Category", Data: ActionPayload(ActionSelectCategory)}},
		},
	)
}

func (c *Controller) nextQuestion(ctx context.Context, user User, r Replier) error {
	progress, err := c.requireProgress(ctx, user, r)
	if err != nil {
		return nil
	}
	if !progress.SelectedParagraphID.Valid {
		return c.hint(r)
	}
	total, err := c.content.CountQuestions(ctx, progress.SelectedParagraphID.UUID)
	if err != nil {
		return c.fail(ctx, r, "question.next", err)
	}
	// A leftover Next button after the run finished restarts nothing.
	if progress.CurrentQuestionIndex >= total {
		return r.Text("Click on /startquiz to start a new quiz.")
	}
	return c.askQuestion(ctx, user, r, progress.SelectedParagraphID.UUID, progress.CurrentQuestionIndex)
}

func (c *Controller) selectAnotherCategory(ctx context.Context, user User, r Replier) error {
	if _, err := c.progress.StartSession(ctx, user.ID, user.Username); err != nil {
		return c.fail(ctx, r, "category.restart", err)
	}
	return c.sendCategories(ctx, r)
}

func (c *Controller) finish(ctx context.Context, user User, r Replier, progress models.UserProgress, total int) error {
	logger.Info(ctx, "quiz", "quiz.completed",
		slog.Int64("user_id", user.ID),
		slog.Int("correct", progress.CorrectAnswerCount),
		slog.Int("wrong", progress.WrongAnswerCount),
		slog.Int("questions_total", total),
	)
	summary := fmt.Sprintf(
		"Congratulations! You have completed the quiz.\nCorrect answers: %d\nWrong answers: %d\nYou got %d out of %d questions correctly!",
		progress.CorrectAnswerCount, progress.WrongAnswerCount, progress.CorrectAnswerCount, total,
	)
	if err := r.Text(summary); err != nil {
		return c.fail(ctx, r, "finish", err)
	}
	return r.Text("Click on /startquiz to start a new quiz.")
}

func (c *Controller) isCorrect(q models.Question, letter string, idx int) bool {
	switch c.opts.AnswerStyle {
	case AnswerLiteralText:
		return q.Options[idx] == literalAnswer(q)
	default:
		return letter == q.CorrectAnswer
	}
}

func (c *Controller) correctAnswerText(q models.Question) string {
	if c.opts.AnswerStyle == AnswerLiteralText {
		return literalAnswer(q)
	}
	idx := letterIndex(q.CorrectAnswer)
	if idx >= 0 && idx < len(q.Options) {
		return fmt.Sprintf("(%s). %s", q.CorrectAnswer, q.Options[idx])
	}
	return q.CorrectAnswer
}

// literalAnswer returns the correct option's display text. The stored key may
// be a single letter label (the seeded content's shape) or the text itself.
func literalAnswer(q models.Question) string {
	if idx := letterIndex(q.CorrectAnswer); idx >= 0 && idx < len(q.Options) {
		return q.Options[idx]
	}
	return q.CorrectAnswer
}

func letterIndex(s string) int {
	if len(s) != 1 {
		return -1
	}
	return strings.Index(optionLetters, s)
}

// requireProgress loads the participant's progress or hints at /startquiz
// when no run has been started. The error return only signals "stop here".
func (c *Controller) requireProgress(ctx context.Context, user User, r Replier) (models.UserProgress, error) {
	progress, err := c.progress.Get(ctx, user.ID)
	if errors.Is(err, storage.ErrNotFound) {
		_ = c.hint(r)
		return models.UserProgress{}, err
	}
	if err != nil {
		_ = c.fail(ctx, r, "progress.load", err)
		return models.UserProgress{}, err
	}
	return progress, nil
}

func (c *Controller) hint(r Replier) error {
	return r.Text("Please type /startquiz to start a quiz first.")
}

// fail logs the turn failure and, depending on configuration, tells the
// participant. It always returns nil so a broken turn never stops the bot.
func (c *Controller) fail(ctx context.Context, r Replier, op string, err error) error {
	logger.Error(ctx, "quiz", op+".fail", slog.String("err", err.Error()))
	if c.opts.OnError == ErrorReplyAndContinue {
		_ = r.Text("An error occurred while processing your request. Please try again later.")
	}
	return nil
}
