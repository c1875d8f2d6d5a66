package quiz

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/quizbot/internal/models"
	"github.com/m3rciful/quizbot/internal/storage"
)

type memContent struct {
	categories []models.Category
	paragraphs map[uuid.UUID][]models.Paragraph
	questions  map[uuid.UUID][]models.Question
}

func (m *memContent) ListCategories(context.Context) ([]models.Category, error) {
	return m.categories, nil
}

func (m *memContent) GetCategory(_ context.Context, id uuid.UUID) (models.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, storage.ErrNotFound
}

func (m *memContent) ListParagraphs(_ context.Context, categoryID uuid.UUID) ([]models.Paragraph, error) {
	return m.paragraphs[categoryID], nil
}

func (m *memContent) GetParagraph(_ context.Context, id uuid.UUID) (models.Paragraph, error) {
	for _, list := range m.paragraphs {
		for _, p := range list {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return models.Paragraph{}, storage.ErrNotFound
}

func (m *memContent) GetQuestion(_ context.Context, id uuid.UUID) (models.Question, error) {
	for _, list := range m.questions {
		for _, q := range list {
			if q.ID == id {
				return q, nil
			}
		}
	}
	return models.Question{}, storage.ErrNotFound
}

func (m *memContent) QuestionAt(_ context.Context, paragraphID uuid.UUID, index int) (models.Question, error) {
	list := m.questions[paragraphID]
	if index < 0 || index >= len(list) {
		return models.Question{}, storage.ErrNotFound
	}
	return list[index], nil
}

func (m *memContent) CountQuestions(_ context.Context, paragraphID uuid.UUID) (int, error) {
	return len(m.questions[paragraphID]), nil
}

type memProgress struct {
	rows map[int64]*models.UserProgress
}

func newMemProgress() *memProgress {
	return &memProgress{rows: make(map[int64]*models.UserProgress)}
}

func (m *memProgress) Get(_ context.Context, telegramID int64) (models.UserProgress, error) {
	row, ok := m.rows[telegramID]
	if !ok {
		return models.UserProgress{}, storage.ErrNotFound
	}
	return *row, nil
}

func (m *memProgress) StartSession(_ context.Context, telegramID int64, username string) (models.UserProgress, error) {
	row, ok := m.rows[telegramID]
	if !ok {
		row = &models.UserProgress{TelegramID: telegramID, Username: username}
		m.rows[telegramID] = row
	}
	row.SelectedCategoryID = uuid.NullUUID{}
	row.SelectedParagraphID = uuid.NullUUID{}
	row.CurrentQuestionID = uuid.NullUUID{}
	row.CurrentQuestionIndex = 0
	row.CorrectAnswerCount = 0
	row.WrongAnswerCount = 0
	return *row, nil
}

func (m *memProgress) SetSelectedCategory(_ context.Context, telegramID int64, categoryID uuid.UUID) error {
	row, ok := m.rows[telegramID]
	if !ok {
		return storage.ErrNotFound
	}
	row.SelectedCategoryID = uuid.NullUUID{UUID: categoryID, Valid: true}
	row.SelectedParagraphID = uuid.NullUUID{}
	row.CurrentQuestionID = uuid.NullUUID{}
	row.CurrentQuestionIndex = 0
	row.CorrectAnswerCount = 0
	row.WrongAnswerCount = 0
	return nil
}

func (m *memProgress) SetSelectedParagraph(_ context.Context, telegramID int64, paragraphID uuid.UUID) error {
	row, ok := m.rows[telegramID]
	if !ok {
		return storage.ErrNotFound
	}
	row.SelectedParagraphID = uuid.NullUUID{UUID: paragraphID, Valid: true}
	row.CurrentQuestionID = uuid.NullUUID{}
	row.CurrentQuestionIndex = 0
	row.CorrectAnswerCount = 0
	row.WrongAnswerCount = 0
	return nil
}

func (m *memProgress) SetCurrentQuestion(_ context.Context, telegramID int64, questionID uuid.UUID, index int) error {
	row, ok := m.rows[telegramID]
	if !ok {
		return storage.ErrNotFound
	}
	row.CurrentQuestionID = uuid.NullUUID{UUID: questionID, Valid: true}
	row.CurrentQuestionIndex = index
	return nil
}

func (m *memProgress) RecordAnswer(_ context.Context, telegramID int64, correct bool) (models.UserProgress, error) {
	row, ok := m.rows[telegramID]
	if !ok {
		return models.UserProgress{}, storage.ErrNotFound
	}
	if correct {
		row.CorrectAnswerCount++
	} else {
		row.WrongAnswerCount++
	}
	row.CurrentQuestionIndex++
	row.CurrentQuestionID = uuid.NullUUID{}
	return *row, nil
}

type choiceMsg struct {
	msg  string
	rows [][]Choice
}

type replyLog struct {
	texts   []string
	choices []choiceMsg
}

func (r *replyLog) Text(msg string) error {
	r.texts = append(r.texts, msg)
	return nil
}

func (r *replyLog) Choices(msg string, rows [][]Choice) error {
	r.choices = append(r.choices, choiceMsg{msg: msg, rows: rows})
	return nil
}

func (r *replyLog) reset() {
	r.texts = nil
	r.choices = nil
}

func (r *replyLog) lastChoices(t *testing.T) choiceMsg {
	t.Helper()
	require.NotEmpty(t, r.choices)
	return r.choices[len(r.choices)-1]
}

func (r *replyLog) allText() string {
	return strings.Join(r.texts, "\n")
}

type fixture struct {
	content  *memContent
	progress *memProgress
	ctl      *Controller

	category   models.Category
	paragraphs []models.Paragraph
}

// newFixture builds a single category with one paragraph of three questions
// whose correct letters are A, B and C.
func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()

	category := models.Category{ID: uuid.New(), Name: "History"}
	paragraph := models.Paragraph{ID: uuid.New(), CategoryID: category.ID, Position: 0, Text: "A paragraph about history."}

	questions := make([]models.Question, 0, 3)
	for i := 0; i < 3; i++ {
		questions = append(questions, models.Question{
			ID:            uuid.New(),
			ParagraphID:   paragraph.ID,
			Position:      i,
			Text:          fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"first", "second", "third", "fourth"},
			CorrectAnswer: string(optionLetters[i]),
		})
	}

	content := &memContent{
		categories: []models.Category{category},
		paragraphs: map[uuid.UUID][]models.Paragraph{category.ID: {paragraph}},
		questions:  map[uuid.UUID][]models.Question{paragraph.ID: questions},
	}
	progress := newMemProgress()

	ctl := NewController(content, progress, opts)
	ctl.intn = func(int) int { return 0 }

	return &fixture{
		content:    content,
		progress:   progress,
		ctl:        ctl,
		category:   category,
		paragraphs: []models.Paragraph{paragraph},
	}
}

var testUser = User{ID: 42, Username: "alice", FirstName: "Alice"}

func (f *fixture) begin(t *testing.T, r *replyLog) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.ctl.StartQuiz(ctx, testUser, r))
	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, CategoryPayload(f.category.ID)))
	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, ParagraphPayload(f.paragraphs[0].ID)))
}

func TestStartGreetsByFirstName(t *testing.T) {
	f := newFixture(t, Options{})
	r := &replyLog{}

	require.NoError(t, f.ctl.Start(context.Background(), testUser, r))
	require.Len(t, r.texts, 2)
	require.Equal(t, "Hello Alice!", r.texts[0])
	require.Contains(t, r.texts[1], "/startquiz")
}

func TestStartQuizResetsCounters(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	// Simulate a half-finished previous run.
	_, err := f.progress.StartSession(ctx, testUser.ID, testUser.Username)
	require.NoError(t, err)
	row := f.progress.rows[testUser.ID]
	row.CorrectAnswerCount = 2
	row.WrongAnswerCount = 1
	row.CurrentQuestionIndex = 3

	r := &replyLog{}
	require.NoError(t, f.ctl.StartQuiz(ctx, testUser, r))

	got, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	require.Zero(t, got.CorrectAnswerCount)
	require.Zero(t, got.WrongAnswerCount)
	require.Zero(t, got.CurrentQuestionIndex)

	// The category keyboard carries one decodable payload per category.
	kb := r.lastChoices(t)
	require.Len(t, kb.rows, 1)
	require.Len(t, kb.rows[0], 1)
	require.Equal(t, "History", kb.rows[0][0].Label)
	p, err := DecodePayload(kb.rows[0][0].Data)
	require.NoError(t, err)
	require.Equal(t, PayloadCategory, p.Kind)
	require.Equal(t, f.category.ID, p.Category)
}

func TestStartQuizKeepsFirstSeenUsername(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	r := &replyLog{}

	require.NoError(t, f.ctl.StartQuiz(ctx, testUser, r))

	renamed := testUser
	renamed.Username = "alice_renamed"
	require.NoError(t, f.ctl.StartQuiz(ctx, renamed, r))

	got, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
}

func TestDoubleStartQuizIsIdempotent(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	r := &replyLog{}

	require.NoError(t, f.ctl.StartQuiz(ctx, testUser, r))
	require.NoError(t, f.ctl.StartQuiz(ctx, testUser, r))

	got, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	require.Zero(t, got.Answered())
	require.Len(t, r.choices, 2)
}

func TestCategorySelectionSendsParagraphAndStartButton(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	r := &replyLog{}

	require.NoError(t, f.ctl.StartQuiz(ctx, testUser, r))
	r.reset()
	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, CategoryPayload(f.category.ID)))

	require.Contains(t, r.allText(), "A paragraph about history.")
	kb := r.lastChoices(t)
	require.Equal(t, "Start Quiz", kb.rows[0][0].Label)

	p, err := DecodePayload(kb.rows[0][0].Data)
	require.NoError(t, err)
	require.Equal(t, PayloadParagraph, p.Kind)
	require.Equal(t, f.paragraphs[0].ID, p.Paragraph)

	got, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	require.True(t, got.SelectedCategoryID.Valid)
	require.True(t, got.SelectedParagraphID.Valid)
}

func TestQuestionRendersLetteredOptions(t *testing.T) {
	f := newFixture(t, Options{})
	r := &replyLog{}
	f.begin(t, r)

	kb := r.lastChoices(t)
	require.Equal(t, "1.  Question 1?", kb.msg)
	require.Len(t, kb.rows, 4)
	require.Equal(t, "(A). first", kb.rows[0][0].Label)
	require.Equal(t, "(D). fourth", kb.rows[3][0].Label)

	p, err := DecodePayload(kb.rows[1][0].Data)
	require.NoError(t, err)
	require.Equal(t, PayloadOption, p.Kind)
	require.Equal(t, "B", p.Option)
}

func TestFullRunScoring(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	r := &replyLog{}
	f.begin(t, r)

	// Correct answers are A, B, C; answer A, A, C for two out of three.
	answers := []string{"A", "A", "C"}
	for i, letter := range answers {
		r.reset()
		require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, OptionPayload(letter)))
		if i < len(answers)-1 {
			require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, ActionPayload(ActionNextQuestion)))
		}
	}

	got, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.CorrectAnswerCount)
	require.Equal(t, 1, got.WrongAnswerCount)
	require.Equal(t, 3, got.Answered())

	require.Contains(t, r.allText(), "You got 2 out of 3 questions correctly!")
	require.Contains(t, r.allText(), "/startquiz")
}

func TestWrongAnswerShowsCorrectOption(t *testing.T) {
	f := newFixture(t, Options{})
	r := &replyLog{}
	f.begin(t, r)
	r.reset()

	require.NoError(t, f.ctl.HandleCallback(context.Background(), testUser, r, OptionPayload("D")))
	require.Contains(t, r.allText(), "(A). first")
}

func TestNextButtonAppearsBetweenQuestions(t *testing.T) {
	f := newFixture(t, Options{})
	r := &replyLog{}
	f.begin(t, r)
	r.reset()

	require.NoError(t, f.ctl.HandleCallback(context.Background(), testUser, r, OptionPayload("A")))
	kb := r.lastChoices(t)
	require.Len(t, kb.rows, 2)
	require.Equal(t, "Next Question", kb.rows[0][0].Label)
	require.Equal(t, "Select Another Category", kb.rows[1][0].Label)
}

func TestAutoAdvanceSkipsNextButton(t *testing.T) {
	f := newFixture(t, Options{AdvanceMode: AdvanceAuto})
	r := &replyLog{}
	f.begin(t, r)
	r.reset()

	require.NoError(t, f.ctl.HandleCallback(context.Background(), testUser, r, OptionPayload("A")))
	kb := r.lastChoices(t)
	require.Equal(t, "2.  Question 2?", kb.msg)
}

func TestLiteralAnswerStyle(t *testing.T) {
	f := newFixture(t, Options{AnswerStyle: AnswerLiteralText})
	// Store literal answer text instead of a letter.
	qs := f.content.questions[f.paragraphs[0].ID]
	qs[0].CorrectAnswer = "second"
	f.content.questions[f.paragraphs[0].ID] = qs

	ctx := context.Background()
	r := &replyLog{}
	f.begin(t, r)
	r.reset()

	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, OptionPayload("B")))
	got, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.CorrectAnswerCount)
}

func TestLiteralAnswerStyleResolvesLetterKeys(t *testing.T) {
	// The built-in dataset stores single-letter answer keys; the literal
	// style must still score a correct tap against the option texts.
	f := newFixture(t, Options{AnswerStyle: AnswerLiteralText})
	ctx := context.Background()
	r := &replyLog{}
	f.begin(t, r)
	r.reset()

	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, OptionPayload("A")))
	got, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.CorrectAnswerCount)
	require.Zero(t, got.WrongAnswerCount)
	require.Contains(t, r.allText(), "That's correct!")
}

func TestLiteralAnswerStyleRevealsOptionText(t *testing.T) {
	f := newFixture(t, Options{AnswerStyle: AnswerLiteralText})
	ctx := context.Background()
	r := &replyLog{}
	f.begin(t, r)
	r.reset()

	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, OptionPayload("D")))
	got, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.WrongAnswerCount)
	require.Contains(t, r.allText(), "first")
}

func TestMalformedCallbackIsNoOp(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	r := &replyLog{}
	f.begin(t, r)

	before, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	r.reset()

	for _, data := range []string{"garbage", "{}", `{"a":"launchMissiles"}`, `{"o":"Z"}`, `{"c":"1","p":"2"}`} {
		require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, data))
	}

	after, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.Empty(t, r.texts)
	require.Empty(t, r.choices)
}

func TestAnswerWithoutPendingQuestionIgnored(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	r := &replyLog{}

	require.NoError(t, f.ctl.StartQuiz(ctx, testUser, r))
	r.reset()

	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, OptionPayload("A")))
	got, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	require.Zero(t, got.Answered())
	require.Empty(t, r.texts)
}

func TestCallbackBeforeStartHints(t *testing.T) {
	f := newFixture(t, Options{})
	r := &replyLog{}

	require.NoError(t, f.ctl.HandleCallback(context.Background(), testUser, r, CategoryPayload(f.category.ID)))
	require.Contains(t, r.allText(), "/startquiz")
}

func TestStaleParagraphButtonIgnored(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	r := &replyLog{}

	require.NoError(t, f.ctl.StartQuiz(ctx, testUser, r))
	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, CategoryPayload(f.category.ID)))
	r.reset()

	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, ParagraphPayload(uuid.New())))
	require.Empty(t, r.texts)
	require.Empty(t, r.choices)
}

func TestNextAfterCompletionHintsRestart(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	r := &replyLog{}
	f.begin(t, r)

	for i, letter := range []string{"A", "B", "C"} {
		require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, OptionPayload(letter)))
		if i < 2 {
			require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, ActionPayload(ActionNextQuestion)))
		}
	}
	r.reset()

	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, ActionPayload(ActionNextQuestion)))
	require.Contains(t, r.allText(), "/startquiz")
	require.Empty(t, r.choices)
}

func TestSelectAnotherCategoryRestartsRun(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	r := &replyLog{}
	f.begin(t, r)
	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, OptionPayload("A")))
	r.reset()

	require.NoError(t, f.ctl.HandleCallback(ctx, testUser, r, ActionPayload(ActionSelectCategory)))

	got, err := f.progress.Get(ctx, testUser.ID)
	require.NoError(t, err)
	require.Zero(t, got.Answered())
	require.Zero(t, got.CurrentQuestionIndex)

	kb := r.lastChoices(t)
	require.Equal(t, "History", kb.rows[0][0].Label)
}

func TestSingleParagraphCategory(t *testing.T) {
	f := newFixture(t, Options{})
	r := &replyLog{}
	f.begin(t, r)

	got, err := f.progress.Get(context.Background(), testUser.ID)
	require.NoError(t, err)
	require.Equal(t, f.paragraphs[0].ID, got.SelectedParagraphID.UUID)
}

func TestFreeTextHintsStartQuiz(t *testing.T) {
	f := newFixture(t, Options{})
	r := &replyLog{}

	require.NoError(t, f.ctl.FreeText(context.Background(), testUser, r))
	require.Contains(t, r.allText(), "/startquiz")
}
