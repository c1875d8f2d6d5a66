package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m3rciful/quizbot/internal/quiz"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123456:TEST"
database:
  host: localhost
  port: "5432"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "longpoll", cfg.Telegram.RunMode)

	opts, err := cfg.Quiz.Options()
	require.NoError(t, err)
	require.Equal(t, quiz.AdvanceExplicit, opts.AdvanceMode)
	require.Equal(t, quiz.AnswerLetter, opts.AnswerStyle)
	require.Equal(t, quiz.ErrorReplyAndContinue, opts.OnError)
}

func TestLoadQuizVariants(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123456:TEST"
quiz:
  advance_mode: auto
  answer_style: literal
  on_error: silent
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	opts, err := cfg.Quiz.Options()
	require.NoError(t, err)
	require.Equal(t, quiz.AdvanceAuto, opts.AdvanceMode)
	require.Equal(t, quiz.AnswerLiteralText, opts.AnswerStyle)
	require.Equal(t, quiz.ErrorSilent, opts.OnError)
}

func TestLoadRejectsInvalidQuizSettings(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123456:TEST"
quiz:
  advance_mode: sideways
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRequiresToken(t *testing.T) {
	path := writeConfig(t, `
telegram:
  run_mode: longpoll
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestQuizOptionsTable(t *testing.T) {
	cases := []struct {
		name    string
		cfg     QuizConfig
		wantErr bool
	}{
		{"empty", QuizConfig{}, false},
		{"explicit letter reply", QuizConfig{AdvanceMode: "explicit", AnswerStyle: "letter", OnError: "reply"}, false},
		{"mixed case", QuizConfig{AdvanceMode: "Auto", AnswerStyle: "Literal", OnError: "Silent"}, false},
		{"bad style", QuizConfig{AnswerStyle: "roman"}, true},
		{"bad error mode", QuizConfig{OnError: "crash"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.Options()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
