// Package app composes application configuration and maps it onto the
// conversation controller options.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/quizbot/core/config"
	"github.com/m3rciful/quizbot/core/database"
	"github.com/m3rciful/quizbot/internal/quiz"
)

// QuizConfig tunes the conversation flow.
type QuizConfig struct {
	// AdvanceMode: "explicit" (default) or "auto".
	AdvanceMode string `yaml:"advance_mode" envconfig:"QUIZ_ADVANCE_MODE"`
	// AnswerStyle: "letter" (default) or "literal".
	AnswerStyle string `yaml:"answer_style" envconfig:"QUIZ_ANSWER_STYLE"`
	// OnError: "reply" (default) or "silent".
	OnError string `yaml:"on_error" envconfig:"QUIZ_ON_ERROR"`
}

// Config aggregates core, database and quiz settings.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Database database.Config `yaml:"database"`
	Quiz     QuizConfig      `yaml:"quiz"`
}

// Load reads the optional YAML file, overlays environment variables and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if _, err := cfg.Quiz.Options(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options maps the textual quiz settings onto controller options.
func (q QuizConfig) Options() (quiz.Options, error) {
	var opts quiz.Options

	switch strings.ToLower(strings.TrimSpace(q.AdvanceMode)) {
	case "", "explicit":
		opts.AdvanceMode = quiz.AdvanceExplicit
	case "auto":
		opts.AdvanceMode = quiz.AdvanceAuto
	default:
		return opts, fmt.Errorf("invalid quiz.advance_mode %q; allowed: explicit, auto", q.AdvanceMode)
	}

	switch strings.ToLower(strings.TrimSpace(q.AnswerStyle)) {
	case "", "letter":
		opts.AnswerStyle = quiz.AnswerLetter
	case "literal":
		opts.AnswerStyle = quiz.AnswerLiteralText
	default:
		return opts, fmt.Errorf("invalid quiz.answer_style %q; allowed: letter, literal", q.AnswerStyle)
	}

	switch strings.ToLower(strings.TrimSpace(q.OnError)) {
	case "", "reply":
		opts.OnError = quiz.ErrorReplyAndContinue
	case "silent":
		opts.OnError = quiz.ErrorSilent
	default:
		return opts, fmt.Errorf("invalid quiz.on_error %q; allowed: reply, silent", q.OnError)
	}

	return opts, nil
}
