// Package bot binds the quiz conversation controller to Telegram transport.
package bot

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	tgcore "github.com/m3rciful/quizbot/core/telegram"
	"github.com/m3rciful/quizbot/core/telegram/callbacks"
	"github.com/m3rciful/quizbot/core/telegram/commands"
	tghelpers "github.com/m3rciful/quizbot/core/telegram/helpers"
	"github.com/m3rciful/quizbot/core/telegram/keyboard"
	"github.com/m3rciful/quizbot/core/telegram/middleware"
	"github.com/m3rciful/quizbot/internal/quiz"
	"github.com/m3rciful/quizbot/internal/seed"
)

// Handlers exposes the Telegram command registry and routes of the quiz bot.
type Handlers struct {
	ctl     *quiz.Controller
	db      *sqlx.DB
	adminID int64
	turns   *turnLock
	reg     *tgcore.Registry
}

// NewHandlers wires the controller into Telegram handlers. db is only used
// by the admin /reseed command.
func NewHandlers(ctl *quiz.Controller, db *sqlx.DB, adminID int64) *Handlers {
	h := &Handlers{
		ctl:     ctl,
		db:      db,
		adminID: adminID,
		turns:   newTurnLock(),
	}
	h.reg = h.buildRegistry()
	return h
}

// Registry returns the command registry used for the Telegram command menu
// and the free-text fallback.
func (h *Handlers) Registry() *tgcore.Registry {
	return h.reg
}

func (h *Handlers) buildRegistry() *tgcore.Registry {
	reg := tgcore.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.handleStart,
		Description: "Greeting and usage hint",
	})
	reg.RegisterCommand("/startquiz", commands.Command{
		Handler:     h.handleStartQuiz,
		Description: "Start a new quiz",
	})
	reg.RegisterCommand("/reseed", commands.Command{
		Handler:     h.adminOnly(h.handleReseed),
		Description: "Reload quiz content",
		AdminOnly:   true,
		Hidden:      true,
	})

	reg.SetTextFallback(h.handleText)
	return reg
}

// Routes returns the endpoint bindings for tgcore.RunTelegram.
func (h *Handlers) Routes() []tgcore.Route {
	reg := h.reg

	routes := make([]tgcore.Route, 0, len(reg.Commands())+2)
	for name, cmd := range reg.Commands() {
		routes = append(routes, tgcore.Route{Endpoint: name, Handler: cmd.Handler})
	}
	routes = append(routes,
		tgcore.Route{Endpoint: tele.OnCallback, Handler: h.handleCallback},
		tgcore.Route{Endpoint: tele.OnText, Handler: reg.TextFallback()},
	)
	return routes
}

func (h *Handlers) adminOnly(next tele.HandlerFunc) tele.HandlerFunc {
	return middleware.AdminOnlyMiddleware(middleware.AdminOptions{
		AdminID: h.adminID,
		OnReject: func(c tele.Context) error {
			return tghelpers.SendText(c, "This command is not available.")
		},
	})(next)
}

func (h *Handlers) handleStart(c tele.Context) error {
	ctx, user, r, release := h.begin(c, "start")
	defer release()
	return h.ctl.Start(ctx, user, r)
}

func (h *Handlers) handleStartQuiz(c tele.Context) error {
	ctx, user, r, release := h.begin(c, "startquiz")
	defer release()
	return h.ctl.StartQuiz(ctx, user, r)
}

func (h *Handlers) handleText(c tele.Context) error {
	ctx, user, r, release := h.begin(c, "text")
	defer release()

	// Registered commands never reach the text route, so a slash message
	// landing here is a command the bot does not know.
	if name, isCommand := commandName(c.Text()); isCommand {
		if _, _, known := h.reg.LookupCommand(name); !known {
			return r.Text("Unknown command. Type /startquiz to start a quiz.")
		}
	}
	return h.ctl.FreeText(ctx, user, r)
}

// commandName extracts the leading slash command of a message, trimming a
// @botname mention suffix.
func commandName(text string) (string, bool) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", false
	}
	name := fields[0]
	if i := strings.Index(name, "@"); i > 0 {
		name = name[:i]
	}
	return name, len(name) > 1
}

func (h *Handlers) handleCallback(c tele.Context) error {
	// Acknowledge the tap first so the client stops its spinner even if the
	// turn takes a moment.
	_ = c.Respond()

	ctx, user, r, release := h.begin(c, "callback")
	defer release()
	return h.ctl.HandleCallback(ctx, user, r, callbacks.RawData(c))
}

func (h *Handlers) handleReseed(c tele.Context) error {
	ctx, _, r, release := h.begin(c, "reseed")
	defer release()

	if err := seed.Reset(ctx, h.db); err != nil {
		return r.Text("Reseeding failed, see logs.")
	}
	return r.Text("Quiz content reloaded.")
}

// begin prepares a turn: logging context, participant identity, replier and
// the per-user turn lock.
func (h *Handlers) begin(c tele.Context, handler string) (context.Context, quiz.User, quiz.Replier, func()) {
	ctx := tghelpers.WithHandler(c, handler)
	user := participant(c)
	release := h.turns.acquire(user.ID)
	return ctx, user, teleReplier{c: c}, release
}

func participant(c tele.Context) quiz.User {
	sender := c.Sender()
	if sender == nil {
		return quiz.User{}
	}
	return quiz.User{
		ID:        sender.ID,
		Username:  sender.Username,
		FirstName: sender.FirstName,
	}
}

// teleReplier adapts tele.Context to the controller's Replier interface.
type teleReplier struct {
	c tele.Context
}

func (r teleReplier) Text(msg string) error {
	return tghelpers.SendText(r.c, msg)
}

func (r teleReplier) Choices(msg string, rows [][]quiz.Choice) error {
	btnRows := make([][]keyboard.InlineBtn, len(rows))
	for i, row := range rows {
		btns := make([]keyboard.InlineBtn, len(row))
		for j, choice := range row {
			btns[j] = keyboard.InlineBtn{Text: choice.Label, Data: choice.Data}
		}
		btnRows[i] = btns
	}
	return tghelpers.SendKeyboard(r.c, msg, keyboard.InlineButtonsRows(btnRows...))
}
