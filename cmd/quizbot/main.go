package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/quizbot/core/buildinfo"
	"github.com/m3rciful/quizbot/core/database"
	"github.com/m3rciful/quizbot/core/logger"
	tgcore "github.com/m3rciful/quizbot/core/telegram"
	tghelpers "github.com/m3rciful/quizbot/core/telegram/helpers"
	"github.com/m3rciful/quizbot/internal/app"
	"github.com/m3rciful/quizbot/internal/bot"
	"github.com/m3rciful/quizbot/internal/quiz"
	"github.com/m3rciful/quizbot/internal/seed"
	"github.com/m3rciful/quizbot/internal/storage"
)

func main() {
	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "config.yaml"
	}

	var (
		configPath  = flag.String("config", defaultConfig, "path to the YAML config file")
		seedContent = flag.Bool("seed", false, "load the built-in quiz dataset on startup")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("quizbot %s (%s) %s\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
		return
	}

	cfg, err := app.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitLogger(&cfg.Config); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Shutdown()

	if err := run(cfg, *seedContent); err != nil {
		logger.L.Error("fatal", slog.String("err", err.Error()))
		logger.Shutdown()
		os.Exit(1)
	}
}

// run performs the bootstrap; any error here is fatal. Per-turn failures
// later on are handled inside the conversation controller and never reach
// this level.
func run(cfg *app.Config, seedContent bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.Database); err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if seedContent {
		if err := seed.Run(ctx, db); err != nil {
			return err
		}
	}

	quizOpts, err := cfg.Quiz.Options()
	if err != nil {
		return err
	}

	ctl := quiz.NewController(
		storage.NewContentStore(db),
		storage.NewProgressStore(db),
		quizOpts,
	)
	handlers := bot.NewHandlers(ctl, db, cfg.Telegram.AdminID)

	return tgcore.RunTelegram(ctx, tgcore.RunOptions{
		Config:   &cfg.Config,
		Registry: handlers.Registry(),
		Middlewares: tgcore.DefaultMiddlewares(&cfg.Config, func(c tele.Context) error {
			return tghelpers.SendText(c, "Easy there! Give it a second and try again.")
		}),
		Routes: handlers.Routes(),
	})
}
