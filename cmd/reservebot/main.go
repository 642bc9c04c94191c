package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/restovik/reservebot/internal/bootstrap"
	"github.com/restovik/reservebot/internal/bot"
	"github.com/restovik/reservebot/internal/buildinfo"
	"github.com/restovik/reservebot/internal/config"
	"github.com/restovik/reservebot/internal/logger"
	"github.com/restovik/reservebot/internal/storage"
	"github.com/restovik/reservebot/internal/telegram"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("reservebot: %v", err)
	}
}

func run() error {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	log.Printf("loading config: %s", cfgPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	infra, err := bootstrap.Run(bootstrap.Options{Config: cfg})
	if err != nil {
		return err
	}
	defer infra.DB.Close()
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	startedAt := time.Now()
	logger.App.Info("starting",
		slog.String("event", "start"),
		slog.String("version", buildinfo.Version),
		slog.String("commit", buildinfo.Commit),
	)

	sender := telegram.NewSender(telegram.SenderOptions{MaxRetries: 2})

	app := bot.New(bot.Options{
		Reservations: storage.NewReservations(infra.DB),
		Subscribers:  storage.NewSubscribers(infra.DB),
		Sender:       sender,
	})
	reg := app.Registry()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return telegram.RunTelegram(ctx, telegram.RunOptions{
		Config:   cfg,
		Registry: reg,
		Routes:   app.Routes(reg),
		Sender:   sender,
		OnStart: func(b *tele.Bot) error {
			app.SetBot(b)
			logger.App.Info("app ready",
				slog.String("event", "ready"),
				slog.Duration("startup_duration", time.Since(startedAt).Round(time.Millisecond)),
			)
			return nil
		},
		OnStop: func(b *tele.Bot) error {
			logger.App.Info("shutting down...", slog.String("event", "shutdown"))
			return nil
		},
	})
}
