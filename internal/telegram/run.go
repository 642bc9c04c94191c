package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/restovik/reservebot/internal/config"
	"github.com/restovik/reservebot/internal/logger"
)

// RunOptions controls RunTelegram.
type RunOptions struct {
	Config   *config.Config
	Registry *Registry
	Routes   []Route
	Sender   *Sender

	OnStart func(bot *tele.Bot) error
	OnStop  func(bot *tele.Bot) error
}

// RunTelegram composes and runs the bot until the provided context is done.
func RunTelegram(ctx context.Context, opts RunOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Config == nil {
		return fmt.Errorf("telegram: nil config provided")
	}

	cfg := opts.Config
	reg := opts.Registry
	if reg == nil {
		reg = NewRegistry()
	}

	settings := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: BuildPoller(cfg),
		Client: buildHTTPClient(),
	}

	bot, err := tele.NewBot(settings)
	if err != nil {
		return fmt.Errorf("telegram: bot initialization failed: %w", err)
	}

	logger.TG.Info("bot starting",
		slog.String("event", "mode"),
		slog.String("mode", cfg.Telegram.RunMode),
	)

	for _, route := range opts.Routes {
		if route.Endpoint == nil || route.Handler == nil {
			continue
		}
		bot.Handle(route.Endpoint, route.Handler)
	}

	if cmds := reg.ListCommands(); len(cmds) > 0 {
		if err := bot.SetCommands(cmds); err != nil {
			logger.TG.Warn("set commands failed",
				slog.String("event", "set_commands"),
				slog.String("err", err.Error()),
			)
		}
	}

	if opts.OnStart != nil {
		if err := opts.OnStart(bot); err != nil {
			return err
		}
	}

	runDone := make(chan struct{})
	go func() {
		bot.Start()
		close(runDone)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		bot.Stop()
		<-runDone
		runErr = ctx.Err()
	case <-runDone:
	}

	if opts.Sender != nil {
		opts.Sender.Close()
	}

	if opts.OnStop != nil {
		if err := opts.OnStop(bot); err != nil {
			return err
		}
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

// buildHTTPClient returns an HTTP client tuned for Telegram API calls.
func buildHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 65 * time.Second,
	}
	return &http.Client{
		Timeout:   70 * time.Second,
		Transport: transport,
	}
}
