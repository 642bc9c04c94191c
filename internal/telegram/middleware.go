package telegram

import (
	"context"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/restovik/reservebot/internal/logger"
)

// Recover catches panics in handlers and prevents the bot from crashing.
func Recover(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		defer func() {
			if r := recover(); r != nil {
				logger.TG.Error("panic recovered",
					slog.String("event", "tg.panic"),
					slog.Any("err", r),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()
		return next(c)
	}
}

// Logged wraps a handler with a per-update summary log line carrying the
// handler name, outcome, and duration.
func Logged(name string, next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		start := time.Now()
		err := next(c)
		logSummary(c, name, start, err)
		return err
	}
}

func logSummary(c tele.Context, name string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "fail"
	}
	attrs := []slog.Attr{
		slog.String("event", "handler.handled"),
		slog.String("handler", name),
		slog.String("status", status),
		slog.Int64("duration_ms", time.Since(start).Round(time.Millisecond).Milliseconds()),
	}
	if chat := c.Chat(); chat != nil {
		attrs = append(attrs, slog.Int64("chat_id", chat.ID))
	}
	if user := c.Sender(); user != nil {
		attrs = append(attrs, slog.Int64("user_id", user.ID))
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			slog.String("err_code", deriveErrorCode(err)),
		)
	}
	logger.TG.LogAttrs(context.Background(), slog.LevelInfo, "handler.handled", attrs...)
}

func deriveErrorCode(err error) string {
	if err == nil {
		return ""
	}
	type coder interface{ Code() string }
	if c, ok := err.(coder); ok {
		if code := strings.TrimSpace(c.Code()); code != "" {
			return strings.ToUpper(strings.ReplaceAll(code, " ", "_"))
		}
	}
	return "UNKNOWN_ERROR"
}
