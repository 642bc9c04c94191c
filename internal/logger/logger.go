// Package logger configures the process-wide structured logger and exposes
// component-scoped children used across the bot.
package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/restovik/reservebot/internal/config"
)

var (
	initOnce   sync.Once
	logClosers []io.Closer

	// L is the base logger.
	L *slog.Logger

	// App logs application lifecycle events.
	App *slog.Logger
	// DB logs database connection events.
	DB *slog.Logger
	// MIG logs migration events.
	MIG *slog.Logger
	// TG logs Telegram transport events.
	TG *slog.Logger
	// Bot logs reservation flow events.
	Bot *slog.Logger
)

func init() {
	assign(slog.Default())
}

func assign(l *slog.Logger) {
	L = l
	App = l.With("component", "app")
	DB = l.With("component", "db")
	MIG = l.With("component", "db.migrate")
	TG = l.With("component", "tg")
	Bot = l.With("component", "bot")
}

// Init configures the global structured logger. It may be called only once;
// subsequent calls are no-ops.
func Init(cfg *config.Config) error {
	initOnce.Do(func() {
		var out io.Writer = os.Stdout
		if w := openLogFile(cfg); w != nil {
			out = io.MultiWriter(os.Stdout, w)
		}

		opts := &slog.HandlerOptions{Level: selectLevel(cfg)}
		var handler slog.Handler
		if selectFormat(cfg) == "text" {
			handler = slog.NewTextHandler(out, opts)
		} else {
			handler = slog.NewJSONHandler(out, opts)
		}

		assign(slog.New(handler))
		slog.SetDefault(L)
	})
	return nil
}

// Shutdown closes any opened log sinks.
func Shutdown() error {
	var first error
	for _, c := range logClosers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	logClosers = nil
	return first
}

// Component returns a child logger scoped to the given component name.
func Component(name string) *slog.Logger {
	if L == nil {
		return slog.Default()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return L
	}
	return L.With("component", name)
}

func selectLevel(cfg *config.Config) slog.Level {
	if cfg == nil {
		return slog.LevelInfo
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func selectFormat(cfg *config.Config) string {
	if cfg == nil {
		return "json"
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Format)) {
	case "text", "kv", "pretty":
		return "text"
	default:
		return "json"
	}
}

func openLogFile(cfg *config.Config) io.Writer {
	if cfg == nil {
		return nil
	}
	dir := strings.TrimSpace(cfg.Logging.Dir)
	file := strings.TrimSpace(cfg.Logging.File)
	if dir == "" || file == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("logger: failed to create log dir %s: %v", dir, err)
		return nil
	}
	path := filepath.Join(dir, file)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("logger: failed to open log file %s: %v", path, err)
		return nil
	}
	logClosers = append(logClosers, f)
	return f
}

// Sanitize removes control characters from s to keep log lines intact.
func Sanitize(s string) string {
	if s == "" {
		return s
	}
	b := strings.Builder{}
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			b.WriteRune(' ')
			continue
		}
		if unicode.IsControl(r) || r == 0x7F {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SanitizeLimit applies Sanitize and caps the output length in runes.
func SanitizeLimit(s string, max int) string {
	if max <= 0 {
		return ""
	}
	cleaned := Sanitize(s)
	r := []rune(cleaned)
	if len(r) <= max {
		return cleaned
	}
	return string(r[:max])
}
