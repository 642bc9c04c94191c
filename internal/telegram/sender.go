package telegram

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/restovik/reservebot/internal/logger"
)

var (
	// ErrQueueClosed is returned when enqueue is attempted after Close.
	ErrQueueClosed = errors.New("telegram sender: queue closed")
	// ErrQueueFull indicates the queue is saturated and the job was dropped.
	ErrQueueFull = errors.New("telegram sender: queue full")
)

// SenderOptions controls the outbound dispatcher.
type SenderOptions struct {
	QueueSize    int
	Workers      int
	MaxRetries   int
	RetryBackoff time.Duration
}

type senderJob struct {
	action string
	chatID int64
	run    func() error
}

// Sender executes outbound Telegram calls asynchronously with retries on
// transient network failures. Broadcast fan-out goes through it so a slow
// subscriber does not stall update handling.
type Sender struct {
	opts SenderOptions
	jobs chan senderJob
	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewSender starts a dispatcher with sane defaults for zeroed options.
func NewSender(opts SenderOptions) *Sender {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 256
	}
	if opts.Workers <= 0 {
		opts.Workers = 2
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = 2 * time.Second
	}

	s := &Sender{
		opts: opts,
		jobs: make(chan senderJob, opts.QueueSize),
		stop: make(chan struct{}),
	}
	s.wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go s.worker()
	}
	return s
}

// Enqueue schedules run for asynchronous execution. The closure must be
// idempotent if retries are desired.
func (s *Sender) Enqueue(action string, chatID int64, run func() error) error {
	if run == nil {
		return errors.New("telegram sender: nil run function")
	}
	select {
	case <-s.stop:
		return ErrQueueClosed
	default:
	}
	select {
	case s.jobs <- senderJob{action: action, chatID: chatID, run: run}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops workers after draining queued jobs.
func (s *Sender) Close() {
	s.once.Do(func() {
		close(s.stop)
		close(s.jobs)
		s.wg.Wait()
	})
}

func (s *Sender) worker() {
	defer s.wg.Done()
	for j := range s.jobs {
		s.handle(j)
	}
}

func (s *Sender) handle(j senderJob) {
	attempts := s.opts.MaxRetries + 1
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := j.run(); err != nil {
			lastErr = err
			if !shouldRetry(err) || attempt == attempts {
				break
			}
			time.Sleep(s.opts.RetryBackoff * time.Duration(attempt))
			continue
		}
		return
	}
	logger.TG.LogAttrs(context.Background(), slog.LevelError, "send.fail",
		slog.String("event", "send.fail"),
		slog.String("action", j.action),
		slog.Int64("chat_id", j.chatID),
		slog.Int("attempts", attempts),
		slog.String("err", logger.SanitizeLimit(lastErr.Error(), 256)),
	)
}

// shouldRetry reports whether a network error is worth retrying. It focuses
// on transient dial/timeout failures from net/http.
func shouldRetry(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() || opErr.Op == "dial" {
			return true
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true
		}
		if urlErr.Err != nil && !errors.Is(urlErr.Err, err) {
			return shouldRetry(urlErr.Err)
		}
	}

	return false
}
