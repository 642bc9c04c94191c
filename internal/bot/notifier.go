package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/restovik/reservebot/internal/logger"
	"github.com/restovik/reservebot/internal/reservation"
	"github.com/restovik/reservebot/internal/telegram"
)

// broadcast notifies every subscribed chat except the acting one about a
// reservation change. Delivery goes through the async sender; a full or
// closed queue falls back to sending inline. Per-chat delivery failures are
// logged, never propagated, so one dead chat cannot break the flow.
func (a *App) broadcast(ctx context.Context, actorChatID int64, header string, r *reservation.Reservation) error {
	chats, err := a.subs.List(ctx)
	if err != nil {
		return err
	}
	text := header + "\n\n" + r.Card()
	for _, chatID := range chats {
		if chatID == actorChatID {
			continue
		}
		a.notify(chatID, text)
	}
	return nil
}

func (a *App) notify(chatID int64, text string) {
	run := func() error {
		_, err := a.courier.Send(chatID, text, mdOpts(nil))
		return err
	}
	if a.sender == nil {
		a.notifyNow(chatID, run)
		return
	}
	err := a.sender.Enqueue("broadcast", chatID, run)
	if err == nil {
		return
	}
	if errors.Is(err, telegram.ErrQueueFull) || errors.Is(err, telegram.ErrQueueClosed) {
		a.notifyNow(chatID, run)
		return
	}
	logger.Bot.Error("broadcast enqueue failed",
		slog.String("event", "broadcast.fail"),
		slog.Int64("chat_id", chatID),
		slog.String("err", err.Error()),
	)
}

func (a *App) notifyNow(chatID int64, run func() error) {
	if err := run(); err != nil {
		logger.Bot.Error("broadcast send failed",
			slog.String("event", "broadcast.fail"),
			slog.Int64("chat_id", chatID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}
}
