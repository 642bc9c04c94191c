package bot

import (
	"context"
	"errors"
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/restovik/reservebot/internal/logger"
	"github.com/restovik/reservebot/internal/storage"
)

// Callback adapters: unwrap the tele.Context into (chatID, messageID) and
// hand off to the flow methods, which tests drive directly.

func (a *App) cbVisited(c tele.Context) error {
	chatID, messageID, ok := callbackTarget(c)
	if !ok {
		return nil
	}
	return a.toggleVisited(context.Background(), chatID, messageID)
}

func (a *App) cbDelete(c tele.Context) error {
	chatID, messageID, ok := callbackTarget(c)
	if !ok {
		return nil
	}
	return a.deleteCard(context.Background(), chatID, messageID)
}

func (a *App) cbEdit(c tele.Context) error {
	chatID, messageID, ok := callbackTarget(c)
	if !ok {
		return nil
	}
	return a.startEdit(context.Background(), chatID, messageID)
}

func (a *App) cbEditField(field editField) tele.HandlerFunc {
	return func(c tele.Context) error {
		chatID, messageID, ok := callbackTarget(c)
		if !ok {
			return nil
		}
		return a.chooseEditField(context.Background(), chatID, messageID, field)
	}
}

func (a *App) cbCopy(c tele.Context) error {
	chatID, messageID, ok := callbackTarget(c)
	if !ok {
		return nil
	}
	return a.copyCard(chatID, messageID)
}

func callbackTarget(c tele.Context) (chatID int64, messageID int, ok bool) {
	chat := c.Chat()
	msg := c.Message()
	if chat == nil || msg == nil {
		return 0, 0, false
	}
	return chat.ID, msg.ID, true
}

// toggleVisited flips the visited flag, persists it, and redraws the card in
// place so the glyph matches the stored state.
func (a *App) toggleVisited(ctx context.Context, chatID int64, messageID int) error {
	r, err := a.bindings.Lookup(chatID, messageID)
	if err != nil {
		return a.reportStaleCard(chatID, err)
	}
	r.ToggleVisited()
	if err := a.res.Update(ctx, r); err != nil {
		r.ToggleVisited()
		if errors.Is(err, storage.ErrNotFound) {
			a.bindings.Forget(chatID, messageID)
			return a.reportStaleCard(chatID, err)
		}
		return err
	}
	logger.Bot.Info("visited toggled",
		slog.String("event", "reservation.visited"),
		slog.Int64("chat_id", chatID),
		slog.String("reservation", r.LogLine()),
	)
	if _, err := a.courier.Edit(chatID, messageID, r.Card(), mdOpts(cardMarkup())); err != nil {
		return err
	}
	a.bindings.Bind(chatID, messageID, r)
	return nil
}

// deleteCard removes the reservation, rewrites the card as a cancellation
// marker without buttons, drops the binding, and notifies the other chats.
func (a *App) deleteCard(ctx context.Context, chatID int64, messageID int) error {
	r, err := a.bindings.Lookup(chatID, messageID)
	if err != nil {
		return a.reportStaleCard(chatID, err)
	}
	if err := a.res.Delete(ctx, r); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.bindings.Forget(chatID, messageID)
			return a.reportStaleCard(chatID, err)
		}
		return err
	}
	logger.Bot.Info("reservation deleted",
		slog.String("event", "reservation.deleted"),
		slog.Int64("chat_id", chatID),
		slog.String("reservation", r.LogLine()),
	)
	if _, err := a.courier.Edit(chatID, messageID, msgDeletedMarker); err != nil {
		return err
	}
	a.bindings.Forget(chatID, messageID)
	return a.broadcast(ctx, chatID, msgNotifyDelete, r)
}

// copyCard replies with the reservation in shareable plain text.
func (a *App) copyCard(chatID int64, messageID int) error {
	r, err := a.bindings.Lookup(chatID, messageID)
	if err != nil {
		return a.reportStaleCard(chatID, err)
	}
	_, err = a.courier.Send(chatID, r.CopyText())
	return err
}

// reportStaleCard tells the chat that the card's buttons no longer work,
// typically after a restart wiped the message bindings.
func (a *App) reportStaleCard(chatID int64, cause error) error {
	logger.Bot.Warn("stale card action",
		slog.String("event", "card.stale"),
		slog.Int64("chat_id", chatID),
		slog.String("err", cause.Error()),
	)
	_, err := a.courier.Send(chatID, msgCardButtonError)
	return err
}
