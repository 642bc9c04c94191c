package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/restovik/reservebot/internal/logger"
	"github.com/restovik/reservebot/internal/reservation"
)

// handleStart greets the chat, shows the main menu, and registers the chat
// as a broadcast subscriber on first contact.
func (a *App) handleStart(c tele.Context) error {
	ctx := context.Background()
	chatID := c.Chat().ID

	subscribed, err := a.subs.Has(ctx, chatID)
	if err != nil {
		return err
	}
	if !subscribed {
		if err := a.subs.Add(ctx, chatID); err != nil {
			return err
		}
		logger.Bot.Info("chat subscribed",
			slog.String("event", "subscriber.added"),
			slog.Int64("chat_id", chatID),
		)
	}

	_, err = a.courier.Send(chatID, msgGreeting, mainMenuMarkup())
	return err
}

func (a *App) handleHelp(c tele.Context) error {
	_, err := a.courier.Send(c.Chat().ID, msgHelp, mainMenuMarkup())
	return err
}

func (a *App) handleToday(c tele.Context) error {
	ctx := context.Background()
	rs, err := a.res.ListToday(ctx, a.now())
	if err != nil {
		return err
	}
	return a.sendCards(c.Chat().ID, rs)
}

func (a *App) handleUpcoming(c tele.Context) error {
	ctx := context.Background()
	rs, err := a.res.ListUpcoming(ctx, a.now())
	if err != nil {
		return err
	}
	return a.sendCards(c.Chat().ID, rs)
}

func (a *App) handleArchive(c tele.Context) error {
	ctx := context.Background()
	rs, err := a.res.ListPast(ctx, a.now())
	if err != nil {
		return err
	}
	return a.sendCards(c.Chat().ID, rs)
}

// handleOnDate lists reservations for the date given as the command payload
// in DD.MM.YYYY form.
func (a *App) handleOnDate(c tele.Context) error {
	chatID := c.Chat().ID
	arg := strings.TrimSpace(c.Message().Payload)
	date, err := time.ParseInLocation(reservation.QueryDateLayout, arg, time.Local)
	if err != nil {
		_, err := a.courier.Send(chatID, msgInvalidDate+a.now().Format(reservation.QueryDateLayout))
		return err
	}
	rs, err := a.res.ListOnDate(context.Background(), date)
	if err != nil {
		return err
	}
	return a.sendCards(chatID, rs)
}

func (a *App) handleAddReserve(c tele.Context) error {
	return a.startAdd(context.Background(), c.Chat().ID)
}

// handleCancel aborts whatever dialog is active in the chat.
func (a *App) handleCancel(c tele.Context) error {
	chatID := c.Chat().ID
	if !a.sessions.InProgress(chatID) {
		_, err := a.courier.Send(chatID, msgNoActiveDialog, mainMenuMarkup())
		return err
	}
	a.sessions.Clear(chatID)
	_, err := a.courier.Send(chatID, msgDialogDone, mainMenuMarkup())
	return err
}

func (a *App) handleUnknownText(c tele.Context) error {
	_, err := a.courier.Send(c.Chat().ID, msgHelp, mainMenuMarkup())
	return err
}

// sendCards sends one card message per reservation and binds each message to
// the reservation it shows.
func (a *App) sendCards(chatID int64, rs []*reservation.Reservation) error {
	if len(rs) == 0 {
		_, err := a.courier.Send(chatID, msgNothingFound, mainMenuMarkup())
		return err
	}
	for _, r := range rs {
		msg, err := a.courier.Send(chatID, r.Card(), mdOpts(cardMarkup()))
		if err != nil {
			return err
		}
		if msg != nil {
			a.bindings.Bind(chatID, msg.ID, r)
		}
	}
	return nil
}
