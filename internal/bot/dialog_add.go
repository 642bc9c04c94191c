package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/restovik/reservebot/internal/logger"
	"github.com/restovik/reservebot/internal/reservation"
	"github.com/restovik/reservebot/internal/telegram"
)

// startAdd opens the add-reservation dialog. A chat runs one dialog at a
// time: a second start is rejected until the first finishes or is cancelled.
func (a *App) startAdd(ctx context.Context, chatID int64) error {
	if a.sessions.InProgress(chatID) {
		_, err := a.courier.Send(chatID, msgDialogBusy)
		return err
	}
	a.sessions.SetTemp(chatID, tempPending, &reservation.Reservation{})
	a.sessions.SetState(chatID, stateAddName)
	_, err := a.courier.Send(chatID, msgAddStart+msgAskGuestName, telegram.RemoveKeyboard())
	return err
}

// pending returns the reservation being assembled in the chat's dialog. A
// missing entry means the session was lost mid-dialog; the dialog is reset.
func (a *App) pending(chatID int64) (*reservation.Reservation, bool) {
	v, ok := a.sessions.GetTemp(chatID, tempPending)
	if !ok {
		a.sessions.Clear(chatID)
		return nil, false
	}
	r, ok := v.(*reservation.Reservation)
	if !ok {
		a.sessions.Clear(chatID)
		return nil, false
	}
	return r, true
}

func (a *App) addName(ctx context.Context, chatID int64, actor, input string) error {
	r, ok := a.pending(chatID)
	if !ok {
		return nil
	}
	r.GuestName = input
	a.sessions.SetState(chatID, stateAddDateTime)
	_, err := a.courier.Send(chatID, a.promptDateTime())
	return err
}

// addDateTime validates and stores the visit time. Validation failures
// re-prompt the same state instead of advancing or aborting.
func (a *App) addDateTime(ctx context.Context, chatID int64, actor, input string) error {
	r, ok := a.pending(chatID)
	if !ok {
		return nil
	}
	t, err := reservation.ParseDateTime(input, a.now())
	if err != nil {
		_, sendErr := a.courier.Send(chatID, a.validationMessage(err))
		return sendErr
	}
	r.DateTime = t
	a.sessions.SetState(chatID, stateAddInfo)
	_, err = a.courier.Send(chatID, msgAskInfo)
	return err
}

func (a *App) addInfo(ctx context.Context, chatID int64, actor, input string) error {
	r, ok := a.pending(chatID)
	if !ok {
		return nil
	}
	r.Info = input
	a.sessions.SetState(chatID, stateAddConfirm)
	if _, err := a.courier.Send(chatID, msgConfirmPrompt); err != nil {
		return err
	}
	_, err := a.courier.Send(chatID, r.Preview(), mdOpts(confirmMarkup()))
	return err
}

// addConfirm closes the dialog: explicit save persists and notifies, explicit
// cancel discards, anything else leaves the machine where it is.
func (a *App) addConfirm(ctx context.Context, chatID int64, actor, input string) error {
	r, ok := a.pending(chatID)
	if !ok {
		return nil
	}
	switch input {
	case labelSave:
		r.UserAdded = actor
		if err := a.res.Insert(ctx, r); err != nil {
			return err
		}
		a.sessions.Clear(chatID)
		logger.Bot.Info("reservation saved",
			slog.String("event", "reservation.saved"),
			slog.Int64("chat_id", chatID),
			slog.String("reservation", r.LogLine()),
		)
		if _, err := a.courier.Send(chatID, msgSaved, mainMenuMarkup()); err != nil {
			return err
		}
		return a.broadcast(ctx, chatID, msgNotifyNew, r)
	case labelCancel:
		a.sessions.Clear(chatID)
		_, err := a.courier.Send(chatID, msgDialogDone, mainMenuMarkup())
		return err
	default:
		return nil
	}
}

// promptDateTime shows the expected layout with a current-time example.
func (a *App) promptDateTime() string {
	return msgAskDateTime + a.now().Format(reservation.InputTimeLayout)
}

func (a *App) validationMessage(err error) string {
	var fe *reservation.FormatError
	if errors.As(err, &fe) {
		return msgInvalidFormat + a.now().Format(reservation.InputTimeLayout)
	}
	return msgPastDatetime
}
