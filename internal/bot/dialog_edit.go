package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/restovik/reservebot/internal/logger"
	"github.com/restovik/reservebot/internal/reservation"
	"github.com/restovik/reservebot/internal/storage"
)

// startEdit enters the edit dialog from a card's edit button: the card's
// keyboard is swapped for the three-way field selector.
func (a *App) startEdit(ctx context.Context, chatID int64, messageID int) error {
	if a.sessions.InProgress(chatID) {
		_, err := a.courier.Send(chatID, msgDialogBusy)
		return err
	}
	r, err := a.bindings.Lookup(chatID, messageID)
	if err != nil {
		return a.reportStaleCard(chatID, err)
	}
	a.sessions.SetTemp(chatID, tempEditRes, r)
	a.sessions.SetTemp(chatID, tempEditMsg, messageID)
	a.sessions.SetState(chatID, stateEditChoice)
	if _, err := a.courier.Edit(chatID, messageID, r.Card(), mdOpts(fieldChoiceMarkup())); err != nil {
		return err
	}
	_, err = a.courier.Send(chatID, msgEditChoice)
	return err
}

// chooseEditField records which field is in flight, removes the selector
// from the card, and prompts for the new value.
func (a *App) chooseEditField(ctx context.Context, chatID int64, messageID int, field editField) error {
	if a.sessions.GetState(chatID) != stateEditChoice {
		return a.reportStaleCard(chatID, &MissingBindingError{ChatID: chatID, MessageID: messageID})
	}
	r, ok := a.editing(chatID)
	if !ok {
		return a.reportStaleCard(chatID, &MissingBindingError{ChatID: chatID, MessageID: messageID})
	}
	a.sessions.SetTemp(chatID, tempEditField, field)
	a.sessions.SetState(chatID, stateEditValue)
	if _, err := a.courier.Edit(chatID, messageID, r.Card(), mdOpts(cardMarkup())); err != nil {
		return err
	}
	_, err := a.courier.Send(chatID, a.editPrompt(field))
	return err
}

// editValue applies one new field value: validate (datetime re-prompts on
// failure), persist, re-render the card in place, refresh the binding, and
// broadcast which field changed.
func (a *App) editValue(ctx context.Context, chatID int64, actor, input string) error {
	r, ok := a.editing(chatID)
	if !ok {
		return nil
	}
	field, messageID, ok := a.editTarget(chatID)
	if !ok {
		a.sessions.Clear(chatID)
		return nil
	}

	switch field {
	case fieldName:
		r.GuestName = input
	case fieldDateTime:
		t, err := reservation.ParseDateTime(input, a.now())
		if err != nil {
			_, sendErr := a.courier.Send(chatID, a.validationMessage(err))
			return sendErr
		}
		r.DateTime = t
	case fieldInfo:
		r.Info = input
	}

	if err := a.res.Update(ctx, r); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.bindings.Forget(chatID, messageID)
			a.sessions.Clear(chatID)
			return a.reportStaleCard(chatID, err)
		}
		return err
	}

	if _, err := a.courier.Edit(chatID, messageID, r.Card(), mdOpts(cardMarkup())); err != nil {
		return err
	}
	a.bindings.Bind(chatID, messageID, r)
	a.sessions.Clear(chatID)

	logger.Bot.Info("reservation edited",
		slog.String("event", "reservation.edited"),
		slog.Int64("chat_id", chatID),
		slog.String("field", string(field)),
		slog.String("reservation", r.LogLine()),
	)

	if _, err := a.courier.Send(chatID, msgSaved, mainMenuMarkup()); err != nil {
		return err
	}
	return a.broadcast(ctx, chatID, msgNotifyEdit+" "+field.label(), r)
}

// editing returns the reservation the edit dialog is working on.
func (a *App) editing(chatID int64) (*reservation.Reservation, bool) {
	v, ok := a.sessions.GetTemp(chatID, tempEditRes)
	if !ok {
		return nil, false
	}
	r, ok := v.(*reservation.Reservation)
	return r, ok
}

// editTarget returns the in-flight field and the card message being edited.
func (a *App) editTarget(chatID int64) (editField, int, bool) {
	fv, ok := a.sessions.GetTemp(chatID, tempEditField)
	if !ok {
		return "", 0, false
	}
	field, ok := fv.(editField)
	if !ok {
		return "", 0, false
	}
	mv, ok := a.sessions.GetTemp(chatID, tempEditMsg)
	if !ok {
		return "", 0, false
	}
	messageID, ok := mv.(int)
	if !ok {
		return "", 0, false
	}
	return field, messageID, true
}

func (a *App) editPrompt(field editField) string {
	switch field {
	case fieldName:
		return msgAskNewName
	case fieldDateTime:
		return a.promptDateTime()
	default:
		return msgAskNewInfo
	}
}
