package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/restovik/reservebot/internal/telegram"
)

// Action is the closed set of inline-button actions. Callback data carries
// only the action key; the reservation is resolved through the message
// binding, never serialized into the callback channel.
type Action string

const (
	ActionVisited      Action = "visited"
	ActionDelete       Action = "delete_reservation"
	ActionEdit         Action = "edit_reservation"
	ActionEditName     Action = "edit_name"
	ActionEditDateTime Action = "edit_datetime"
	ActionEditInfo     Action = "edit_info"
	ActionCopy         Action = "copy_format"
)

// editField names the reservation field an edit dialog is changing.
type editField string

const (
	fieldName     editField = "name"
	fieldDateTime editField = "datetime"
	fieldInfo     editField = "info"
)

func (f editField) label() string {
	switch f {
	case fieldName:
		return labelFieldName
	case fieldDateTime:
		return labelFieldDateTime
	default:
		return labelFieldInfo
	}
}

// cardMarkup builds the inline keyboard attached to every reservation card.
func cardMarkup() *tele.ReplyMarkup {
	return telegram.InlineButtonsRows(
		[]telegram.InlineBtn{{Text: labelVisited, Unique: string(ActionVisited)}},
		[]telegram.InlineBtn{
			{Text: labelEdit, Unique: string(ActionEdit)},
			{Text: labelCopy, Unique: string(ActionCopy)},
		},
		[]telegram.InlineBtn{{Text: labelDelete, Unique: string(ActionDelete)}},
	)
}

// fieldChoiceMarkup builds the three-way field selector shown when editing.
func fieldChoiceMarkup() *tele.ReplyMarkup {
	return telegram.InlineButtons([]telegram.InlineBtn{
		{Text: labelFieldName, Unique: string(ActionEditName)},
		{Text: labelFieldDateTime, Unique: string(ActionEditDateTime)},
		{Text: labelFieldInfo, Unique: string(ActionEditInfo)},
	})
}

// mainMenuMarkup builds the persistent reply keyboard.
func mainMenuMarkup() *tele.ReplyMarkup {
	return telegram.ReplyButtons(
		[]string{labelNewReserve},
		[]string{labelTodayReserves},
		[]string{labelAllReserves, labelArchive},
		[]string{labelHelp},
	)
}

// confirmMarkup builds the save/cancel reply keyboard for the add dialog.
func confirmMarkup() *tele.ReplyMarkup {
	return telegram.ReplyButtons([]string{labelSave, labelCancel})
}
