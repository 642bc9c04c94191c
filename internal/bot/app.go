// Package bot implements the reservation flows: guided add/edit dialogs,
// card callbacks, list commands, and broadcast notices.
package bot

import (
	"context"
	"strconv"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/restovik/reservebot/internal/logger"
	"github.com/restovik/reservebot/internal/reservation"
	"github.com/restovik/reservebot/internal/telegram"
	"github.com/restovik/reservebot/internal/telegram/state"
)

// Dialog states. A chat holds at most one of these at a time.
const (
	stateAddName     state.State = "add_name"
	stateAddDateTime state.State = "add_datetime"
	stateAddInfo     state.State = "add_info"
	stateAddConfirm  state.State = "add_confirm"

	stateEditChoice state.State = "edit_choice"
	stateEditValue  state.State = "edit_value"
)

// Session temp-data keys.
const (
	tempPending   = "pending_reservation"
	tempEditRes   = "edit_reservation"
	tempEditMsg   = "edit_message_id"
	tempEditField = "edit_field"
)

// ReservationStore is the persistence gateway the flows depend on.
type ReservationStore interface {
	Insert(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, r *reservation.Reservation) error
	ListUpcoming(ctx context.Context, now time.Time) ([]*reservation.Reservation, error)
	ListPast(ctx context.Context, now time.Time) ([]*reservation.Reservation, error)
	ListToday(ctx context.Context, now time.Time) ([]*reservation.Reservation, error)
	ListOnDate(ctx context.Context, date time.Time) ([]*reservation.Reservation, error)
}

// SubscriberStore manages the broadcast destination list.
type SubscriberStore interface {
	List(ctx context.Context) ([]int64, error)
	Has(ctx context.Context, chatID int64) (bool, error)
	Add(ctx context.Context, chatID int64) error
}

// Courier delivers outbound messages. The live implementation wraps
// *tele.Bot; tests substitute a recorder.
type Courier interface {
	Send(chatID int64, what any, opts ...any) (*tele.Message, error)
	Edit(chatID int64, messageID int, what any, opts ...any) (*tele.Message, error)
}

// Options configures App construction.
type Options struct {
	Reservations ReservationStore
	Subscribers  SubscriberStore
	Courier      Courier
	Sender       *telegram.Sender
	Now          func() time.Time
}

// App wires the reservation flows together. All state it owns (dialog
// sessions, message bindings) is in-memory and per-chat.
type App struct {
	res      ReservationStore
	subs     SubscriberStore
	courier  Courier
	sender   *telegram.Sender
	sessions state.Manager
	bindings *Bindings
	now      func() time.Time
}

// New constructs the application.
func New(opts Options) *App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &App{
		res:      opts.Reservations,
		subs:     opts.Subscribers,
		courier:  opts.Courier,
		sender:   opts.Sender,
		sessions: state.NewMemoryManager(),
		bindings: NewBindings(),
		now:      now,
	}
}

// SetBot installs the live courier once the telebot instance exists.
func (a *App) SetBot(b *tele.Bot) {
	a.courier = botCourier{bot: b}
}

// dialogStep handles one line of user input for a dialog state.
type dialogStep func(a *App, ctx context.Context, chatID int64, actor, input string) error

// dialogSteps is the explicit FSM table: state -> input handler. States
// absent from the table (edit_choice, idle) ignore free text.
var dialogSteps = map[state.State]dialogStep{
	stateAddName:     (*App).addName,
	stateAddDateTime: (*App).addDateTime,
	stateAddInfo:     (*App).addInfo,
	stateAddConfirm:  (*App).addConfirm,
	stateEditValue:   (*App).editValue,
}

// InProgress reports whether the chat has an active dialog.
func (a *App) InProgress(chatID int64) bool {
	return a.sessions.InProgress(chatID)
}

// Handle dispatches free text to the active dialog state.
func (a *App) Handle(c tele.Context) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}
	st := a.sessions.GetState(chat.ID)
	step, ok := dialogSteps[st]
	if !ok {
		return nil
	}
	return step(a, context.Background(), chat.ID, staffName(c.Sender()), c.Text())
}

// Registry builds the command and callback registry for the bot.
func (a *App) Registry() *telegram.Registry {
	reg := telegram.NewRegistry()

	reg.RegisterCommand("/start", telegram.Command{
		Handler:     a.handleStart,
		Description: "Приветствие и главное меню",
	})
	reg.RegisterCommand("/help", telegram.Command{
		Handler:     a.handleHelp,
		Description: "Справка по командам",
		Aliases:     []string{labelHelp},
	})
	reg.RegisterCommand("/addreserve", telegram.Command{
		Handler:     a.handleAddReserve,
		Description: "Записать новую бронь",
		Aliases:     []string{labelNewReserve},
	})
	reg.RegisterCommand("/today", telegram.Command{
		Handler:     a.handleToday,
		Description: "Бронирования на сегодня",
		Aliases:     []string{labelTodayReserves},
	})
	reg.RegisterCommand("/upcoming", telegram.Command{
		Handler:     a.handleUpcoming,
		Description: "Все предстоящие бронирования",
		Aliases:     []string{labelAllReserves},
	})
	reg.RegisterCommand("/archive", telegram.Command{
		Handler:     a.handleArchive,
		Description: "Старые бронирования",
		Aliases:     []string{labelArchive},
	})
	reg.RegisterCommand("/ondate", telegram.Command{
		Handler:     a.handleOnDate,
		Description: "Бронирования на дату ДД.ММ.ГГГГ",
	})
	reg.RegisterCommand("/cancel", telegram.Command{
		Handler:     a.handleCancel,
		Description: "Прервать текущий диалог",
		Hidden:      true,
	})

	for key, h := range map[Action]tele.HandlerFunc{
		ActionVisited:      a.cbVisited,
		ActionDelete:       a.cbDelete,
		ActionEdit:         a.cbEdit,
		ActionEditName:     a.cbEditField(fieldName),
		ActionEditDateTime: a.cbEditField(fieldDateTime),
		ActionEditInfo:     a.cbEditField(fieldInfo),
		ActionCopy:         a.cbCopy,
	} {
		if err := reg.RegisterCallback(string(key), h); err != nil {
			logger.Bot.Warn("callback registration failed", "err", err.Error())
		}
	}

	reg.SetTextFallback(a.handleUnknownText)
	return reg
}

// Routes binds the registry to telebot endpoints.
func (a *App) Routes(reg *telegram.Registry) []telegram.Route {
	routes := telegram.CommandRoutes(reg)
	routes = append(routes, telegram.CallbackRoute(reg))
	routes = append(routes, telegram.TextRoute(a, reg))
	return routes
}

// staffName resolves the acting staff member's identity for user_added.
func staffName(u *tele.User) string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return strconv.FormatInt(u.ID, 10)
}

// mdOpts returns send options for Markdown-rendered card texts.
func mdOpts(markup *tele.ReplyMarkup) *tele.SendOptions {
	return &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: markup}
}

// botCourier adapts *tele.Bot to the Courier interface.
type botCourier struct {
	bot *tele.Bot
}

func (bc botCourier) Send(chatID int64, what any, opts ...any) (*tele.Message, error) {
	return bc.bot.Send(tele.ChatID(chatID), what, opts...)
}

func (bc botCourier) Edit(chatID int64, messageID int, what any, opts ...any) (*tele.Message, error) {
	msg := tele.StoredMessage{MessageID: strconv.Itoa(messageID), ChatID: chatID}
	return bc.bot.Edit(msg, what, opts...)
}
