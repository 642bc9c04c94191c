package telegram

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Route declares a single bot handler bound to an endpoint. Endpoint values
// are passed directly to tele.Bot.Handle.
type Route struct {
	Endpoint any
	Handler  tele.HandlerFunc
}

// FSM is the minimal dialog interface the text router needs.
type FSM interface {
	InProgress(chatID int64) bool
	Handle(c tele.Context) error
}

// CommandRoutes wraps every registered command with shared middleware.
func CommandRoutes(reg *Registry) []Route {
	routes := make([]Route, 0, len(reg.Commands()))
	for name, cmd := range reg.Commands() {
		routes = append(routes, Route{
			Endpoint: name,
			Handler:  Recover(Logged(normalizeHandlerName(name), cmd.Handler)),
		})
	}
	return routes
}

// CallbackRoute routes inline-button callbacks through the registry by their
// action key.
func CallbackRoute(reg *Registry) Route {
	handler := func(c tele.Context) error {
		cb := c.Callback()
		if cb == nil {
			return nil
		}
		_ = c.Respond()

		key, _ := parseCallback(cb)
		if h, ok := reg.GetCallback(key); ok && h != nil {
			return Logged("callback."+normalizeHandlerName(key), h)(c)
		}
		if fb := reg.CallbackNotFound(); fb != nil {
			return Logged("callback.not_found", fb)(c)
		}
		return nil
	}
	return Route{Endpoint: tele.OnCallback, Handler: Recover(handler)}
}

// TextRoute dispatches free text: an active dialog wins, then command
// aliases, then the registry's text fallback.
func TextRoute(fsm FSM, reg *Registry) Route {
	handler := func(c tele.Context) error {
		if fsm != nil && c.Chat() != nil && fsm.InProgress(c.Chat().ID) {
			return Logged("fsm", fsm.Handle)(c)
		}
		if key, cmd, ok := reg.LookupCommand(c.Text()); ok && cmd.Handler != nil {
			return Logged(normalizeHandlerName(key), cmd.Handler)(c)
		}
		if fb := reg.TextFallback(); fb != nil {
			return Logged("fallback", fb)(c)
		}
		return nil
	}
	return Route{Endpoint: tele.OnText, Handler: Recover(handler)}
}

// parseCallback extracts the action key and payload from telebot's
// \f<unique>|<payload> callback encoding.
func parseCallback(cb *tele.Callback) (string, string) {
	if cb == nil {
		return "", ""
	}
	if cb.Unique != "" {
		return cb.Unique, cb.Data
	}
	raw := strings.TrimPrefix(cb.Data, "\f")
	parts := strings.SplitN(raw, "|", 2)
	key := strings.TrimSpace(parts[0])
	payload := ""
	if len(parts) == 2 {
		payload = parts[1]
	}
	return key, payload
}

func normalizeHandlerName(name string) string {
	name = strings.TrimPrefix(strings.TrimSpace(name), "/")
	if name == "" {
		return "unknown"
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}
