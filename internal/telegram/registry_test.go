package telegram

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func noop(tele.Context) error { return nil }

func TestRegisterCommandRequiresSlash(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("start", Command{Handler: noop})
	if len(reg.Commands()) != 0 {
		t.Error("command without slash prefix must be rejected")
	}
	reg.RegisterCommand("/start", Command{Handler: noop})
	if len(reg.Commands()) != 1 {
		t.Error("slash command must be registered")
	}
}

func TestLookupCommandByAlias(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/addreserve", Command{Handler: noop, Aliases: []string{"Новое бронирование"}})

	key, _, ok := reg.LookupCommand("Новое бронирование")
	if !ok || key != "/addreserve" {
		t.Errorf("alias lookup = (%q, %t), want (/addreserve, true)", key, ok)
	}
	if _, _, ok := reg.LookupCommand("/addreserve"); !ok {
		t.Error("name lookup must still work")
	}
	if _, _, ok := reg.LookupCommand("Новое"); ok {
		t.Error("partial alias must not match")
	}
}

func TestRegisterCallbackDuplicate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterCallback("visited", noop); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if err := reg.RegisterCallback("visited", noop); err == nil {
		t.Error("duplicate registration must fail")
	}
}

func TestListCommandsHidesHidden(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/help", Command{Handler: noop, Description: "help"})
	reg.RegisterCommand("/cancel", Command{Handler: noop, Hidden: true})

	list := reg.ListCommands()
	if len(list) != 1 || list[0].Text != "/help" {
		t.Errorf("ListCommands = %v, want only /help", list)
	}
}

func TestParseCallback(t *testing.T) {
	cases := []struct {
		cb      *tele.Callback
		key     string
		payload string
	}{
		{&tele.Callback{Unique: "visited", Data: "x"}, "visited", "x"},
		{&tele.Callback{Data: "\fdelete_reservation|42"}, "delete_reservation", "42"},
		{&tele.Callback{Data: "\fcopy_format"}, "copy_format", ""},
		{nil, "", ""},
	}
	for _, tc := range cases {
		key, payload := parseCallback(tc.cb)
		if key != tc.key || payload != tc.payload {
			t.Errorf("parseCallback(%+v) = (%q, %q), want (%q, %q)", tc.cb, key, payload, tc.key, tc.payload)
		}
	}
}

func TestDeriveErrorCode(t *testing.T) {
	if got := deriveErrorCode(nil); got != "" {
		t.Errorf("nil error code = %q", got)
	}
	if got := deriveErrorCode(errFake{}); got != "SOME_CODE" {
		t.Errorf("code = %q, want SOME_CODE", got)
	}
}

type errFake struct{}

func (errFake) Error() string { return "boom" }
func (errFake) Code() string  { return "some code" }
