package reservation

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

func TestParseDateTimeRoundTrip(t *testing.T) {
	inputs := []string{
		"31-12-2030 20:00",
		"01-01-2027 00:00",
		"28-08-2026 12:00", // exactly now is not in the past
	}
	for _, in := range inputs {
		got, err := ParseDateTime(in, testNow)
		if err != nil {
			t.Fatalf("ParseDateTime(%q): %v", in, err)
		}
		if back := got.Format(InputTimeLayout); back != in {
			t.Errorf("round trip: %q -> %q", in, back)
		}
	}
}

func TestParseDateTimeFormatError(t *testing.T) {
	inputs := []string{
		"",
		"tomorrow",
		"2030-12-31 20:00", // storage layout, not input layout
		"31.12.2030 20:00",
		"31-12-2030",
		"31-12-2030 20:00:00",
	}
	for _, in := range inputs {
		_, err := ParseDateTime(in, testNow)
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("ParseDateTime(%q) = %v, want FormatError", in, err)
		}
		var pe *PastDatetimeError
		if errors.As(err, &pe) {
			t.Errorf("ParseDateTime(%q) produced PastDatetimeError for malformed input", in)
		}
	}
}

func TestParseDateTimePast(t *testing.T) {
	_, err := ParseDateTime("31-12-2010 20:00", testNow)
	var pe *PastDatetimeError
	if !errors.As(err, &pe) {
		t.Fatalf("ParseDateTime(past) = %v, want PastDatetimeError", err)
	}
}

func TestToggleVisited(t *testing.T) {
	r := &Reservation{}
	r.ToggleVisited()
	if !r.Visited {
		t.Fatal("one toggle should set visited")
	}
	r.ToggleVisited()
	if r.Visited {
		t.Fatal("two toggles should restore visited")
	}
}

func TestRowRoundTrip(t *testing.T) {
	orig := &Reservation{
		ID:        42,
		GuestName: "Anna",
		DateTime:  time.Date(2030, 12, 31, 20, 0, 0, 0, time.Local),
		Info:      "table 5, 2 guests",
		UserAdded: "@hostess",
		Visited:   true,
	}
	got, err := FromRow(orig.ToRow())
	if err != nil {
		t.Fatalf("FromRow: %v", err)
	}
	if *got != *orig {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, orig)
	}
}

func TestFromRowBadDatetime(t *testing.T) {
	_, err := FromRow(Row{ID: 1, DateTime: "not a date"})
	if err == nil {
		t.Fatal("expected error for malformed stored datetime")
	}
}

func TestCardRendering(t *testing.T) {
	r := &Reservation{
		GuestName: "Anna_*",
		DateTime:  time.Date(2030, 12, 31, 20, 0, 0, 0, time.Local),
		Info:      "table 5",
		UserAdded: "@hostess",
	}
	card := r.Card()
	for _, want := range []string{"31-12-2030 20:00", `Anna\_\*`, "❌", "Бронь принял"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
	r.Visited = true
	if !strings.Contains(r.Card(), "✅") {
		t.Error("visited card should show ✅")
	}
}

func TestPreviewOmitsStaffFields(t *testing.T) {
	r := &Reservation{
		GuestName: "Anna",
		DateTime:  time.Date(2030, 12, 31, 20, 0, 0, 0, time.Local),
		Info:      "table 5",
		UserAdded: "@hostess",
	}
	preview := r.Preview()
	if strings.Contains(preview, "Бронь принял") {
		t.Error("preview should not include the recording user")
	}
	if !strings.Contains(preview, "Anna") || !strings.Contains(preview, "table 5") {
		t.Errorf("preview missing fields:\n%s", preview)
	}
}

func TestCopyTextUnescaped(t *testing.T) {
	r := &Reservation{
		GuestName: "Ivan_P",
		DateTime:  time.Date(2030, 12, 31, 20, 0, 0, 0, time.Local),
		Info:      "vip",
	}
	if got := r.CopyText(); got != "Ivan_P / 31-12-2030 20:00 / vip" {
		t.Errorf("CopyText = %q", got)
	}
}
