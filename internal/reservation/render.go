package reservation

import (
	"fmt"
	"strings"

	"github.com/restovik/reservebot/internal/format"
)

// Preview returns the short text block shown before the save/cancel prompt.
func (r *Reservation) Preview() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Имя гостя: %s\n", format.EscapeMarkdown(r.GuestName))
	fmt.Fprintf(&b, "Время визита: %s\n", r.DateTime.Format(InputTimeLayout))
	fmt.Fprintf(&b, "Дополнительная информация:\n%s", format.EscapeMarkdown(r.Info))
	return b.String()
}

// Card returns the full reservation card, including who recorded the booking
// and the visited glyph.
func (r *Reservation) Card() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Имя гостя: %s\n", format.EscapeMarkdown(r.GuestName))
	fmt.Fprintf(&b, "Время визита: %s\n", r.DateTime.Format(InputTimeLayout))
	fmt.Fprintf(&b, "Дополнительная информация:\n%s\n", format.EscapeMarkdown(r.Info))
	fmt.Fprintf(&b, "Бронь принял: %s\n", format.EscapeMarkdown(r.UserAdded))
	fmt.Fprintf(&b, "Гости пришли: %s", r.VisitedGlyph())
	return b.String()
}

// LogLine returns a compact one-line representation for structured logs.
func (r *Reservation) LogLine() string {
	return fmt.Sprintf("#%d %s %s visited=%t", r.ID, r.DateTime.Format(StorageTimeLayout), r.GuestName, r.Visited)
}

// CopyText returns a plain-text block suitable for pasting elsewhere. It is
// intentionally unescaped: the bot sends it without a parse mode.
func (r *Reservation) CopyText() string {
	return fmt.Sprintf("%s / %s / %s", r.GuestName, r.DateTime.Format(InputTimeLayout), r.Info)
}
