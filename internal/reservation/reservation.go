// Package reservation holds the single domain entity of the bot: one guest
// booking with its canonical textual formats and render helpers.
package reservation

import "time"

const (
	// InputTimeLayout is the user-facing datetime format (DD-MM-YYYY HH:MM).
	InputTimeLayout = "02-01-2006 15:04"
	// StorageTimeLayout is the format reservations are persisted with
	// (YYYY-MM-DD HH:MM). Lexicographic order of this layout matches
	// chronological order, which the list queries rely on.
	StorageTimeLayout = "2006-01-02 15:04"
	// QueryDateLayout is the date-only format accepted by /ondate (DD.MM.YYYY).
	QueryDateLayout = "02.01.2006"
)

// Reservation is one guest booking record. A zero ID means the record has
// not been persisted yet; the store assigns IDs on insert and they never
// change afterwards.
type Reservation struct {
	ID        int64
	GuestName string
	DateTime  time.Time
	Info      string
	UserAdded string
	Visited   bool
}

// ToggleVisited flips the visited flag in memory. Persisting the change is
// the caller's responsibility.
func (r *Reservation) ToggleVisited() {
	r.Visited = !r.Visited
}

// VisitedGlyph renders the visited flag the way the card shows it.
func (r *Reservation) VisitedGlyph() string {
	if r.Visited {
		return "✅"
	}
	return "❌"
}
