package reservation

import (
	"fmt"
	"time"
)

// Row is the flat storage projection of a Reservation. DateTime is kept as
// text in StorageTimeLayout and Visited as 0/1, matching the table schema.
type Row struct {
	ID        int64  `db:"id"`
	GuestName string `db:"guest_name"`
	DateTime  string `db:"date_time"`
	Info      string `db:"info"`
	UserAdded string `db:"user_added"`
	Visited   int    `db:"visited"`
}

// ToRow converts the entity into its storage projection.
func (r *Reservation) ToRow() Row {
	visited := 0
	if r.Visited {
		visited = 1
	}
	return Row{
		ID:        r.ID,
		GuestName: r.GuestName,
		DateTime:  r.DateTime.Format(StorageTimeLayout),
		Info:      r.Info,
		UserAdded: r.UserAdded,
		Visited:   visited,
	}
}

// FromRow rebuilds a Reservation from its storage projection.
func FromRow(row Row) (*Reservation, error) {
	t, err := time.ParseInLocation(StorageTimeLayout, row.DateTime, time.Local)
	if err != nil {
		return nil, fmt.Errorf("reservation %d: bad stored datetime %q: %w", row.ID, row.DateTime, err)
	}
	return &Reservation{
		ID:        row.ID,
		GuestName: row.GuestName,
		DateTime:  t,
		Info:      row.Info,
		UserAdded: row.UserAdded,
		Visited:   row.Visited != 0,
	}, nil
}
