package storage

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/restovik/reservebot/internal/reservation"
)

// Reservations provides CRUD and list access to the reservations table.
type Reservations struct {
	db *sqlx.DB
}

// NewReservations wraps the shared connection.
func NewReservations(db *sqlx.DB) *Reservations {
	return &Reservations{db: db}
}

// Insert persists a new reservation and assigns its ID.
func (s *Reservations) Insert(ctx context.Context, r *reservation.Reservation) error {
	row := r.ToRow()
	const q = `INSERT INTO reservations (guest_name, date_time, info, user_added, visited)
	           VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int64
	if err := s.db.QueryRowxContext(ctx, q, row.GuestName, row.DateTime, row.Info, row.UserAdded, row.Visited).Scan(&id); err != nil {
		return wrap("insert reservation", err)
	}
	r.ID = id
	return nil
}

// Update rewrites the full row identified by the reservation's ID. It
// returns ErrNotFound when the ID matches nothing.
func (s *Reservations) Update(ctx context.Context, r *reservation.Reservation) error {
	row := r.ToRow()
	const q = `UPDATE reservations
	           SET guest_name = $1, date_time = $2, info = $3, user_added = $4, visited = $5
	           WHERE id = $6`
	res, err := s.db.ExecContext(ctx, q, row.GuestName, row.DateTime, row.Info, row.UserAdded, row.Visited, row.ID)
	if err != nil {
		return wrap("update reservation", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row identified by the reservation's ID. It returns
// ErrNotFound when the ID matches nothing.
func (s *Reservations) Delete(ctx context.Context, r *reservation.Reservation) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, r.ID)
	if err != nil {
		return wrap("delete reservation", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListUpcoming returns reservations at or after now, soonest first.
func (s *Reservations) ListUpcoming(ctx context.Context, now time.Time) ([]*reservation.Reservation, error) {
	const q = `SELECT id, guest_name, date_time, info, user_added, visited
	           FROM reservations WHERE date_time >= $1 ORDER BY date_time`
	return s.list(ctx, "list upcoming", q, now.Format(reservation.StorageTimeLayout))
}

// ListPast returns reservations before the start of now's date, oldest first.
func (s *Reservations) ListPast(ctx context.Context, now time.Time) ([]*reservation.Reservation, error) {
	const q = `SELECT id, guest_name, date_time, info, user_added, visited
	           FROM reservations WHERE left(date_time, 10) < $1 ORDER BY date_time`
	return s.list(ctx, "list past", q, storageDate(now))
}

// ListToday returns reservations whose date matches now's date.
func (s *Reservations) ListToday(ctx context.Context, now time.Time) ([]*reservation.Reservation, error) {
	return s.ListOnDate(ctx, now)
}

// ListOnDate returns reservations on the given calendar date.
func (s *Reservations) ListOnDate(ctx context.Context, date time.Time) ([]*reservation.Reservation, error) {
	const q = `SELECT id, guest_name, date_time, info, user_added, visited
	           FROM reservations WHERE left(date_time, 10) = $1 ORDER BY date_time`
	return s.list(ctx, "list on date", q, storageDate(date))
}

func (s *Reservations) list(ctx context.Context, op, query string, arg any) ([]*reservation.Reservation, error) {
	var rows []reservation.Row
	if err := s.db.SelectContext(ctx, &rows, query, arg); err != nil {
		return nil, wrap(op, err)
	}
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := reservation.FromRow(row)
		if err != nil {
			return nil, wrap(op, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// storageDate yields the date prefix of StorageTimeLayout.
func storageDate(t time.Time) string {
	return t.Format("2006-01-02")
}
