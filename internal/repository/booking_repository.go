package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vetridj/event-ops/internal/model"
)

// BookingJoins selects which joined collections to attach to fetched
// bookings. A plain fetch (zero value) leaves Expenses and CrewPayouts
// empty and still resolves AssignedCrew from crew_assignments, matching
// what every caller of the booking list actually needs. Making the
// joins explicit keeps callers from silently receiving an incomplete
// aggregate.
type BookingJoins struct {
	Expenses bool
	Payouts  bool
}

// BookingRepository persists bookings and reads them back as canonical
// model.Booking aggregates.
type BookingRepository interface {
	Create(ctx context.Context, b *model.Booking) error
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error)
	GetByID(ctx context.Context, id string, joins BookingJoins) (*model.Booking, error)
	List(ctx context.Context, joins BookingJoins) ([]model.Booking, error)
	Seed(ctx context.Context, bookings []model.Booking) (int, error)
}

type bookingRepo struct {
	db       *sql.DB
	expenses ExpenseRepository
}

// NewBookingRepository returns a BookingRepository backed by db. The
// expense repository is used to attach expense joins on request.
func NewBookingRepository(db *sql.DB, expenses ExpenseRepository) BookingRepository {
	return &bookingRepo{db: db, expenses: expenses}
}

const bookingColumns = `id, client_name, client_email, client_phone, event_type,
	event_date, event_time, event_end_time, venue, venue_address, guest_count,
	services, status, notes, special_requests,
	base_amount, extras, discount, tax, total_amount, advance_paid, balance_due,
	created_at, updated_at`

// Create inserts a new booking row. Status is forced to PENDING and all
// monetary fields default to zero regardless of what the caller set:
// the public intake has no pricing authority.
func (r *bookingRepo) Create(ctx context.Context, b *model.Booking) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.Status = model.StatusPending
	b.BaseAmount, b.Extras, b.Discount, b.Tax = 0, 0, 0, 0
	b.TotalAmount, b.AdvancePaid, b.BalanceDue = 0, 0, 0
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt

	services, err := json.Marshal(b.Services)
	if err != nil {
		return err
	}

	const q = `INSERT INTO bookings (` + bookingColumns + `)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	_, err = r.db.ExecContext(ctx, q,
		b.ID, b.ClientName, b.ClientEmail, b.ClientPhone, string(b.EventType),
		nullDate(b.EventDate), b.EventTime, b.EventEndTime, b.Venue, b.VenueAddress, b.GuestCount,
		string(services), string(b.Status), b.Notes, b.SpecialRequests,
		b.BaseAmount, b.Extras, b.Discount, b.Tax, b.TotalAmount, b.AdvancePaid, b.BalanceDue,
		b.CreatedAt, b.UpdatedAt)
	return err
}

// UpdateStatus persists the new status with a fresh updated_at and
// reloads the full record. ErrNotFound is returned when no booking has
// the given id; the update is then a no-op.
func (r *bookingRepo) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	// Reload; a missing row surfaces here as ErrNotFound whether or not
	// the UPDATE touched anything (MySQL reports zero affected rows for
	// a same-value write too).
	return r.GetByID(ctx, id, BookingJoins{})
}

// GetByID fetches one booking and resolves its assigned crew. Expense
// and payout collections are attached only when requested via joins.
func (r *bookingRepo) GetByID(ctx context.Context, id string, joins BookingJoins) (*model.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachCrew(ctx, []*model.Booking{b}); err != nil {
		return nil, err
	}
	if err := r.attachJoins(ctx, []*model.Booking{b}, joins); err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all bookings ordered by event date ascending, with
// assigned crew resolved and optional joins attached.
func (r *bookingRepo) List(ctx context.Context, joins BookingJoins) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY event_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	var refs []*model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		refs = append(refs, &out[i])
	}
	if err := r.attachCrew(ctx, refs); err != nil {
		return nil, err
	}
	if err := r.attachJoins(ctx, refs, joins); err != nil {
		return nil, err
	}
	return out, nil
}

// Seed bulk-inserts sample bookings and returns how many were written.
// Monetary fields are stored as given; seed data is trusted.
func (r *bookingRepo) Seed(ctx context.Context, bookings []model.Booking) (int, error) {
	n := 0
	for i := range bookings {
		b := bookings[i]
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = time.Now().UTC()
		}
		b.UpdatedAt = b.CreatedAt
		services, err := json.Marshal(b.Services)
		if err != nil {
			return n, err
		}
		const q = `INSERT INTO bookings (` + bookingColumns + `)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
		if _, err := r.db.ExecContext(ctx, q,
			b.ID, b.ClientName, b.ClientEmail, b.ClientPhone, string(b.EventType),
			nullDate(b.EventDate), b.EventTime, b.EventEndTime, b.Venue, b.VenueAddress, b.GuestCount,
			string(services), string(b.Status), b.Notes, b.SpecialRequests,
			b.BaseAmount, b.Extras, b.Discount, b.Tax, b.TotalAmount, b.AdvancePaid, b.BalanceDue,
			b.CreatedAt, b.UpdatedAt); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// attachCrew resolves assigned crew ids for all given bookings in one
// query against crew_assignments.
func (r *bookingRepo) attachCrew(ctx context.Context, bookings []*model.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	index := make(map[string]*model.Booking, len(bookings))
	ids := make([]interface{}, 0, len(bookings))
	ph := make([]string, 0, len(bookings))
	for _, b := range bookings {
		index[b.ID] = b
		ids = append(ids, b.ID)
		ph = append(ph, "?")
	}
	q := `SELECT booking_id, crew_id FROM crew_assignments
	      WHERE booking_id IN (` + strings.Join(ph, ",") + `) ORDER BY assigned_at`
	rows, err := r.db.QueryContext(ctx, q, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var bookingID, crewID string
		if err := rows.Scan(&bookingID, &crewID); err != nil {
			return err
		}
		if b, ok := index[bookingID]; ok {
			b.AssignedCrew = append(b.AssignedCrew, crewID)
		}
	}
	return rows.Err()
}

// attachJoins populates the optional collections requested by joins.
func (r *bookingRepo) attachJoins(ctx context.Context, bookings []*model.Booking, joins BookingJoins) error {
	if !joins.Expenses && !joins.Payouts {
		return nil
	}
	for _, b := range bookings {
		if joins.Expenses {
			exps, err := r.expenses.ListByBooking(ctx, b.ID)
			if err != nil {
				return err
			}
			b.Expenses = exps
		}
		if joins.Payouts {
			payouts, err := r.listPayouts(ctx, b.ID)
			if err != nil {
				return err
			}
			b.CrewPayouts = payouts
		}
	}
	return nil
}

func (r *bookingRepo) listPayouts(ctx context.Context, bookingID string) ([]model.CrewPayout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, booking_id, crew_id, amount, hours, rate, status
		 FROM crew_payouts WHERE booking_id = ?`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.CrewPayout, 0)
	for rows.Next() {
		var p model.CrewPayout
		var amount, hours, rate sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.BookingID, &p.CrewID, &amount, &hours, &rate, &p.Status); err != nil {
			return nil, err
		}
		p.Amount = moneyOrZero(amount)
		p.Hours = moneyOrZero(hours)
		p.Rate = moneyOrZero(rate)
		out = append(out, p)
	}
	return out, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking decodes one bookings row into a model.Booking, applying
// the canonical defaults: NULL money becomes 0, NULL dates become the
// empty string, NULL or invalid services JSON becomes an empty set.
// Collections start empty and are filled in by the attach helpers.
func scanBooking(row rowScanner) (*model.Booking, error) {
	var b model.Booking
	var eventType, status string
	var eventDate sql.NullTime
	var eventTime, eventEndTime, notes, special sql.NullString
	var guestCount sql.NullInt64
	var services sql.NullString
	var base, extras, discount, tax, total, advance, balance sql.NullFloat64

	err := row.Scan(
		&b.ID, &b.ClientName, &b.ClientEmail, &b.ClientPhone, &eventType,
		&eventDate, &eventTime, &eventEndTime, &b.Venue, &b.VenueAddress, &guestCount,
		&services, &status, &notes, &special,
		&base, &extras, &discount, &tax, &total, &advance, &balance,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	b.EventType = model.EventType(eventType)
	b.Status = model.BookingStatus(status)
	b.EventDate = dateOrEmpty(eventDate)
	b.EventTime = eventTime.String
	b.EventEndTime = eventEndTime.String
	b.Notes = notes.String
	b.SpecialRequests = special.String
	b.GuestCount = int(guestCount.Int64)
	b.Services = decodeServices(services)
	b.BaseAmount = moneyOrZero(base)
	b.Extras = moneyOrZero(extras)
	b.Discount = moneyOrZero(discount)
	b.Tax = moneyOrZero(tax)
	b.TotalAmount = moneyOrZero(total)
	b.AdvancePaid = moneyOrZero(advance)
	b.BalanceDue = moneyOrZero(balance)
	b.Expenses = []model.Expense{}
	b.CrewPayouts = []model.CrewPayout{}
	b.AssignedCrew = []string{}
	return &b, nil
}

// decodeServices turns the stored services JSON into a string slice.
// NULL, empty, or malformed values all decode to an empty set rather
// than an error or nil.
func decodeServices(ns sql.NullString) []string {
	if !ns.Valid || strings.TrimSpace(ns.String) == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// moneyOrZero coerces a nullable numeric column to a float64, NULL
// becoming 0 (never NaN, never a nil pointer).
func moneyOrZero(f sql.NullFloat64) float64 {
	if !f.Valid {
		return 0
	}
	return f.Float64
}

// dateOrEmpty formats a nullable DATE column as YYYY-MM-DD, NULL
// becoming the empty string.
func dateOrEmpty(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.UTC().Format("2006-01-02")
}

// nullDate converts a YYYY-MM-DD string back to a driver value, the
// empty string becoming NULL.
func nullDate(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
