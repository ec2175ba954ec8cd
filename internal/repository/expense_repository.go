package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/vetridj/event-ops/internal/model"
)

// ExpenseRepository persists crew-submitted expenses and reads them
// back for the finance and crew views.
type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	ListAll(ctx context.Context) ([]model.Expense, error)
	ListByBooking(ctx context.Context, bookingID string) ([]model.Expense, error)
	ListByCrew(ctx context.Context, crewID string) ([]model.Expense, error)
	CountPendingByCrew(ctx context.Context, crewID string) (int, error)
}

type expenseRepo struct{ db *sql.DB }

func NewExpenseRepository(db *sql.DB) ExpenseRepository { return &expenseRepo{db: db} }

// Create inserts a crew submission. New expenses always start pending;
// review happens on the admin surface.
func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.Status = model.ExpensePending
	if e.SubmittedAt.IsZero() {
		e.SubmittedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, booking_id, crew_id, amount, category, description, status, receipt_url, submitted_at)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		e.ID, e.BookingID, e.CrewID, e.Amount, string(e.Category), e.Description,
		string(e.Status), nullStr(e.ReceiptURL), e.SubmittedAt)
	return err
}

const expenseColumns = `e.id, e.booking_id, e.crew_id, e.amount, e.category,
	e.description, e.status, e.receipt_url, e.submitted_at`

// ListAll returns every expense, newest first, with the client name of
// the owning booking joined on for the finance view.
func (r *expenseRepo) ListAll(ctx context.Context) ([]model.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+expenseColumns+`, b.client_name
		 FROM expenses e
		 LEFT JOIN bookings b ON b.id = e.booking_id
		 ORDER BY e.submitted_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExpenses(rows, true)
}

func (r *expenseRepo) ListByBooking(ctx context.Context, bookingID string) ([]model.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses e
		 WHERE e.booking_id = ? ORDER BY e.submitted_at`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExpenses(rows, false)
}

func (r *expenseRepo) ListByCrew(ctx context.Context, crewID string) ([]model.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses e
		 WHERE e.crew_id = ? ORDER BY e.submitted_at DESC`, crewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExpenses(rows, false)
}

func (r *expenseRepo) CountPendingByCrew(ctx context.Context, crewID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM expenses WHERE crew_id = ? AND status = 'pending'`,
		crewID).Scan(&n)
	return n, err
}

func scanExpenses(rows *sql.Rows, withClient bool) ([]model.Expense, error) {
	out := make([]model.Expense, 0)
	for rows.Next() {
		var e model.Expense
		var amount sql.NullFloat64
		var receipt, client sql.NullString
		var category, status string
		dest := []interface{}{
			&e.ID, &e.BookingID, &e.CrewID, &amount, &category,
			&e.Description, &status, &receipt, &e.SubmittedAt,
		}
		if withClient {
			dest = append(dest, &client)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		e.Amount = moneyOrZero(amount)
		e.Category = model.ExpenseCategory(category)
		e.Status = model.ExpenseStatus(status)
		e.ReceiptURL = receipt.String
		e.ClientName = client.String
		out = append(out, e)
	}
	return out, rows.Err()
}

func nullStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
