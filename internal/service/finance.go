package service

import (
	"context"
	"fmt"

	"github.com/vetridj/event-ops/internal/model"
	"github.com/vetridj/event-ops/internal/repository"
)

// payoutHoursPerEvent is the assumed crew time per event used by the
// dashboard payout estimate. There is no timesheet integration; this is
// a stated policy placeholder.
const payoutHoursPerEvent = 5

// reconCrewFlatCost is the flat per-crew-member cost used by the
// per-booking reconciliation view. It is a second, separate placeholder
// policy and intentionally not unified with the hourly payout estimate
// above; the two figures serve different screens and the business has
// not picked a canonical formula.
const reconCrewFlatCost = 3000

// PaymentState classifies a booking's invoice for display.
type PaymentState string

const (
	PaymentPaid    PaymentState = "Paid"
	PaymentPartial PaymentState = "Partial"
	PaymentUnpaid  PaymentState = "Unpaid"
)

// Summary holds the derived money figures for the finance dashboard.
// All sums are additive over the input and independent of its order.
type Summary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	Collected     float64 `json:"collected"`
	Pending       float64 `json:"pending"`
	TotalExpenses float64 `json:"total_expenses"`
	CrewPayouts   float64 `json:"crew_payouts"`
	NetProfit     float64 `json:"net_profit"`
}

// ReconciliationRow is the per-booking profit breakdown.
type ReconciliationRow struct {
	BookingID   string  `json:"booking_id"`
	ClientName  string  `json:"client_name"`
	EventDate   string  `json:"event_date"`
	Reconciled  bool    `json:"reconciled"`
	TotalAmount float64 `json:"total_amount"`
	Expenses    float64 `json:"expenses"`
	CrewCost    float64 `json:"crew_cost"`
	Profit      float64 `json:"profit"`
}

// Summarize computes the dashboard figures from an already-fetched
// snapshot. Expenses must be joined onto the bookings by the caller;
// a plain booking fetch would silently report zero expense totals.
func Summarize(bookings []model.Booking, crew []model.Profile) Summary {
	var s Summary
	for _, b := range bookings {
		s.TotalRevenue += b.TotalAmount
		s.Collected += b.AdvancePaid
		s.Pending += b.BalanceDue
		for _, e := range b.Expenses {
			s.TotalExpenses += e.Amount
		}
	}
	for _, m := range crew {
		s.CrewPayouts += PayoutFor(m, bookings)
	}
	s.NetProfit = s.TotalRevenue - s.TotalExpenses - s.CrewPayouts
	return s
}

// PayoutFor estimates one member's payout: the number of bookings the
// member is assigned to, times the assumed hours per event, times the
// member's hourly rate.
func PayoutFor(member model.Profile, bookings []model.Booking) float64 {
	events := 0
	for _, b := range bookings {
		for _, id := range b.AssignedCrew {
			if id == member.ID {
				events++
				break
			}
		}
	}
	return float64(events*payoutHoursPerEvent) * member.HourlyRate
}

// ClassifyInvoice reports a booking's payment state: Paid when nothing
// is due, Partial when an advance has been collected against an open
// balance, Unpaid otherwise.
func ClassifyInvoice(b model.Booking) PaymentState {
	switch {
	case b.BalanceDue == 0:
		return PaymentPaid
	case b.AdvancePaid > 0:
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}

// Reconcile builds the per-booking profit rows using the flat per-crew
// cost policy.
func Reconcile(bookings []model.Booking) []ReconciliationRow {
	rows := make([]ReconciliationRow, 0, len(bookings))
	for _, b := range bookings {
		var expenses float64
		for _, e := range b.Expenses {
			expenses += e.Amount
		}
		crewCost := float64(len(b.AssignedCrew) * reconCrewFlatCost)
		rows = append(rows, ReconciliationRow{
			BookingID:   b.ID,
			ClientName:  b.ClientName,
			EventDate:   b.EventDate,
			Reconciled:  b.Status == model.StatusReconciled,
			TotalAmount: b.TotalAmount,
			Expenses:    expenses,
			CrewCost:    crewCost,
			Profit:      b.TotalAmount - expenses - crewCost,
		})
	}
	return rows
}

// Invoice is one line of the invoice table.
type Invoice struct {
	BookingID   string       `json:"booking_id"`
	ClientName  string       `json:"client_name"`
	EventDate   string       `json:"event_date"`
	TotalAmount float64      `json:"total_amount"`
	AdvancePaid float64      `json:"advance_paid"`
	BalanceDue  float64      `json:"balance_due"`
	State       PaymentState `json:"state"`
}

// FinanceData is the full payload for the finance dashboard.
type FinanceData struct {
	Summary        Summary             `json:"summary"`
	Invoices       []Invoice           `json:"invoices"`
	Expenses       []model.Expense     `json:"expenses"`
	Reconciliation []ReconciliationRow `json:"reconciliation"`
}

// FinanceService assembles the read-only finance view from the current
// snapshot of bookings, expenses, and crew. It performs no writes.
type FinanceService interface {
	FetchFinanceData(ctx context.Context) (*FinanceData, error)
}

type financeService struct {
	bookings repository.BookingRepository
	expenses repository.ExpenseRepository
	profiles repository.ProfileRepository
}

func NewFinanceService(bookings repository.BookingRepository, expenses repository.ExpenseRepository, profiles repository.ProfileRepository) FinanceService {
	return &financeService{bookings: bookings, expenses: expenses, profiles: profiles}
}

// FetchFinanceData re-queries the snapshot and derives every figure the
// dashboard shows. Bookings are fetched with expenses joined so the
// expense totals are complete.
func (s *financeService) FetchFinanceData(ctx context.Context) (*FinanceData, error) {
	bookings, err := s.bookings.List(ctx, repository.BookingJoins{Expenses: true})
	if err != nil {
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}
	expenses, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}
	crew, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch crew: %w", err)
	}

	invoices := make([]Invoice, 0, len(bookings))
	for _, b := range bookings {
		invoices = append(invoices, Invoice{
			BookingID:   b.ID,
			ClientName:  b.ClientName,
			EventDate:   b.EventDate,
			TotalAmount: b.TotalAmount,
			AdvancePaid: b.AdvancePaid,
			BalanceDue:  b.BalanceDue,
			State:       ClassifyInvoice(b),
		})
	}

	return &FinanceData{
		Summary:        Summarize(bookings, crew),
		Invoices:       invoices,
		Expenses:       expenses,
		Reconciliation: Reconcile(bookings),
	}, nil
}
