package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vetridj/event-ops/internal/model"
	"github.com/vetridj/event-ops/internal/repository"
)

// CrewStats are the headline numbers on the crew dashboard.
type CrewStats struct {
	EventsThisMonth int `json:"events_this_month"`
	PendingExpenses int `json:"pending_expenses"`
}

// CrewDashboard is the crew portal landing payload: the member's next
// assignments plus their stats. No financial booking fields appear in
// the crew projections.
type CrewDashboard struct {
	UpcomingEvents []repository.CrewEvent `json:"upcoming_events"`
	Stats          CrewStats              `json:"stats"`
}

// ExpenseInput is the crew expense submission form.
type ExpenseInput struct {
	BookingID   string  `json:"booking_id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ReceiptURL  string  `json:"receipt_url"`
}

// CrewService serves the crew portal: schedule, dashboard, and expense
// submission.
type CrewService interface {
	Dashboard(ctx context.Context, crewID string) (*CrewDashboard, error)
	Schedule(ctx context.Context, crewID string) ([]repository.CrewEvent, error)
	SubmitExpense(ctx context.Context, crewID string, in ExpenseInput) (*model.Expense, error)
	ListExpenses(ctx context.Context, crewID string) ([]model.Expense, error)
}

type crewService struct {
	assignments repository.AssignmentRepository
	expenses    repository.ExpenseRepository
}

func NewCrewService(assignments repository.AssignmentRepository, expenses repository.ExpenseRepository) CrewService {
	return &crewService{assignments: assignments, expenses: expenses}
}

func (s *crewService) Dashboard(ctx context.Context, crewID string) (*CrewDashboard, error) {
	upcoming, err := s.assignments.UpcomingByCrew(ctx, crewID, 5)
	if err != nil {
		return nil, fmt.Errorf("fetch assignments: %w", err)
	}
	eventsThisMonth, err := s.assignments.CountThisMonth(ctx, crewID)
	if err != nil {
		return nil, fmt.Errorf("count assignments: %w", err)
	}
	pendingExpenses, err := s.expenses.CountPendingByCrew(ctx, crewID)
	if err != nil {
		return nil, fmt.Errorf("count pending expenses: %w", err)
	}
	return &CrewDashboard{
		UpcomingEvents: upcoming,
		Stats: CrewStats{
			EventsThisMonth: eventsThisMonth,
			PendingExpenses: pendingExpenses,
		},
	}, nil
}

func (s *crewService) Schedule(ctx context.Context, crewID string) ([]repository.CrewEvent, error) {
	return s.assignments.ScheduleByCrew(ctx, crewID)
}

// SubmitExpense records a pending expense against a booking on behalf
// of the submitting crew member.
func (s *crewService) SubmitExpense(ctx context.Context, crewID string, in ExpenseInput) (*model.Expense, error) {
	if strings.TrimSpace(in.BookingID) == "" {
		return nil, fmt.Errorf("%w: booking_id is required", ErrValidation)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	e := &model.Expense{
		BookingID:   in.BookingID,
		CrewID:      crewID,
		Amount:      in.Amount,
		Category:    model.ExpenseCategory(in.Category),
		Description: in.Description,
		ReceiptURL:  in.ReceiptURL,
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("submit expense: %w", err)
	}
	return e, nil
}

func (s *crewService) ListExpenses(ctx context.Context, crewID string) ([]model.Expense, error) {
	return s.expenses.ListByCrew(ctx, crewID)
}
