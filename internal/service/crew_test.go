package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetridj/event-ops/internal/model"
	"github.com/vetridj/event-ops/internal/repository"
)

// assignmentRepoMock implements repository.AssignmentRepository.
type assignmentRepoMock struct {
	upcomingByCrewFn func(ctx context.Context, crewID string, limit int) ([]repository.CrewEvent, error)
	scheduleByCrewFn func(ctx context.Context, crewID string) ([]repository.CrewEvent, error)
	countThisMonthFn func(ctx context.Context, crewID string) (int, error)
}

func (m *assignmentRepoMock) UpcomingByCrew(ctx context.Context, crewID string, limit int) ([]repository.CrewEvent, error) {
	return m.upcomingByCrewFn(ctx, crewID, limit)
}
func (m *assignmentRepoMock) ScheduleByCrew(ctx context.Context, crewID string) ([]repository.CrewEvent, error) {
	return m.scheduleByCrewFn(ctx, crewID)
}
func (m *assignmentRepoMock) CountThisMonth(ctx context.Context, crewID string) (int, error) {
	return m.countThisMonthFn(ctx, crewID)
}

func TestCrewDashboard(t *testing.T) {
	assignments := &assignmentRepoMock{
		upcomingByCrewFn: func(_ context.Context, crewID string, limit int) ([]repository.CrewEvent, error) {
			assert.Equal(t, "c-1", crewID)
			assert.Equal(t, 5, limit)
			return []repository.CrewEvent{{BookingID: "b-1", Venue: "Grand Palace Hall"}}, nil
		},
		countThisMonthFn: func(_ context.Context, _ string) (int, error) { return 3, nil },
	}
	expenses := &expenseRepoMock{
		countPendingByCrewFn: func(_ context.Context, _ string) (int, error) { return 2, nil },
	}
	svc := NewCrewService(assignments, expenses)

	dash, err := svc.Dashboard(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, dash.UpcomingEvents, 1)
	assert.Equal(t, 3, dash.Stats.EventsThisMonth)
	assert.Equal(t, 2, dash.Stats.PendingExpenses)
}

func TestSubmitExpenseStampsCrewID(t *testing.T) {
	var stored *model.Expense
	expenses := &expenseRepoMock{
		createFn: func(_ context.Context, e *model.Expense) error {
			stored = e
			return nil
		},
	}
	svc := NewCrewService(&assignmentRepoMock{}, expenses)

	exp, err := svc.SubmitExpense(context.Background(), "c-1", ExpenseInput{
		BookingID: "b-1", Amount: 450, Category: "fuel", Description: "site generator run",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "c-1", exp.CrewID)
	assert.Equal(t, "b-1", exp.BookingID)
	assert.Equal(t, model.ExpenseCategory("fuel"), exp.Category)
}

func TestSubmitExpenseValidation(t *testing.T) {
	expenses := &expenseRepoMock{
		createFn: func(_ context.Context, _ *model.Expense) error {
			t.Fatal("create must not be called on invalid input")
			return nil
		},
	}
	svc := NewCrewService(&assignmentRepoMock{}, expenses)

	cases := []ExpenseInput{
		{Amount: 450, Category: "fuel"},                       // missing booking
		{BookingID: "b-1", Category: "fuel"},                  // zero amount
		{BookingID: "b-1", Amount: -20, Category: "fuel"},     // negative amount
		{BookingID: "b-1", Amount: 450},                       // missing category
	}
	for i, in := range cases {
		_, err := svc.SubmitExpense(context.Background(), "c-1", in)
		require.Error(t, err, "case %d", i)
		assert.True(t, errors.Is(err, ErrValidation), "case %d", i)
	}
}
