package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetridj/event-ops/internal/model"
	"github.com/vetridj/event-ops/internal/repository"
	"github.com/vetridj/event-ops/internal/service"
)

// lifecycleMock implements service.LifecycleService.
type lifecycleMock struct {
	createBookingFn func(ctx context.Context, intake service.BookingIntake) (string, error)
	updateStatusFn  func(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error)
	listBookingsFn  func(ctx context.Context, joins repository.BookingJoins) ([]model.Booking, error)
	getBookingFn    func(ctx context.Context, id string, joins repository.BookingJoins) (*model.Booking, error)
}

func (m *lifecycleMock) CreateBooking(ctx context.Context, intake service.BookingIntake) (string, error) {
	return m.createBookingFn(ctx, intake)
}
func (m *lifecycleMock) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	return m.updateStatusFn(ctx, id, status)
}
func (m *lifecycleMock) ListBookings(ctx context.Context, joins repository.BookingJoins) ([]model.Booking, error) {
	return m.listBookingsFn(ctx, joins)
}
func (m *lifecycleMock) GetBooking(ctx context.Context, id string, joins repository.BookingJoins) (*model.Booking, error) {
	return m.getBookingFn(ctx, id, joins)
}

func postBooking(t *testing.T, ls service.LifecycleService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewPublicBookingHandler(ls)
	require.NoError(t, h.Create(c))
	return rec
}

func TestPublicBookingCreate(t *testing.T) {
	var got service.BookingIntake
	ls := &lifecycleMock{
		createBookingFn: func(_ context.Context, intake service.BookingIntake) (string, error) {
			got = intake
			return "b-1", nil
		},
	}

	rec := postBooking(t, ls, `{
		"name":"Anand Kumar","email":"anand@example.com","phone":"+91 98400 11223",
		"event_type":"wedding","event_date":"2026-09-12","venue":"Grand Palace Hall",
		"budget":"100000-150000","message":"Full setup please"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"b-1"`)
	assert.Equal(t, "Anand Kumar", got.Name)
	assert.Equal(t, "100000-150000", got.Budget)
}

func TestPublicBookingValidationError(t *testing.T) {
	ls := &lifecycleMock{
		createBookingFn: func(_ context.Context, _ service.BookingIntake) (string, error) {
			return "", fmt.Errorf("%w: venue is required", service.ErrValidation)
		},
	}

	rec := postBooking(t, ls, `{"name":"Anand"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "venue is required")
}

func TestPublicBookingInternalErrorIsOpaque(t *testing.T) {
	ls := &lifecycleMock{
		createBookingFn: func(_ context.Context, _ service.BookingIntake) (string, error) {
			return "", errors.New("dial tcp 10.0.0.5:3306: connection refused")
		},
	}

	rec := postBooking(t, ls, `{"name":"Anand"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The wire error must not leak infrastructure detail.
	assert.NotContains(t, rec.Body.String(), "3306")
	assert.Contains(t, rec.Body.String(), "booking request failed")
}
