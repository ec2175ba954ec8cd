package handler

import (
	"context"
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

func patchStatus(t *testing.T, ls service.LifecycleService, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/bookings/"+id+"/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/admin/bookings/:id/status")
	c.SetParamNames("id")
	c.SetParamValues(id)

	h := NewAdminBookingHandler(ls, nil)
	require.NoError(t, h.UpdateStatus(c))
	return rec
}

func TestUpdateStatusHappyPath(t *testing.T) {
	ls := &lifecycleMock{
		updateStatusFn: func(_ context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
			return &model.Booking{ID: id, Status: status}, nil
		},
	}

	rec := patchStatus(t, ls, "b-1", `{"status":"CONFIRMED"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"CONFIRMED"`)
}

func TestUpdateStatusNotFound(t *testing.T) {
	ls := &lifecycleMock{
		updateStatusFn: func(_ context.Context, _ string, _ model.BookingStatus) (*model.Booking, error) {
			return nil, fmt.Errorf("update status: %w", repository.ErrNotFound)
		},
	}

	rec := patchStatus(t, ls, "missing", `{"status":"CONFIRMED"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	ls := &lifecycleMock{
		updateStatusFn: func(_ context.Context, _ string, status model.BookingStatus) (*model.Booking, error) {
			return nil, fmt.Errorf("%w: unknown status %q", service.ErrValidation, status)
		},
	}

	rec := patchStatus(t, ls, "b-1", `{"status":"SHIPPED"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBookingsJoinFlags(t *testing.T) {
	var gotJoins repository.BookingJoins
	ls := &lifecycleMock{
		listBookingsFn: func(_ context.Context, joins repository.BookingJoins) ([]model.Booking, error) {
			gotJoins = joins
			return []model.Booking{{ID: "b-1"}}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/bookings?include_expenses=1&include_payouts=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminBookingHandler(ls, nil)
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotJoins.Expenses)
	assert.True(t, gotJoins.Payouts)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestGetBookingNotFound(t *testing.T) {
	ls := &lifecycleMock{
		getBookingFn: func(_ context.Context, _ string, _ repository.BookingJoins) (*model.Booking, error) {
			return nil, repository.ErrNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/bookings/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewAdminBookingHandler(ls, nil)
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
