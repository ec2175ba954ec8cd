package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vetridj/event-ops/internal/service"
)

// AdminFinanceHandler serves the finance dashboard.
type AdminFinanceHandler struct {
	Finance service.FinanceService
}

func NewAdminFinanceHandler(fs service.FinanceService) *AdminFinanceHandler {
	return &AdminFinanceHandler{Finance: fs}
}

// Overview returns the summary, invoice list, expense ledger, and the
// per-event reconciliation in one payload.
func (h *AdminFinanceHandler) Overview(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	data, err := h.Finance.FetchFinanceData(ctx)
	if err != nil {
		c.Logger().Errorf("finance overview failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "finance overview failed"})
	}
	return c.JSON(http.StatusOK, data)
}
