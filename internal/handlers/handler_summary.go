package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/utils/aggregation"
	"github.com/gin-gonic/gin"
)

type summarySvc interface {
	portssvc.SummarySvc
	GetCurrency(ctx context.Context) (domain.Currency, error)
}

// summaryHandler serves the aggregated dashboard views.
type summaryHandler struct {
	svc summarySvc
}

// registerSummaryRoutes registers the reporting routes.
func registerSummaryRoutes(rg *gin.RouterGroup, svc summarySvc) {
	h := &summaryHandler{svc: svc}

	summary := rg.Group("/summary")
	{
		summary.GET("", h.getSummary)
		summary.GET("/categories", h.getExpensesByCategory)
		summary.GET("/monthly", h.getMonthly)
	}
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Balance, totals, category breakdown, recent transactions, monthly history and budget progress
// @Tags summary
// @Produce json
// @Param months query int false "Months of history" default(6)
// @Param recent query int false "Number of recent transactions" default(5)
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}
	if params.Months == 0 {
		params.Months = aggregation.DefaultMonths
	}
	if params.Recent == 0 {
		params.Recent = defaultRecentLimit
	}

	summary, err := h.svc.Summary(c.Request.Context(), params.Months, params.Recent)
	if err != nil {
		respondError(c, logger, err, "Failed to build summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getExpensesByCategory godoc
// @Summary Expenses by category
// @Description Expense totals per category, largest first, with their share of all expenses
// @Tags summary
// @Produce json
// @Success 200 {array} dto.CategoryAmountResponse
// @Security BearerAuth
// @Router /summary/categories [get]
func (h *summaryHandler) getExpensesByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.svc.ExpensesByCategory(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to group expenses")
		return
	}
	cur, err := h.svc.GetCurrency(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to group expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryAmountResponses(rows, cur.Code))
}

// getMonthly godoc
// @Summary Monthly totals
// @Description Income and expense per calendar month, oldest first
// @Tags summary
// @Produce json
// @Param months query int false "Number of months" default(6)
// @Success 200 {array} dto.MonthlyTotalsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /summary/monthly [get]
func (h *summaryHandler) getMonthly(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}
	if params.Months == 0 {
		params.Months = aggregation.DefaultMonths
	}

	months, err := h.svc.MonthlyTotals(c.Request.Context(), params.Months)
	if err != nil {
		respondError(c, logger, err, "Failed to group by month")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyTotalsResponses(months))
}
