package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type budgetSvc interface {
	portssvc.BudgetReaderSvc
	portssvc.BudgetWriterSvc
}

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	svc budgetSvc
}

func newBudgetHandler(svc budgetSvc) *budgetHandler {
	return &budgetHandler{svc: svc}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, svc budgetSvc) {
	h := newBudgetHandler(svc)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.createBudget)
		budgets.PATCH("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

// listBudgets godoc
// @Summary List budgets
// @Description Lists budgets with spending progress for the current period
// @Tags budgets
// @Produce json
// @Success 200 {array} dto.BudgetResponse
// @Failure 500 {object} map[string]string "Failed to list budgets"
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	budgets, err := h.svc.ListBudgets(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponses(budgets))
}

// createBudget godoc
// @Summary Create a budget
// @Description Creates a budget. An existing budget for the same category is replaced.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]any "Validation error with per-field messages"
// @Failure 500 {object} map[string]any "Failed to save budget"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	progress, err := h.svc.AddBudget(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add budget")
		return
	}

	logger.Info("Budget created", slog.String("budget_id", progress.Budget.ID), slog.String("category", progress.Budget.Category))
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(*progress))
}

// updateBudget godoc
// @Summary Update a budget
// @Description Changes the category, limit or period of a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget ID"
// @Param budget body dto.UpdateBudgetRequest true "Fields to change"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]any "Validation error"
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 409 {object} map[string]string "Another budget already uses the category"
// @Security BearerAuth
// @Router /budgets/{id} [patch]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")
	logger = logger.With(slog.String("budget_id", id))

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	progress, err := h.svc.UpdateBudget(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update budget")
		return
	}
	if progress == nil {
		logger.Warn("Budget not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	logger.Info("Budget updated")
	c.JSON(http.StatusOK, dto.ToBudgetResponse(*progress))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Description Removes a budget. Unknown ids succeed without change.
// @Tags budgets
// @Param id path string true "Budget ID"
// @Success 204 "No Content"
// @Failure 500 {object} map[string]any "Failed to delete budget"
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	if err := h.svc.DeleteBudget(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Failed to delete budget")
		return
	}

	logger.Info("Budget deleted", slog.String("budget_id", id))
	c.Status(http.StatusNoContent)
}
