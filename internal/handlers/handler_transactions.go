package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/utils/export"
	"github.com/gin-gonic/gin"
)

const defaultRecentLimit = 5

type transactionSvc interface {
	portssvc.TransactionReaderSvc
	portssvc.TransactionWriterSvc
}

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	svc transactionSvc
	loc *time.Location
}

func newTransactionHandler(svc transactionSvc, loc *time.Location) *transactionHandler {
	return &transactionHandler{svc: svc, loc: loc}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, svc transactionSvc, loc *time.Location) {
	h := newTransactionHandler(svc, loc)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("", h.createTransaction)
		txns.GET("/recent", h.recentTransactions)
		txns.GET("/export", h.exportTransactions)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first, filtered and paginated with a cursor token
// @Tags transactions
// @Produce json
// @Param type query string false "income, expense or all"
// @Param category query string false "Category name or all"
// @Param search query string false "Case-insensitive description search"
// @Param dateRange query string false "all, today, week or month"
// @Param from query string false "Earliest date (YYYY-MM-DD, inclusive)"
// @Param to query string false "Latest date (YYYY-MM-DD, inclusive)"
// @Param minAmount query number false "Minimum amount (inclusive)"
// @Param maxAmount query number false "Maximum amount (inclusive)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]any "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}
	filter, errs := params.ToFilter(h.loc)
	if !errs.Valid() {
		logger.Warn("Invalid transaction filter", slog.Any("fields", errs))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": errs})
		return
	}

	page, err := h.svc.ListTransactions(c.Request.Context(), filter, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Debug("Transactions listed", slog.Int("count", len(page.Transactions)))
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page))
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Validates and stores an income or expense. Date defaults to today.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]any "Validation error with per-field messages"
// @Failure 500 {object} map[string]any "Failed to save transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	tx, err := h.svc.AddTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", tx.ID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction. Unknown ids succeed without change.
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 500 {object} map[string]any "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	if err := h.svc.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", id))
	c.Status(http.StatusNoContent)
}

// recentTransactions godoc
// @Summary Recent transactions
// @Description Returns the most recent transactions by date
// @Tags transactions
// @Produce json
// @Param limit query int false "Number of transactions" default(5)
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Security BearerAuth
// @Router /transactions/recent [get]
func (h *transactionHandler) recentTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			logger.Warn("Invalid limit for recent transactions", slog.String("limit", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	txns, err := h.svc.RecentTransactions(c.Request.Context(), limit)
	if err != nil {
		respondError(c, logger, err, "Failed to get recent transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// exportTransactions godoc
// @Summary Export transactions
// @Description Exports the filtered transactions, newest first, as CSV or an XLSX workbook
// @Tags transactions
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv or xlsx" default(csv)
// @Param type query string false "income, expense or all"
// @Param category query string false "Category name or all"
// @Param dateRange query string false "all, today, week or month"
// @Param from query string false "Earliest date (YYYY-MM-DD)"
// @Param to query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]any "Invalid query"
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	format, ok := export.ParseFormat(c.Query("format"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"format": "format must be one of: csv, xlsx"}})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}
	filter, errs := params.ToFilter(h.loc)
	if !errs.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": errs})
		return
	}

	txns, err := h.svc.FilterTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to export transactions")
		return
	}

	buf := new(bytes.Buffer)
	if format == export.FormatXLSX {
		err = export.WriteXLSX(buf, txns)
	} else {
		err = export.WriteCSV(buf, txns)
	}
	if err != nil {
		logger.Error("Failed to render export", slog.String("format", string(format)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}

	logger.Info("Transactions exported", slog.String("format", string(format)), slog.Int("count", len(txns)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transactions_%s.%s", time.Now().In(h.loc).Format("20060102"), format))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
