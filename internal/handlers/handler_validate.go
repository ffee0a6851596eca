package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
	"github.com/gin-gonic/gin"
)

// registerValidateRoutes registers the advisory validation routes. They let a
// form show field errors before submitting; nothing is stored.
func registerValidateRoutes(rg *gin.RouterGroup) {
	v := rg.Group("/validate")
	{
		v.POST("/transaction", validateTransaction)
		v.POST("/budget", validateBudget)
	}
}

// validateTransaction godoc
// @Summary Validate a transaction
// @Tags validate
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction to check"
// @Success 200 {object} dto.ValidationResponse
// @Failure 400 {object} map[string]string "Malformed JSON"
// @Router /validate/transaction [post]
func validateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}
	errs := validation.ValidateTransaction(req.ToInput())
	c.JSON(http.StatusOK, dto.ValidationResponse{Valid: errs.Valid(), Errors: errs})
}

// validateBudget godoc
// @Summary Validate a budget
// @Tags validate
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget to check"
// @Success 200 {object} dto.ValidationResponse
// @Failure 400 {object} map[string]string "Malformed JSON"
// @Router /validate/budget [post]
func validateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}
	errs := validation.ValidateBudget(req.ToInput())
	c.JSON(http.StatusOK, dto.ValidationResponse{Valid: errs.Valid(), Errors: errs})
}
