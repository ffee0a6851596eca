package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// settingsHandler serves the currency setting, the raw snapshot and data reset.
type settingsHandler struct {
	svc portssvc.SettingsSvc
}

// registerSettingsRoutes registers settings and whole-store routes.
func registerSettingsRoutes(rg *gin.RouterGroup, svc portssvc.SettingsSvc) {
	h := &settingsHandler{svc: svc}

	settings := rg.Group("/settings")
	{
		settings.GET("/currency", h.getCurrency)
		settings.PUT("/currency", h.setCurrency)
	}
	rg.GET("/snapshot", h.getSnapshot)
	rg.DELETE("/data", h.clearData)
}

// getCurrency godoc
// @Summary Get the display currency
// @Tags settings
// @Produce json
// @Success 200 {object} dto.CurrencyResponse
// @Security BearerAuth
// @Router /settings/currency [get]
func (h *settingsHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cur, err := h.svc.GetCurrency(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to get currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(cur))
}

// setCurrency godoc
// @Summary Set the display currency
// @Description Changes the currency amounts are shown in. Amounts are not converted.
// @Tags settings
// @Accept json
// @Produce json
// @Param currency body dto.SetCurrencyRequest true "Three letter currency code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]any "Invalid currency code"
// @Security BearerAuth
// @Router /settings/currency [put]
func (h *settingsHandler) setCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	cur, err := h.svc.SetCurrency(c.Request.Context(), req.CurrencyCode)
	if err != nil {
		respondError(c, logger, err, "Failed to set currency")
		return
	}

	logger.Info("Currency changed", slog.String("currency", cur.Code))
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(cur))
}

// getSnapshot godoc
// @Summary Get the full snapshot
// @Description Returns all transactions, budgets, categories and the currency in the stored layout
// @Tags settings
// @Produce json
// @Success 200 {object} models.Snapshot
// @Security BearerAuth
// @Router /snapshot [get]
func (h *settingsHandler) getSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snap, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to read snapshot")
		return
	}
	c.JSON(http.StatusOK, mapping.ToModelSnapshot(snap))
}

// clearData godoc
// @Summary Clear all data
// @Description Deletes every transaction and budget and restores default categories and currency. Irreversible.
// @Tags settings
// @Success 204 "No Content"
// @Failure 500 {object} map[string]any "Failed to clear data"
// @Security BearerAuth
// @Router /data [delete]
func (h *settingsHandler) clearData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.svc.ClearAllData(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to clear data")
		return
	}

	logger.Warn("All data cleared", slog.String("client_ip", c.ClientIP()))
	c.Status(http.StatusNoContent)
}
