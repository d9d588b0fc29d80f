package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/dto"
	"github.com/SscSPs/money_planner/internal/middleware"
	"github.com/gin-gonic/gin"
)

// yieldHandler handles HTTP requests related to account yield.
type yieldHandler struct {
	yieldService portssvc.YieldSvc
	now          func() time.Time
}

// RegisterYieldRoutes registers routes related to account yield.
func RegisterYieldRoutes(rg *gin.RouterGroup, yieldService portssvc.YieldSvc) {
	h := &yieldHandler{yieldService: yieldService, now: time.Now}
	rg.POST("/yield", h.generateYield)
}

// generateYield godoc
// @Summary Record a month's account yield
// @Description Reconstructs the daily balances of every yield-bearing account for the month and records the total yield as an income budget for the following month. An existing record is left untouched.
// @Tags yield
// @Accept  json
// @Produce  json
// @Param   request body dto.GenerateYieldRequest true "Month to reconstruct"
// @Success 200 {object} domain.YieldOutcome
// @Failure 400 {object} map[string]string "Invalid month or as-of date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate yield"
// @Security BearerAuth
// @Router /yield [post]
func (h *yieldHandler) generateYield(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.GenerateYieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateYield", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	month, err := dto.ParseMonth(req.Month)
	if err != nil {
		respondError(c, logger, err, "Failed to generate yield")
		return
	}
	asOf := h.now().UTC()
	if req.AsOf != nil {
		if asOf, err = dto.ParseDate(*req.AsOf); err != nil {
			respondError(c, logger, err, "Failed to generate yield")
			return
		}
	}

	logger = logger.With(slog.String("month", month.String()))
	outcome, err := h.yieldService.GenerateMonthlyYield(c.Request.Context(), ownerID, month, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate yield")
		return
	}

	logger.Info("Yield generated", slog.Int64("total", outcome.Total), slog.Bool("created", outcome.Created))
	c.JSON(http.StatusOK, outcome)
}
