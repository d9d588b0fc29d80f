package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/dto"
	"github.com/SscSPs/money_planner/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles manual corrections of goal contributions.
type goalHandler struct {
	recalcService portssvc.RecalculationSvc
}

// RegisterGoalRoutes registers routes related to goal recalculation.
func RegisterGoalRoutes(rg *gin.RouterGroup, recalcService portssvc.RecalculationSvc) {
	h := &goalHandler{recalcService: recalcService}
	rg.PUT("/goals/:goal_id/budgets/:month/actual", h.updateActual)
}

// updateActual godoc
// @Summary Override a goal month's actual contribution
// @Description Stores the actual amount on the month's budget record and re-levels the goal's future monthly contributions
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal_id path string true "Goal ID"
// @Param   month path string true "Month (YYYY-MM)"
// @Param   request body dto.UpdateActualRequest true "Actual amount in minor units"
// @Success 200 {object} domain.RecalcOutcome
// @Failure 400 {object} map[string]string "Invalid month or amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal or month record not found"
// @Failure 500 {object} map[string]string "Failed to recalculate goal"
// @Security BearerAuth
// @Router /goals/{goal_id}/budgets/{month}/actual [put]
func (h *goalHandler) updateActual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	goalID := c.Param("goal_id")
	month, err := dto.ParseMonth(c.Param("month"))
	if err != nil {
		respondError(c, logger, err, "Failed to recalculate goal")
		return
	}

	var req dto.UpdateActualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateActual", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("goal_id", goalID), slog.String("month", month.String()))
	outcome, err := h.recalcService.RecalculateGoal(c.Request.Context(), ownerID, goalID, month, *req.ActualAmount)
	if err != nil {
		respondError(c, logger, err, "Failed to recalculate goal")
		return
	}

	logger.Info("Goal recalculated",
		slog.Int64("new_monthly", outcome.NewMonthly),
		slog.Int("updated", outcome.Updated),
		slog.Int("deleted", outcome.Deleted))
	c.JSON(http.StatusOK, outcome)
}
