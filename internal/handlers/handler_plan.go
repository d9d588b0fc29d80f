package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_planner/internal/core/domain"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/dto"
	"github.com/SscSPs/money_planner/internal/middleware"
	"github.com/gin-gonic/gin"
)

// planHandler handles HTTP requests related to obligation plans.
type planHandler struct {
	planService portssvc.PlanSvcFacade
}

// newPlanHandler creates a new planHandler.
func newPlanHandler(ps portssvc.PlanSvcFacade) *planHandler {
	return &planHandler{
		planService: ps,
	}
}

// RegisterPlanRoutes registers the projection, regeneration and custom plan routes.
func RegisterPlanRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := newPlanHandler(planService)

	obligation := rg.Group("/obligations/:kind/:obligation_id")
	{
		obligation.GET("/projection", h.previewProjection)
		obligation.POST("/budgets/generate", h.generateBudgets)
		obligation.GET("/budgets", h.listBudgets)
		obligation.PUT("/custom-plan", h.replaceCustomPlan)
	}
	rg.POST("/budgets/regenerate", h.regenerateAll)
}

// obligationTarget reads the kind and obligation ID path parameters, answering 400 on an unknown kind.
func obligationTarget(c *gin.Context, logger *slog.Logger) (domain.ObligationKind, string, bool) {
	kind, err := domain.ParseObligationKind(c.Param("kind"))
	if err != nil {
		logger.Warn("Unknown obligation kind", slog.String("kind", c.Param("kind")))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", "", false
	}
	return kind, c.Param("obligation_id"), true
}

// previewProjection godoc
// @Summary Preview an obligation's projection
// @Description Projects the obligation's monthly amounts over a window without writing budget records
// @Tags plans
// @Produce  json
// @Param   kind path string true "Obligation kind" Enums(goal, debt, receivable, investment)
// @Param   obligation_id path string true "Obligation ID"
// @Param   startMonth query string false "First month (YYYY-MM)"
// @Param   endMonth query string false "Last month (YYYY-MM)"
// @Success 200 {object} dto.ProjectionResponse
// @Failure 400 {object} map[string]string "Invalid kind or window"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to project obligation"
// @Security BearerAuth
// @Router /obligations/{kind}/{obligation_id}/projection [get]
func (h *planHandler) previewProjection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	kind, obligationID, ok := obligationTarget(c, logger)
	if !ok {
		return
	}

	var params dto.ProjectionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for projection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	window, err := dto.ParseWindow(params.StartMonth, params.EndMonth)
	if err != nil {
		respondError(c, logger, err, "Failed to project obligation")
		return
	}

	logger = logger.With(slog.String("kind", string(kind)), slog.String("obligation_id", obligationID))
	lines, err := h.planService.Preview(c.Request.Context(), ownerID, kind, obligationID, window)
	if err != nil {
		respondError(c, logger, err, "Failed to project obligation")
		return
	}

	logger.Info("Projection previewed", slog.Int("lines", len(lines)))
	c.JSON(http.StatusOK, dto.ToProjectionResponse(kind, obligationID, lines))
}

// generateBudgets godoc
// @Summary Regenerate an obligation's budget records
// @Description Projects the obligation and reconciles the result into budget records
// @Tags plans
// @Accept  json
// @Produce  json
// @Param   kind path string true "Obligation kind" Enums(goal, debt, receivable, investment)
// @Param   obligation_id path string true "Obligation ID"
// @Param   request body dto.GenerateBudgetsRequest false "Regeneration options"
// @Success 200 {object} domain.PlanOutcome
// @Failure 400 {object} map[string]string "Invalid kind, window or options"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 409 {object} map[string]string "Budget store rejected the write"
// @Failure 500 {object} map[string]string "Failed to generate budgets"
// @Security BearerAuth
// @Router /obligations/{kind}/{obligation_id}/budgets/generate [post]
func (h *planHandler) generateBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	kind, obligationID, ok := obligationTarget(c, logger)
	if !ok {
		return
	}

	var req dto.GenerateBudgetsRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for GenerateBudgets", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}
	window, err := dto.ParseWindow(req.StartMonth, req.EndMonth)
	if err != nil {
		respondError(c, logger, err, "Failed to generate budgets")
		return
	}

	logger = logger.With(slog.String("kind", string(kind)), slog.String("obligation_id", obligationID))
	logger.Info("Received request to generate budgets", slog.Bool("overwrite", req.Overwrite))

	outcome, err := h.planService.Regenerate(c.Request.Context(), domain.RegenerateRequest{
		OwnerID:            ownerID,
		Kind:               kind,
		ObligationID:       obligationID,
		Overwrite:          req.Overwrite,
		Window:             window,
		PreviousCategoryID: req.PreviousCategoryID,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to generate budgets")
		return
	}

	logger.Info("Budgets generated",
		slog.Int("created", outcome.Result.Created),
		slog.Int("updated", outcome.Result.Updated),
		slog.Int("deleted", outcome.Result.Deleted))
	c.JSON(http.StatusOK, outcome)
}

// listBudgets godoc
// @Summary List an obligation's budget records
// @Description Lists the budget records generated by the obligation, oldest month first
// @Tags plans
// @Produce  json
// @Param   kind path string true "Obligation kind" Enums(goal, debt, receivable, investment)
// @Param   obligation_id path string true "Obligation ID"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to list budgets"
// @Security BearerAuth
// @Router /obligations/{kind}/{obligation_id}/budgets [get]
func (h *planHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	kind, obligationID, ok := obligationTarget(c, logger)
	if !ok {
		return
	}

	var params dto.ListBudgetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListBudgets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, nextToken, err := h.planService.ListBudgets(c.Request.Context(), ownerID, kind, obligationID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list budgets")
		return
	}

	logger.Info("Budgets listed successfully", slog.Int("count", len(records)))
	c.JSON(http.StatusOK, dto.ToListBudgetsResponse(records, nextToken))
}

// replaceCustomPlan godoc
// @Summary Replace an obligation's custom plan
// @Description Replaces every custom month amount of the obligation and regenerates its budget records with overwrite
// @Tags plans
// @Accept  json
// @Produce  json
// @Param   kind path string true "Obligation kind" Enums(goal, debt, receivable, investment)
// @Param   obligation_id path string true "Obligation ID"
// @Param   request body dto.ReplaceCustomPlanRequest true "Custom plan entries"
// @Success 200 {object} domain.PlanOutcome
// @Failure 400 {object} map[string]string "Invalid entries"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 409 {object} map[string]string "Budget store rejected the write"
// @Failure 500 {object} map[string]string "Failed to replace custom plan"
// @Security BearerAuth
// @Router /obligations/{kind}/{obligation_id}/custom-plan [put]
func (h *planHandler) replaceCustomPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}
	kind, obligationID, ok := obligationTarget(c, logger)
	if !ok {
		return
	}

	var req dto.ReplaceCustomPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReplaceCustomPlan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	entries, err := req.ToCustomPlanEntries()
	if err != nil {
		respondError(c, logger, err, "Failed to replace custom plan")
		return
	}

	logger = logger.With(slog.String("kind", string(kind)), slog.String("obligation_id", obligationID))
	outcome, err := h.planService.ReplaceCustomPlan(c.Request.Context(), ownerID, kind, obligationID, entries)
	if err != nil {
		respondError(c, logger, err, "Failed to replace custom plan")
		return
	}

	logger.Info("Custom plan replaced", slog.Int("entries", len(entries)))
	c.JSON(http.StatusOK, outcome)
}

// regenerateAll godoc
// @Summary Regenerate every planned obligation
// @Description Rebuilds the budget records of all of the caller's planned obligations, optionally of one kind. Per-obligation failures are reported, not fatal.
// @Tags plans
// @Accept  json
// @Produce  json
// @Param   request body dto.RegenerateAllRequest false "Batch options"
// @Success 200 {object} domain.BatchOutcome
// @Failure 400 {object} map[string]string "Invalid options"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to regenerate budgets"
// @Security BearerAuth
// @Router /budgets/regenerate [post]
func (h *planHandler) regenerateAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.RegenerateAllRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for RegenerateAll", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	var kind *domain.ObligationKind
	if req.Kind != nil {
		k := domain.ObligationKind(*req.Kind)
		kind = &k
	}

	outcome, err := h.planService.RegenerateAll(c.Request.Context(), ownerID, kind, req.Overwrite)
	if err != nil {
		respondError(c, logger, err, "Failed to regenerate budgets")
		return
	}

	logger.Info("Batch regeneration finished",
		slog.Int("succeeded", len(outcome.Succeeded)),
		slog.Int("failed", len(outcome.Failed)))
	c.JSON(http.StatusOK, outcome)
}
