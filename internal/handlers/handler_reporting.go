package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abuyamnglobal-com/tajheez/internal/core/ports/services"
	"github.com/abuyamnglobal-com/tajheez/internal/core/services"
	"github.com/abuyamnglobal-com/tajheez/internal/dto"
	"github.com/abuyamnglobal-com/tajheez/internal/middleware"
	"github.com/abuyamnglobal-com/tajheez/internal/repositories/database/pgsql"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingHandler serves aggregate projections over the ledger.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
	}
}

// getWeeklySummary godoc
// @Summary Get the weekly activity summary
// @Description Aggregates inflow, outflow and net over the requested date range, defaulting to the trailing seven days. Swapped bounds are normalized; unparseable bounds fall back to defaults.
// @Tags reports
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.WeeklySummaryResponse "Summary with the normalized range"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /reports/weekly-summary [get]
func (h *reportingHandler) getWeeklySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.WeeklySummaryParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for GetWeeklySummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	summary, err := h.reportingService.GetWeeklySummary(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToWeeklySummaryResponse(summary))
}

// registerReportingRoutes registers projection routes.
func registerReportingRoutes(group *gin.RouterGroup, dbPool *pgxpool.Pool) {
	txnRepo := pgsql.NewPgxTransactionRepository(dbPool)
	partyRepo := pgsql.NewPgxPartyRepository(dbPool)
	reportingService := services.NewReportingService(txnRepo, partyRepo)

	reportingHandler := newReportingHandler(reportingService)

	reports := group.Group("/reports")
	{
		reports.GET("/weekly-summary", reportingHandler.getWeeklySummary)
	}
}
