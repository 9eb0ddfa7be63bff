package handlers

import (
	"net/http"

	portssvc "github.com/abuyamnglobal-com/tajheez/internal/core/ports/services"
	"github.com/abuyamnglobal-com/tajheez/internal/core/services"
	"github.com/abuyamnglobal-com/tajheez/internal/dto"
	"github.com/abuyamnglobal-com/tajheez/internal/middleware"
	"github.com/abuyamnglobal-com/tajheez/internal/repositories/database/pgsql"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// partyHandler handles HTTP requests for parties and their projections.
type partyHandler struct {
	partyService     portssvc.PartySvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newPartyHandler creates a new partyHandler.
func newPartyHandler(partyService portssvc.PartySvcFacade, reportingService portssvc.ReportingSvcFacade) *partyHandler {
	return &partyHandler{
		partyService:     partyService,
		reportingService: reportingService,
	}
}

// listParties godoc
// @Summary List active parties
// @Description Retrieves active parties ordered by name
// @Tags parties
// @Produce json
// @Success 200 {array} dto.PartyResponse "Active parties"
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	parties, err := h.partyService.ListParties(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list parties")
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponses(parties))
}

// getPartyBalances godoc
// @Summary Get per-party balances
// @Description Computes total in, total out and net per party over APPROVED transactions only
// @Tags parties
// @Produce json
// @Success 200 {array} dto.PartyBalanceResponse "Balances ordered by party id"
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Router /parties/balances [get]
func (h *partyHandler) getPartyBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.reportingService.GetPartyBalances(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyBalanceResponses(balances))
}

// getPartyStatement godoc
// @Summary Get a party statement
// @Description Retrieves the chronological Credit/Debit statement of APPROVED transactions touching the party
// @Tags parties
// @Produce json
// @Param id path int true "Party ID"
// @Success 200 {array} dto.StatementEntryResponse "Statement entries, oldest first"
// @Failure 400 {object} map[string]string "Invalid party id"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Router /parties/{id}/statement [get]
func (h *partyHandler) getPartyStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entries, err := h.reportingService.GetPartyStatement(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to build statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementEntryResponses(entries))
}

// registerPartyRoutes registers party reference and projection routes.
func registerPartyRoutes(group *gin.RouterGroup, dbPool *pgxpool.Pool) {
	partyRepo := pgsql.NewPgxPartyRepository(dbPool)
	txnRepo := pgsql.NewPgxTransactionRepository(dbPool)
	partyService := services.NewPartyService(partyRepo)
	reportingService := services.NewReportingService(txnRepo, partyRepo)

	partyHandler := newPartyHandler(partyService, reportingService)

	parties := group.Group("/parties")
	{
		parties.GET("", partyHandler.listParties)
		parties.GET("/balances", partyHandler.getPartyBalances)
		parties.GET("/:id/statement", partyHandler.getPartyStatement)
	}
}
