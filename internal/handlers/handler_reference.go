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

// referenceHandler serves static reference data.
type referenceHandler struct {
	refService portssvc.ReferenceSvcFacade
}

// newReferenceHandler creates a new referenceHandler.
func newReferenceHandler(refService portssvc.ReferenceSvcFacade) *referenceHandler {
	return &referenceHandler{
		refService: refService,
	}
}

// listCategories godoc
// @Summary List active categories
// @Description Retrieves active transaction categories ordered by label
// @Tags reference
// @Produce json
// @Success 200 {array} dto.CategoryResponse "Active categories"
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Router /categories [get]
func (h *referenceHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.refService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// listPaymentMethods godoc
// @Summary List active payment methods
// @Description Retrieves active payment methods ordered by label
// @Tags reference
// @Produce json
// @Success 200 {array} dto.PaymentMethodResponse "Active payment methods"
// @Failure 500 {object} map[string]string "Failed to list payment methods"
// @Router /payment-methods [get]
func (h *referenceHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	methods, err := h.refService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list payment methods")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponses(methods))
}

// registerReferenceRoutes registers static reference data routes.
func registerReferenceRoutes(group *gin.RouterGroup, dbPool *pgxpool.Pool) {
	refRepo := pgsql.NewPgxReferenceRepository(dbPool)
	refService := services.NewReferenceService(refRepo)

	refHandler := newReferenceHandler(refService)

	group.GET("/categories", refHandler.listCategories)
	group.GET("/payment-methods", refHandler.listPaymentMethods)
}
