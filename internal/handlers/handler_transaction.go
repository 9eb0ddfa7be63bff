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

// transactionHandler handles HTTP requests for the transaction lifecycle.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(txnService portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		txnService: txnService,
	}
}

// listTransactions godoc
// @Summary List all transactions
// @Description Retrieves all transactions enriched with party names, labels and direction, newest first
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse "Enriched transactions"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.txnService.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// listPendingApprovals godoc
// @Summary List transactions awaiting approval
// @Description Retrieves all PENDING transactions, newest first
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse "Pending transactions"
// @Failure 500 {object} map[string]string "Failed to list pending transactions"
// @Router /transactions/pending [get]
func (h *transactionHandler) listPendingApprovals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.txnService.ListPendingApprovals(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list pending transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Creates a new transaction in PENDING status and returns its id
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction to create"
// @Success 201 {object} map[string]int64 "Returns the ID of the created transaction"
// @Failure 400 {object} map[string]string "Validation failure with per-field detail"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	createReq := dto.CreateTransactionRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.txnService.CreateTransaction(c.Request.Context(), createReq)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.Int64("transaction_id", id))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// approveTransaction godoc
// @Summary Approve a pending transaction
// @Description Transitions a PENDING transaction to APPROVED, recording the acting user
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param approval body dto.ApproveTransactionRequest true "Acting user"
// @Success 200 "Approved"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is not pending"
// @Failure 500 {object} map[string]string "Failed to approve transaction"
// @Router /transactions/{id}/approve [post]
func (h *transactionHandler) approveTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	approveReq := dto.ApproveTransactionRequest{}
	if err := c.ShouldBindJSON(&approveReq); err != nil {
		logger.Error("Failed to bind JSON for ApproveTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.txnService.ApproveTransaction(c.Request.Context(), id, approveReq.UserID); err != nil {
		respondError(c, logger, err, "Failed to approve transaction")
		return
	}

	logger.Info("Transaction approved",
		slog.Int64("transaction_id", id),
		slog.Int64("acting_user_id", approveReq.UserID))
	c.Status(http.StatusOK)
}

// rejectTransaction godoc
// @Summary Reject a pending transaction
// @Description Transitions a PENDING transaction to REJECTED with a mandatory note
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param rejection body dto.RejectTransactionRequest true "Acting user and rejection note"
// @Success 200 "Rejected"
// @Failure 400 {object} map[string]string "Invalid request format or missing note"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is not pending"
// @Failure 500 {object} map[string]string "Failed to reject transaction"
// @Router /transactions/{id}/reject [post]
func (h *transactionHandler) rejectTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rejectReq := dto.RejectTransactionRequest{}
	if err := c.ShouldBindJSON(&rejectReq); err != nil {
		logger.Error("Failed to bind JSON for RejectTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.txnService.RejectTransaction(c.Request.Context(), id, rejectReq.UserID, rejectReq.Note); err != nil {
		respondError(c, logger, err, "Failed to reject transaction")
		return
	}

	logger.Info("Transaction rejected",
		slog.Int64("transaction_id", id),
		slog.Int64("acting_user_id", rejectReq.UserID))
	c.Status(http.StatusOK)
}

// registerTransactionRoutes registers transaction lifecycle routes.
func registerTransactionRoutes(group *gin.RouterGroup, dbPool *pgxpool.Pool) {
	txnRepo := pgsql.NewPgxTransactionRepository(dbPool)
	partyRepo := pgsql.NewPgxPartyRepository(dbPool)
	refRepo := pgsql.NewPgxReferenceRepository(dbPool)
	userRepo := pgsql.NewPgxUserRepository(dbPool)
	txnService := services.NewTransactionService(txnRepo, partyRepo, refRepo, userRepo)

	txnHandler := newTransactionHandler(txnService)

	transactions := group.Group("/transactions")
	{
		transactions.GET("", txnHandler.listTransactions)
		transactions.GET("/pending", txnHandler.listPendingApprovals)
		transactions.POST("", txnHandler.createTransaction)
		transactions.POST("/:id/approve", txnHandler.approveTransaction)
		transactions.POST("/:id/reject", txnHandler.rejectTransaction)
	}
}
