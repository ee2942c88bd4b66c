package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/banking-whatsapp/accounts-service/internal/core/ports/services"
	"github.com/banking-whatsapp/accounts-service/internal/dto"
	"github.com/banking-whatsapp/accounts-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("/:id", h.getTransaction)
		transactions.GET("/account/:accountId", h.listTransactionsByAccount)
	}
}

// createTransaction godoc
// @Summary Execute a transaction
// @Description Applies a deposit, withdrawal or transfer to an account and records it
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unsupported transaction type"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 422 {object} dto.ErrorResponse "Insufficient funds"
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to create transaction",
		slog.String("account_id", req.AccountID),
		slog.String("type", string(req.Type)))

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves a single transaction record
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactionsByAccount godoc
// @Summary List transactions for an account
// @Description Retrieves the most recent transactions for an account, newest first
// @Tags transactions
// @Produce  json
// @Param   accountId path string true "Account ID"
// @Param   limit query int false "Max transactions returned" default(10)
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/account/{accountId} [get]
func (h *transactionHandler) listTransactionsByAccount(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	txns, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), c.Param("accountId"), params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}
