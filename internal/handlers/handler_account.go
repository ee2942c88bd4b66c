package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/banking-whatsapp/accounts-service/internal/core/ports/services"
	"github.com/banking-whatsapp/accounts-service/internal/dto"
	"github.com/banking-whatsapp/accounts-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
		accounts.GET("/number/:accountNumber", h.getAccountByNumber)
		accounts.GET("/user/:userId", h.listAccountsByUser)
		accounts.GET("/user/dni/:dni", h.listAccountsByDNI)
		accounts.GET("/user/phone/:phoneNumber", h.listAccountsByPhone)
		accounts.GET("/user/phone/:phoneNumber/complete", h.getUserView)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a new bank account. The account always starts ACTIVE.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.AccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 409 {object} dto.ErrorResponse "Account number already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to create account",
		slog.String("account_number", req.AccountNumber))

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves details for a specific account by its ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountByNumber godoc
// @Summary Get an account by account number
// @Description Retrieves details for a specific account by its unique account number
// @Tags accounts
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/number/{accountNumber} [get]
func (h *accountHandler) getAccountByNumber(c *gin.Context) {
	account, err := h.accountService.GetAccountByNumber(c.Request.Context(), c.Param("accountNumber"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List all accounts
// @Description Retrieves every account, ordered by creation time
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// listAccountsByUser godoc
// @Summary List accounts by user ID
// @Description Retrieves all accounts owned by a user. An unknown user yields an empty list.
// @Tags accounts
// @Produce  json
// @Param   userId path string true "User ID"
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/user/{userId} [get]
func (h *accountHandler) listAccountsByUser(c *gin.Context) {
	accounts, err := h.accountService.ListAccountsByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// listAccountsByDNI godoc
// @Summary List accounts by user DNI
// @Description Retrieves all accounts owned by the user with the given national id
// @Tags accounts
// @Produce  json
// @Param   dni path string true "User DNI"
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/user/dni/{dni} [get]
func (h *accountHandler) listAccountsByDNI(c *gin.Context) {
	accounts, err := h.accountService.ListAccountsByUserDNI(c.Request.Context(), c.Param("dni"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// listAccountsByPhone godoc
// @Summary List accounts by user phone number
// @Description Retrieves all accounts owned by the user with the given phone number
// @Tags accounts
// @Produce  json
// @Param   phoneNumber path string true "User phone number"
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/user/phone/{phoneNumber} [get]
func (h *accountHandler) listAccountsByPhone(c *gin.Context) {
	accounts, err := h.accountService.ListAccountsByUserPhone(c.Request.Context(), c.Param("phoneNumber"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// getUserView godoc
// @Summary Get the complete user view by phone number
// @Description Retrieves all accounts for a phone number, each with its most recent transactions
// @Tags accounts
// @Produce  json
// @Param   phoneNumber path string true "User phone number"
// @Param   limit query int false "Max transactions per account" default(10)
// @Success 200 {object} dto.UserViewResponse
// @Failure 404 {object} dto.ErrorResponse "No accounts for this phone number"
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/user/phone/{phoneNumber}/complete [get]
func (h *accountHandler) getUserView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.UserViewParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	phoneNumber := c.Param("phoneNumber")
	logger.Info("Received request for complete user view",
		slog.String("user_phone_number", phoneNumber),
		slog.Int("limit", params.Limit))

	view, err := h.accountService.GetUserViewByPhone(c.Request.Context(), phoneNumber, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// updateAccount godoc
// @Summary Update an account
// @Description Overwrites the mutable fields of an account. Id, status and createdAt never change.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.AccountRequest true "Account details"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Account number already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes an account. Its transaction history is left in place.
// @Tags accounts
// @Param   id path string true "Account ID"
// @Success 204 "Account deleted"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
