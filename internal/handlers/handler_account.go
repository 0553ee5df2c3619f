package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/trr_bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/trr_bank_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.GET("/:accountNo", h.getAccount)
		accounts.GET("/:accountNo/entries", h.listEntries)
	}
}

// createAccount godoc
// @Summary Open an account
// @Description Opens an account for an existing customer. The type defaults to Savings.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input or negative opening balance"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 500 {object} ErrorResponse "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateAccount request")
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}

	loggerFrom(c).Info("Account created successfully", slog.Int64("account_no", account.AccountNo))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists every account with its owner's name, ordered by account number
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} ErrorResponse "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// getAccount godoc
// @Summary Get an account
// @Description Returns the account and its current balance
// @Tags accounts
// @Produce  json
// @Param   accountNo path int true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid account number"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Router /accounts/{accountNo} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	accountNo, ok := parseIDParam(c, "accountNo")
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByNo(c.Request.Context(), accountNo)
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listEntries godoc
// @Summary List an account's ledger entries
// @Description Returns deposits, withdrawals and transfers touching the account, newest first
// @Tags accounts
// @Produce  json
// @Param   accountNo path int true "Account number"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Router /accounts/{accountNo}/entries [get]
func (h *accountHandler) listEntries(c *gin.Context) {
	accountNo, ok := parseIDParam(c, "accountNo")
	if !ok {
		return
	}

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListEntries query")
		return
	}

	page, err := h.accountService.ListEntries(c.Request.Context(), accountNo, params)
	if err != nil {
		respondError(c, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, page)
}
