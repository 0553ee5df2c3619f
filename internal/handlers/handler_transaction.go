package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/trr_bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/trr_bank_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles deposits, withdrawals and transfers.
type transactionHandler struct {
	transactionService portssvc.TransactionSvc
}

func newTransactionHandler(ts portssvc.TransactionSvc) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers the money movement routes.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvc) {
	h := newTransactionHandler(transactionService)

	txns := rg.Group("/transactions")
	{
		txns.POST("/deposit", h.deposit)
		txns.POST("/withdraw", h.withdraw)
		txns.POST("/transfer", h.transfer)
	}
}

// deposit godoc
// @Summary Deposit into an account
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   deposit body dto.DepositRequest true "Deposit"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 409 {object} ErrorResponse "Account inactive"
// @Failure 500 {object} ErrorResponse "Deposit failed"
// @Router /transactions/deposit [post]
func (h *transactionHandler) deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Deposit request")
		return
	}

	amount, err := req.Amount.Decimal()
	if err != nil {
		respondError(c, err, "Deposit failed")
		return
	}

	entry, err := h.transactionService.Deposit(c.Request.Context(), req.AccountNo, amount)
	if err != nil {
		respondError(c, err, "Deposit failed")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// withdraw godoc
// @Summary Withdraw from an account
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   withdrawal body dto.WithdrawRequest true "Withdrawal"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 422 {object} ErrorResponse "Insufficient funds"
// @Failure 500 {object} ErrorResponse "Withdrawal failed"
// @Router /transactions/withdraw [post]
func (h *transactionHandler) withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Withdraw request")
		return
	}

	amount, err := req.Amount.Decimal()
	if err != nil {
		respondError(c, err, "Withdrawal failed")
		return
	}

	entry, err := h.transactionService.Withdraw(c.Request.Context(), req.AccountNo, amount)
	if err != nil {
		respondError(c, err, "Withdrawal failed")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// transfer godoc
// @Summary Transfer between accounts
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or same account"
// @Failure 404 {object} ErrorResponse "Source or destination account not found"
// @Failure 422 {object} ErrorResponse "Insufficient funds"
// @Failure 500 {object} ErrorResponse "Transfer failed"
// @Router /transactions/transfer [post]
func (h *transactionHandler) transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Transfer request")
		return
	}

	amount, err := req.Amount.Decimal()
	if err != nil {
		respondError(c, err, "Transfer failed")
		return
	}

	entry, err := h.transactionService.Transfer(c.Request.Context(), req.FromAccount, req.ToAccount, amount)
	if err != nil {
		respondError(c, err, "Transfer failed")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}
