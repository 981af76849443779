package handler

import (
	"net/http"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/ledger"
	"github.com/spinworks/SlotEngine_Go/internal/logger"
)

// WalletHandler handles wallet and ledger HTTP requests
type WalletHandler struct {
	service ledger.Service
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(service ledger.Service) *WalletHandler {
	return &WalletHandler{service: service}
}

// BalanceResponse is the response for balance queries
type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

// AdjustRequest represents a manual balance adjustment
type AdjustRequest struct {
	UserID    string `json:"user_id" validate:"required,max=128"`
	Amount    int64  `json:"amount" validate:"required"`
	Kind      string `json:"kind" validate:"omitempty,oneof=manual bonus"`
	Reason    string `json:"reason" validate:"required,max=256"`
	Reference string `json:"reference,omitempty" validate:"omitempty,max=128"`
}

// VerifyResponse reports whether the materialized balance matches the
// transaction log
type VerifyResponse struct {
	UserID     string `json:"user_id"`
	Consistent bool   `json:"consistent"`
}

// HandleGetBalance returns the user's current balance
// @Summary Get balance
// @Tags wallet
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} BalanceResponse
// @Failure 404 {object} ErrorResponse
// @Router /wallet/balance [get]
func (h *WalletHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	balance, err := h.service.GetBalance(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get balance", err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{UserID: userID, Balance: balance})
}

// HandleAdjust applies a manual credit or debit to the user's wallet
// @Summary Adjust balance
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body AdjustRequest true "Adjustment"
// @Success 200 {object} domain.TxResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /wallet/adjust [post]
func (h *WalletHandler) HandleAdjust(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req AdjustRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Adjust balance"); err != nil {
		return
	}

	kind := domain.TransactionKind(req.Kind)
	if kind == "" {
		kind = domain.TxKindManual
	}

	log.Info("Balance adjustment requested", "user_id", req.UserID, "amount", req.Amount, "kind", kind)

	result, err := h.service.Adjust(ctx, req.UserID, req.Amount, kind, req.Reason, req.Reference)
	if err != nil {
		respondServiceError(w, r, "Adjust balance", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleGetTransactions returns the user's recent ledger rows, newest first
// @Summary Transaction history
// @Tags wallet
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {array} domain.Transaction
// @Router /wallet/transactions [get]
func (h *WalletHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	limit, ok := GetLimitParam(r, w, ledger.DefaultHistoryLimit)
	if !ok {
		return
	}

	txns, err := h.service.GetHistory(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, "Get transactions", err)
		return
	}

	respondJSON(w, http.StatusOK, txns)
}

// HandleVerify recomputes the transaction sum and compares it to the
// materialized balance
// @Summary Verify ledger consistency
// @Tags wallet
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} VerifyResponse
// @Failure 404 {object} ErrorResponse
// @Router /wallet/verify [get]
func (h *WalletHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	consistent, err := h.service.VerifyConsistency(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Verify ledger", err)
		return
	}

	respondJSON(w, http.StatusOK, VerifyResponse{UserID: userID, Consistent: consistent})
}
