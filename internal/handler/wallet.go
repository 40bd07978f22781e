package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/logger"
	"github.com/tamaverse/TamaPet_Go/internal/wallet"
)

type GetWalletResponse struct {
	Wallet *domain.Wallet `json:"wallet"`
}

// HandleGetWallet returns the owner's wallet, creating it on first access
// @Summary Get wallet
// @Description Get the player's wallet, creating it with the welcome bonus on first access
// @Tags wallet
// @Produce json
// @Param owner_id query string true "Owner ID"
// @Success 200 {object} GetWalletResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /wallet [get]
func HandleGetWallet(svc wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ownerID := r.URL.Query().Get("owner_id")
		if ownerID == "" {
			log.Warn("Missing owner_id query parameter")
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "owner_id"))
			return
		}

		wlt, err := svc.GetOrCreateWallet(r.Context(), ownerID)
		if err != nil {
			log.Error("Failed to get wallet", "error", err, "owner_id", ownerID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, GetWalletResponse{Wallet: wlt})
	}
}

type BalanceResponse struct {
	Balance  int    `json:"balance"`
	Currency string `json:"currency"`
}

// HandleGetBalance returns just the owner's current balance
// @Summary Get balance
// @Description Get the player's current TamaCoin balance
// @Tags wallet
// @Produce json
// @Param owner_id query string true "Owner ID"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /wallet/balance [get]
func HandleGetBalance(svc wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ownerID := r.URL.Query().Get("owner_id")
		if ownerID == "" {
			log.Warn("Missing owner_id query parameter")
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "owner_id"))
			return
		}

		balance, err := svc.GetBalance(r.Context(), ownerID)
		if err != nil {
			log.Error("Failed to get balance", "error", err, "owner_id", ownerID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{Balance: balance, Currency: domain.CurrencyTC})
	}
}

type AdjustBalanceRequest struct {
	OwnerID     string `json:"owner_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Amount      int    `json:"amount" validate:"required,min=1"`
	Reason      string `json:"reason" validate:"required,max=50"`
	Description string `json:"description,omitempty" validate:"max=200"`
}

type AdjustBalanceResponse struct {
	Balance int `json:"balance"`
}

// HandleCredit credits coins to a wallet (admin/system action)
// @Summary Credit wallet
// @Description Add TamaCoins to a player's wallet with a ledger entry
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body AdjustBalanceRequest true "Credit details"
// @Success 200 {object} AdjustBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Balance cap exceeded"
// @Failure 500 {object} ErrorResponse
// @Router /wallet/credit [post]
func HandleCredit(svc wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleBalanceAdjustment(w, r, "credit", svc.Credit)
	}
}

// HandleDebit debits coins from a wallet (admin/system action)
// @Summary Debit wallet
// @Description Remove TamaCoins from a player's wallet with a ledger entry
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body AdjustBalanceRequest true "Debit details"
// @Success 200 {object} AdjustBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse "Insufficient funds"
// @Failure 500 {object} ErrorResponse
// @Router /wallet/debit [post]
func HandleDebit(svc wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleBalanceAdjustment(w, r, "debit", svc.Debit)
	}
}

// adjustFunc matches wallet.Service Credit/Debit
type adjustFunc func(ctx context.Context, ownerID string, amount int, reason domain.TransactionReason, description string) (*domain.Wallet, error)

func handleBalanceAdjustment(w http.ResponseWriter, r *http.Request, op string, adjust adjustFunc) {
	log := logger.FromContext(r.Context())

	var req AdjustBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Failed to decode balance adjustment request", "error", err, "op", op)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	log.Debug("Balance adjustment request", "op", op, "owner_id", req.OwnerID, "amount", req.Amount, "reason", req.Reason)

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn("Invalid request", "error", err, "op", op)
		respondError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", ErrMsgInvalidRequestSummary, err))
		return
	}

	wlt, err := adjust(r.Context(), req.OwnerID, req.Amount, domain.TransactionReason(req.Reason), req.Description)
	if err != nil {
		log.Error("Failed to adjust balance", "error", err, "op", op, "owner_id", req.OwnerID)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Balance adjusted", "op", op, "owner_id", req.OwnerID, "amount", req.Amount, "balance", wlt.Balance)

	respondJSON(w, http.StatusOK, AdjustBalanceResponse{Balance: wlt.Balance})
}

type GetTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// HandleGetTransactions returns the owner's transaction history
// @Summary Get transaction history
// @Description Get the player's ledger entries, newest first
// @Tags wallet
// @Produce json
// @Param owner_id query string true "Owner ID"
// @Param type query string false "Filter by transaction type (EARN, SPEND)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} GetTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /wallet/transactions [get]
func HandleGetTransactions(svc wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ownerID := r.URL.Query().Get("owner_id")
		if ownerID == "" {
			log.Warn("Missing owner_id query parameter")
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "owner_id"))
			return
		}

		var filter domain.TransactionFilter
		if typeParam := r.URL.Query().Get("type"); typeParam != "" {
			txType := domain.TransactionType(typeParam)
			if !txType.Valid() {
				log.Warn("Invalid transaction type filter", "type", typeParam)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
			filter.Type = &txType
		}
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			limit, err := strconv.Atoi(limitParam)
			if err != nil || limit < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
			filter.Limit = limit
		}
		if offsetParam := r.URL.Query().Get("offset"); offsetParam != "" {
			offset, err := strconv.Atoi(offsetParam)
			if err != nil || offset < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
			filter.Offset = offset
		}

		transactions, err := svc.GetTransactions(r.Context(), ownerID, filter)
		if err != nil {
			log.Error("Failed to get transactions", "error", err, "owner_id", ownerID)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		log.Info("Transactions retrieved", "owner_id", ownerID, "count", len(transactions))

		respondJSON(w, http.StatusOK, GetTransactionsResponse{Transactions: transactions})
	}
}
