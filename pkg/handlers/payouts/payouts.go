package payouts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/api"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/mapping"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payments"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payouts"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// PayoutsHandler holds the dependencies for payout-related handlers.
type PayoutsHandler struct {
	Connector *payouts.Connector
	Wallets   storage.WalletStore
}

// NewPayoutsHandler creates a new PayoutsHandler.
func NewPayoutsHandler(connector *payouts.Connector, wallets storage.WalletStore) *PayoutsHandler {
	return &PayoutsHandler{Connector: connector, Wallets: wallets}
}

// CreatePayout handles the logic for transferring wallet funds to the user's
// connected account.
func (h *PayoutsHandler) CreatePayout(w http.ResponseWriter, r *http.Request, userId string) {
	var req api.PayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	tx, err := h.Connector.TransferToExternalAccount(r.Context(), userId, req.Amount)
	if err != nil {
		h.writePayoutError(w, r, userId, req.Amount, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiWalletTransaction(tx)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// CreateOnboardingLink handles the logic for provisioning a connected account
// and returning a fresh onboarding URL.
func (h *PayoutsHandler) CreateOnboardingLink(w http.ResponseWriter, r *http.Request, userId string) {
	var req api.OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	url, err := h.Connector.Onboard(r.Context(), userId, string(req.Email), req.Country, req.RefreshUrl, req.ReturnUrl)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create onboarding link: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(api.OnboardResponse{Url: url}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// writePayoutError maps a payout failure to a structured JSON outcome. An
// insufficient balance carries the wallet's current balances next to the
// requested amount.
func (h *PayoutsHandler) writePayoutError(w http.ResponseWriter, r *http.Request, userId string, requested int64, err error) {
	body := api.OperationError{}
	if requested > 0 {
		body.Requested = &requested
	}

	var status int
	switch {
	case errors.Is(err, storage.ErrInvalidAmount):
		status, body.Error = http.StatusBadRequest, "invalid_amount"
	case errors.Is(err, storage.ErrInsufficientAvailableBalance):
		status, body.Error = http.StatusConflict, "insufficient_available_balance"
		if wallet, wErr := h.Wallets.GetOrCreateWallet(r.Context(), userId); wErr == nil {
			body.Available = &wallet.Available
			body.Held = &wallet.Held
		}
	case errors.Is(err, payments.ErrAccountNotReady):
		status, body.Error = http.StatusConflict, "account_not_ready"
	default:
		status, body.Error = http.StatusInternalServerError, "internal_error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
