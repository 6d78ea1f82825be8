package wallets

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/api"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/mapping"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/scheduler"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// WalletsHandler holds the dependencies for wallet-related handlers.
type WalletsHandler struct {
	Store     storage.WalletStore
	Ledger    storage.LedgerReader
	Scheduler scheduler.Scheduler
}

// NewWalletsHandler creates a new WalletsHandler.
func NewWalletsHandler(store storage.WalletStore, ledger storage.LedgerReader, sched scheduler.Scheduler) *WalletsHandler {
	return &WalletsHandler{Store: store, Ledger: ledger, Scheduler: sched}
}

// GetWallet handles the logic for retrieving a user's wallet, creating it on
// first access.
func (h *WalletsHandler) GetWallet(w http.ResponseWriter, r *http.Request, userId string) {
	domainWallet, err := h.Store.GetOrCreateWallet(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve wallet: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiWallet(domainWallet))
}

// ListWallets handles the logic for retrieving all wallets.
func (h *WalletsHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	domainWallets, err := h.Store.ListWallets(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve wallets: %v", err), http.StatusInternalServerError)
		return
	}

	// Sort wallets by CreatedAt in descending order.
	sort.Slice(domainWallets, func(i, j int) bool {
		return domainWallets[i].CreatedAt.After(domainWallets[j].CreatedAt)
	})

	apiWallets := make([]*api.Wallet, len(domainWallets))
	for i, wallet := range domainWallets {
		apiWallets[i] = mapping.ToApiWallet(&wallet)
	}

	writeJSON(w, http.StatusOK, apiWallets)
}

// UpdateSettings handles the logic for updating bank details and auto-payout
// configuration. Omitted fields keep their stored values.
func (h *WalletsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request, userId string) {
	var patch api.WalletSettings
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	current, err := h.Store.GetOrCreateWallet(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve wallet: %v", err), http.StatusInternalServerError)
		return
	}

	updated, err := h.Store.UpdateWalletSettings(r.Context(), userId, mapping.ToDomainWalletSettings(current, &patch))
	if err != nil {
		h.writeOperationError(w, r, userId, 0, err)
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiWallet(updated))
}

// DeactivateWallet handles the logic for soft-disabling a user's wallet.
func (h *WalletsHandler) DeactivateWallet(w http.ResponseWriter, r *http.Request, userId string) {
	if err := h.Store.DeactivateWallet(r.Context(), userId); err != nil {
		http.Error(w, fmt.Sprintf("Failed to deactivate wallet: %v", err), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Withdraw handles the logic for debiting the available balance.
func (h *WalletsHandler) Withdraw(w http.ResponseWriter, r *http.Request, userId string) {
	op, ok := decodeOperation(w, r)
	if !ok {
		return
	}

	updated, err := h.Store.Debit(r.Context(), userId, op.Amount, deref(op.Description), deref(op.ExternalReference))
	if err != nil {
		h.writeOperationError(w, r, userId, op.Amount, err)
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiWallet(updated))
}

// TopUp handles the logic for crediting the available balance.
func (h *WalletsHandler) TopUp(w http.ResponseWriter, r *http.Request, userId string) {
	op, ok := decodeOperation(w, r)
	if !ok {
		return
	}

	updated, err := h.Store.Credit(r.Context(), userId, op.Amount, deref(op.Description), deref(op.ExternalReference))
	if err != nil {
		h.writeOperationError(w, r, userId, op.Amount, err)
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiWallet(updated))
}

// Hold handles the logic for reserving funds on a wallet.
func (h *WalletsHandler) Hold(w http.ResponseWriter, r *http.Request, userId string) {
	op, ok := decodeOperation(w, r)
	if !ok {
		return
	}

	updated, err := h.Store.HoldFunds(r.Context(), userId, op.Amount, deref(op.Description), deref(op.ExternalReference))
	if err != nil {
		h.writeOperationError(w, r, userId, op.Amount, err)
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiWallet(updated))
}

// Release handles the logic for moving held funds to the available balance.
// Crossing the auto-payout threshold enqueues a payout job rather than paying
// out inline, so release latency never depends on the payment provider.
func (h *WalletsHandler) Release(w http.ResponseWriter, r *http.Request, userId string) {
	op, ok := decodeOperation(w, r)
	if !ok {
		return
	}

	updated, autoPayoutDue, err := h.Store.ReleaseFunds(r.Context(), userId, op.Amount, deref(op.Description), deref(op.ExternalReference))
	if err != nil {
		h.writeOperationError(w, r, userId, op.Amount, err)
		return
	}

	if autoPayoutDue {
		job := scheduler.Job{
			Type:        scheduler.JobPayout,
			UserId:      userId,
			Amount:      updated.Available,
			Description: "Automatic payout on threshold",
		}
		if err := h.Scheduler.Schedule(r.Context(), job); err != nil {
			slog.Error("failed to enqueue auto-payout job", "userId", userId, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, mapping.ToApiWallet(updated))
}

// ListTransactions handles the logic for retrieving a user's ledger entries.
func (h *WalletsHandler) ListTransactions(w http.ResponseWriter, r *http.Request, userId string) {
	entries, err := h.Ledger.ListWalletTransactions(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusInternalServerError)
		return
	}

	apiEntries := make([]*api.WalletTransaction, len(entries))
	for i, entry := range entries {
		apiEntries[i] = mapping.ToApiWalletTransaction(&entry)
	}

	writeJSON(w, http.StatusOK, apiEntries)
}

func decodeOperation(w http.ResponseWriter, r *http.Request) (*api.WalletOperation, bool) {
	var op api.WalletOperation
	if err := json.NewDecoder(r.Body).Decode(&op); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return nil, false
	}
	return &op, true
}

// writeOperationError maps a wallet operation failure to a structured JSON
// outcome: a machine-checkable reason plus, for balance failures, the current
// balances next to the requested amount.
func (h *WalletsHandler) writeOperationError(w http.ResponseWriter, r *http.Request, userId string, requested int64, err error) {
	var status int
	body := api.OperationError{}
	if requested > 0 {
		body.Requested = &requested
	}

	switch {
	case errors.Is(err, storage.ErrInvalidAmount):
		status, body.Error = http.StatusBadRequest, "invalid_amount"
	case errors.Is(err, storage.ErrInsufficientAvailableBalance):
		status, body.Error = http.StatusConflict, "insufficient_available_balance"
	case errors.Is(err, storage.ErrInsufficientHeldBalance):
		status, body.Error = http.StatusConflict, "insufficient_held_balance"
	case errors.Is(err, storage.ErrVersionConflict):
		status, body.Error = http.StatusConflict, "version_conflict"
	default:
		status, body.Error = http.StatusInternalServerError, "internal_error"
	}

	if status == http.StatusConflict && body.Error != "version_conflict" {
		if wallet, wErr := h.Store.GetOrCreateWallet(r.Context(), userId); wErr == nil {
			body.Available = &wallet.Available
			body.Held = &wallet.Held
		}
	}

	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
