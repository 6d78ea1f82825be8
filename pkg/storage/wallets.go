package storage

import (
	"context"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

// WalletSettings carries the mutable wallet configuration.
type WalletSettings struct {
	Iban                string
	Bic                 string
	AutoPayoutEnabled   bool
	AutoPayoutThreshold int64
	ConnectedAccountId  string
}

// WalletStore defines the interface for wallet balances. Every mutation writes
// its ledger row atomically with the balance change; implementations must
// serialize mutations per wallet.
type WalletStore interface {
	// GetOrCreateWallet returns the user's active wallet, creating one with
	// zero balances if absent. Idempotent.
	GetOrCreateWallet(ctx context.Context, userID string) (*models.Wallet, error)

	// HoldFunds increments the held balance and records a pending credit.
	HoldFunds(ctx context.Context, userID string, amount int64, description, externalRef string) (*models.Wallet, error)

	// ReleaseFunds moves amount from held to available. The returned flag
	// tells the caller an auto-payout should be enqueued; the store never
	// executes payouts itself.
	ReleaseFunds(ctx context.Context, userID string, amount int64, description, externalRef string) (*models.Wallet, bool, error)

	// Credit increments the available balance directly (top-ups, non-escrow).
	Credit(ctx context.Context, userID string, amount int64, description, externalRef string) (*models.Wallet, error)

	// Debit decrements the available balance (withdrawals, wallet purchases).
	Debit(ctx context.Context, userID string, amount int64, description, externalRef string) (*models.Wallet, error)

	// UpdateWalletSettings replaces bank details and auto-payout configuration.
	UpdateWalletSettings(ctx context.Context, userID string, settings WalletSettings) (*models.Wallet, error)

	// DeactivateWallet soft-disables a wallet. Wallets are never hard-deleted.
	DeactivateWallet(ctx context.Context, userID string) error

	// ListWallets retrieves all wallets.
	ListWallets(ctx context.Context) ([]models.Wallet, error)
}

// TransferStore defines the two-phase wallet debit used for external payouts:
// the debit commits together with a pending transfer row, which is then either
// completed with the provider's transfer id or compensated if the provider
// call fails.
type TransferStore interface {
	// BeginTransfer debits the available balance and records a pending
	// type=transfer ledger row in the same transaction.
	BeginTransfer(ctx context.Context, userID string, amount int64, description string) (*models.Wallet, *models.WalletTransaction, error)

	// CompleteTransfer marks the pending transfer row completed, attaching
	// the external transfer id.
	CompleteTransfer(ctx context.Context, transactionID, transferID string) error

	// FailTransfer credits the debited amount back and marks the transfer
	// row failed. Used when the external transfer could not be created.
	FailTransfer(ctx context.Context, transactionID, userID string, amount int64) error
}
