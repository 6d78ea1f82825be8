package storage

import (
	"context"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

// LedgerReader defines the interface for reading the wallet transaction log.
type LedgerReader interface {
	// ListLedgerEntries retrieves the most recent ledger rows across all wallets.
	ListLedgerEntries(ctx context.Context, limit int32) ([]models.WalletTransaction, error)

	// ListWalletTransactions retrieves all ledger rows for one user, newest first.
	ListWalletTransactions(ctx context.Context, userID string) ([]models.WalletTransaction, error)
}
