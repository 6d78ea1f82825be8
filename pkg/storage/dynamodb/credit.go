package dynamodb

import (
	"context"

	"github.com/google/uuid"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// Credit increments the available balance directly (wallet top-ups and
// settlement credits, not escrow holds).
func (s *Store) Credit(ctx context.Context, userID string, amount int64, description, externalRef string) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, storage.ErrInvalidAmount
	}

	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &models.WalletTransaction{
		Id:                uuid.New().String(),
		Type:              models.TxCredit,
		Amount:            amount,
		BalanceBefore:     wallet.Available,
		BalanceAfter:      wallet.Available + amount,
		Description:       description,
		ExternalReference: externalRef,
		Status:            models.TxCompleted,
	}

	err = s.applyWalletMutation(ctx, wallet,
		"SET available_balance = available_balance + :amount",
		"", nil, entry)
	if err != nil {
		return nil, err
	}

	wallet.Available += amount
	wallet.Version++
	return wallet, nil
}

// Debit decrements the available balance. Fails with
// ErrInsufficientAvailableBalance when the balance cannot cover the amount.
func (s *Store) Debit(ctx context.Context, userID string, amount int64, description, externalRef string) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, storage.ErrInvalidAmount
	}

	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet.Available < amount {
		return nil, storage.ErrInsufficientAvailableBalance
	}

	entry := &models.WalletTransaction{
		Id:                uuid.New().String(),
		Type:              models.TxDebit,
		Amount:            amount,
		BalanceBefore:     wallet.Available,
		BalanceAfter:      wallet.Available - amount,
		Description:       description,
		ExternalReference: externalRef,
		Status:            models.TxCompleted,
	}

	// The balance guard re-runs inside the transaction; the version check
	// turns a lost race into ErrVersionConflict instead of a double debit.
	err = s.applyWalletMutation(ctx, wallet,
		"SET available_balance = available_balance - :amount",
		"available_balance >= :amount", nil, entry)
	if err != nil {
		return nil, err
	}

	wallet.Available -= amount
	wallet.Version++
	return wallet, nil
}
