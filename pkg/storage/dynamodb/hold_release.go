package dynamodb

import (
	"context"

	"github.com/google/uuid"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// HoldFunds increments the held balance and records a pending credit. Held
// funds are reserved but not withdrawable until released.
func (s *Store) HoldFunds(ctx context.Context, userID string, amount int64, description, externalRef string) (*models.Wallet, error) {
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
		BalanceBefore:     wallet.Held,
		BalanceAfter:      wallet.Held + amount,
		Description:       description,
		ExternalReference: externalRef,
		Status:            models.TxPending,
	}

	err = s.applyWalletMutation(ctx, wallet,
		"SET held_balance = held_balance + :amount",
		"", nil, entry)
	if err != nil {
		return nil, err
	}

	wallet.Held += amount
	wallet.Version++
	return wallet, nil
}

// ReleaseFunds moves amount from held to available. The returned flag reports
// whether the wallet crossed its auto-payout threshold; enqueueing the payout
// is the caller's job, keeping release latency decoupled from the payout
// provider.
func (s *Store) ReleaseFunds(ctx context.Context, userID string, amount int64, description, externalRef string) (*models.Wallet, bool, error) {
	if amount <= 0 {
		return nil, false, storage.ErrInvalidAmount
	}

	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if wallet.Held < amount {
		return nil, false, storage.ErrInsufficientHeldBalance
	}

	entry := &models.WalletTransaction{
		Id:                uuid.New().String(),
		Type:              models.TxRelease,
		Amount:            amount,
		BalanceBefore:     wallet.Held,
		BalanceAfter:      wallet.Held - amount,
		Description:       description,
		ExternalReference: externalRef,
		Status:            models.TxCompleted,
	}

	err = s.applyWalletMutation(ctx, wallet,
		"SET held_balance = held_balance - :amount, available_balance = available_balance + :amount",
		"held_balance >= :amount", nil, entry)
	if err != nil {
		return nil, false, err
	}

	wallet.Held -= amount
	wallet.Available += amount
	wallet.Version++

	// A zero threshold means auto-payout was never configured; the enabled
	// flag alone does not trigger a payout on every release.
	autoPayoutDue := wallet.AutoPayoutEnabled && wallet.AutoPayoutThreshold > 0 && wallet.Available >= wallet.AutoPayoutThreshold
	return wallet, autoPayoutDue, nil
}
