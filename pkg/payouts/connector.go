package payouts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/notify"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payments"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// Connector moves wallet funds to a user's external connected account. The
// wallet debit and the provider transfer cannot share a transaction, so the
// debit commits first as a pending transfer row and is compensated if the
// provider call fails. A payout can therefore never leave the wallet debited
// without either a completed transfer or the money put back.
type Connector struct {
	Gateway   payments.ConnectGateway
	Wallets   storage.WalletStore
	Transfers storage.TransferStore
	Notifier  notify.Notifier
}

// NewConnector creates a payout Connector.
func NewConnector(gateway payments.ConnectGateway, wallets storage.WalletStore, transfers storage.TransferStore, notifier notify.Notifier) *Connector {
	return &Connector{
		Gateway:   gateway,
		Wallets:   wallets,
		Transfers: transfers,
		Notifier:  notifier,
	}
}

// TransferToExternalAccount pays out amount from the user's wallet to their
// connected account. The account must have finished onboarding and the wallet
// must hold at least amount available.
func (c *Connector) TransferToExternalAccount(ctx context.Context, userID string, amount int64) (*models.WalletTransaction, error) {
	wallet, err := c.Wallets.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading wallet for user %s: %w", userID, err)
	}
	if wallet.ConnectedAccountId == "" {
		return nil, payments.ErrAccountNotReady
	}

	account, err := c.Gateway.CheckAccountReadiness(ctx, wallet.ConnectedAccountId)
	if err != nil {
		return nil, fmt.Errorf("checking account %s: %w", wallet.ConnectedAccountId, err)
	}
	if !account.Ready() {
		return nil, payments.ErrAccountNotReady
	}

	_, tx, err := c.Transfers.BeginTransfer(ctx, userID, amount,
		fmt.Sprintf("Payout to connected account %s", wallet.ConnectedAccountId))
	if err != nil {
		return nil, err
	}

	transferID, err := c.Gateway.CreatePayout(ctx, amount, wallet.ConnectedAccountId,
		fmt.Sprintf("Wallet payout for user %s", userID))
	if err != nil {
		if fErr := c.Transfers.FailTransfer(ctx, tx.Id, userID, amount); fErr != nil {
			// Compensation failed: the wallet is debited with no transfer.
			// This needs an operator; log loudly with everything they need.
			slog.Error("payout compensation failed, wallet debit is orphaned",
				"userId", userID, "transactionId", tx.Id, "amount", amount, "error", fErr)
			return nil, fmt.Errorf("failing transfer %s after payout error %v: %w", tx.Id, err, fErr)
		}
		c.send(ctx, userID, notify.EventPayoutFailed, tx)
		return nil, fmt.Errorf("creating payout for user %s: %w", userID, err)
	}

	if err := c.Transfers.CompleteTransfer(ctx, tx.Id, transferID); err != nil {
		// The money moved; the ledger row stays pending for reconciliation.
		slog.Error("failed to mark transfer completed", "transactionId", tx.Id, "transferId", transferID, "error", err)
	} else {
		tx.Status = models.TxCompleted
		tx.ExternalReference = transferID
	}

	slog.Info("payout completed", "userId", userID, "amount", amount, "transferId", transferID)
	c.send(ctx, userID, notify.EventPayoutCompleted, tx)
	return tx, nil
}

// Onboard provisions a connected account for the user if they have none and
// returns a fresh onboarding link.
func (c *Connector) Onboard(ctx context.Context, userID, email, country, refreshURL, returnURL string) (string, error) {
	wallet, err := c.Wallets.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading wallet for user %s: %w", userID, err)
	}

	accountID := wallet.ConnectedAccountId
	if accountID == "" {
		accountID, err = c.Gateway.CreateConnectedAccount(ctx, userID, email, country)
		if err != nil {
			return "", fmt.Errorf("creating connected account for user %s: %w", userID, err)
		}
		settings := storage.WalletSettings{
			Iban:                wallet.Iban,
			Bic:                 wallet.Bic,
			AutoPayoutEnabled:   wallet.AutoPayoutEnabled,
			AutoPayoutThreshold: wallet.AutoPayoutThreshold,
			ConnectedAccountId:  accountID,
		}
		if _, err := c.Wallets.UpdateWalletSettings(ctx, userID, settings); err != nil {
			return "", fmt.Errorf("saving connected account for user %s: %w", userID, err)
		}
	}

	return c.Gateway.CreateOnboardingLink(ctx, accountID, refreshURL, returnURL)
}

func (c *Connector) send(ctx context.Context, userID, event string, payload interface{}) {
	if c.Notifier == nil {
		return
	}
	if err := c.Notifier.Send(ctx, userID, event, payload); err != nil {
		slog.Error("failed to send notification", "userId", userID, "event", event, "error", err)
	}
}
