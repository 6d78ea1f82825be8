package storage

import (
	"context"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

// SettlementStore defines the privileged credit applied after a payment
// capture. It should only be exposed to the settlement orchestrator.
type SettlementStore interface {
	// CreditSettlement credits the recipient's wallet with their share of a
	// captured payment and records both the recipient credit and the platform
	// commission ledger rows in one atomic write, keyed on the payment's
	// external id. It returns the updated wallet, or false with no error when
	// the payment was already settled, making replays a no-op.
	CreditSettlement(ctx context.Context, recipientUserID string, recipientAmount, commission int64, paymentExternalID string, kind models.SettlementKind) (*models.Wallet, bool, error)
}
