package settlement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payments"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// walletRefPrefix marks payment references of deliveries paid entirely from
// the payer's wallet. No provider intent exists for them; settlement keys its
// ledger rows on this reference instead.
const walletRefPrefix = "wallet:"

// WalletReference builds the payment reference recorded on a wallet-only
// funded delivery.
func WalletReference(deliveryID string) string {
	return walletRefPrefix + deliveryID
}

// IsWalletReference reports whether a payment reference denotes a wallet-only
// payment rather than a provider intent.
func IsWalletReference(ref string) bool {
	return strings.HasPrefix(ref, walletRefPrefix)
}

// Funder creates the escrow hold that pays for a delivery, optionally
// splitting the total between the payer's wallet and the card hold.
type Funder struct {
	Gateway    payments.Gateway
	Wallets    storage.WalletStore
	Deliveries storage.DeliveryStore
	Currency   string
}

// FundResult reports how a delivery was funded.
type FundResult struct {
	Delivery     *models.Delivery
	HeldPayment  *payments.HeldPayment
	WalletAmount int64
}

// FundDelivery funds a delivery. walletAmount (0 for pure card payments) is
// debited from the payer's wallet immediately; the remainder becomes a held
// payment the payer's device must confirm. A walletAmount covering the whole
// price pays the delivery outright with no provider intent. The wallet debit
// happens first so an insufficient balance aborts before any provider call;
// if creating the hold then fails, the debit is credited back.
func (f *Funder) FundDelivery(ctx context.Context, deliveryID string, walletAmount int64) (*FundResult, error) {
	d, err := f.Deliveries.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("loading delivery %s: %w", deliveryID, err)
	}
	if d.PaymentStatus != models.PaymentUnpaid {
		return nil, storage.ErrPaymentStatusConflict
	}
	if walletAmount < 0 || walletAmount > d.Amount {
		return nil, payments.ErrInvalidAmount
	}
	if walletAmount == d.Amount {
		return f.fundFromWallet(ctx, d)
	}

	if walletAmount > 0 {
		_, err := f.Wallets.Debit(ctx, d.ClientId, walletAmount,
			fmt.Sprintf("Wallet share of delivery %s", d.Id), d.Id)
		if err != nil {
			return nil, fmt.Errorf("debiting wallet share for delivery %s: %w", d.Id, err)
		}
	}

	escrowAmount := d.Amount - walletAmount
	payment, err := f.Gateway.CreateHeldPayment(ctx, d.ClientId, escrowAmount, f.Currency,
		fmt.Sprintf("Delivery %s", d.Id),
		map[string]string{"delivery_id": d.Id, "wallet_amount": fmt.Sprintf("%d", walletAmount)})
	if err != nil {
		if walletAmount > 0 {
			if _, cErr := f.Wallets.Credit(ctx, d.ClientId, walletAmount,
				fmt.Sprintf("Refund of wallet share of delivery %s", d.Id), d.Id); cErr != nil {
				slog.Error("failed to refund wallet share after hold failure",
					"deliveryId", d.Id, "userId", d.ClientId, "amount", walletAmount, "error", cErr)
			}
		}
		return nil, fmt.Errorf("creating held payment for delivery %s: %w", d.Id, err)
	}

	if err := f.Deliveries.MarkPaymentPending(ctx, d.Id, payment.ExternalId); err != nil {
		return nil, fmt.Errorf("marking delivery %s payment pending: %w", d.Id, err)
	}

	d.PaymentStatus = models.PaymentPending
	d.PaymentIntentId = payment.ExternalId
	return &FundResult{Delivery: d, HeldPayment: payment, WalletAmount: walletAmount}, nil
}

// fundFromWallet pays the whole delivery from the payer's wallet. The funds
// are collected immediately, so the delivery goes straight to paid; the
// courier's share is still credited through the settlement job at completion,
// keyed on the wallet reference in lieu of a payment intent.
func (f *Funder) fundFromWallet(ctx context.Context, d *models.Delivery) (*FundResult, error) {
	ref := WalletReference(d.Id)
	if _, err := f.Wallets.Debit(ctx, d.ClientId, d.Amount,
		fmt.Sprintf("Wallet payment of delivery %s", d.Id), ref); err != nil {
		return nil, fmt.Errorf("debiting wallet payment for delivery %s: %w", d.Id, err)
	}

	if err := f.Deliveries.MarkPaymentPending(ctx, d.Id, ref); err != nil {
		return nil, fmt.Errorf("marking delivery %s payment pending: %w", d.Id, err)
	}
	if err := f.Deliveries.MarkPaymentPaid(ctx, d.Id); err != nil {
		return nil, fmt.Errorf("marking delivery %s paid: %w", d.Id, err)
	}

	d.PaymentStatus = models.PaymentPaid
	d.PaymentIntentId = ref
	return &FundResult{Delivery: d, WalletAmount: d.Amount}, nil
}

// RefundDelivery releases an uncaptured hold or refunds a captured payment
// for a delivery. It does not touch the delivery state; cancellation is the
// caller's explicit move.
func (f *Funder) RefundDelivery(ctx context.Context, deliveryID string) error {
	d, err := f.Deliveries.GetDelivery(ctx, deliveryID)
	if err != nil {
		return fmt.Errorf("loading delivery %s: %w", deliveryID, err)
	}
	if d.PaymentIntentId == "" {
		return nil
	}
	if err := f.Gateway.RefundOrCancel(ctx, d.PaymentIntentId); err != nil {
		return fmt.Errorf("refunding payment for delivery %s: %w", deliveryID, err)
	}
	return nil
}
