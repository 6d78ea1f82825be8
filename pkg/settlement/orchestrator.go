package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/notify"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payments"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// Orchestrator runs the post-confirmation settlement: capture the held
// payment, split the commission and credit the recipient's wallet. The whole
// sequence is safe to retry; a replay of an already-settled payment changes
// nothing.
type Orchestrator struct {
	Gateway    payments.Gateway
	Store      storage.SettlementStore
	Deliveries storage.DeliveryStore
	Rates      Rates
	Notifier   notify.Notifier
}

// NewOrchestrator creates an Orchestrator with the default commission rates.
func NewOrchestrator(gateway payments.Gateway, store storage.SettlementStore, deliveries storage.DeliveryStore, notifier notify.Notifier) *Orchestrator {
	return &Orchestrator{
		Gateway:    gateway,
		Store:      store,
		Deliveries: deliveries,
		Rates:      DefaultRates,
		Notifier:   notifier,
	}
}

// CaptureAndDistribute captures the held payment identified by externalID and
// credits the recipient's wallet with the amount net of commission. The
// capture and the credit cannot share a transaction, so the credit is
// idempotent on the payment's external id: if the process dies between the
// two, rerunning the job captures nothing new and credits at most once.
func (o *Orchestrator) CaptureAndDistribute(ctx context.Context, externalID, recipientUserID string, kind models.SettlementKind) error {
	var amount int64
	if IsWalletReference(externalID) {
		// Wallet-only payment: the funds were debited at funding time, there
		// is nothing to capture at the provider.
		d, err := o.Deliveries.GetDeliveryByPaymentIntent(ctx, externalID)
		if err != nil {
			return fmt.Errorf("loading wallet-funded delivery for %s: %w", externalID, err)
		}
		amount = d.Amount
	} else {
		payment, err := o.Gateway.Capture(ctx, externalID)
		if err != nil {
			if !errors.Is(err, payments.ErrCaptureFailed) {
				return fmt.Errorf("capturing payment %s: %w", externalID, err)
			}
			// A previous run may have captured and then died. Only proceed if
			// the provider confirms the funds were in fact captured.
			payment, err = o.Gateway.CheckStatus(ctx, externalID)
			if err != nil {
				return fmt.Errorf("checking payment %s after failed capture: %w", externalID, err)
			}
			if payment.Status != payments.StatePaid {
				return fmt.Errorf("payment %s in state %s: %w", externalID, payment.Status, payments.ErrCaptureFailed)
			}
		}
		amount = payment.Amount
	}

	recipientAmount, commission := Split(amount, o.Rates.For(kind))

	wallet, applied, err := o.Store.CreditSettlement(ctx, recipientUserID, recipientAmount, commission, externalID, kind)
	if err != nil {
		return fmt.Errorf("crediting settlement for payment %s: %w", externalID, err)
	}
	if !applied {
		slog.Info("payment already settled, skipping", "paymentIntentId", externalID)
		return nil
	}

	slog.Info("settlement applied",
		"paymentIntentId", externalID,
		"recipientUserId", recipientUserID,
		"kind", kind,
		"amount", amount,
		"recipientAmount", recipientAmount,
		"commission", commission,
	)

	if kind == models.KindDelivery {
		if err := o.markDeliveryPaid(ctx, externalID); err != nil {
			slog.Error("failed to mark delivery paid after settlement", "paymentIntentId", externalID, "error", err)
		}
	}

	if o.Notifier != nil {
		payload := notify.WalletUpdatePayload{
			UserID:        recipientUserID,
			TransactionID: "settle-" + externalID,
			Change:        recipientAmount,
			NewBalance:    wallet.Available,
		}
		if err := o.Notifier.Send(ctx, recipientUserID, notify.EventWalletUpdate, payload); err != nil {
			slog.Error("failed to notify recipient of settlement", "userId", recipientUserID, "error", err)
		}
	}

	return nil
}

// markDeliveryPaid flips the delivery funded by the payment to paid. A
// replayed settlement finds the transition already done; that conflict is not
// an error.
func (o *Orchestrator) markDeliveryPaid(ctx context.Context, paymentIntentID string) error {
	d, err := o.Deliveries.GetDeliveryByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return err
	}
	if err := o.Deliveries.MarkPaymentPaid(ctx, d.Id); err != nil && !errors.Is(err, storage.ErrPaymentStatusConflict) {
		return err
	}
	return nil
}
