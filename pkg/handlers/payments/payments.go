package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/stripe/stripe-go/v79"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/notify"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// maxWebhookBody caps the webhook payload size.
const maxWebhookBody = 64 * 1024

// WebhookVerifier checks provider signatures on webhook payloads.
type WebhookVerifier interface {
	VerifyWebhook(payload []byte, signature string) (stripe.Event, error)
}

// CodeIssuer issues one-time validation codes.
type CodeIssuer interface {
	Issue(ctx context.Context, userInfo string) (*models.ValidationCode, error)
}

// PaymentsHandler handles payment-provider webhooks. Providers retry and may
// deliver events out of order, so every branch must tolerate replays.
type PaymentsHandler struct {
	Verifier WebhookVerifier
	Store    storage.ApiStore
	Issuer   CodeIssuer
	Notifier notify.Notifier
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(verifier WebhookVerifier, store storage.ApiStore, issuer CodeIssuer, notifier notify.Notifier) *PaymentsHandler {
	return &PaymentsHandler{Verifier: verifier, Store: store, Issuer: issuer, Notifier: notifier}
}

// HandleWebhook verifies and dispatches a provider webhook event.
func (h *PaymentsHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusServiceUnavailable)
		return
	}

	event, err := h.Verifier.VerifyWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		slog.Error("webhook signature verification failed", "error", err)
		http.Error(w, "Invalid signature", http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "payment_intent.amount_capturable_updated":
		h.handleAuthorizationConfirmed(w, r, event)
	case "payment_intent.succeeded":
		h.handlePaymentCaptured(w, r, event)
	case "checkout.session.completed":
		// Service bookings settle through the job queue; the session event is
		// informational.
		slog.Info("checkout session completed", "event", event.ID)
		w.WriteHeader(http.StatusOK)
	case "payment_intent.canceled", "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err == nil {
			slog.Info("payment intent did not complete", "paymentIntentId", pi.ID, "event", event.Type)
		}
		w.WriteHeader(http.StatusOK)
	default:
		slog.Info("ignoring webhook event", "event", event.Type)
		w.WriteHeader(http.StatusOK)
	}
}

// handleAuthorizationConfirmed runs once the payer's card authorization holds
// the funds. It issues a validation code for each parcel of the funded
// delivery and pushes them to the client. Issuing replaces any earlier code,
// so a redelivered event just rotates the codes.
func (h *PaymentsHandler) handleAuthorizationConfirmed(w http.ResponseWriter, r *http.Request, event stripe.Event) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		http.Error(w, "Malformed event payload", http.StatusBadRequest)
		return
	}

	d, err := h.Store.GetDeliveryByPaymentIntent(r.Context(), pi.ID)
	if err != nil {
		// Not every payment funds a delivery.
		slog.Info("no delivery for authorized payment", "paymentIntentId", pi.ID)
		w.WriteHeader(http.StatusOK)
		return
	}

	parcels, err := h.Store.ListParcelsByDelivery(r.Context(), d.Id)
	if err != nil {
		slog.Error("failed to list parcels for authorized delivery", "deliveryId", d.Id, "error", err)
		http.Error(w, "Failed to process event", http.StatusInternalServerError)
		return
	}

	issued := make(map[string]string, len(parcels))
	for _, p := range parcels {
		vc, err := h.Issuer.Issue(r.Context(), p.TrackingNumber)
		if err != nil {
			slog.Error("failed to issue validation code", "trackingNumber", p.TrackingNumber, "error", err)
			http.Error(w, "Failed to process event", http.StatusInternalServerError)
			return
		}
		issued[p.TrackingNumber] = vc.Code
	}

	if err := h.Notifier.Send(r.Context(), d.ClientId, notify.EventValidationCode, issued); err != nil {
		// The codes are stored; delivery completion does not depend on the push.
		slog.Error("failed to push validation codes", "deliveryId", d.Id, "error", err)
	}

	w.WriteHeader(http.StatusOK)
}

// handlePaymentCaptured marks the funded delivery paid. Settlement normally
// does this first; the webhook is the backstop when the settlement job and
// the provider race.
func (h *PaymentsHandler) handlePaymentCaptured(w http.ResponseWriter, r *http.Request, event stripe.Event) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		http.Error(w, "Malformed event payload", http.StatusBadRequest)
		return
	}

	d, err := h.Store.GetDeliveryByPaymentIntent(r.Context(), pi.ID)
	if err != nil {
		// Not every payment funds a delivery.
		slog.Info("no delivery for captured payment", "paymentIntentId", pi.ID)
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.Store.MarkPaymentPaid(r.Context(), d.Id); err != nil && !errors.Is(err, storage.ErrPaymentStatusConflict) {
		slog.Error("failed to mark delivery paid from webhook", "deliveryId", d.Id, "error", err)
		http.Error(w, "Failed to process event", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
