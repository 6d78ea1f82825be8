package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// StripeGateway implements FullGateway on Stripe. Escrow holds are
// manual-capture PaymentIntents; payouts are Transfers to Express
// connected accounts.
type StripeGateway struct {
	sc            *client.API
	webhookSecret string
}

var _ FullGateway = (*StripeGateway)(nil)

func NewStripeGateway(apiKey, webhookSecret string) *StripeGateway {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return &StripeGateway{sc: sc, webhookSecret: webhookSecret}
}

func (g *StripeGateway) CreateHeldPayment(ctx context.Context, payerID string, amount int64, currency, description string, metadata map[string]string) (*HeldPayment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(currency),
		Description:   stripe.String(description),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("payer_id", payerID)
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating payment intent: %w", err)
	}
	return intentToHeldPayment(pi), nil
}

func (g *StripeGateway) CheckStatus(ctx context.Context, externalID string) (*HeldPayment, error) {
	pi, err := g.sc.PaymentIntents.Get(externalID, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("retrieving payment intent %s: %w", externalID, err)
	}
	return intentToHeldPayment(pi), nil
}

func (g *StripeGateway) Capture(ctx context.Context, externalID string) (*HeldPayment, error) {
	pi, err := g.sc.PaymentIntents.Capture(externalID, &stripe.PaymentIntentCaptureParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		var sErr *stripe.Error
		if errors.As(err, &sErr) && sErr.Type == stripe.ErrorTypeInvalidRequest {
			return nil, fmt.Errorf("%w: %s", ErrCaptureFailed, sErr.Msg)
		}
		return nil, fmt.Errorf("capturing payment intent %s: %w", externalID, err)
	}
	return intentToHeldPayment(pi), nil
}

func (g *StripeGateway) RefundOrCancel(ctx context.Context, externalID string) error {
	pi, err := g.sc.PaymentIntents.Get(externalID, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return fmt.Errorf("retrieving payment intent %s: %w", externalID, err)
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		_, err = g.sc.Refunds.New(&stripe.RefundParams{
			Params:        stripe.Params{Context: ctx},
			PaymentIntent: stripe.String(externalID),
		})
		if err != nil {
			return fmt.Errorf("refunding payment intent %s: %w", externalID, err)
		}
	case stripe.PaymentIntentStatusCanceled:
		// Nothing held anymore.
	default:
		_, err = g.sc.PaymentIntents.Cancel(externalID, &stripe.PaymentIntentCancelParams{
			Params: stripe.Params{Context: ctx},
		})
		if err != nil {
			return fmt.Errorf("cancelling payment intent %s: %w", externalID, err)
		}
	}
	return nil
}

func (g *StripeGateway) CreateConnectedAccount(ctx context.Context, userID, email, country string) (string, error) {
	params := &stripe.AccountParams{
		Params:  stripe.Params{Context: ctx},
		Type:    stripe.String(string(stripe.AccountTypeExpress)),
		Email:   stripe.String(email),
		Country: stripe.String(country),
		Capabilities: &stripe.AccountCapabilitiesParams{
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	params.AddMetadata("user_id", userID)

	acct, err := g.sc.Accounts.New(params)
	if err != nil {
		return "", fmt.Errorf("creating connected account: %w", err)
	}
	return acct.ID, nil
}

func (g *StripeGateway) CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	link, err := g.sc.AccountLinks.New(&stripe.AccountLinkParams{
		Params:     stripe.Params{Context: ctx},
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String(string(stripe.AccountLinkTypeAccountOnboarding)),
	})
	if err != nil {
		return "", fmt.Errorf("creating onboarding link for %s: %w", accountID, err)
	}
	return link.URL, nil
}

func (g *StripeGateway) CheckAccountReadiness(ctx context.Context, accountID string) (*Account, error) {
	acct, err := g.sc.Accounts.GetByID(accountID, &stripe.AccountParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("retrieving connected account %s: %w", accountID, err)
	}
	return &Account{
		Id:               acct.ID,
		PayoutsEnabled:   acct.PayoutsEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
	}, nil
}

func (g *StripeGateway) CreatePayout(ctx context.Context, amount int64, connectedAccountID, description string) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	tr, err := g.sc.Transfers.New(&stripe.TransferParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(string(stripe.CurrencyEUR)),
		Destination: stripe.String(connectedAccountID),
		Description: stripe.String(description),
	})
	if err != nil {
		return "", fmt.Errorf("creating transfer to %s: %w", connectedAccountID, err)
	}
	return tr.ID, nil
}

// VerifyWebhook checks the provider signature on a webhook payload and
// returns the decoded event. Unsigned or tampered payloads are rejected.
func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signature, g.webhookSecret)
}

func intentToHeldPayment(pi *stripe.PaymentIntent) *HeldPayment {
	return &HeldPayment{
		ExternalId:   pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       intentState(pi.Status),
		Metadata:     pi.Metadata,
	}
}

func intentState(s stripe.PaymentIntentStatus) PaymentState {
	switch s {
	case stripe.PaymentIntentStatusRequiresPaymentMethod:
		return StateRequiresPaymentMethod
	case stripe.PaymentIntentStatusRequiresConfirmation:
		return StateRequiresConfirmation
	case stripe.PaymentIntentStatusRequiresAction:
		return StateRequiresAction
	case stripe.PaymentIntentStatusRequiresCapture:
		return StatePending
	case stripe.PaymentIntentStatusSucceeded:
		return StatePaid
	case stripe.PaymentIntentStatusCanceled:
		return StateCancelled
	default:
		return PaymentState(s)
	}
}
