package payments

import (
	"context"
	"errors"
)

// PaymentState is the provider-neutral view of an escrow payment's lifecycle.
type PaymentState string

const (
	// StateRequiresPaymentMethod through StateRequiresAction are the
	// client-side steps before funds are authorized.
	StateRequiresPaymentMethod PaymentState = "requires_payment_method"
	StateRequiresConfirmation  PaymentState = "requires_confirmation"
	StateRequiresAction        PaymentState = "requires_action"
	// StatePending means funds are authorized and held but not captured:
	// the escrow state.
	StatePending PaymentState = "pending"
	// StatePaid means the hold was captured into settled platform funds.
	StatePaid PaymentState = "paid"
	// StateRefunded covers both a released hold and a refunded capture.
	StateRefunded PaymentState = "refunded"
	StateCancelled PaymentState = "cancelled"
)

// HeldPayment describes one escrow payment at the provider.
type HeldPayment struct {
	ExternalId   string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       PaymentState
	Metadata     map[string]string
}

// ErrInvalidAmount is returned when a payment is requested with a
// non-positive amount in minor units.
var ErrInvalidAmount = errors.New("payment amount must be a positive integer in minor units")

// ErrCaptureFailed is returned when a payment is not in a capturable state
// (already captured, expired or cancelled).
var ErrCaptureFailed = errors.New("payment is not capturable")

// ErrAccountNotReady is returned when a payout is attempted against a
// connected account that has not finished onboarding.
var ErrAccountNotReady = errors.New("connected account is not ready for payouts")

// Gateway wraps the external payment provider. Creating a payment with
// manual-capture semantics is what implements escrow: funds are provably
// reserved but not disbursed until the delivery is independently confirmed.
type Gateway interface {
	// CreateHeldPayment creates a manually-captured payment authorization
	// and returns its external id plus the client secret the payer's device
	// needs to confirm it.
	CreateHeldPayment(ctx context.Context, payerID string, amount int64, currency, description string, metadata map[string]string) (*HeldPayment, error)

	// CheckStatus returns the provider's current view of a payment. Callers
	// confirm a client-side payment completed before trusting it.
	CheckStatus(ctx context.Context, externalID string) (*HeldPayment, error)

	// Capture finalizes the hold, converting it into settled platform funds.
	Capture(ctx context.Context, externalID string) (*HeldPayment, error)

	// RefundOrCancel releases the hold back to the payer: an uncaptured
	// payment is cancelled, a captured one refunded.
	RefundOrCancel(ctx context.Context, externalID string) error
}

// Account is the readiness view of a provider connected account.
type Account struct {
	Id               string
	PayoutsEnabled   bool
	DetailsSubmitted bool
}

// Ready reports whether payouts can be sent to the account.
func (a *Account) Ready() bool {
	return a.PayoutsEnabled && a.DetailsSubmitted
}

// ConnectGateway is the payout side of the provider: connected accounts,
// onboarding and transfers out of the platform balance.
type ConnectGateway interface {
	// CreateConnectedAccount provisions a provider account for the user and
	// returns its id.
	CreateConnectedAccount(ctx context.Context, userID, email, country string) (string, error)

	// CreateOnboardingLink returns a one-time URL where the user completes
	// the provider's onboarding flow.
	CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)

	// CheckAccountReadiness must report a ready account before any
	// CreatePayout call is attempted.
	CheckAccountReadiness(ctx context.Context, accountID string) (*Account, error)

	// CreatePayout transfers amount from the platform to the connected
	// account and returns the provider transfer id.
	CreatePayout(ctx context.Context, amount int64, connectedAccountID, description string) (string, error)
}

// FullGateway combines the escrow and payout sides.
type FullGateway interface {
	Gateway
	ConnectGateway
}
