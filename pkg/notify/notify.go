package notify

import "context"

// Event names pushed to connected clients.
const (
	EventDeliveryAccepted  = "delivery_accepted"
	EventDeliveryCompleted = "delivery_completed"
	EventDeliveryCancelled = "delivery_cancelled"
	EventSegmentsProposed  = "segments_proposed"
	EventValidationCode    = "validation_code_issued"
	EventWalletUpdate      = "wallet_update"
	EventPayoutCompleted   = "payout_completed"
	EventPayoutFailed      = "payout_failed"
)

// Message is the envelope pushed over WebSocket connections.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// WalletUpdatePayload is the payload for a wallet_update message.
type WalletUpdatePayload struct {
	UserID        string `json:"user_id"`
	TransactionID string `json:"transaction_id"`
	Change        int64  `json:"change"`
	NewBalance    int64  `json:"new_balance"`
}

// Notifier defines the interface for pushing an event to one user's connected
// devices. Delivery is best effort: a user with no live connections is not an
// error, and transient push failures never fail the triggering operation.
type Notifier interface {
	Send(ctx context.Context, userID string, event string, payload interface{}) error
}

// NoOpNotifier is a notifier that does nothing.
type NoOpNotifier struct{}

// Send does nothing.
func (n *NoOpNotifier) Send(ctx context.Context, userID string, event string, payload interface{}) error {
	return nil
}
