package scheduler

import "context"

// JobType discriminates the asynchronous work carried by a Job.
type JobType string

const (
	// JobSettlement captures a held payment and credits the recipient.
	JobSettlement JobType = "settlement"
	// JobPayout transfers wallet funds to a user's connected account.
	JobPayout JobType = "payout"
)

// Job is the message enqueued for asynchronous processing. Fields are a
// union: settlement jobs carry the payment intent and recipient, payout jobs
// carry the user and amount.
type Job struct {
	Type JobType `json:"type"`

	// Settlement fields.
	PaymentIntentId string `json:"payment_intent_id,omitempty"`
	RecipientUserId string `json:"recipient_user_id,omitempty"`
	Kind            string `json:"kind,omitempty"`

	// Payout fields.
	UserId      string `json:"user_id,omitempty"`
	Amount      int64  `json:"amount,omitempty"`
	Description string `json:"description,omitempty"`
}

// Scheduler defines the interface for a component that enqueues a job for
// later processing.
type Scheduler interface {
	// Schedule enqueues a job for asynchronous processing.
	Schedule(ctx context.Context, job Job) error
}
