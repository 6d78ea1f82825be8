package storage

import (
	"context"
	"time"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

// DeliveryReader defines the interface for reading deliveries.
type DeliveryReader interface {
	// GetDelivery retrieves a delivery by its ID.
	GetDelivery(ctx context.Context, deliveryID string) (*models.Delivery, error)

	// GetDeliveryByPaymentIntent retrieves the delivery funded by a payment intent.
	GetDeliveryByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Delivery, error)

	// ListStuckPendingDeliveries retrieves deliveries whose payment has been
	// pending for longer than maxAge. Used by reconciliation.
	ListStuckPendingDeliveries(ctx context.Context, maxAge time.Duration) ([]models.Delivery, error)
}

// DeliveryManager defines the delivery state machine transitions. All
// transitions are enforced with storage-level conditions so concurrent
// requests can never race a delivery into an inconsistent state.
type DeliveryManager interface {
	// CreateDelivery persists a new delivery in the scheduled state.
	CreateDelivery(ctx context.Context, d *models.Delivery) (*models.Delivery, error)

	// AcceptDelivery atomically assigns the courier, flips the courier busy
	// and moves all linked parcels to in_transit. Fails with
	// ErrAlreadyAssigned or ErrCourierUnavailable.
	AcceptDelivery(ctx context.Context, deliveryID, courierID string) (*models.Delivery, error)

	// CompleteDelivery atomically moves an in-progress delivery to completed,
	// its parcels to delivered and its courier back to available. Fails with
	// ErrDeliveryNotInProgress or ErrDeliveryUnpaid.
	CompleteDelivery(ctx context.Context, deliveryID string) (*models.Delivery, error)

	// CancelDelivery cancels a delivery in any state before completed. It
	// never reverses captured payments; refunds are a separate explicit action.
	CancelDelivery(ctx context.Context, deliveryID string) error

	// MarkPaymentPending records the held payment on the delivery
	// (unpaid -> pending only).
	MarkPaymentPending(ctx context.Context, deliveryID, paymentIntentID string) error

	// MarkPaymentPaid records capture of the held payment (pending -> paid only).
	MarkPaymentPaid(ctx context.Context, deliveryID string) error
}

// SegmentStore defines the partial-delivery sub-flow.
type SegmentStore interface {
	// RequestPartial flips a scheduled delivery into the partial sub-flow.
	RequestPartial(ctx context.Context, deliveryID string) error

	// PutSegments stores the ordered segment set and moves the delivery to
	// segments_proposed. Segments are renumbered 1..N by the caller.
	PutSegments(ctx context.Context, deliveryID string, segments []models.DeliverySegment) error

	// ListSegments retrieves a delivery's segments in sequence order.
	ListSegments(ctx context.Context, deliveryID string) ([]models.DeliverySegment, error)

	// AssignSegment assigns a courier to one segment independently. Fails
	// with ErrAlreadyAssigned if the segment already has a courier.
	AssignSegment(ctx context.Context, deliveryID string, seq int, courierID string) (*models.DeliverySegment, error)
}

// DeliveryStore combines the delivery interfaces.
type DeliveryStore interface {
	DeliveryReader
	DeliveryManager
	SegmentStore
}
