package delivery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/codes"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/notify"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/scheduler"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// CoordinationFee is the fixed surcharge, in minor units, added per extra
// segment when a delivery is split.
const CoordinationFee int64 = 200

// Service drives the delivery lifecycle: assignment, completion against a
// validation code, cancellation and the partial-delivery sub-flow. State
// transitions themselves are enforced by the store; the service sequences
// them and hangs the side effects (codes, settlement jobs, notifications)
// off the transitions.
type Service struct {
	Store     storage.ApiStore
	Issuer    *codes.Issuer
	Scheduler scheduler.Scheduler
	Notifier  notify.Notifier
	Optimizer RouteOptimizer
}

// NewService wires a delivery service with the nearest-neighbor route
// optimizer.
func NewService(store storage.ApiStore, issuer *codes.Issuer, sched scheduler.Scheduler, notifier notify.Notifier) *Service {
	return &Service{
		Store:     store,
		Issuer:    issuer,
		Scheduler: sched,
		Notifier:  notifier,
		Optimizer: NearestNeighborOptimizer{},
	}
}

// Accept assigns the courier to the delivery and notifies the client. The
// store rejects double assignment and unavailable couriers atomically.
func (s *Service) Accept(ctx context.Context, deliveryID, courierID string) (*models.Delivery, error) {
	d, err := s.Store.AcceptDelivery(ctx, deliveryID, courierID)
	if err != nil {
		return nil, err
	}

	s.send(ctx, d.ClientId, notify.EventDeliveryAccepted, d)
	return d, nil
}

// IssueCode generates the delivery's one-time validation code, keyed by the
// parcel tracking number. The recipient receives it out of band and presents
// it to the courier at handoff.
func (s *Service) IssueCode(ctx context.Context, trackingNumber string) (*models.ValidationCode, error) {
	if _, err := s.Store.GetParcel(ctx, trackingNumber); err != nil {
		return nil, fmt.Errorf("loading parcel %s: %w", trackingNumber, err)
	}
	return s.Issuer.Issue(ctx, trackingNumber)
}

// Complete confirms a handoff: the presented code is consumed, the delivery
// moves to completed and a settlement job is enqueued to capture and
// distribute the held payment. A wrong code consumes nothing and changes
// nothing.
func (s *Service) Complete(ctx context.Context, trackingNumber, code string) (*models.Delivery, error) {
	parcel, err := s.Store.GetParcel(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("loading parcel %s: %w", trackingNumber, err)
	}
	if parcel.DeliveryId == "" {
		return nil, fmt.Errorf("parcel %s is not linked to a delivery", trackingNumber)
	}

	if err := s.Store.ConsumeValidationCode(ctx, trackingNumber, code); err != nil {
		return nil, err
	}

	d, err := s.Store.CompleteDelivery(ctx, parcel.DeliveryId)
	if err != nil {
		return nil, err
	}

	if d.PaymentIntentId != "" {
		job := scheduler.Job{
			Type:            scheduler.JobSettlement,
			PaymentIntentId: d.PaymentIntentId,
			RecipientUserId: d.LivreurId,
			Kind:            string(models.KindDelivery),
		}
		if err := s.Scheduler.Schedule(ctx, job); err != nil {
			// The delivery is completed either way; reconciliation picks up
			// payments that stay pending.
			slog.Error("failed to enqueue settlement job", "deliveryId", d.Id, "paymentIntentId", d.PaymentIntentId, "error", err)
		}
	}

	s.send(ctx, d.ClientId, notify.EventDeliveryCompleted, d)
	s.send(ctx, d.LivreurId, notify.EventDeliveryCompleted, d)
	return d, nil
}

// Cancel cancels a delivery before completion. Captured payments are not
// reversed here; refunds are a separate explicit action.
func (s *Service) Cancel(ctx context.Context, deliveryID string) error {
	d, err := s.Store.GetDelivery(ctx, deliveryID)
	if err != nil {
		return fmt.Errorf("loading delivery %s: %w", deliveryID, err)
	}
	if err := s.Store.CancelDelivery(ctx, deliveryID); err != nil {
		return err
	}

	s.send(ctx, d.ClientId, notify.EventDeliveryCancelled, d)
	if d.LivreurId != "" {
		s.send(ctx, d.LivreurId, notify.EventDeliveryCancelled, d)
	}
	return nil
}

// RequestPartial opens the partial-delivery sub-flow on a scheduled delivery.
func (s *Service) RequestPartial(ctx context.Context, deliveryID string) error {
	return s.Store.RequestPartial(ctx, deliveryID)
}

// ProposeSegments validates and stores a segment decomposition. The segment
// prices plus one coordination fee per extra segment must reconstruct the
// parent price exactly; the optimizer then orders the legs and renumbers
// them 1..N before they are persisted.
func (s *Service) ProposeSegments(ctx context.Context, deliveryID string, segments []models.DeliverySegment) ([]models.DeliverySegment, error) {
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}

	d, err := s.Store.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("loading delivery %s: %w", deliveryID, err)
	}

	var sum int64
	for _, seg := range segments {
		sum += seg.Price
	}
	sum += CoordinationFee * int64(len(segments)-1)
	if sum != d.Price {
		return nil, fmt.Errorf("%w: segments total %d, delivery price %d", ErrSegmentPriceMismatch, sum, d.Price)
	}

	ordered := s.Optimizer.Order(segments)
	for i := range ordered {
		ordered[i].DeliveryId = deliveryID
	}

	if err := s.Store.PutSegments(ctx, deliveryID, ordered); err != nil {
		return nil, err
	}

	s.send(ctx, d.ClientId, notify.EventSegmentsProposed, ordered)
	return ordered, nil
}

// AssignSegment assigns one segment of a partial delivery to a courier.
func (s *Service) AssignSegment(ctx context.Context, deliveryID string, seq int, courierID string) (*models.DeliverySegment, error) {
	return s.Store.AssignSegment(ctx, deliveryID, seq, courierID)
}

// send pushes a notification without letting a push failure surface into the
// triggering operation.
func (s *Service) send(ctx context.Context, userID, event string, payload interface{}) {
	if s.Notifier == nil || userID == "" {
		return
	}
	if err := s.Notifier.Send(ctx, userID, event, payload); err != nil {
		slog.Error("failed to send notification", "userId", userID, "event", event, "error", err)
	}
}
