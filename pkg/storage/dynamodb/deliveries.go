package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

const (
	paymentIntentGSI = "payment_intent_id-index"
	paymentStatusGSI = "payment_status-updated_at-index"
)

// CreateDelivery persists a new delivery in the scheduled, unpaid state.
func (s *Store) CreateDelivery(ctx context.Context, d *models.Delivery) (*models.Delivery, error) {
	now := time.Now()
	if d.Id == "" {
		d.Id = uuid.New().String()
	}
	d.Status = models.DeliveryScheduled
	d.PaymentStatus = models.PaymentUnpaid
	d.CreatedAt = now
	d.UpdatedAt = now

	deliveryAV, err := attributevalue.MarshalMap(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal delivery: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Deliveries),
		Item:                deliveryAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}
	return d, nil
}

// GetDelivery retrieves a delivery by its ID.
func (s *Store) GetDelivery(ctx context.Context, deliveryID string) (*models.Delivery, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": deliveryID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal delivery ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Deliveries),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("delivery with ID %s not found", deliveryID)
	}

	var d models.Delivery
	if err := attributevalue.UnmarshalMap(result.Item, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal delivery: %w", err)
	}
	return &d, nil
}

// GetDeliveryByPaymentIntent retrieves the delivery funded by a payment intent.
func (s *Store) GetDeliveryByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Delivery, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Deliveries),
		IndexName:              aws.String(paymentIntentGSI),
		KeyConditionExpression: aws.String("payment_intent_id = :pi"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pi": &types.AttributeValueMemberS{Value: paymentIntentID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query delivery by payment intent: %w", err)
	}
	if len(result.Items) == 0 {
		return nil, fmt.Errorf("no delivery for payment intent %s", paymentIntentID)
	}

	var d models.Delivery
	if err := attributevalue.UnmarshalMap(result.Items[0], &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal delivery: %w", err)
	}
	return &d, nil
}

// ListStuckPendingDeliveries retrieves deliveries whose payment has been
// pending for longer than maxAge. Consumed by the reconciliation worker.
func (s *Store) ListStuckPendingDeliveries(ctx context.Context, maxAge time.Duration) ([]models.Delivery, error) {
	cutoff := time.Now().Add(-maxAge)
	cutoffStr, err := cutoff.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Deliveries),
		IndexName:              aws.String(paymentStatusGSI),
		KeyConditionExpression: aws.String("payment_status = :status AND updated_at < :cutoff"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.PaymentPending)},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoffStr)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query stuck pending deliveries: %w", err)
	}

	var deliveries []models.Delivery
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &deliveries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deliveries: %w", err)
	}
	return deliveries, nil
}

// MarkPaymentPending records the held payment on the delivery. Only the
// forward transition unpaid -> pending is allowed.
func (s *Store) MarkPaymentPending(ctx context.Context, deliveryID, paymentIntentID string) error {
	return s.transitionPaymentStatus(ctx, deliveryID, models.PaymentUnpaid, models.PaymentPending, paymentIntentID)
}

// MarkPaymentPaid records capture of the held payment (pending -> paid only).
func (s *Store) MarkPaymentPaid(ctx context.Context, deliveryID string) error {
	return s.transitionPaymentStatus(ctx, deliveryID, models.PaymentPending, models.PaymentPaid, "")
}

func (s *Store) transitionPaymentStatus(ctx context.Context, deliveryID string, from, to models.PaymentStatus, paymentIntentID string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	update := "SET payment_status = :to, updated_at = :now"
	values := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":now":  nowAV,
	}
	if paymentIntentID != "" {
		update += ", payment_intent_id = :pi"
		values[":pi"] = &types.AttributeValueMemberS{Value: paymentIntentID}
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Deliveries),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: deliveryID},
		},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("payment_status = :from"),
		ExpressionAttributeValues: values,
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrPaymentStatusConflict
		}
		return fmt.Errorf("failed to transition payment status for delivery %s: %w", deliveryID, err)
	}
	return nil
}

// CancelDelivery cancels a delivery in any state before completed. Captured
// payments are never reversed here; refunds are a separate explicit action
// against the gateway.
func (s *Store) CancelDelivery(ctx context.Context, deliveryID string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Deliveries),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: deliveryID},
		},
		UpdateExpression:    aws.String("SET #status = :cancelled, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status <> :completed AND #status <> :cancelled"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cancelled": &types.AttributeValueMemberS{Value: string(models.DeliveryCancelled)},
			":completed": &types.AttributeValueMemberS{Value: string(models.DeliveryCompleted)},
			":now":       nowAV,
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrDeliveryNotCancellable
		}
		return fmt.Errorf("failed to cancel delivery %s: %w", deliveryID, err)
	}
	return nil
}
