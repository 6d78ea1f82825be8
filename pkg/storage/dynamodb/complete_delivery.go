package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// CompleteDelivery transitions an in-progress delivery to completed. The
// condition refuses the transition while the payment is unpaid, so completed
// is unreachable without a funded escrow. Parcels move to delivered and the
// courier becomes available again in the same transaction.
func (s *Store) CompleteDelivery(ctx context.Context, deliveryID string) (*models.Delivery, error) {
	delivery, err := s.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery.Status != models.DeliveryInProgress {
		return nil, storage.ErrDeliveryNotInProgress
	}
	if delivery.PaymentStatus == models.PaymentUnpaid {
		return nil, storage.ErrDeliveryUnpaid
	}

	parcels, err := s.ListParcelsByDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	historyEntry := []models.LocationEntry{{
		LocationType: models.LocationDelivered,
		MovedAt:      now,
	}}
	historyAV, err := attributevalue.Marshal(historyEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal location entry: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: delivery in_progress -> completed, never while unpaid.
			Update: &types.Update{
				TableName: aws.String(s.Tables.Deliveries),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: deliveryID},
				},
				UpdateExpression:    aws.String("SET #status = :completed, updated_at = :now"),
				ConditionExpression: aws.String("#status = :in_progress AND payment_status <> :unpaid"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":completed":   &types.AttributeValueMemberS{Value: string(models.DeliveryCompleted)},
					":in_progress": &types.AttributeValueMemberS{Value: string(models.DeliveryInProgress)},
					":unpaid":      &types.AttributeValueMemberS{Value: string(models.PaymentUnpaid)},
					":now":         nowAV,
				},
			},
		},
	}

	if delivery.LivreurId != "" {
		items = append(items, types.TransactWriteItem{
			// Operation 2: the courier is free again.
			Update: &types.Update{
				TableName: aws.String(s.Tables.Couriers),
				Key: map[string]types.AttributeValue{
					"user_id": &types.AttributeValueMemberS{Value: delivery.LivreurId},
				},
				UpdateExpression: aws.String("SET availability_status = :available, updated_at = :now"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":available": &types.AttributeValueMemberS{Value: string(models.CourierAvailable)},
					":now":       nowAV,
				},
			},
		})
	}

	for _, p := range parcels {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(s.Tables.Parcels),
				Key: map[string]types.AttributeValue{
					"tracking_number": &types.AttributeValueMemberS{Value: p.TrackingNumber},
				},
				UpdateExpression: aws.String("SET #status = :delivered, location_type = :loc, location_history = list_append(if_not_exists(location_history, :empty), :entry), updated_at = :now"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":delivered": &types.AttributeValueMemberS{Value: string(models.ParcelDelivered)},
					":loc":       &types.AttributeValueMemberS{Value: string(models.LocationDelivered)},
					":entry":     historyAV,
					":empty":     &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
					":now":       nowAV,
				},
			},
		})
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if transactConditionFailedAt(err, 0) {
			return nil, storage.ErrDeliveryNotInProgress
		}
		return nil, fmt.Errorf("failed to complete delivery %s: %w", deliveryID, err)
	}

	delivery.Status = models.DeliveryCompleted
	delivery.UpdatedAt = now
	return delivery, nil
}
