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

// AcceptDelivery assigns a courier to a scheduled delivery. One transaction
// moves the delivery to in_progress, flips the courier busy and moves every
// linked parcel to in_transit with a location-history append, so a second
// courier racing for the same delivery fails cleanly with ErrAlreadyAssigned.
func (s *Store) AcceptDelivery(ctx context.Context, deliveryID, courierID string) (*models.Delivery, error) {
	delivery, err := s.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery.LivreurId != "" || delivery.Status != models.DeliveryScheduled {
		return nil, storage.ErrAlreadyAssigned
	}

	courier, err := s.GetCourier(ctx, courierID)
	if err != nil {
		return nil, err
	}
	if courier.AvailabilityStatus != models.CourierAvailable {
		return nil, storage.ErrCourierUnavailable
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
		LocationType: models.LocationInTransit,
		MovedAt:      now,
	}}
	historyAV, err := attributevalue.Marshal(historyEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal location entry: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: assign the courier, delivery scheduled -> in_progress.
			Update: &types.Update{
				TableName: aws.String(s.Tables.Deliveries),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: deliveryID},
				},
				UpdateExpression:    aws.String("SET #status = :in_progress, livreur_id = :courier, updated_at = :now"),
				ConditionExpression: aws.String("#status = :scheduled AND attribute_not_exists(livreur_id)"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":in_progress": &types.AttributeValueMemberS{Value: string(models.DeliveryInProgress)},
					":scheduled":   &types.AttributeValueMemberS{Value: string(models.DeliveryScheduled)},
					":courier":     &types.AttributeValueMemberS{Value: courierID},
					":now":         nowAV,
				},
			},
		},
		{
			// Operation 2: flip the courier busy, only if still available.
			Update: &types.Update{
				TableName: aws.String(s.Tables.Couriers),
				Key: map[string]types.AttributeValue{
					"user_id": &types.AttributeValueMemberS{Value: courierID},
				},
				UpdateExpression:    aws.String("SET availability_status = :busy, updated_at = :now"),
				ConditionExpression: aws.String("availability_status = :available"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":busy":      &types.AttributeValueMemberS{Value: string(models.CourierBusy)},
					":available": &types.AttributeValueMemberS{Value: string(models.CourierAvailable)},
					":now":       nowAV,
				},
			},
		},
	}

	for _, p := range parcels {
		items = append(items, types.TransactWriteItem{
			// Move each linked parcel to in_transit and log the move. The
			// parcel list was read before the transact, so each item is
			// guarded against having moved on in the meantime.
			Update: &types.Update{
				TableName: aws.String(s.Tables.Parcels),
				Key: map[string]types.AttributeValue{
					"tracking_number": &types.AttributeValueMemberS{Value: p.TrackingNumber},
				},
				UpdateExpression:    aws.String("SET #status = :in_transit, location_type = :loc, location_history = list_append(if_not_exists(location_history, :empty), :entry), updated_at = :now"),
				ConditionExpression: aws.String("#status = :stored"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":in_transit": &types.AttributeValueMemberS{Value: string(models.ParcelInTransit)},
					":stored":     &types.AttributeValueMemberS{Value: string(models.ParcelStored)},
					":loc":        &types.AttributeValueMemberS{Value: string(models.LocationInTransit)},
					":entry":      historyAV,
					":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
					":now":        nowAV,
				},
			},
		})
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if transactConditionFailedAt(err, 0) {
			return nil, storage.ErrAlreadyAssigned
		}
		if transactConditionFailedAt(err, 1) {
			return nil, storage.ErrCourierUnavailable
		}
		for i := 2; i < len(items); i++ {
			if transactConditionFailedAt(err, i) {
				return nil, storage.ErrParcelStateConflict
			}
		}
		return nil, fmt.Errorf("failed to accept delivery %s: %w", deliveryID, err)
	}

	delivery.LivreurId = courierID
	delivery.Status = models.DeliveryInProgress
	delivery.UpdatedAt = now
	return delivery, nil
}
