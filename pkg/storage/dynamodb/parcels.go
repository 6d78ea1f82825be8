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

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

const deliveryIDIndex = "delivery_id-index"

// CreateParcel persists a new parcel. The tracking number is the key, so a
// duplicate is rejected outright.
func (s *Store) CreateParcel(ctx context.Context, p *models.Parcel) (*models.Parcel, error) {
	now := time.Now()
	if p.Status == "" {
		p.Status = models.ParcelStored
	}
	if p.LocationType == "" {
		p.LocationType = models.LocationWarehouse
	}
	if len(p.LocationHistory) == 0 {
		p.LocationHistory = []models.LocationEntry{{
			LocationType: p.LocationType,
			MovedAt:      now,
		}}
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	parcelAV, err := attributevalue.MarshalMap(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parcel: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Parcels),
		Item:                parcelAV,
		ConditionExpression: aws.String("attribute_not_exists(tracking_number)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("parcel %s already exists", p.TrackingNumber)
		}
		return nil, fmt.Errorf("failed to create parcel: %w", err)
	}
	return p, nil
}

// GetParcel retrieves a parcel by its tracking number.
func (s *Store) GetParcel(ctx context.Context, trackingNumber string) (*models.Parcel, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"tracking_number": trackingNumber})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tracking number: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Parcels),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get parcel from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("parcel %s not found", trackingNumber)
	}

	var p models.Parcel
	if err := attributevalue.UnmarshalMap(result.Item, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parcel: %w", err)
	}
	return &p, nil
}

// ListParcelsByDelivery retrieves all parcels linked to a delivery.
func (s *Store) ListParcelsByDelivery(ctx context.Context, deliveryID string) ([]models.Parcel, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Parcels),
		IndexName:              aws.String(deliveryIDIndex),
		KeyConditionExpression: aws.String("delivery_id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: deliveryID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query parcels by delivery: %w", err)
	}

	var parcels []models.Parcel
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &parcels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parcels: %w", err)
	}
	return parcels, nil
}

// MarkParcelLost moves a parcel to lost and appends to its location history.
func (s *Store) MarkParcelLost(ctx context.Context, trackingNumber string) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	historyAV, err := attributevalue.Marshal([]models.LocationEntry{{
		LocationType: models.LocationInTransit,
		MovedAt:      now,
	}})
	if err != nil {
		return fmt.Errorf("failed to marshal location entry: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Parcels),
		Key: map[string]types.AttributeValue{
			"tracking_number": &types.AttributeValueMemberS{Value: trackingNumber},
		},
		UpdateExpression:    aws.String("SET #status = :lost, location_history = list_append(if_not_exists(location_history, :empty), :entry), updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(tracking_number) AND #status <> :delivered"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lost":      &types.AttributeValueMemberS{Value: string(models.ParcelLost)},
			":delivered": &types.AttributeValueMemberS{Value: string(models.ParcelDelivered)},
			":entry":     historyAV,
			":empty":     &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":now":       nowAV,
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("parcel %s cannot be marked lost", trackingNumber)
		}
		return fmt.Errorf("failed to mark parcel %s lost: %w", trackingNumber, err)
	}
	return nil
}
