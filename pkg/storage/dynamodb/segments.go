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
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// RequestPartial flips a scheduled delivery into the partial sub-flow.
func (s *Store) RequestPartial(ctx context.Context, deliveryID string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Deliveries),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: deliveryID},
		},
		UpdateExpression:    aws.String("SET #status = :partial, is_partial = :true, updated_at = :now"),
		ConditionExpression: aws.String("#status = :scheduled"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":partial":   &types.AttributeValueMemberS{Value: string(models.DeliveryPartialRequested)},
			":scheduled": &types.AttributeValueMemberS{Value: string(models.DeliveryScheduled)},
			":true":      &types.AttributeValueMemberBOOL{Value: true},
			":now":       nowAV,
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("delivery %s is not in the scheduled state", deliveryID)
		}
		return fmt.Errorf("failed to request partial delivery %s: %w", deliveryID, err)
	}
	return nil
}

// PutSegments stores the ordered segment set and moves the delivery to
// segments_proposed in one transaction. Callers renumber segments 1..N before
// handing them over.
func (s *Store) PutSegments(ctx context.Context, deliveryID string, segments []models.DeliverySegment) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: delivery partial_requested -> segments_proposed.
			Update: &types.Update{
				TableName: aws.String(s.Tables.Deliveries),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: deliveryID},
				},
				UpdateExpression:    aws.String("SET #status = :proposed, updated_at = :now"),
				ConditionExpression: aws.String("#status = :partial"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":proposed": &types.AttributeValueMemberS{Value: string(models.DeliverySegmentsProposed)},
					":partial":  &types.AttributeValueMemberS{Value: string(models.DeliveryPartialRequested)},
					":now":      nowAV,
				},
			},
		},
	}

	for i := range segments {
		seg := segments[i]
		seg.DeliveryId = deliveryID
		seg.Status = models.SegmentProposed
		seg.CreatedAt = now
		seg.UpdatedAt = now

		segAV, err := attributevalue.MarshalMap(seg)
		if err != nil {
			return fmt.Errorf("failed to marshal segment %d: %w", seg.Seq, err)
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(s.Tables.Segments),
				Item:      segAV,
			},
		})
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if transactConditionFailedAt(err, 0) {
			return fmt.Errorf("delivery %s is not awaiting segments", deliveryID)
		}
		return fmt.Errorf("failed to store segments for delivery %s: %w", deliveryID, err)
	}
	return nil
}

// ListSegments retrieves a delivery's segments in sequence order.
func (s *Store) ListSegments(ctx context.Context, deliveryID string) ([]models.DeliverySegment, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Segments),
		KeyConditionExpression: aws.String("delivery_id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: deliveryID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query segments: %w", err)
	}

	var segments []models.DeliverySegment
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &segments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal segments: %w", err)
	}
	return segments, nil
}

// AssignSegment assigns a courier to one segment. Each segment is assigned
// independently; a segment that already has a courier fails with
// ErrAlreadyAssigned.
func (s *Store) AssignSegment(ctx context.Context, deliveryID string, seq int, courierID string) (*models.DeliverySegment, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Segments),
		Key: map[string]types.AttributeValue{
			"delivery_id": &types.AttributeValueMemberS{Value: deliveryID},
			"seq":         &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", seq)},
		},
		UpdateExpression:    aws.String("SET courier_id = :courier, #status = :assigned, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(delivery_id) AND attribute_not_exists(courier_id)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":courier":  &types.AttributeValueMemberS{Value: courierID},
			":assigned": &types.AttributeValueMemberS{Value: string(models.SegmentAssigned)},
			":now":      nowAV,
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrAlreadyAssigned
		}
		return nil, fmt.Errorf("failed to assign segment %d of delivery %s: %w", seq, deliveryID, err)
	}

	segments, err := s.ListSegments(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	for i := range segments {
		if segments[i].Seq == seq {
			return &segments[i], nil
		}
	}
	return nil, fmt.Errorf("segment %d of delivery %s not found after assignment", seq, deliveryID)
}
