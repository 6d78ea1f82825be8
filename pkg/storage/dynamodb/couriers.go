package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

// GetCourier retrieves a courier's availability record.
func (s *Store) GetCourier(ctx context.Context, userID string) (*models.Courier, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal courier user ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Couriers),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get courier from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("courier %s not found", userID)
	}

	var c models.Courier
	if err := attributevalue.UnmarshalMap(result.Item, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal courier: %w", err)
	}
	return &c, nil
}

// PutCourier upserts a courier's availability.
func (s *Store) PutCourier(ctx context.Context, c *models.Courier) error {
	c.UpdatedAt = time.Now()
	courierAV, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("failed to marshal courier: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.Couriers),
		Item:      courierAV,
	})
	if err != nil {
		return fmt.Errorf("failed to store courier: %w", err)
	}
	return nil
}
