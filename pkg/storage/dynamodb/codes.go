package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// PutValidationCode stores a code for a key. The put replaces the whole item,
// so a previously issued code for the same key stops being valid the moment a
// new one is generated.
func (s *Store) PutValidationCode(ctx context.Context, code *models.ValidationCode) error {
	codeAV, err := attributevalue.MarshalMap(code)
	if err != nil {
		return fmt.Errorf("failed to marshal validation code: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.ValidationCodes),
		Item:      codeAV,
	})
	if err != nil {
		return fmt.Errorf("failed to store validation code: %w", err)
	}
	return nil
}

// ConsumeValidationCode checks and deletes the code for a key as a single
// conditional delete. Two concurrent requests with the same valid code cannot
// both succeed: the second delete finds nothing matching and fails the
// condition. Failure mutates nothing.
func (s *Store) ConsumeValidationCode(ctx context.Context, userInfo, code string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.Tables.ValidationCodes),
		Key: map[string]types.AttributeValue{
			"user_info": &types.AttributeValueMemberS{Value: userInfo},
		},
		ConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrInvalidValidationCode
		}
		return fmt.Errorf("failed to consume validation code: %w", err)
	}
	return nil
}
