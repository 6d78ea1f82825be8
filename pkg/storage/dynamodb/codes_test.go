package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsdynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage/dynamodb/mocks"
)

func TestPutValidationCode(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := New(mockClient, testTables)

	mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).
		Return(&dynamodb.PutItemOutput{}, nil).Once()

	err := store.PutValidationCode(context.Background(), &models.ValidationCode{
		UserInfo:  "TRK1",
		Code:      "482913",
		CreatedAt: time.Now(),
		TTL:       time.Now().Add(24 * time.Hour).Unix(),
	})

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestConsumeValidationCode(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockClient.On("DeleteItem", mock.Anything, mock.AnythingOfType("*dynamodb.DeleteItemInput")).
			Return(&dynamodb.DeleteItemOutput{}, nil).Once()

		err := store.ConsumeValidationCode(context.Background(), "TRK1", "482913")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Wrong Code", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockClient.On("DeleteItem", mock.Anything, mock.Anything).
			Return(nil, &awsdynamodbtypes.ConditionalCheckFailedException{}).Once()

		err := store.ConsumeValidationCode(context.Background(), "TRK1", "000000")

		assert.ErrorIs(t, err, storage.ErrInvalidValidationCode)
		mockClient.AssertExpectations(t)
	})

	t.Run("Delete Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockClient.On("DeleteItem", mock.Anything, mock.Anything).
			Return(nil, errors.New("throttled")).Once()

		err := store.ConsumeValidationCode(context.Background(), "TRK1", "482913")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to consume validation code")
		mockClient.AssertExpectations(t)
	})
}
