package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsdynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage/dynamodb/mocks"
)

func TestGetOrCreateWallet(t *testing.T) {
	t.Run("Returns Existing Wallet", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		existing := &models.Wallet{Id: "w1", UserId: "user1", Available: 1200, IsActive: true, Version: 3}
		mockWalletGet(mockClient, existing)

		wallet, err := store.GetOrCreateWallet(context.Background(), "user1")

		assert.NoError(t, err)
		assert.Equal(t, "w1", wallet.Id)
		assert.Equal(t, int64(1200), wallet.Available)
		mockClient.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})

	t.Run("Creates On First Use", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockClient.On("GetItem", mock.Anything, mock.AnythingOfType("*dynamodb.GetItemInput")).
			Return(&dynamodb.GetItemOutput{Item: nil}, nil).Once()
		mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).
			Return(&dynamodb.PutItemOutput{}, nil).Once()

		wallet, err := store.GetOrCreateWallet(context.Background(), "user1")

		assert.NoError(t, err)
		assert.Equal(t, "user1", wallet.UserId)
		assert.Equal(t, int64(0), wallet.Available)
		assert.Equal(t, int64(0), wallet.Held)
		assert.True(t, wallet.IsActive)
		assert.Equal(t, int64(1), wallet.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Create Race Re-Reads Winner", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		winner := &models.Wallet{Id: "w-winner", UserId: "user1", IsActive: true, Version: 1}
		winnerAV, _ := attributevalue.MarshalMap(winner)

		mockClient.On("GetItem", mock.Anything, mock.AnythingOfType("*dynamodb.GetItemInput")).
			Return(&dynamodb.GetItemOutput{Item: nil}, nil).Once()
		mockClient.On("PutItem", mock.Anything, mock.Anything).
			Return(nil, &awsdynamodbtypes.ConditionalCheckFailedException{}).Once()
		mockClient.On("GetItem", mock.Anything, mock.AnythingOfType("*dynamodb.GetItemInput")).
			Return(&dynamodb.GetItemOutput{Item: winnerAV}, nil).Once()

		wallet, err := store.GetOrCreateWallet(context.Background(), "user1")

		assert.NoError(t, err)
		assert.Equal(t, "w-winner", wallet.Id)
		mockClient.AssertExpectations(t)
	})
}

func TestUpdateWalletSettings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		existing := &models.Wallet{Id: "w1", UserId: "user1", IsActive: true, Version: 2}
		mockWalletGet(mockClient, existing)
		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).
			Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		updated, err := store.UpdateWalletSettings(context.Background(), "user1", storage.WalletSettings{
			Iban:                "FR7630006000011234567890189",
			Bic:                 "AGRIFRPP",
			AutoPayoutEnabled:   true,
			AutoPayoutThreshold: 10000,
		})

		assert.NoError(t, err)
		assert.True(t, updated.AutoPayoutEnabled)
		assert.Equal(t, int64(10000), updated.AutoPayoutThreshold)
		assert.Equal(t, int64(3), updated.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Version Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		existing := &models.Wallet{Id: "w1", UserId: "user1", IsActive: true, Version: 2}
		mockWalletGet(mockClient, existing)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(nil, &awsdynamodbtypes.ConditionalCheckFailedException{}).Once()

		_, err := store.UpdateWalletSettings(context.Background(), "user1", storage.WalletSettings{})

		assert.ErrorIs(t, err, storage.ErrVersionConflict)
		mockClient.AssertExpectations(t)
	})
}

func TestDeactivateWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).
			Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		err := store.DeactivateWallet(context.Background(), "user1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Unknown Wallet", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(nil, &awsdynamodbtypes.ConditionalCheckFailedException{}).Once()

		err := store.DeactivateWallet(context.Background(), "ghost")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
		mockClient.AssertExpectations(t)
	})
}
