package dynamodb

import (
	"context"
	"errors"
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

var testTables = Tables{
	Wallets:            "wallets",
	WalletTransactions: "wallet_transactions",
	Deliveries:         "deliveries",
	Segments:           "delivery_segments",
	Parcels:            "parcels",
	ValidationCodes:    "validation_codes",
	Couriers:           "couriers",
	Connections:        "ws_connections",
}

// mockWalletGet arranges a GetItem returning the given wallet.
func mockWalletGet(mockClient *mocks.DynamoDBAPI, wallet *models.Wallet) {
	walletAV, _ := attributevalue.MarshalMap(wallet)
	mockClient.On("GetItem", mock.Anything, mock.AnythingOfType("*dynamodb.GetItemInput")).
		Return(&dynamodb.GetItemOutput{Item: walletAV}, nil).Once()
}

// canceledAt builds a TransactionCanceledException with a conditional check
// failure at the given operation index.
func canceledAt(total int, failed ...int) error {
	reasons := make([]awsdynamodbtypes.CancellationReason, total)
	for i := range reasons {
		code := "None"
		for _, f := range failed {
			if i == f {
				code = "ConditionalCheckFailed"
			}
		}
		c := code
		reasons[i] = awsdynamodbtypes.CancellationReason{Code: &c}
	}
	return &awsdynamodbtypes.TransactionCanceledException{CancellationReasons: reasons}
}

func TestCredit(t *testing.T) {
	wallet := &models.Wallet{Id: "w1", UserId: "user1", Available: 500, IsActive: true, Version: 3}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockWalletGet(mockClient, wallet)
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		updated, err := store.Credit(context.Background(), "user1", 250, "top-up", "")

		assert.NoError(t, err)
		assert.Equal(t, int64(750), updated.Available)
		assert.Equal(t, int64(4), updated.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Rejects Non-Positive Amount", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		_, err := store.Credit(context.Background(), "user1", 0, "top-up", "")
		assert.ErrorIs(t, err, storage.ErrInvalidAmount)

		_, err = store.Credit(context.Background(), "user1", -10, "top-up", "")
		assert.ErrorIs(t, err, storage.ErrInvalidAmount)
		mockClient.AssertExpectations(t)
	})

	t.Run("Version Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockWalletGet(mockClient, wallet)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, canceledAt(2, 0)).Once()

		_, err := store.Credit(context.Background(), "user1", 100, "top-up", "")

		assert.ErrorIs(t, err, storage.ErrVersionConflict)
		mockClient.AssertExpectations(t)
	})
}

func TestDebit(t *testing.T) {
	t.Run("Boundary Withdraw Succeeds", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		wallet := &models.Wallet{Id: "w1", UserId: "user1", Available: 300, IsActive: true, Version: 1}
		mockWalletGet(mockClient, wallet)
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		updated, err := store.Debit(context.Background(), "user1", 300, "withdrawal", "")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), updated.Available)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Balance Writes Nothing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		wallet := &models.Wallet{Id: "w1", UserId: "user1", Available: 300, IsActive: true, Version: 1}
		mockWalletGet(mockClient, wallet)

		_, err := store.Debit(context.Background(), "user1", 301, "withdrawal", "")

		assert.ErrorIs(t, err, storage.ErrInsufficientAvailableBalance)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Race Surfaces As Version Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		// Two readers both saw 300 available; the second transact fails its
		// version condition rather than double-debiting.
		wallet := &models.Wallet{Id: "w1", UserId: "user1", Available: 300, IsActive: true, Version: 1}
		mockWalletGet(mockClient, wallet)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, canceledAt(2, 0)).Once()

		_, err := store.Debit(context.Background(), "user1", 300, "withdrawal", "")

		assert.ErrorIs(t, err, storage.ErrVersionConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		wallet := &models.Wallet{Id: "w1", UserId: "user1", Available: 300, IsActive: true, Version: 1}
		mockWalletGet(mockClient, wallet)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, errors.New("transaction failed")).Once()

		_, err := store.Debit(context.Background(), "user1", 100, "withdrawal", "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute wallet mutation")
		mockClient.AssertExpectations(t)
	})
}
