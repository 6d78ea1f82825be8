package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage/dynamodb/mocks"
)

func mockDeliveryGet(mockClient *mocks.DynamoDBAPI, d *models.Delivery) {
	deliveryAV, _ := attributevalue.MarshalMap(d)
	mockClient.On("GetItem", mock.Anything, mock.AnythingOfType("*dynamodb.GetItemInput")).
		Return(&dynamodb.GetItemOutput{Item: deliveryAV}, nil).Once()
}

func mockCourierGet(mockClient *mocks.DynamoDBAPI, c *models.Courier) {
	courierAV, _ := attributevalue.MarshalMap(c)
	mockClient.On("GetItem", mock.Anything, mock.AnythingOfType("*dynamodb.GetItemInput")).
		Return(&dynamodb.GetItemOutput{Item: courierAV}, nil).Once()
}

func mockParcelsQuery(mockClient *mocks.DynamoDBAPI, parcels []models.Parcel) {
	var parcelAVs []map[string]types.AttributeValue
	for _, p := range parcels {
		av, _ := attributevalue.MarshalMap(p)
		parcelAVs = append(parcelAVs, av)
	}
	mockClient.On("Query", mock.Anything, mock.AnythingOfType("*dynamodb.QueryInput")).
		Return(&dynamodb.QueryOutput{Items: parcelAVs}, nil).Once()
}

func TestAcceptDelivery(t *testing.T) {
	t.Run("Assigns Courier And Moves Parcels", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockDeliveryGet(mockClient, &models.Delivery{Id: "d1", Status: models.DeliveryScheduled})
		mockCourierGet(mockClient, &models.Courier{UserId: "courier1", AvailabilityStatus: models.CourierAvailable})
		mockParcelsQuery(mockClient, []models.Parcel{{TrackingNumber: "TRK1", DeliveryId: "d1"}})

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// Delivery update, courier update and one parcel update. The
			// parcel item must be conditioned on still being stored.
			if len(input.TransactItems) != 3 {
				return false
			}
			parcel := input.TransactItems[2].Update
			return parcel != nil && *parcel.ConditionExpression == "#status = :stored"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		updated, err := store.AcceptDelivery(context.Background(), "d1", "courier1")

		assert.NoError(t, err)
		assert.Equal(t, models.DeliveryInProgress, updated.Status)
		assert.Equal(t, "courier1", updated.LivreurId)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Assigned", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockDeliveryGet(mockClient, &models.Delivery{Id: "d1", Status: models.DeliveryScheduled, LivreurId: "other"})

		_, err := store.AcceptDelivery(context.Background(), "d1", "courier1")

		assert.ErrorIs(t, err, storage.ErrAlreadyAssigned)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})

	t.Run("Courier Unavailable", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockDeliveryGet(mockClient, &models.Delivery{Id: "d1", Status: models.DeliveryScheduled})
		mockCourierGet(mockClient, &models.Courier{UserId: "courier1", AvailabilityStatus: models.CourierBusy})

		_, err := store.AcceptDelivery(context.Background(), "d1", "courier1")

		assert.ErrorIs(t, err, storage.ErrCourierUnavailable)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Assignment Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockDeliveryGet(mockClient, &models.Delivery{Id: "d1", Status: models.DeliveryScheduled})
		mockCourierGet(mockClient, &models.Courier{UserId: "courier1", AvailabilityStatus: models.CourierAvailable})
		mockParcelsQuery(mockClient, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, canceledAt(2, 0)).Once()

		_, err := store.AcceptDelivery(context.Background(), "d1", "courier1")

		assert.ErrorIs(t, err, storage.ErrAlreadyAssigned)
		mockClient.AssertExpectations(t)
	})

	t.Run("Parcel Moved On Concurrently", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockDeliveryGet(mockClient, &models.Delivery{Id: "d1", Status: models.DeliveryScheduled})
		mockCourierGet(mockClient, &models.Courier{UserId: "courier1", AvailabilityStatus: models.CourierAvailable})
		mockParcelsQuery(mockClient, []models.Parcel{{TrackingNumber: "TRK1", DeliveryId: "d1"}})
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, canceledAt(3, 2)).Once()

		_, err := store.AcceptDelivery(context.Background(), "d1", "courier1")

		assert.ErrorIs(t, err, storage.ErrParcelStateConflict)
		mockClient.AssertExpectations(t)
	})
}

func TestCompleteDelivery(t *testing.T) {
	t.Run("Completes And Frees Courier", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockDeliveryGet(mockClient, &models.Delivery{
			Id: "d1", Status: models.DeliveryInProgress, PaymentStatus: models.PaymentPending, LivreurId: "courier1",
		})
		mockParcelsQuery(mockClient, []models.Parcel{{TrackingNumber: "TRK1"}, {TrackingNumber: "TRK2"}})
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// Delivery, courier and two parcels.
			return len(input.TransactItems) == 4
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		updated, err := store.CompleteDelivery(context.Background(), "d1")

		assert.NoError(t, err)
		assert.Equal(t, models.DeliveryCompleted, updated.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not In Progress", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockDeliveryGet(mockClient, &models.Delivery{Id: "d1", Status: models.DeliveryScheduled})

		_, err := store.CompleteDelivery(context.Background(), "d1")

		assert.ErrorIs(t, err, storage.ErrDeliveryNotInProgress)
		mockClient.AssertExpectations(t)
	})

	t.Run("Unpaid Delivery Cannot Complete", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables)

		mockDeliveryGet(mockClient, &models.Delivery{
			Id: "d1", Status: models.DeliveryInProgress, PaymentStatus: models.PaymentUnpaid,
		})

		_, err := store.CompleteDelivery(context.Background(), "d1")

		assert.ErrorIs(t, err, storage.ErrDeliveryUnpaid)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})
}
