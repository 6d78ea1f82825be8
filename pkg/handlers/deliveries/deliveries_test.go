package deliveries

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/api"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/codes"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/delivery"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payments"
	paymentmocks "github.com/Wany917/leo-backend-pa-sub000/pkg/payments/mocks"
	schedulermocks "github.com/Wany917/leo-backend-pa-sub000/pkg/scheduler/mocks"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/settlement"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
	storagemocks "github.com/Wany917/leo-backend-pa-sub000/pkg/storage/mocks"
)

type handlerMocks struct {
	store     *storagemocks.Storage
	gateway   *paymentmocks.Gateway
	scheduler *schedulermocks.Scheduler
}

func newTestHandler() (*DeliveriesHandler, handlerMocks) {
	m := handlerMocks{
		store:     new(storagemocks.Storage),
		gateway:   new(paymentmocks.Gateway),
		scheduler: new(schedulermocks.Scheduler),
	}
	svc := delivery.NewService(m.store, codes.NewIssuer(m.store), m.scheduler, nil)
	funder := &settlement.Funder{Gateway: m.gateway, Wallets: m.store, Deliveries: m.store, Currency: "eur"}
	return NewDeliveriesHandler(m.store, svc, funder), m
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(v)
	assert.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCreateDelivery(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, m := newTestHandler()

		m.store.On("CreateDelivery", mock.Anything, mock.AnythingOfType("*models.Delivery")).
			Return(&models.Delivery{Id: "d1", ClientId: "client1", Price: 3200, Amount: 3200,
				Status: models.DeliveryScheduled, PaymentStatus: models.PaymentUnpaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/deliveries", jsonBody(t, api.NewDelivery{
			ClientId: "client1", Price: 3200, Amount: 3200,
			PickupLocation: "Paris", DropoffLocation: "Lyon",
		}))
		rr := httptest.NewRecorder()
		h.CreateDelivery(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var d api.Delivery
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&d))
		assert.Equal(t, api.DeliveryStatusScheduled, d.Status)
		assert.Equal(t, api.PaymentStatusUnpaid, d.PaymentStatus)
		m.store.AssertExpectations(t)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		h, m := newTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/deliveries", jsonBody(t, api.NewDelivery{Price: 3200}))
		rr := httptest.NewRecorder()
		h.CreateDelivery(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		m.store.AssertNotCalled(t, "CreateDelivery", mock.Anything, mock.Anything)
	})
}

func TestFundDelivery(t *testing.T) {
	t.Run("Returns Client Secret", func(t *testing.T) {
		h, m := newTestHandler()

		m.store.On("GetDelivery", mock.Anything, "d1").
			Return(&models.Delivery{Id: "d1", ClientId: "client1", Amount: 3200, PaymentStatus: models.PaymentUnpaid}, nil)
		m.gateway.On("CreateHeldPayment", mock.Anything, "client1", int64(3200), "eur", mock.Anything, mock.Anything).
			Return(&payments.HeldPayment{ExternalId: "pi_1", ClientSecret: "pi_1_secret", Amount: 3200, Status: payments.StatePending}, nil)
		m.store.On("MarkPaymentPending", mock.Anything, "d1", "pi_1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/deliveries/d1/fund", jsonBody(t, api.FundDeliveryRequest{}))
		rr := httptest.NewRecorder()
		h.FundDelivery(rr, req, "d1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.FundDeliveryResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "pi_1", resp.PaymentIntentId)
		assert.Equal(t, "pi_1_secret", resp.ClientSecret)
		assert.Equal(t, api.PaymentStatusPending, resp.Delivery.PaymentStatus)
		m.store.AssertExpectations(t)
		m.gateway.AssertExpectations(t)
	})

	t.Run("Already Funded", func(t *testing.T) {
		h, m := newTestHandler()

		m.store.On("GetDelivery", mock.Anything, "d1").
			Return(&models.Delivery{Id: "d1", ClientId: "client1", Amount: 3200, PaymentStatus: models.PaymentPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/deliveries/d1/fund", jsonBody(t, api.FundDeliveryRequest{}))
		rr := httptest.NewRecorder()
		h.FundDelivery(rr, req, "d1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "already_funded", outcome.Error)
		m.store.AssertExpectations(t)
	})

	t.Run("Insufficient Wallet Share", func(t *testing.T) {
		h, m := newTestHandler()

		walletAmount := int64(1200)
		m.store.On("GetDelivery", mock.Anything, "d1").
			Return(&models.Delivery{Id: "d1", ClientId: "client1", Amount: 3200, PaymentStatus: models.PaymentUnpaid}, nil)
		m.store.On("Debit", mock.Anything, "client1", int64(1200), mock.Anything, "d1").
			Return(nil, storage.ErrInsufficientAvailableBalance)
		m.store.On("GetOrCreateWallet", mock.Anything, "client1").
			Return(&models.Wallet{Id: "w1", UserId: "client1", Available: 700, Held: 0, IsActive: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/deliveries/d1/fund", jsonBody(t, api.FundDeliveryRequest{WalletAmount: &walletAmount}))
		rr := httptest.NewRecorder()
		h.FundDelivery(rr, req, "d1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "insufficient_available_balance", outcome.Error)
		assert.Equal(t, int64(700), *outcome.Available)
		assert.Equal(t, int64(1200), *outcome.Requested)
		m.store.AssertExpectations(t)
	})

	t.Run("Oversized Wallet Share", func(t *testing.T) {
		h, m := newTestHandler()

		walletAmount := int64(4000)
		m.store.On("GetDelivery", mock.Anything, "d1").
			Return(&models.Delivery{Id: "d1", ClientId: "client1", Amount: 3200, PaymentStatus: models.PaymentUnpaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/deliveries/d1/fund", jsonBody(t, api.FundDeliveryRequest{WalletAmount: &walletAmount}))
		rr := httptest.NewRecorder()
		h.FundDelivery(rr, req, "d1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "invalid_wallet_share", outcome.Error)
		m.store.AssertExpectations(t)
	})
}

func TestPayFromWallet(t *testing.T) {
	t.Run("Pays The Whole Price From The Wallet", func(t *testing.T) {
		h, m := newTestHandler()

		ref := settlement.WalletReference("d1")
		m.store.On("GetDelivery", mock.Anything, "d1").
			Return(&models.Delivery{Id: "d1", ClientId: "client1", Amount: 3200, PaymentStatus: models.PaymentUnpaid}, nil)
		m.store.On("Debit", mock.Anything, "client1", int64(3200), mock.Anything, ref).
			Return(&models.Wallet{Id: "w1", UserId: "client1", Available: 0, IsActive: true}, nil)
		m.store.On("MarkPaymentPending", mock.Anything, "d1", ref).Return(nil)
		m.store.On("MarkPaymentPaid", mock.Anything, "d1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/deliveries/d1/pay-from-wallet", jsonBody(t, api.FundDeliveryRequest{}))
		rr := httptest.NewRecorder()
		h.PayFromWallet(rr, req, "d1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.FundDeliveryResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Empty(t, resp.ClientSecret)
		assert.Equal(t, ref, resp.PaymentIntentId)
		assert.Equal(t, int64(3200), resp.WalletAmount)
		assert.Equal(t, api.PaymentStatusPaid, resp.Delivery.PaymentStatus)
		m.gateway.AssertNotCalled(t, "CreateHeldPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.store.AssertExpectations(t)
	})

	t.Run("Empty Wallet Is A Conflict", func(t *testing.T) {
		h, m := newTestHandler()

		ref := settlement.WalletReference("d1")
		m.store.On("GetDelivery", mock.Anything, "d1").
			Return(&models.Delivery{Id: "d1", ClientId: "client1", Amount: 3200, PaymentStatus: models.PaymentUnpaid}, nil)
		m.store.On("Debit", mock.Anything, "client1", int64(3200), mock.Anything, ref).
			Return(nil, storage.ErrInsufficientAvailableBalance)
		m.store.On("GetOrCreateWallet", mock.Anything, "client1").
			Return(&models.Wallet{Id: "w1", UserId: "client1", Available: 100, IsActive: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/deliveries/d1/pay-from-wallet", jsonBody(t, api.FundDeliveryRequest{}))
		rr := httptest.NewRecorder()
		h.PayFromWallet(rr, req, "d1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "insufficient_available_balance", outcome.Error)
		assert.Equal(t, int64(100), *outcome.Available)
		m.store.AssertExpectations(t)
	})
}

func TestAcceptDelivery(t *testing.T) {
	t.Run("Conflict On Double Assignment", func(t *testing.T) {
		h, m := newTestHandler()

		m.store.On("AcceptDelivery", mock.Anything, "d1", "courier1").
			Return(nil, storage.ErrAlreadyAssigned)

		req := httptest.NewRequest(http.MethodPost, "/deliveries/d1/accept", jsonBody(t, api.AcceptDeliveryRequest{CourierId: "courier1"}))
		rr := httptest.NewRecorder()
		h.AcceptDelivery(rr, req, "d1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "already_assigned", outcome.Error)
		m.store.AssertExpectations(t)
	})

	t.Run("Success", func(t *testing.T) {
		h, m := newTestHandler()

		m.store.On("AcceptDelivery", mock.Anything, "d1", "courier1").
			Return(&models.Delivery{Id: "d1", ClientId: "client1", LivreurId: "courier1", Status: models.DeliveryInProgress}, nil)

		req := httptest.NewRequest(http.MethodPost, "/deliveries/d1/accept", jsonBody(t, api.AcceptDeliveryRequest{CourierId: "courier1"}))
		rr := httptest.NewRecorder()
		h.AcceptDelivery(rr, req, "d1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var d api.Delivery
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&d))
		assert.Equal(t, api.DeliveryStatusInProgress, d.Status)
		m.store.AssertExpectations(t)
	})
}

func TestCompleteDelivery(t *testing.T) {
	t.Run("Wrong Code Is Forbidden", func(t *testing.T) {
		h, m := newTestHandler()

		m.store.On("GetParcel", mock.Anything, "TRK1").
			Return(&models.Parcel{TrackingNumber: "TRK1", DeliveryId: "d1"}, nil)
		m.store.On("ConsumeValidationCode", mock.Anything, "TRK1", "000000").
			Return(storage.ErrInvalidValidationCode)

		req := httptest.NewRequest(http.MethodPost, "/deliveries/complete", jsonBody(t, api.CompleteDeliveryRequest{
			TrackingNumber: "TRK1", Code: "000000",
		}))
		rr := httptest.NewRecorder()
		h.CompleteDelivery(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "invalid_validation_code", outcome.Error)
		m.store.AssertNotCalled(t, "CompleteDelivery", mock.Anything, mock.Anything)
		m.store.AssertExpectations(t)
	})

	t.Run("Unpaid Delivery Is A Conflict", func(t *testing.T) {
		h, m := newTestHandler()

		m.store.On("GetParcel", mock.Anything, "TRK1").
			Return(&models.Parcel{TrackingNumber: "TRK1", DeliveryId: "d1"}, nil)
		m.store.On("ConsumeValidationCode", mock.Anything, "TRK1", "482913").Return(nil)
		m.store.On("CompleteDelivery", mock.Anything, "d1").
			Return(nil, storage.ErrDeliveryUnpaid)

		req := httptest.NewRequest(http.MethodPost, "/deliveries/complete", jsonBody(t, api.CompleteDeliveryRequest{
			TrackingNumber: "TRK1", Code: "482913",
		}))
		rr := httptest.NewRecorder()
		h.CompleteDelivery(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "delivery_unpaid", outcome.Error)
		m.store.AssertExpectations(t)
	})
}

func TestProposeSegments(t *testing.T) {
	t.Run("Price Mismatch Is Unprocessable", func(t *testing.T) {
		h, m := newTestHandler()

		m.store.On("GetDelivery", mock.Anything, "d1").
			Return(&models.Delivery{Id: "d1", Price: 3200}, nil)

		req := httptest.NewRequest(http.MethodPost, "/deliveries/d1/segments", jsonBody(t, []api.NewSegment{
			{PickupLocation: "Paris", DropoffLocation: "Lyon", Price: 1000},
			{PickupLocation: "Lyon", DropoffLocation: "Marseille", Price: 1000},
		}))
		rr := httptest.NewRecorder()
		h.ProposeSegments(rr, req, "d1")

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "segment_price_mismatch", outcome.Error)
		m.store.AssertNotCalled(t, "PutSegments", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty Proposal Is Bad Request", func(t *testing.T) {
		h, _ := newTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/deliveries/d1/segments", jsonBody(t, []api.NewSegment{}))
		rr := httptest.NewRecorder()
		h.ProposeSegments(rr, req, "d1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestIssueCode(t *testing.T) {
	h, m := newTestHandler()

	m.store.On("GetParcel", mock.Anything, "TRK1").
		Return(&models.Parcel{TrackingNumber: "TRK1", DeliveryId: "d1"}, nil)
	m.store.On("PutValidationCode", mock.Anything, mock.AnythingOfType("*models.ValidationCode")).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/parcels/TRK1/code", nil)
	rr := httptest.NewRecorder()
	h.IssueCode(rr, req, "TRK1")

	assert.Equal(t, http.StatusCreated, rr.Code)
	var vc api.ValidationCode
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&vc))
	assert.Len(t, vc.Code, 6)
	m.store.AssertExpectations(t)
}

func TestMarkParcelLost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, m := newTestHandler()

		m.store.On("MarkParcelLost", mock.Anything, "TRK1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/parcels/TRK1/lost", nil)
		rr := httptest.NewRecorder()
		h.MarkParcelLost(rr, req, "TRK1")

		assert.Equal(t, http.StatusNoContent, rr.Code)
		m.store.AssertExpectations(t)
	})

	t.Run("Already Delivered", func(t *testing.T) {
		h, m := newTestHandler()

		m.store.On("MarkParcelLost", mock.Anything, "TRK1").
			Return(errors.New("parcel TRK1 cannot be marked lost"))

		req := httptest.NewRequest(http.MethodPost, "/parcels/TRK1/lost", nil)
		rr := httptest.NewRecorder()
		h.MarkParcelLost(rr, req, "TRK1")

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
