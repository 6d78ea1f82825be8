package payouts

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/api"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payments"
	paymentmocks "github.com/Wany917/leo-backend-pa-sub000/pkg/payments/mocks"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payouts"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
	storagemocks "github.com/Wany917/leo-backend-pa-sub000/pkg/storage/mocks"
)

func newTestHandler() (*PayoutsHandler, *paymentmocks.ConnectGateway, *storagemocks.Storage) {
	mockGateway := new(paymentmocks.ConnectGateway)
	mockStore := new(storagemocks.Storage)
	return NewPayoutsHandler(payouts.NewConnector(mockGateway, mockStore, mockStore, nil), mockStore), mockGateway, mockStore
}

func TestCreatePayout(t *testing.T) {
	body := func(t *testing.T, amount int64) *bytes.Buffer {
		t.Helper()
		b, err := json.Marshal(api.PayoutRequest{Amount: amount})
		assert.NoError(t, err)
		return bytes.NewBuffer(b)
	}

	t.Run("Success", func(t *testing.T) {
		h, mockGateway, mockStore := newTestHandler()

		mockStore.On("GetOrCreateWallet", mock.Anything, "user1").
			Return(&models.Wallet{UserId: "user1", Available: 5000, IsActive: true, ConnectedAccountId: "acct_1"}, nil)
		mockGateway.On("CheckAccountReadiness", mock.Anything, "acct_1").
			Return(&payments.Account{Id: "acct_1", PayoutsEnabled: true, DetailsSubmitted: true}, nil)
		mockStore.On("BeginTransfer", mock.Anything, "user1", int64(5000), mock.Anything).
			Return(&models.Wallet{UserId: "user1"}, &models.WalletTransaction{Id: "tx1", Type: models.TxTransfer, Amount: 5000, Status: models.TxPending}, nil)
		mockGateway.On("CreatePayout", mock.Anything, int64(5000), "acct_1", mock.Anything).
			Return("tr_1", nil)
		mockStore.On("CompleteTransfer", mock.Anything, "tx1", "tr_1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/payout", body(t, 5000))
		rr := httptest.NewRecorder()
		h.CreatePayout(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var tx api.WalletTransaction
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&tx))
		assert.Equal(t, api.WalletTransactionTypeTransfer, tx.Type)
		assert.Equal(t, api.WalletTransactionStatusCompleted, tx.Status)
		mockGateway.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("Account Not Ready", func(t *testing.T) {
		h, _, mockStore := newTestHandler()

		mockStore.On("GetOrCreateWallet", mock.Anything, "user1").
			Return(&models.Wallet{UserId: "user1", Available: 5000, IsActive: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/payout", body(t, 5000))
		rr := httptest.NewRecorder()
		h.CreatePayout(rr, req, "user1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "account_not_ready", outcome.Error)
		mockStore.AssertExpectations(t)
	})

	t.Run("Insufficient Balance Reports Current Balances", func(t *testing.T) {
		h, mockGateway, mockStore := newTestHandler()

		mockStore.On("GetOrCreateWallet", mock.Anything, "user1").
			Return(&models.Wallet{UserId: "user1", Available: 2000, Held: 300, IsActive: true, ConnectedAccountId: "acct_1"}, nil)
		mockGateway.On("CheckAccountReadiness", mock.Anything, "acct_1").
			Return(&payments.Account{Id: "acct_1", PayoutsEnabled: true, DetailsSubmitted: true}, nil)
		mockStore.On("BeginTransfer", mock.Anything, "user1", int64(5000), mock.Anything).
			Return(nil, nil, storage.ErrInsufficientAvailableBalance)

		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/payout", body(t, 5000))
		rr := httptest.NewRecorder()
		h.CreatePayout(rr, req, "user1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "insufficient_available_balance", outcome.Error)
		assert.Equal(t, int64(2000), *outcome.Available)
		assert.Equal(t, int64(5000), *outcome.Requested)
		mockGateway.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})
}

func TestCreateOnboardingLink(t *testing.T) {
	h, mockGateway, mockStore := newTestHandler()

	mockStore.On("GetOrCreateWallet", mock.Anything, "user1").
		Return(&models.Wallet{UserId: "user1", IsActive: true, ConnectedAccountId: "acct_1"}, nil)
	mockGateway.On("CreateOnboardingLink", mock.Anything, "acct_1", "http://r", "http://ok").
		Return("https://onboard", nil)

	reqBody, err := json.Marshal(map[string]string{
		"email": "user@example.fr", "country": "FR",
		"refresh_url": "http://r", "return_url": "http://ok",
	})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/wallets/user1/onboarding", bytes.NewBuffer(reqBody))
	rr := httptest.NewRecorder()
	h.CreateOnboardingLink(rr, req, "user1")

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp api.OnboardResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "https://onboard", resp.Url)
	mockGateway.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}
