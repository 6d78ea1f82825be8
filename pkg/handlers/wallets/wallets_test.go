package wallets

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
	"github.com/Wany917/leo-backend-pa-sub000/pkg/scheduler"
	schedulermocks "github.com/Wany917/leo-backend-pa-sub000/pkg/scheduler/mocks"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
	storagemocks "github.com/Wany917/leo-backend-pa-sub000/pkg/storage/mocks"
)

func newTestHandler() (*WalletsHandler, *storagemocks.Storage, *schedulermocks.Scheduler) {
	mockStore := new(storagemocks.Storage)
	mockScheduler := new(schedulermocks.Scheduler)
	return NewWalletsHandler(mockStore, mockStore, mockScheduler), mockStore, mockScheduler
}

func opBody(t *testing.T, amount int64) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(api.WalletOperation{Amount: amount})
	assert.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestGetWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockStore, _ := newTestHandler()

		mockStore.On("GetOrCreateWallet", mock.Anything, "user1").
			Return(&models.Wallet{Id: "w1", UserId: "user1", Available: 1500, Held: 500, IsActive: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/wallets/user1", nil)
		rr := httptest.NewRecorder()
		h.GetWallet(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var wallet api.Wallet
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&wallet))
		assert.Equal(t, int64(1500), wallet.AvailableBalance)
		assert.Equal(t, int64(500), wallet.HeldBalance)
		assert.Equal(t, int64(2000), wallet.TotalBalance)
		mockStore.AssertExpectations(t)
	})

	t.Run("Store Error", func(t *testing.T) {
		h, mockStore, _ := newTestHandler()

		mockStore.On("GetOrCreateWallet", mock.Anything, "user1").
			Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/wallets/user1", nil)
		rr := httptest.NewRecorder()
		h.GetWallet(rr, req, "user1")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockStore.AssertExpectations(t)
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, mockStore, _ := newTestHandler()

		mockStore.On("Debit", mock.Anything, "user1", int64(500), "", "").
			Return(&models.Wallet{Id: "w1", UserId: "user1", Available: 1000, IsActive: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/withdraw", opBody(t, 500))
		rr := httptest.NewRecorder()
		h.Withdraw(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStore.AssertExpectations(t)
	})

	t.Run("Insufficient Balance Reports Current Balances", func(t *testing.T) {
		h, mockStore, _ := newTestHandler()

		mockStore.On("Debit", mock.Anything, "user1", int64(500), "", "").
			Return(nil, storage.ErrInsufficientAvailableBalance)
		mockStore.On("GetOrCreateWallet", mock.Anything, "user1").
			Return(&models.Wallet{Id: "w1", UserId: "user1", Available: 300, Held: 100, IsActive: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/withdraw", opBody(t, 500))
		rr := httptest.NewRecorder()
		h.Withdraw(rr, req, "user1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "insufficient_available_balance", outcome.Error)
		assert.Equal(t, int64(300), *outcome.Available)
		assert.Equal(t, int64(100), *outcome.Held)
		assert.Equal(t, int64(500), *outcome.Requested)
		mockStore.AssertExpectations(t)
	})

	t.Run("Invalid Amount", func(t *testing.T) {
		h, mockStore, _ := newTestHandler()

		mockStore.On("Debit", mock.Anything, "user1", int64(-5), "", "").
			Return(nil, storage.ErrInvalidAmount)

		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/withdraw", opBody(t, -5))
		rr := httptest.NewRecorder()
		h.Withdraw(rr, req, "user1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "invalid_amount", outcome.Error)
		mockStore.AssertExpectations(t)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		h, mockStore, _ := newTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/withdraw", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()
		h.Withdraw(rr, req, "user1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStore.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRelease(t *testing.T) {
	t.Run("Release Without Auto-Payout", func(t *testing.T) {
		h, mockStore, mockScheduler := newTestHandler()

		mockStore.On("ReleaseFunds", mock.Anything, "user1", int64(800), "", "").
			Return(&models.Wallet{Id: "w1", UserId: "user1", Available: 900, IsActive: true}, false, nil)

		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/release", opBody(t, 800))
		rr := httptest.NewRecorder()
		h.Release(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockScheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
		mockStore.AssertExpectations(t)
	})

	t.Run("Threshold Crossed Enqueues Payout", func(t *testing.T) {
		h, mockStore, mockScheduler := newTestHandler()

		mockStore.On("ReleaseFunds", mock.Anything, "user1", int64(800), "", "").
			Return(&models.Wallet{Id: "w1", UserId: "user1", Available: 5100, IsActive: true}, true, nil)
		mockScheduler.On("Schedule", mock.Anything, mock.MatchedBy(func(job scheduler.Job) bool {
			return job.Type == scheduler.JobPayout && job.UserId == "user1" && job.Amount == 5100
		})).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/release", opBody(t, 800))
		rr := httptest.NewRecorder()
		h.Release(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStore.AssertExpectations(t)
		mockScheduler.AssertExpectations(t)
	})

	t.Run("Insufficient Held Balance", func(t *testing.T) {
		h, mockStore, mockScheduler := newTestHandler()

		mockStore.On("ReleaseFunds", mock.Anything, "user1", int64(800), "", "").
			Return(nil, false, storage.ErrInsufficientHeldBalance)
		mockStore.On("GetOrCreateWallet", mock.Anything, "user1").
			Return(&models.Wallet{Id: "w1", UserId: "user1", Available: 900, Held: 200, IsActive: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/release", opBody(t, 800))
		rr := httptest.NewRecorder()
		h.Release(rr, req, "user1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "insufficient_held_balance", outcome.Error)
		assert.Equal(t, int64(200), *outcome.Held)
		assert.Equal(t, int64(800), *outcome.Requested)
		mockScheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
		mockStore.AssertExpectations(t)
	})

	t.Run("Enqueue Failure Still Returns The Wallet", func(t *testing.T) {
		h, mockStore, mockScheduler := newTestHandler()

		mockStore.On("ReleaseFunds", mock.Anything, "user1", int64(800), "", "").
			Return(&models.Wallet{Id: "w1", UserId: "user1", Available: 5100, IsActive: true}, true, nil)
		mockScheduler.On("Schedule", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		req := httptest.NewRequest(http.MethodPost, "/wallets/user1/release", opBody(t, 800))
		rr := httptest.NewRecorder()
		h.Release(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockScheduler.AssertExpectations(t)
	})
}

func TestHold(t *testing.T) {
	h, mockStore, _ := newTestHandler()

	mockStore.On("HoldFunds", mock.Anything, "user1", int64(3200), "", "").
		Return(&models.Wallet{Id: "w1", UserId: "user1", Held: 3200, IsActive: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/wallets/user1/hold", opBody(t, 3200))
	rr := httptest.NewRecorder()
	h.Hold(rr, req, "user1")

	assert.Equal(t, http.StatusOK, rr.Code)
	var wallet api.Wallet
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&wallet))
	assert.Equal(t, int64(3200), wallet.HeldBalance)
	mockStore.AssertExpectations(t)
}

func TestUpdateSettings(t *testing.T) {
	t.Run("Version Conflict", func(t *testing.T) {
		h, mockStore, _ := newTestHandler()

		mockStore.On("GetOrCreateWallet", mock.Anything, "user1").
			Return(&models.Wallet{Id: "w1", UserId: "user1", IsActive: true}, nil)
		mockStore.On("UpdateWalletSettings", mock.Anything, "user1", mock.Anything).
			Return(nil, storage.ErrVersionConflict)

		req := httptest.NewRequest(http.MethodPatch, "/wallets/user1", bytes.NewBufferString(`{"auto_payout_enabled": true}`))
		rr := httptest.NewRecorder()
		h.UpdateSettings(rr, req, "user1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		var outcome api.OperationError
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&outcome))
		assert.Equal(t, "version_conflict", outcome.Error)
		mockStore.AssertExpectations(t)
	})
}

func TestDeactivateWallet(t *testing.T) {
	h, mockStore, _ := newTestHandler()

	mockStore.On("DeactivateWallet", mock.Anything, "user1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/wallets/user1", nil)
	rr := httptest.NewRecorder()
	h.DeactivateWallet(rr, req, "user1")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	mockStore.AssertExpectations(t)
}
