package ledger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/api"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	storagemocks "github.com/Wany917/leo-backend-pa-sub000/pkg/storage/mocks"
)

func TestListLedgerEntries(t *testing.T) {
	t.Run("Default Limit", func(t *testing.T) {
		mockStore := new(storagemocks.Storage)
		h := NewLedgerHandler(mockStore)

		mockStore.On("ListLedgerEntries", mock.Anything, int32(50)).
			Return([]models.WalletTransaction{
				{Id: "tx1", Type: models.TxCredit, Amount: 3040, Status: models.TxCompleted},
				{Id: "tx2", Type: models.TxCommission, Amount: 160, Status: models.TxCompleted},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/ledger", nil)
		rr := httptest.NewRecorder()
		h.ListLedgerEntries(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var entries []api.WalletTransaction
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&entries))
		assert.Len(t, entries, 2)
		assert.Equal(t, "tx1", entries[0].Id)
		mockStore.AssertExpectations(t)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		mockStore := new(storagemocks.Storage)
		h := NewLedgerHandler(mockStore)

		mockStore.On("ListLedgerEntries", mock.Anything, int32(5)).
			Return([]models.WalletTransaction{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/ledger?limit=5", nil)
		rr := httptest.NewRecorder()
		h.ListLedgerEntries(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStore.AssertExpectations(t)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		mockStore := new(storagemocks.Storage)
		h := NewLedgerHandler(mockStore)

		req := httptest.NewRequest(http.MethodGet, "/ledger?limit=zero", nil)
		rr := httptest.NewRecorder()
		h.ListLedgerEntries(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStore.AssertNotCalled(t, "ListLedgerEntries", mock.Anything, mock.Anything)
	})

	t.Run("Store Error", func(t *testing.T) {
		mockStore := new(storagemocks.Storage)
		h := NewLedgerHandler(mockStore)

		mockStore.On("ListLedgerEntries", mock.Anything, int32(50)).
			Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/ledger", nil)
		rr := httptest.NewRecorder()
		h.ListLedgerEntries(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockStore.AssertExpectations(t)
	})
}
