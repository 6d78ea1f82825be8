package codes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	storagemocks "github.com/Wany917/leo-backend-pa-sub000/pkg/storage/mocks"
)

func TestIssue(t *testing.T) {
	t.Run("Stores A Six Digit Code With TTL", func(t *testing.T) {
		mockStore := new(storagemocks.Storage)
		issuer := NewIssuer(mockStore)

		var stored *models.ValidationCode
		mockStore.On("PutValidationCode", mock.Anything, mock.AnythingOfType("*models.ValidationCode")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*models.ValidationCode)
			}).
			Return(nil).Once()

		vc, err := issuer.Issue(context.Background(), "TRK1")

		assert.NoError(t, err)
		assert.Equal(t, stored, vc)
		assert.Equal(t, "TRK1", vc.UserInfo)
		assert.Len(t, vc.Code, 6)
		assert.GreaterOrEqual(t, vc.Code, "100000")
		assert.LessOrEqual(t, vc.Code, "999999")
		assert.InDelta(t, time.Now().Add(DefaultTTL).Unix(), vc.TTL, 5)
		mockStore.AssertExpectations(t)
	})

	t.Run("Store Failure Surfaces", func(t *testing.T) {
		mockStore := new(storagemocks.Storage)
		issuer := NewIssuer(mockStore)

		mockStore.On("PutValidationCode", mock.Anything, mock.Anything).
			Return(errors.New("throttled")).Once()

		_, err := issuer.Issue(context.Background(), "TRK1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "storing validation code")
		mockStore.AssertExpectations(t)
	})
}

func TestGenerateCode(t *testing.T) {
	// The code space is 100000..999999; every draw must stay 6 digits.
	for i := 0; i < 200; i++ {
		code, err := generateCode()

		assert.NoError(t, err)
		assert.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}
