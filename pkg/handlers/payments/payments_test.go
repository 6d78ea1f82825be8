package payments

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v79"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/codes"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/notify"
	notifymocks "github.com/Wany917/leo-backend-pa-sub000/pkg/notify/mocks"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
	storagemocks "github.com/Wany917/leo-backend-pa-sub000/pkg/storage/mocks"
)

type stubVerifier struct {
	event stripe.Event
	err   error
}

func (s stubVerifier) VerifyWebhook(payload []byte, signature string) (stripe.Event, error) {
	return s.event, s.err
}

type webhookMocks struct {
	store    *storagemocks.Storage
	notifier *notifymocks.Notifier
}

func newTestHandler(v WebhookVerifier) (*PaymentsHandler, webhookMocks) {
	m := webhookMocks{
		store:    new(storagemocks.Storage),
		notifier: new(notifymocks.Notifier),
	}
	return NewPaymentsHandler(v, m.store, codes.NewIssuer(m.store), m.notifier), m
}

func intentEvent(t *testing.T, eventType, intentID string) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"id": intentID})
	assert.NoError(t, err)
	return stripe.Event{
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func postWebhook(h *PaymentsHandler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewBufferString(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=sig")
	rr := httptest.NewRecorder()
	h.HandleWebhook(rr, req)
	return rr
}

func TestHandleWebhook(t *testing.T) {
	t.Run("Invalid Signature", func(t *testing.T) {
		h, m := newTestHandler(stubVerifier{err: errors.New("bad signature")})

		rr := postWebhook(h)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		m.store.AssertNotCalled(t, "GetDeliveryByPaymentIntent", mock.Anything, mock.Anything)
	})

	t.Run("Authorization Issues Validation Codes", func(t *testing.T) {
		h, m := newTestHandler(stubVerifier{event: intentEvent(t, "payment_intent.amount_capturable_updated", "pi_1")})

		m.store.On("GetDeliveryByPaymentIntent", mock.Anything, "pi_1").
			Return(&models.Delivery{Id: "d1", ClientId: "client1", PaymentIntentId: "pi_1"}, nil)
		m.store.On("ListParcelsByDelivery", mock.Anything, "d1").
			Return([]models.Parcel{{TrackingNumber: "PKG1"}, {TrackingNumber: "PKG2"}}, nil)
		m.store.On("PutValidationCode", mock.Anything, mock.AnythingOfType("*models.ValidationCode")).
			Return(nil).Twice()
		m.notifier.On("Send", mock.Anything, "client1", notify.EventValidationCode,
			mock.MatchedBy(func(payload map[string]string) bool {
				return len(payload) == 2 && payload["PKG1"] != "" && payload["PKG2"] != ""
			})).Return(nil).Once()

		rr := postWebhook(h)

		assert.Equal(t, http.StatusOK, rr.Code)
		m.store.AssertExpectations(t)
		m.notifier.AssertExpectations(t)
	})

	t.Run("Authorization Push Failure Is Still OK", func(t *testing.T) {
		h, m := newTestHandler(stubVerifier{event: intentEvent(t, "payment_intent.amount_capturable_updated", "pi_1")})

		m.store.On("GetDeliveryByPaymentIntent", mock.Anything, "pi_1").
			Return(&models.Delivery{Id: "d1", ClientId: "client1", PaymentIntentId: "pi_1"}, nil)
		m.store.On("ListParcelsByDelivery", mock.Anything, "d1").
			Return([]models.Parcel{{TrackingNumber: "PKG1"}}, nil)
		m.store.On("PutValidationCode", mock.Anything, mock.AnythingOfType("*models.ValidationCode")).
			Return(nil).Once()
		m.notifier.On("Send", mock.Anything, "client1", notify.EventValidationCode, mock.Anything).
			Return(errors.New("gone connection")).Once()

		rr := postWebhook(h)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Authorization Without A Delivery Is OK", func(t *testing.T) {
		h, m := newTestHandler(stubVerifier{event: intentEvent(t, "payment_intent.amount_capturable_updated", "pi_other")})

		m.store.On("GetDeliveryByPaymentIntent", mock.Anything, "pi_other").
			Return(nil, errors.New("no delivery for payment intent pi_other"))

		rr := postWebhook(h)

		assert.Equal(t, http.StatusOK, rr.Code)
		m.store.AssertNotCalled(t, "ListParcelsByDelivery", mock.Anything, mock.Anything)
	})

	t.Run("Capture Marks Delivery Paid", func(t *testing.T) {
		h, m := newTestHandler(stubVerifier{event: intentEvent(t, "payment_intent.succeeded", "pi_1")})

		m.store.On("GetDeliveryByPaymentIntent", mock.Anything, "pi_1").
			Return(&models.Delivery{Id: "d1", PaymentIntentId: "pi_1"}, nil)
		m.store.On("MarkPaymentPaid", mock.Anything, "d1").Return(nil)

		rr := postWebhook(h)

		assert.Equal(t, http.StatusOK, rr.Code)
		m.store.AssertExpectations(t)
	})

	t.Run("Replayed Capture Event Is OK", func(t *testing.T) {
		h, m := newTestHandler(stubVerifier{event: intentEvent(t, "payment_intent.succeeded", "pi_1")})

		m.store.On("GetDeliveryByPaymentIntent", mock.Anything, "pi_1").
			Return(&models.Delivery{Id: "d1", PaymentIntentId: "pi_1"}, nil)
		m.store.On("MarkPaymentPaid", mock.Anything, "d1").
			Return(storage.ErrPaymentStatusConflict)

		rr := postWebhook(h)

		assert.Equal(t, http.StatusOK, rr.Code)
		m.store.AssertExpectations(t)
	})

	t.Run("Payment Without A Delivery Is OK", func(t *testing.T) {
		h, m := newTestHandler(stubVerifier{event: intentEvent(t, "payment_intent.succeeded", "pi_other")})

		m.store.On("GetDeliveryByPaymentIntent", mock.Anything, "pi_other").
			Return(nil, errors.New("no delivery for payment intent pi_other"))

		rr := postWebhook(h)

		assert.Equal(t, http.StatusOK, rr.Code)
		m.store.AssertNotCalled(t, "MarkPaymentPaid", mock.Anything, mock.Anything)
		m.store.AssertExpectations(t)
	})

	t.Run("Cancelled Intent Is Acknowledged", func(t *testing.T) {
		h, m := newTestHandler(stubVerifier{event: intentEvent(t, "payment_intent.canceled", "pi_1")})

		rr := postWebhook(h)

		assert.Equal(t, http.StatusOK, rr.Code)
		m.store.AssertNotCalled(t, "MarkPaymentPaid", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Event Is Acknowledged", func(t *testing.T) {
		h, _ := newTestHandler(stubVerifier{event: intentEvent(t, "charge.refunded", "ch_1")})

		rr := postWebhook(h)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
