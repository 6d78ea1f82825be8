package deliveries

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/api"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/delivery"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/mapping"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payments"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/settlement"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// DeliveriesHandler holds the dependencies for delivery-related handlers.
type DeliveriesHandler struct {
	Store   storage.ApiStore
	Service *delivery.Service
	Funder  *settlement.Funder
}

// NewDeliveriesHandler creates a new DeliveriesHandler.
func NewDeliveriesHandler(store storage.ApiStore, service *delivery.Service, funder *settlement.Funder) *DeliveriesHandler {
	return &DeliveriesHandler{Store: store, Service: service, Funder: funder}
}

// CreateDelivery handles the logic for creating a new delivery.
func (h *DeliveriesHandler) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	var nd api.NewDelivery
	if err := json.NewDecoder(r.Body).Decode(&nd); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if nd.ClientId == "" || nd.Price <= 0 || nd.Amount <= 0 {
		http.Error(w, "client_id, price and amount are required", http.StatusBadRequest)
		return
	}

	d := mapping.ToDomainNewDelivery(&nd)
	d.Id = uuid.New().String()
	d.CreatedAt = time.Now()

	created, err := h.Store.CreateDelivery(r.Context(), d)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create delivery: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, mapping.ToApiDelivery(created))
}

// GetDelivery handles the logic for retrieving a delivery.
func (h *DeliveriesHandler) GetDelivery(w http.ResponseWriter, r *http.Request, deliveryId string) {
	d, err := h.Store.GetDelivery(r.Context(), deliveryId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve delivery: %v", err), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiDelivery(d))
}

// FundDelivery handles the logic for funding a delivery through escrow,
// optionally splitting the total with an immediate wallet debit.
func (h *DeliveriesHandler) FundDelivery(w http.ResponseWriter, r *http.Request, deliveryId string) {
	var req api.FundDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	var walletAmount int64
	if req.WalletAmount != nil {
		walletAmount = *req.WalletAmount
	}

	result, err := h.Funder.FundDelivery(r.Context(), deliveryId, walletAmount)
	if err != nil {
		h.writeFundError(w, r, deliveryId, walletAmount, err)
		return
	}

	resp := api.FundDeliveryResponse{
		Delivery:     *mapping.ToApiDelivery(result.Delivery),
		WalletAmount: result.WalletAmount,
	}
	if result.HeldPayment != nil {
		resp.PaymentIntentId = result.HeldPayment.ExternalId
		resp.ClientSecret = result.HeldPayment.ClientSecret
	}
	writeJSON(w, http.StatusOK, resp)
}

// PayFromWallet handles the logic for paying a delivery from the payer's
// wallet balance, entirely by default or partially when a wallet share is
// given.
func (h *DeliveriesHandler) PayFromWallet(w http.ResponseWriter, r *http.Request, deliveryId string) {
	var req api.FundDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	var walletAmount int64
	if req.WalletAmount != nil {
		walletAmount = *req.WalletAmount
	} else {
		d, err := h.Store.GetDelivery(r.Context(), deliveryId)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to retrieve delivery: %v", err), http.StatusNotFound)
			return
		}
		walletAmount = d.Amount
	}

	result, err := h.Funder.FundDelivery(r.Context(), deliveryId, walletAmount)
	if err != nil {
		h.writeFundError(w, r, deliveryId, walletAmount, err)
		return
	}

	resp := api.FundDeliveryResponse{
		Delivery:     *mapping.ToApiDelivery(result.Delivery),
		WalletAmount: result.WalletAmount,
	}
	if result.HeldPayment != nil {
		resp.PaymentIntentId = result.HeldPayment.ExternalId
		resp.ClientSecret = result.HeldPayment.ClientSecret
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeFundError maps a funding failure to a structured JSON outcome. An
// insufficient wallet balance carries the payer's current balances so the
// client can offer a card fallback for the exact shortfall.
func (h *DeliveriesHandler) writeFundError(w http.ResponseWriter, r *http.Request, deliveryId string, requested int64, err error) {
	body := api.OperationError{}
	if requested > 0 {
		body.Requested = &requested
	}

	var status int
	switch {
	case errors.Is(err, storage.ErrPaymentStatusConflict):
		status, body.Error = http.StatusConflict, "already_funded"
	case errors.Is(err, payments.ErrInvalidAmount):
		status, body.Error = http.StatusBadRequest, "invalid_wallet_share"
	case errors.Is(err, storage.ErrInsufficientAvailableBalance):
		status, body.Error = http.StatusConflict, "insufficient_available_balance"
		if d, dErr := h.Store.GetDelivery(r.Context(), deliveryId); dErr == nil {
			if wallet, wErr := h.Store.GetOrCreateWallet(r.Context(), d.ClientId); wErr == nil {
				body.Available = &wallet.Available
				body.Held = &wallet.Held
			}
		}
	default:
		status, body.Error = http.StatusInternalServerError, "internal_error"
	}

	writeJSON(w, status, body)
}

// AcceptDelivery handles the logic for assigning a courier to a delivery.
func (h *DeliveriesHandler) AcceptDelivery(w http.ResponseWriter, r *http.Request, deliveryId string) {
	var req api.AcceptDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	d, err := h.Service.Accept(r.Context(), deliveryId, req.CourierId)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyAssigned):
			writeReason(w, http.StatusConflict, "already_assigned")
		case errors.Is(err, storage.ErrCourierUnavailable):
			writeReason(w, http.StatusConflict, "courier_unavailable")
		default:
			writeReason(w, http.StatusInternalServerError, "internal_error")
		}
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiDelivery(d))
}

// CancelDelivery handles the logic for cancelling a delivery before completion.
func (h *DeliveriesHandler) CancelDelivery(w http.ResponseWriter, r *http.Request, deliveryId string) {
	if err := h.Service.Cancel(r.Context(), deliveryId); err != nil {
		if errors.Is(err, storage.ErrDeliveryNotCancellable) {
			writeReason(w, http.StatusConflict, "delivery_not_cancellable")
		} else {
			writeReason(w, http.StatusInternalServerError, "internal_error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompleteDelivery handles the logic for confirming a handoff with the
// recipient's validation code.
func (h *DeliveriesHandler) CompleteDelivery(w http.ResponseWriter, r *http.Request) {
	var req api.CompleteDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	d, err := h.Service.Complete(r.Context(), req.TrackingNumber, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidValidationCode):
			writeReason(w, http.StatusForbidden, "invalid_validation_code")
		case errors.Is(err, storage.ErrDeliveryNotInProgress):
			writeReason(w, http.StatusConflict, "delivery_not_in_progress")
		case errors.Is(err, storage.ErrDeliveryUnpaid):
			writeReason(w, http.StatusConflict, "delivery_unpaid")
		default:
			writeReason(w, http.StatusInternalServerError, "internal_error")
		}
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiDelivery(d))
}

// RequestPartial handles the logic for opening the partial-delivery sub-flow.
func (h *DeliveriesHandler) RequestPartial(w http.ResponseWriter, r *http.Request, deliveryId string) {
	if err := h.Service.RequestPartial(r.Context(), deliveryId); err != nil {
		http.Error(w, fmt.Sprintf("Failed to request partial delivery: %v", err), http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ProposeSegments handles the logic for storing a segment decomposition.
func (h *DeliveriesHandler) ProposeSegments(w http.ResponseWriter, r *http.Request, deliveryId string) {
	var newSegments []api.NewSegment
	if err := json.NewDecoder(r.Body).Decode(&newSegments); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	segments := make([]models.DeliverySegment, len(newSegments))
	for i, ns := range newSegments {
		segments[i] = mapping.ToDomainNewSegment(&ns)
	}

	ordered, err := h.Service.ProposeSegments(r.Context(), deliveryId, segments)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrNoSegments):
			writeReason(w, http.StatusBadRequest, "no_segments")
		case errors.Is(err, delivery.ErrSegmentPriceMismatch):
			writeReason(w, http.StatusUnprocessableEntity, "segment_price_mismatch")
		default:
			writeReason(w, http.StatusInternalServerError, "internal_error")
		}
		return
	}

	apiSegments := make([]*api.DeliverySegment, len(ordered))
	for i, s := range ordered {
		apiSegments[i] = mapping.ToApiSegment(&s)
	}
	writeJSON(w, http.StatusOK, apiSegments)
}

// ListSegments handles the logic for retrieving a delivery's segments.
func (h *DeliveriesHandler) ListSegments(w http.ResponseWriter, r *http.Request, deliveryId string) {
	segments, err := h.Store.ListSegments(r.Context(), deliveryId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve segments: %v", err), http.StatusInternalServerError)
		return
	}

	apiSegments := make([]*api.DeliverySegment, len(segments))
	for i, s := range segments {
		apiSegments[i] = mapping.ToApiSegment(&s)
	}
	writeJSON(w, http.StatusOK, apiSegments)
}

// AssignSegment handles the logic for assigning one segment to a courier.
func (h *DeliveriesHandler) AssignSegment(w http.ResponseWriter, r *http.Request, deliveryId string, seq int) {
	var req api.AcceptDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	segment, err := h.Service.AssignSegment(r.Context(), deliveryId, seq, req.CourierId)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyAssigned) {
			writeReason(w, http.StatusConflict, "already_assigned")
		} else {
			writeReason(w, http.StatusInternalServerError, "internal_error")
		}
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiSegment(segment))
}

// CreateParcel handles the logic for registering a new parcel.
func (h *DeliveriesHandler) CreateParcel(w http.ResponseWriter, r *http.Request) {
	var np api.NewParcel
	if err := json.NewDecoder(r.Body).Decode(&np); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if np.TrackingNumber == "" {
		http.Error(w, "tracking_number is required", http.StatusBadRequest)
		return
	}

	created, err := h.Store.CreateParcel(r.Context(), mapping.ToDomainNewParcel(&np))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create parcel: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, mapping.ToApiParcel(created))
}

// GetParcel handles the logic for tracking a parcel.
func (h *DeliveriesHandler) GetParcel(w http.ResponseWriter, r *http.Request, trackingNumber string) {
	p, err := h.Store.GetParcel(r.Context(), trackingNumber)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve parcel: %v", err), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, mapping.ToApiParcel(p))
}

// MarkParcelLost handles the logic for declaring a parcel lost.
func (h *DeliveriesHandler) MarkParcelLost(w http.ResponseWriter, r *http.Request, trackingNumber string) {
	if err := h.Store.MarkParcelLost(r.Context(), trackingNumber); err != nil {
		http.Error(w, fmt.Sprintf("Failed to mark parcel lost: %v", err), http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// IssueCode handles the logic for issuing a parcel's validation code.
func (h *DeliveriesHandler) IssueCode(w http.ResponseWriter, r *http.Request, trackingNumber string) {
	vc, err := h.Service.IssueCode(r.Context(), trackingNumber)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to issue validation code: %v", err), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, mapping.ToApiValidationCode(vc))
}

func writeReason(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, api.OperationError{Error: reason})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
