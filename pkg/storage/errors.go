package storage

import "errors"

// ErrInvalidAmount is returned when a balance mutation is requested with a non-positive amount.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrInsufficientAvailableBalance is returned when a wallet's available balance cannot cover a debit.
var ErrInsufficientAvailableBalance = errors.New("insufficient available balance")

// ErrInsufficientHeldBalance is returned when a wallet's held balance cannot cover a release.
var ErrInsufficientHeldBalance = errors.New("insufficient held balance")

// ErrVersionConflict is returned when a wallet was modified concurrently; the operation is safe to retry.
var ErrVersionConflict = errors.New("wallet modified concurrently, retry")

// ErrAlreadyAssigned is returned when accepting a delivery or segment that already has a courier.
var ErrAlreadyAssigned = errors.New("already assigned to a courier")

// ErrCourierUnavailable is returned when the accepting courier is not in the available state.
var ErrCourierUnavailable = errors.New("courier is not available")

// ErrParcelStateConflict is returned when a linked parcel changed state while its delivery was being accepted.
var ErrParcelStateConflict = errors.New("parcel state changed concurrently")

// ErrDeliveryNotInProgress is returned when completing a delivery that is not in progress.
var ErrDeliveryNotInProgress = errors.New("delivery is not in progress")

// ErrDeliveryUnpaid is returned when completing a delivery whose payment was never funded.
var ErrDeliveryUnpaid = errors.New("delivery payment is unpaid")

// ErrDeliveryNotCancellable is returned when cancelling a delivery that already completed.
var ErrDeliveryNotCancellable = errors.New("delivery not in a cancellable state")

// ErrPaymentStatusConflict is returned on a backward payment-status transition.
var ErrPaymentStatusConflict = errors.New("payment status transition not allowed")

// ErrInvalidValidationCode is returned when a validation code check fails; no state is mutated.
var ErrInvalidValidationCode = errors.New("invalid validation code")
