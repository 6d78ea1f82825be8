package storage

import (
	"context"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

// ParcelStore defines the interface for parcels, keyed by tracking number.
type ParcelStore interface {
	// CreateParcel persists a new parcel. The tracking number must be unique.
	CreateParcel(ctx context.Context, p *models.Parcel) (*models.Parcel, error)

	// GetParcel retrieves a parcel by its tracking number.
	GetParcel(ctx context.Context, trackingNumber string) (*models.Parcel, error)

	// ListParcelsByDelivery retrieves all parcels linked to a delivery.
	ListParcelsByDelivery(ctx context.Context, deliveryID string) ([]models.Parcel, error)

	// MarkParcelLost moves a parcel to the lost state and appends to its
	// location history.
	MarkParcelLost(ctx context.Context, trackingNumber string) error
}
