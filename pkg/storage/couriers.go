package storage

import (
	"context"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

// CourierStore defines the courier availability slice owned by the delivery
// state machine. Identity itself lives in the external user directory.
type CourierStore interface {
	// GetCourier retrieves a courier's availability record.
	GetCourier(ctx context.Context, userID string) (*models.Courier, error)

	// PutCourier upserts a courier's availability.
	PutCourier(ctx context.Context, c *models.Courier) error
}
