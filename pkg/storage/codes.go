package storage

import (
	"context"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
)

// ValidationCodeStore defines the one-time validation code storage.
type ValidationCodeStore interface {
	// PutValidationCode stores a code for a key, replacing any live code for
	// that key so exactly one code exists per key at any time.
	PutValidationCode(ctx context.Context, code *models.ValidationCode) error

	// ConsumeValidationCode atomically checks and deletes the code for a key.
	// A wrong, expired or already-consumed code fails with
	// ErrInvalidValidationCode and mutates nothing. The check-and-delete is a
	// single conditional operation so a code can never be consumed twice by
	// concurrent requests.
	ConsumeValidationCode(ctx context.Context, userInfo, code string) error
}
