package codes

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// codeSpan covers the 6-digit range 100000..999999.
const (
	codeMin  = 100000
	codeSpan = 900000
)

// DefaultTTL is how long an issued code stays valid.
const DefaultTTL = 24 * time.Hour

// Issuer generates and stores one-time validation codes. Issuing a new code
// for a key replaces the previous one, so at most one code is live per key.
type Issuer struct {
	Store storage.ValidationCodeStore
	TTL   time.Duration
}

// NewIssuer creates an Issuer with the default TTL.
func NewIssuer(store storage.ValidationCodeStore) *Issuer {
	return &Issuer{Store: store, TTL: DefaultTTL}
}

// Issue generates a fresh 6-digit code for the key and stores it, superseding
// any previous code. The code is returned so the caller can hand it to the
// recipient out of band.
func (i *Issuer) Issue(ctx context.Context, userInfo string) (*models.ValidationCode, error) {
	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("generating validation code: %w", err)
	}

	now := time.Now()
	vc := &models.ValidationCode{
		UserInfo:  userInfo,
		Code:      code,
		CreatedAt: now,
		TTL:       now.Add(i.TTL).Unix(),
	}
	if err := i.Store.PutValidationCode(ctx, vc); err != nil {
		return nil, fmt.Errorf("storing validation code: %w", err)
	}
	return vc, nil
}

// generateCode draws a uniform 6-digit code from crypto/rand. Using the
// bounded Int avoids modulo bias over the 900000-value span.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}
