package settlement

import "github.com/Wany917/leo-backend-pa-sub000/pkg/models"

// Rates holds the platform commission rates in basis points, one per
// settlement kind.
type Rates struct {
	DeliveryBps int64
	ServiceBps  int64
}

// DefaultRates are the platform defaults: 5% on deliveries, 8% on services.
var DefaultRates = Rates{DeliveryBps: 500, ServiceBps: 800}

// For returns the commission rate for the settlement kind.
func (r Rates) For(kind models.SettlementKind) int64 {
	if kind == models.KindService {
		return r.ServiceBps
	}
	return r.DeliveryBps
}

// Split divides a captured amount between recipient and platform. The
// commission is rounded half-up and the recipient gets the remainder, so the
// two sides always add back to the original amount exactly.
func Split(amount, bps int64) (recipient, commission int64) {
	commission = (amount*bps + 5000) / 10000
	recipient = amount - commission
	return recipient, commission
}
