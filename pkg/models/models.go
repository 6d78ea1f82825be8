package models

import (
	"time"
)

// All monetary amounts are integers in minor currency units (cents).

// WalletTransactionType classifies a ledger entry.
type WalletTransactionType string

const (
	TxCredit     WalletTransactionType = "credit"
	TxDebit      WalletTransactionType = "debit"
	TxRelease    WalletTransactionType = "release"
	TxTransfer   WalletTransactionType = "transfer"
	TxCommission WalletTransactionType = "commission"
)

// WalletTransactionStatus defines the possible states of a ledger entry.
type WalletTransactionStatus string

const (
	TxPending   WalletTransactionStatus = "pending"
	TxCompleted WalletTransactionStatus = "completed"
	TxFailed    WalletTransactionStatus = "failed"
	TxCancelled WalletTransactionStatus = "cancelled"
)

// Wallet is the per-user internal ledger account. One active wallet per user,
// created lazily on first credit or query, deactivated rather than deleted.
// Available holds settled withdrawable funds, Held holds funds reserved but
// not yet released; the total is always derived, never stored.
type Wallet struct {
	Id                  string    `json:"id" dynamodbav:"id"`
	UserId              string    `json:"user_id" dynamodbav:"user_id"`
	Available           int64     `json:"available_balance" dynamodbav:"available_balance"`
	Held                int64     `json:"held_balance" dynamodbav:"held_balance"`
	Iban                string    `json:"iban,omitempty" dynamodbav:"iban,omitempty"`
	Bic                 string    `json:"bic,omitempty" dynamodbav:"bic,omitempty"`
	AutoPayoutEnabled   bool      `json:"auto_payout_enabled" dynamodbav:"auto_payout_enabled"`
	AutoPayoutThreshold int64     `json:"auto_payout_threshold" dynamodbav:"auto_payout_threshold"`
	ConnectedAccountId  string    `json:"connected_account_id,omitempty" dynamodbav:"connected_account_id,omitempty"`
	IsActive            bool      `json:"is_active" dynamodbav:"is_active"`
	Version             int64     `json:"version" dynamodbav:"version"`
	CreatedAt           time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// TotalBalance returns available + held.
func (w *Wallet) TotalBalance() int64 {
	return w.Available + w.Held
}

// WalletTransaction is an immutable ledger entry. Every balance mutation on a
// wallet writes exactly one of these in the same storage transaction, so the
// audit trail can never diverge from the balances.
//
// BalanceBefore/BalanceAfter snapshot the balance the entry's type touches:
// the held balance for holds and the held side of releases, the available
// balance for everything else.
type WalletTransaction struct {
	Id                string                  `json:"id" dynamodbav:"id"`
	WalletId          string                  `json:"wallet_id" dynamodbav:"wallet_id"`
	UserId            string                  `json:"user_id" dynamodbav:"user_id"`
	Type              WalletTransactionType   `json:"type" dynamodbav:"type"`
	Amount            int64                   `json:"amount" dynamodbav:"amount"`
	BalanceBefore     int64                   `json:"balance_before" dynamodbav:"balance_before"`
	BalanceAfter      int64                   `json:"balance_after" dynamodbav:"balance_after"`
	Description       string                  `json:"description" dynamodbav:"description"`
	ExternalReference string                  `json:"external_reference,omitempty" dynamodbav:"external_reference,omitempty"`
	Status            WalletTransactionStatus `json:"status" dynamodbav:"status"`
	Metadata          map[string]string       `json:"metadata,omitempty" dynamodbav:"metadata,omitempty"`
	CreatedAt         time.Time               `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at" dynamodbav:"updated_at"`
	GSI1PK            string                  `json:"-" dynamodbav:"gsi1pk"`
}

// PlatformAccountID is the account id used on commission ledger entries. The
// platform is the implicit holder of captured funds, so commission never moves
// a wallet balance; the entry exists as durable revenue audit.
const PlatformAccountID = "platform"

// DeliveryStatus defines the delivery state machine states.
type DeliveryStatus string

const (
	DeliveryScheduled        DeliveryStatus = "scheduled"
	DeliveryInProgress       DeliveryStatus = "in_progress"
	DeliveryCompleted        DeliveryStatus = "completed"
	DeliveryCancelled        DeliveryStatus = "cancelled"
	DeliveryPartialRequested DeliveryStatus = "partial_requested"
	DeliverySegmentsProposed DeliveryStatus = "segments_proposed"
)

// PaymentStatus tracks the escrow payment attached to a delivery.
// Transitions only move forward (unpaid -> pending -> paid) except for an
// explicit refund or cancellation.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// SettlementKind selects the commission rate applied at settlement.
type SettlementKind string

const (
	KindDelivery SettlementKind = "delivery"
	KindService  SettlementKind = "service"
)

// Delivery represents one courier-executed leg of an annonce.
type Delivery struct {
	Id              string         `json:"id" dynamodbav:"id"`
	AnnonceId       string         `json:"annonce_id,omitempty" dynamodbav:"annonce_id,omitempty"`
	ClientId        string         `json:"client_id" dynamodbav:"client_id"`
	LivreurId       string         `json:"livreur_id,omitempty" dynamodbav:"livreur_id,omitempty"`
	PickupLocation  string         `json:"pickup_location" dynamodbav:"pickup_location"`
	DropoffLocation string         `json:"dropoff_location" dynamodbav:"dropoff_location"`
	Status          DeliveryStatus `json:"status" dynamodbav:"status"`
	IsPartial       bool           `json:"is_partial" dynamodbav:"is_partial"`
	Price           int64          `json:"price" dynamodbav:"price"`
	Amount          int64          `json:"amount" dynamodbav:"amount"`
	PaymentStatus   PaymentStatus  `json:"payment_status" dynamodbav:"payment_status"`
	PaymentIntentId string         `json:"payment_intent_id,omitempty" dynamodbav:"payment_intent_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" dynamodbav:"updated_at"`
}

// SegmentStatus defines the states of a partial-delivery segment.
type SegmentStatus string

const (
	SegmentProposed  SegmentStatus = "proposed"
	SegmentAssigned  SegmentStatus = "assigned"
	SegmentCompleted SegmentStatus = "completed"
)

// DeliverySegment is one ordered sub-leg of a partial delivery, independently
// assignable and independently priced. Seq is 1-based and contiguous after
// route optimization renumbers the legs.
type DeliverySegment struct {
	DeliveryId      string        `json:"delivery_id" dynamodbav:"delivery_id"`
	Seq             int           `json:"seq" dynamodbav:"seq"`
	PickupLocation  string        `json:"pickup_location" dynamodbav:"pickup_location"`
	PickupLat       float64       `json:"pickup_lat" dynamodbav:"pickup_lat"`
	PickupLon       float64       `json:"pickup_lon" dynamodbav:"pickup_lon"`
	DropoffLocation string        `json:"dropoff_location" dynamodbav:"dropoff_location"`
	DropoffLat      float64       `json:"dropoff_lat" dynamodbav:"dropoff_lat"`
	DropoffLon      float64       `json:"dropoff_lon" dynamodbav:"dropoff_lon"`
	CourierId       string        `json:"courier_id,omitempty" dynamodbav:"courier_id,omitempty"`
	Price           int64         `json:"price" dynamodbav:"price"`
	Status          SegmentStatus `json:"status" dynamodbav:"status"`
	CreatedAt       time.Time     `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" dynamodbav:"updated_at"`
}

// ParcelStatus defines the states of a physical parcel.
type ParcelStatus string

const (
	ParcelStored    ParcelStatus = "stored"
	ParcelInTransit ParcelStatus = "in_transit"
	ParcelDelivered ParcelStatus = "delivered"
	ParcelLost      ParcelStatus = "lost"
)

// LocationType classifies where a parcel currently is.
type LocationType string

const (
	LocationWarehouse     LocationType = "warehouse"
	LocationClientAddress LocationType = "client_address"
	LocationInTransit     LocationType = "in_transit"
	LocationDelivered     LocationType = "delivered"
)

// LocationEntry is one row of a parcel's append-only movement history.
type LocationEntry struct {
	LocationType LocationType `json:"location_type" dynamodbav:"location_type"`
	LocationId   string       `json:"location_id,omitempty" dynamodbav:"location_id,omitempty"`
	Address      string       `json:"address,omitempty" dynamodbav:"address,omitempty"`
	MovedAt      time.Time    `json:"moved_at" dynamodbav:"moved_at"`
}

// Parcel is a physical shipped item, keyed by its unique tracking number.
type Parcel struct {
	TrackingNumber  string          `json:"tracking_number" dynamodbav:"tracking_number"`
	DeliveryId      string          `json:"delivery_id,omitempty" dynamodbav:"delivery_id,omitempty"`
	Status          ParcelStatus    `json:"status" dynamodbav:"status"`
	LocationType    LocationType    `json:"location_type" dynamodbav:"location_type"`
	WeightGrams     int64           `json:"weight_grams,omitempty" dynamodbav:"weight_grams,omitempty"`
	LengthCm        int64           `json:"length_cm,omitempty" dynamodbav:"length_cm,omitempty"`
	WidthCm         int64           `json:"width_cm,omitempty" dynamodbav:"width_cm,omitempty"`
	HeightCm        int64           `json:"height_cm,omitempty" dynamodbav:"height_cm,omitempty"`
	LocationHistory []LocationEntry `json:"location_history,omitempty" dynamodbav:"location_history,omitempty"`
	CreatedAt       time.Time       `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" dynamodbav:"updated_at"`
}

// ValidationCode is a one-time 6-digit code keyed by an opaque user_info
// string, commonly a tracking number. At most one live code per key: issuing
// a new one replaces the old. Consumed (deleted) on successful check.
//
// TTL is storage hygiene only; a code is never rejected for age.
type ValidationCode struct {
	UserInfo  string    `json:"user_info" dynamodbav:"user_info"`
	Code      string    `json:"code" dynamodbav:"code"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	TTL       int64     `json:"-" dynamodbav:"ttl,omitempty"`
}

// AvailabilityStatus tracks whether a courier can take work.
type AvailabilityStatus string

const (
	CourierAvailable AvailabilityStatus = "available"
	CourierBusy      AvailabilityStatus = "busy"
)

// Courier is the slice of the user directory the delivery state machine owns:
// availability, flipped to busy on accept and back to available on completion.
type Courier struct {
	UserId             string             `json:"user_id" dynamodbav:"user_id"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status" dynamodbav:"availability_status"`
	UpdatedAt          time.Time          `json:"updated_at" dynamodbav:"updated_at"`
}
