package mapping

import (
	"github.com/Wany917/leo-backend-pa-sub000/pkg/api"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// ToApiWallet converts a domain Wallet model to an API Wallet model.
func ToApiWallet(w *models.Wallet) *api.Wallet {
	out := &api.Wallet{
		UserId:            w.UserId,
		AvailableBalance:  w.Available,
		HeldBalance:       w.Held,
		TotalBalance:      w.TotalBalance(),
		AutoPayoutEnabled: w.AutoPayoutEnabled,
		IsActive:          w.IsActive,
		Version:           w.Version,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
	if w.Iban != "" {
		out.Iban = &w.Iban
	}
	if w.Bic != "" {
		out.Bic = &w.Bic
	}
	if w.AutoPayoutThreshold != 0 {
		out.AutoPayoutThreshold = &w.AutoPayoutThreshold
	}
	if w.ConnectedAccountId != "" {
		out.ConnectedAccountId = &w.ConnectedAccountId
	}
	return out
}

// ToApiWalletTransaction converts a domain ledger entry to its API model.
func ToApiWalletTransaction(tx *models.WalletTransaction) *api.WalletTransaction {
	out := &api.WalletTransaction{
		Id:            tx.Id,
		WalletId:      tx.WalletId,
		UserId:        tx.UserId,
		Type:          api.WalletTransactionType(tx.Type),
		Amount:        tx.Amount,
		BalanceBefore: tx.BalanceBefore,
		BalanceAfter:  tx.BalanceAfter,
		Status:        api.WalletTransactionStatus(tx.Status),
		CreatedAt:     tx.CreatedAt,
	}
	if tx.Description != "" {
		out.Description = &tx.Description
	}
	if tx.ExternalReference != "" {
		out.ExternalReference = &tx.ExternalReference
	}
	if len(tx.Metadata) > 0 {
		out.Metadata = &tx.Metadata
	}
	return out
}

// ToDomainWalletSettings maps an API settings patch onto the wallet's current
// settings, so omitted fields keep their stored values.
func ToDomainWalletSettings(current *models.Wallet, patch *api.WalletSettings) storage.WalletSettings {
	settings := storage.WalletSettings{
		Iban:                current.Iban,
		Bic:                 current.Bic,
		AutoPayoutEnabled:   current.AutoPayoutEnabled,
		AutoPayoutThreshold: current.AutoPayoutThreshold,
		ConnectedAccountId:  current.ConnectedAccountId,
	}
	if patch.Iban != nil {
		settings.Iban = *patch.Iban
	}
	if patch.Bic != nil {
		settings.Bic = *patch.Bic
	}
	if patch.AutoPayoutEnabled != nil {
		settings.AutoPayoutEnabled = *patch.AutoPayoutEnabled
	}
	if patch.AutoPayoutThreshold != nil {
		settings.AutoPayoutThreshold = *patch.AutoPayoutThreshold
	}
	return settings
}

// ToApiDelivery converts a domain Delivery model to an API Delivery model.
func ToApiDelivery(d *models.Delivery) *api.Delivery {
	out := &api.Delivery{
		Id:              d.Id,
		ClientId:        d.ClientId,
		PickupLocation:  d.PickupLocation,
		DropoffLocation: d.DropoffLocation,
		Status:          api.DeliveryStatus(d.Status),
		IsPartial:       d.IsPartial,
		Price:           d.Price,
		Amount:          d.Amount,
		PaymentStatus:   api.PaymentStatus(d.PaymentStatus),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if d.AnnonceId != "" {
		out.AnnonceId = &d.AnnonceId
	}
	if d.LivreurId != "" {
		out.LivreurId = &d.LivreurId
	}
	if d.PaymentIntentId != "" {
		out.PaymentIntentId = &d.PaymentIntentId
	}
	return out
}

// ToDomainNewDelivery converts an API NewDelivery model to a domain Delivery model.
func ToDomainNewDelivery(nd *api.NewDelivery) *models.Delivery {
	d := &models.Delivery{
		ClientId:        nd.ClientId,
		PickupLocation:  nd.PickupLocation,
		DropoffLocation: nd.DropoffLocation,
		Price:           nd.Price,
		Amount:          nd.Amount,
	}
	if nd.AnnonceId != nil {
		d.AnnonceId = *nd.AnnonceId
	}
	return d
}

// ToApiSegment converts a domain DeliverySegment to its API model.
func ToApiSegment(s *models.DeliverySegment) *api.DeliverySegment {
	out := &api.DeliverySegment{
		DeliveryId:      s.DeliveryId,
		Seq:             s.Seq,
		PickupLocation:  s.PickupLocation,
		PickupLat:       s.PickupLat,
		PickupLon:       s.PickupLon,
		DropoffLocation: s.DropoffLocation,
		DropoffLat:      s.DropoffLat,
		DropoffLon:      s.DropoffLon,
		Price:           s.Price,
		Status:          api.SegmentStatus(s.Status),
	}
	if s.CourierId != "" {
		out.CourierId = &s.CourierId
	}
	return out
}

// ToDomainNewSegment converts an API NewSegment to a domain DeliverySegment.
func ToDomainNewSegment(ns *api.NewSegment) models.DeliverySegment {
	return models.DeliverySegment{
		PickupLocation:  ns.PickupLocation,
		PickupLat:       ns.PickupLat,
		PickupLon:       ns.PickupLon,
		DropoffLocation: ns.DropoffLocation,
		DropoffLat:      ns.DropoffLat,
		DropoffLon:      ns.DropoffLon,
		Price:           ns.Price,
	}
}

// ToApiParcel converts a domain Parcel to its API model.
func ToApiParcel(p *models.Parcel) *api.Parcel {
	out := &api.Parcel{
		TrackingNumber: p.TrackingNumber,
		Status:         api.ParcelStatus(p.Status),
		LocationType:   string(p.LocationType),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.DeliveryId != "" {
		out.DeliveryId = &p.DeliveryId
	}
	if p.WeightGrams != 0 {
		out.WeightGrams = &p.WeightGrams
	}
	if p.LengthCm != 0 {
		out.LengthCm = &p.LengthCm
	}
	if p.WidthCm != 0 {
		out.WidthCm = &p.WidthCm
	}
	if p.HeightCm != 0 {
		out.HeightCm = &p.HeightCm
	}
	return out
}

// ToDomainNewParcel converts an API NewParcel to a domain Parcel.
func ToDomainNewParcel(np *api.NewParcel) *models.Parcel {
	p := &models.Parcel{
		TrackingNumber: np.TrackingNumber,
	}
	if np.DeliveryId != nil {
		p.DeliveryId = *np.DeliveryId
	}
	if np.WeightGrams != nil {
		p.WeightGrams = *np.WeightGrams
	}
	if np.LengthCm != nil {
		p.LengthCm = *np.LengthCm
	}
	if np.WidthCm != nil {
		p.WidthCm = *np.WidthCm
	}
	if np.HeightCm != nil {
		p.HeightCm = *np.HeightCm
	}
	return p
}

// ToApiValidationCode converts a domain ValidationCode to its API model.
func ToApiValidationCode(vc *models.ValidationCode) *api.ValidationCode {
	return &api.ValidationCode{
		UserInfo:  vc.UserInfo,
		Code:      vc.Code,
		CreatedAt: vc.CreatedAt,
	}
}
