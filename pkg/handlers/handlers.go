package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/delivery"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/handlers/deliveries"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/handlers/ledger"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/handlers/payments"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/handlers/payouts"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/handlers/wallets"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/handlers/websockets"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/middleware"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/notify"
	payoutsvc "github.com/Wany917/leo-backend-pa-sub000/pkg/payouts"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/scheduler"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/settlement"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Store     storage.Storage
	Service   *delivery.Service
	Funder    *settlement.Funder
	Connector *payoutsvc.Connector
	Verifier  payments.WebhookVerifier
	Issuer    payments.CodeIssuer
	Notifier  notify.Notifier
	Scheduler scheduler.Scheduler
	Logger    *slog.Logger
}

// NewRouter assembles the chi router for the whole API.
func NewRouter(deps Deps) chi.Router {
	walletsHandler := wallets.NewWalletsHandler(deps.Store, deps.Store, deps.Scheduler)
	ledgerHandler := ledger.NewLedgerHandler(deps.Store)
	deliveriesHandler := deliveries.NewDeliveriesHandler(deps.Store, deps.Service, deps.Funder)
	payoutsHandler := payouts.NewPayoutsHandler(deps.Connector, deps.Store)
	paymentsHandler := payments.NewPaymentsHandler(deps.Verifier, deps.Store, deps.Issuer, deps.Notifier)
	wsHandler := websockets.NewHandler(deps.Store)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewStructuredLogger(deps.Logger))

	r.Route("/wallets", func(r chi.Router) {
		r.Get("/", walletsHandler.ListWallets)
		r.Route("/{userId}", func(r chi.Router) {
			r.Get("/", withUserID(walletsHandler.GetWallet))
			r.Patch("/", withUserID(walletsHandler.UpdateSettings))
			r.Delete("/", withUserID(walletsHandler.DeactivateWallet))
			r.Post("/withdraw", withUserID(walletsHandler.Withdraw))
			r.Post("/topup", withUserID(walletsHandler.TopUp))
			r.Post("/hold", withUserID(walletsHandler.Hold))
			r.Post("/release", withUserID(walletsHandler.Release))
			r.Get("/transactions", withUserID(walletsHandler.ListTransactions))
			r.Post("/payout", withUserID(payoutsHandler.CreatePayout))
			r.Post("/onboarding", withUserID(payoutsHandler.CreateOnboardingLink))
		})
	})

	r.Get("/ledger", ledgerHandler.ListLedgerEntries)

	r.Route("/deliveries", func(r chi.Router) {
		r.Post("/", deliveriesHandler.CreateDelivery)
		r.Post("/complete", deliveriesHandler.CompleteDelivery)
		r.Route("/{deliveryId}", func(r chi.Router) {
			r.Get("/", withDeliveryID(deliveriesHandler.GetDelivery))
			r.Post("/fund", withDeliveryID(deliveriesHandler.FundDelivery))
			r.Post("/pay-from-wallet", withDeliveryID(deliveriesHandler.PayFromWallet))
			r.Post("/accept", withDeliveryID(deliveriesHandler.AcceptDelivery))
			r.Post("/cancel", withDeliveryID(deliveriesHandler.CancelDelivery))
			r.Post("/partial", withDeliveryID(deliveriesHandler.RequestPartial))
			r.Get("/segments", withDeliveryID(deliveriesHandler.ListSegments))
			r.Post("/segments", withDeliveryID(deliveriesHandler.ProposeSegments))
			r.Post("/segments/{seq}/assign", func(w http.ResponseWriter, req *http.Request) {
				seq, err := strconv.Atoi(chi.URLParam(req, "seq"))
				if err != nil {
					http.Error(w, "seq must be an integer", http.StatusBadRequest)
					return
				}
				deliveriesHandler.AssignSegment(w, req, chi.URLParam(req, "deliveryId"), seq)
			})
		})
	})

	r.Route("/parcels", func(r chi.Router) {
		r.Post("/", deliveriesHandler.CreateParcel)
		r.Get("/{trackingNumber}", withTrackingNumber(deliveriesHandler.GetParcel))
		r.Post("/{trackingNumber}/code", withTrackingNumber(deliveriesHandler.IssueCode))
		r.Post("/{trackingNumber}/lost", withTrackingNumber(deliveriesHandler.MarkParcelLost))
	})

	r.Post("/webhooks/stripe", paymentsHandler.HandleWebhook)
	r.Get("/ws", wsHandler.ServeHTTP)

	return r
}

func withUserID(fn func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, chi.URLParam(r, "userId"))
	}
}

func withDeliveryID(fn func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, chi.URLParam(r, "deliveryId"))
	}
}

func withTrackingNumber(fn func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, chi.URLParam(r, "trackingNumber"))
	}
}
