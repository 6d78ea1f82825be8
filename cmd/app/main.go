package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/codes"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/delivery"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/handlers"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/notify"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payments"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payouts"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/scheduler"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/settlement"
	dydbstore "github.com/Wany917/leo-backend-pa-sub000/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	tables := tablesFromEnv()

	// SQS Client and Scheduler
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler := scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	// Payment provider
	stripeKey := os.Getenv("STRIPE_API_KEY")
	if stripeKey == "" {
		log.Fatal("STRIPE_API_KEY environment variable not set")
	}
	gateway := payments.NewStripeGateway(stripeKey, os.Getenv("STRIPE_WEBHOOK_SECRET"))

	currency := os.Getenv("PAYMENT_CURRENCY")
	if currency == "" {
		currency = "eur"
	}

	// Create our storage implementation
	store := dydbstore.New(dbClient, tables)

	// Notifier: push over the WebSocket API when configured, otherwise no-op.
	var notifier notify.Notifier = &notify.NoOpNotifier{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		notifier, err = notify.NewAPIGatewayNotifier(store, endpoint)
		if err != nil {
			log.Fatalf("failed to create notifier: %v", err)
		}
	}

	issuer := codes.NewIssuer(store)
	deliveryService := delivery.NewService(store, issuer, sqsScheduler, notifier)
	funder := &settlement.Funder{Gateway: gateway, Wallets: store, Deliveries: store, Currency: currency}
	connector := payouts.NewConnector(gateway, store, store, notifier)

	router := handlers.NewRouter(handlers.Deps{
		Store:     store,
		Service:   deliveryService,
		Funder:    funder,
		Connector: connector,
		Verifier:  gateway,
		Issuer:    issuer,
		Notifier:  notifier,
		Scheduler: sqsScheduler,
		Logger:    logger,
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// tablesFromEnv reads the DynamoDB table names and fails fast on any gap.
func tablesFromEnv() dydbstore.Tables {
	tables := dydbstore.Tables{
		Wallets:            os.Getenv("DYNAMODB_WALLETS_TABLE_NAME"),
		WalletTransactions: os.Getenv("DYNAMODB_WALLET_TRANSACTIONS_TABLE_NAME"),
		Deliveries:         os.Getenv("DYNAMODB_DELIVERIES_TABLE_NAME"),
		Segments:           os.Getenv("DYNAMODB_SEGMENTS_TABLE_NAME"),
		Parcels:            os.Getenv("DYNAMODB_PARCELS_TABLE_NAME"),
		ValidationCodes:    os.Getenv("DYNAMODB_VALIDATION_CODES_TABLE_NAME"),
		Couriers:           os.Getenv("DYNAMODB_COURIERS_TABLE_NAME"),
		Connections:        os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
	}
	if tables.Wallets == "" || tables.WalletTransactions == "" || tables.Deliveries == "" ||
		tables.Segments == "" || tables.Parcels == "" || tables.ValidationCodes == "" ||
		tables.Couriers == "" || tables.Connections == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}
	return tables
}
