package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/notify"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payments"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payouts"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/scheduler"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/settlement"
	dydbstore "github.com/Wany917/leo-backend-pa-sub000/pkg/storage/dynamodb"
)

var orchestrator *settlement.Orchestrator
var connector *payouts.Connector

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	store := dydbstore.New(dbClient, tablesFromEnv())

	stripeKey := os.Getenv("STRIPE_API_KEY")
	if stripeKey == "" {
		log.Fatal("STRIPE_API_KEY environment variable not set")
	}
	gateway := payments.NewStripeGateway(stripeKey, os.Getenv("STRIPE_WEBHOOK_SECRET"))

	var notifier notify.Notifier = &notify.NoOpNotifier{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		notifier, err = notify.NewAPIGatewayNotifier(store, endpoint)
		if err != nil {
			log.Fatalf("failed to create notifier: %v", err)
		}
	}

	orchestrator = settlement.NewOrchestrator(gateway, store, store, notifier)
	connector = payouts.NewConnector(gateway, store, store, notifier)
}

// HandleRequest processes SQS messages carrying settlement and payout jobs.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var job scheduler.Job
		if err := json.Unmarshal([]byte(message.Body), &job); err != nil {
			log.Printf("ERROR: failed to unmarshal job from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		if err := handleJob(ctx, job); err != nil {
			log.Printf("ERROR: failed to process %s job from message %s: %v", job.Type, message.MessageId, err)
			// In a production system, persistent failures would be sent to a DLQ.
			return err
		}

		log.Printf("Successfully processed %s job from message %s", job.Type, message.MessageId)
	}

	return nil
}

func handleJob(ctx context.Context, job scheduler.Job) error {
	switch job.Type {
	case scheduler.JobSettlement:
		return orchestrator.CaptureAndDistribute(ctx, job.PaymentIntentId, job.RecipientUserId, models.SettlementKind(job.Kind))
	case scheduler.JobPayout:
		_, err := connector.TransferToExternalAccount(ctx, job.UserId, job.Amount)
		return err
	default:
		return fmt.Errorf("unknown job type %q", job.Type)
	}
}

func main() {
	lambda.Start(HandleRequest)
}

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
	if tables.Wallets == "" || tables.WalletTransactions == "" || tables.Deliveries == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}
	return tables
}
