package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/payments"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/scheduler"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
	dydbstore "github.com/Wany917/leo-backend-pa-sub000/pkg/storage/dynamodb"
)

var store storage.Storage
var gateway payments.Gateway
var sqsScheduler scheduler.Scheduler

const stuckPaymentThreshold = 20 * time.Minute

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	sqsClient := sqs.NewFromConfig(cfg)

	// Initialize dependencies.
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler = scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	stripeKey := os.Getenv("STRIPE_API_KEY")
	if stripeKey == "" {
		log.Fatal("STRIPE_API_KEY environment variable not set")
	}
	gateway = payments.NewStripeGateway(stripeKey, os.Getenv("STRIPE_WEBHOOK_SECRET"))

	store = dydbstore.New(dbClient, dydbstore.Tables{
		Wallets:            os.Getenv("DYNAMODB_WALLETS_TABLE_NAME"),
		WalletTransactions: os.Getenv("DYNAMODB_WALLET_TRANSACTIONS_TABLE_NAME"),
		Deliveries:         os.Getenv("DYNAMODB_DELIVERIES_TABLE_NAME"),
		Segments:           os.Getenv("DYNAMODB_SEGMENTS_TABLE_NAME"),
		Parcels:            os.Getenv("DYNAMODB_PARCELS_TABLE_NAME"),
		ValidationCodes:    os.Getenv("DYNAMODB_VALIDATION_CODES_TABLE_NAME"),
		Couriers:           os.Getenv("DYNAMODB_COURIERS_TABLE_NAME"),
		Connections:        os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
	})
}

// HandleRequest is triggered by an EventBridge Schedule. It finds completed
// deliveries whose payment never left pending and re-enqueues their
// settlement; settlement replays are idempotent, so over-enqueuing is safe.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation process for stuck payments...")

	stuck, err := store.ListStuckPendingDeliveries(ctx, stuckPaymentThreshold)
	if err != nil {
		log.Printf("ERROR: failed to list stuck deliveries: %v", err)
		return err
	}

	if len(stuck) == 0 {
		log.Println("No stuck deliveries found.")
		return nil
	}

	log.Printf("Found %d stuck deliveries. Inspecting them...", len(stuck))

	for _, d := range stuck {
		// Only completed deliveries owe the courier money; a delivery still
		// underway is legitimately pending.
		if d.Status != models.DeliveryCompleted {
			continue
		}

		payment, err := gateway.CheckStatus(ctx, d.PaymentIntentId)
		if err != nil {
			log.Printf("ERROR: failed to check payment %s: %v", d.PaymentIntentId, err)
			continue
		}
		if payment.Status != payments.StatePending && payment.Status != payments.StatePaid {
			log.Printf("Payment %s is %s, nothing to settle", d.PaymentIntentId, payment.Status)
			continue
		}

		job := scheduler.Job{
			Type:            scheduler.JobSettlement,
			PaymentIntentId: d.PaymentIntentId,
			RecipientUserId: d.LivreurId,
			Kind:            string(models.KindDelivery),
		}
		if err := sqsScheduler.Schedule(ctx, job); err != nil {
			log.Printf("ERROR: failed to re-enqueue settlement for delivery %s: %v", d.Id, err)
			// Continue to the next delivery, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Successfully re-enqueued settlement for delivery %s", d.Id)
	}

	log.Println("Reconciliation process finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
