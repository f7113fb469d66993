package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/kiran/bookbazaar/pkg/payments"
	"github.com/kiran/bookbazaar/pkg/scheduler"
	"github.com/kiran/bookbazaar/pkg/settlement"
	dydbstore "github.com/kiran/bookbazaar/pkg/storage/dynamodb"
)

var verifier *settlement.Verifier

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	tables := dydbstore.TablesFromEnv()
	if tables.PaymentIntents == "" || tables.Orders == "" {
		log.Fatal("Payment intents and orders table environment variables are not set")
	}
	store := dydbstore.New(dynamodb.NewFromConfig(cfg), tables)

	gateway := payments.NewHTTPClient(os.Getenv("PAYMENT_GATEWAY_URL"), os.Getenv("PAYMENT_GATEWAY_SECRET"))

	verifier = settlement.NewVerifier(store, gateway)
}

// HandleRequest processes SQS messages and verifies the referenced payments.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var job scheduler.VerificationJob
		if err := json.Unmarshal([]byte(message.Body), &job); err != nil {
			log.Printf("ERROR: failed to unmarshal verification job from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		log.Printf("Verifying payment for purchase order %s", job.PurchaseOrderId)

		if err := verifier.VerifyIntent(ctx, &job); err != nil {
			log.Printf("ERROR: failed to verify purchase order %s: %v", job.PurchaseOrderId, err)
			// In a production system, persistent failures would be sent to a DLQ.
			return err
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
