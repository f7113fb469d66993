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

	"github.com/kiran/bookbazaar/pkg/scheduler"
	"github.com/kiran/bookbazaar/pkg/storage"
	dydbstore "github.com/kiran/bookbazaar/pkg/storage/dynamodb"
)

var store storage.SettlementStore
var sqsScheduler scheduler.Scheduler

// An intent is considered stuck once it has sat pending this long without
// the gateway callback resolving it (closed tab, dropped redirect).
const stuckIntentThreshold = 20 * time.Minute

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler = scheduler.NewSQSScheduler(sqs.NewFromConfig(cfg), sqsQueueURL)

	store = dydbstore.New(dynamodb.NewFromConfig(cfg), dydbstore.TablesFromEnv())
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation sweep for stuck payment intents...")

	stuck, err := store.GetStalePaymentIntents(ctx, stuckIntentThreshold)
	if err != nil {
		log.Printf("ERROR: failed to get stuck payment intents: %v", err)
		return err
	}

	if len(stuck) == 0 {
		log.Println("No stuck payment intents found.")
		return nil
	}

	log.Printf("Found %d stuck payment intents. Re-enqueuing them...", len(stuck))

	for _, intent := range stuck {
		job := &scheduler.VerificationJob{
			PurchaseOrderId: intent.PurchaseOrderId,
			Pidx:            intent.Pidx,
		}
		if err := sqsScheduler.SchedulePaymentVerification(ctx, job, 0); err != nil {
			log.Printf("ERROR: failed to re-enqueue purchase order %s: %v", intent.PurchaseOrderId, err)
			// Continue to the next intent, don't let one failure stop the whole sweep.
			continue
		}
		log.Printf("Successfully re-enqueued purchase order %s", intent.PurchaseOrderId)
	}

	log.Println("Reconciliation sweep finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
