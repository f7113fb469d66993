package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/kiran/bookbazaar/pkg/handlers"
	"github.com/kiran/bookbazaar/pkg/handlers/checkout"
	"github.com/kiran/bookbazaar/pkg/handlers/listings"
	"github.com/kiran/bookbazaar/pkg/handlers/moderation"
	"github.com/kiran/bookbazaar/pkg/handlers/notifications"
	"github.com/kiran/bookbazaar/pkg/handlers/orders"
	"github.com/kiran/bookbazaar/pkg/handlers/users"
	ws_handlers "github.com/kiran/bookbazaar/pkg/handlers/websockets"
	"github.com/kiran/bookbazaar/pkg/images"
	"github.com/kiran/bookbazaar/pkg/mailer"
	"github.com/kiran/bookbazaar/pkg/payments"
	"github.com/kiran/bookbazaar/pkg/scheduler"
	dydbstore "github.com/kiran/bookbazaar/pkg/storage/dynamodb"
	"github.com/kiran/bookbazaar/pkg/websockets"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	tables := dydbstore.TablesFromEnv()
	if !tables.Complete() {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}
	store := dydbstore.New(dynamodb.NewFromConfig(cfg), tables)

	// SQS Client and Scheduler
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler := scheduler.NewSQSScheduler(sqs.NewFromConfig(cfg), sqsQueueURL)

	// Payment gateway
	gateway := payments.NewHTTPClient(os.Getenv("PAYMENT_GATEWAY_URL"), os.Getenv("PAYMENT_GATEWAY_SECRET"))

	// Email (optional locally)
	var m mailer.Mailer = &mailer.NoOpMailer{}
	if sender := os.Getenv("SES_SENDER_ADDRESS"); sender != "" {
		m = mailer.NewSESMailer(sesv2.NewFromConfig(cfg), sender)
	}

	// Cover storage (optional locally)
	var uploader images.Uploader = &images.NoOpUploader{}
	if bucket := os.Getenv("S3_COVERS_BUCKET"); bucket != "" {
		uploader = images.NewS3Uploader(s3.NewFromConfig(cfg), bucket, cfg.Region)
	}

	// WebSocket push (optional locally)
	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		publisher, err = websockets.NewPublisher(store, store, endpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
	}

	h := &handlers.Handlers{
		Listings:   listings.NewListingsHandler(store, uploader),
		Moderation: moderation.NewModerationHandler(store, publisher),
		Users:      users.NewUsersHandler(store, publisher),
		Checkout: checkout.NewCheckoutHandler(
			store, gateway, sqsScheduler, m, publisher,
			os.Getenv("PAYMENT_RETURN_URL"), os.Getenv("WEBSITE_URL"),
		),
		Orders:        orders.NewOrdersHandler(store, m),
		Notifications: notifications.NewNotificationsHandler(store),
		Websockets:    ws_handlers.NewHandler(store),
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	router := handlers.NewRouter(h, logger)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
