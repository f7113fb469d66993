package dynamodb

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/kiran/bookbazaar/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the Store.
// Tests substitute a mock for it.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Tables names every DynamoDB table the storefront uses. The three book
// tables encode moderation state by membership.
type Tables struct {
	Users                string
	PendingBooks         string
	ApprovedBooks        string
	DeclinedBooks        string
	Orders               string
	Notifications        string
	Analytics            string
	UserStats            string
	PaymentIntents       string
	WebsocketConnections string
}

// TablesFromEnv reads the table names from the environment.
func TablesFromEnv() Tables {
	return Tables{
		Users:                os.Getenv("DYNAMODB_USERS_TABLE_NAME"),
		PendingBooks:         os.Getenv("DYNAMODB_PENDING_BOOKS_TABLE_NAME"),
		ApprovedBooks:        os.Getenv("DYNAMODB_APPROVED_BOOKS_TABLE_NAME"),
		DeclinedBooks:        os.Getenv("DYNAMODB_DECLINED_BOOKS_TABLE_NAME"),
		Orders:               os.Getenv("DYNAMODB_ORDERS_TABLE_NAME"),
		Notifications:        os.Getenv("DYNAMODB_NOTIFICATIONS_TABLE_NAME"),
		Analytics:            os.Getenv("DYNAMODB_ANALYTICS_TABLE_NAME"),
		UserStats:            os.Getenv("DYNAMODB_USER_STATS_TABLE_NAME"),
		PaymentIntents:       os.Getenv("DYNAMODB_PAYMENT_INTENTS_TABLE_NAME"),
		WebsocketConnections: os.Getenv("DYNAMODB_WEBSOCKET_CONNECTIONS_TABLE_NAME"),
	}
}

// Complete reports whether every table name is set.
func (t Tables) Complete() bool {
	for _, name := range []string{
		t.Users, t.PendingBooks, t.ApprovedBooks, t.DeclinedBooks, t.Orders,
		t.Notifications, t.Analytics, t.UserStats, t.PaymentIntents,
	} {
		if name == "" {
			return false
		}
	}
	return true
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client DynamoDBAPI
	Tables Tables
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{Client: client, Tables: tables}
}

// Make sure we conform to the interfaces.
var _ storage.Storage = (*Store)(nil)
var _ storage.WebSocketManager = (*Store)(nil)
