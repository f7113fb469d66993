package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/storage"
	"github.com/kiran/bookbazaar/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testTables() Tables {
	return Tables{
		Users:          "users",
		PendingBooks:   "pending_books",
		ApprovedBooks:  "approved_books",
		DeclinedBooks:  "declined_books",
		Orders:         "orders",
		Notifications:  "notifications",
		Analytics:      "analytics",
		UserStats:      "user_stats",
		PaymentIntents: "payment_intents",
	}
}

func availableBookItem(t *testing.T, id, sellerID string) map[string]types.AttributeValue {
	t.Helper()
	book := &models.Book{Id: id, Title: "t-" + id, SellerId: sellerID, ListStatus: true, Availability: models.SELL}
	item, err := attributevalue.MarshalMap(book)
	assert.NoError(t, err)
	return item
}

func TestPlaceOrder(t *testing.T) {
	checkout := &models.Checkout{
		UserId: "buyer1",
		Items: []models.OrderItem{
			{BookId: "b1", SellerId: "s1", UnitPrice: 500, Quantity: 1},
			{BookId: "b2", SellerId: "s2", UnitPrice: 300, Quantity: 1},
			{BookId: "b3", SellerId: "s1", UnitPrice: 200, Quantity: 1},
		},
		ShippingFee: 100,
	}
	buyer := &models.User{UserId: "buyer1", Cart: []string{"b1", "b2", "b3", "b4"}}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		buyerAV, _ := attributevalue.MarshalMap(buyer)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: buyerAV}, nil)
		for _, item := range checkout.Items {
			mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
				Return(&dynamodb.GetItemOutput{Item: availableBookItem(t, item.BookId, item.SellerId)}, nil)
		}

		// 2 sellers -> 2 orders + 2 notifications, 3 delists, 1 cart update.
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			return len(input.TransactItems) == 8
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		summary, err := store.PlaceOrder(context.Background(), checkout)

		assert.NoError(t, err)
		assert.Len(t, summary.Orders, 2)
		assert.Equal(t, int64(1000), summary.Subtotal)
		assert.Equal(t, summary.Subtotal, summary.Orders[0].Amount+summary.Orders[1].Amount)
		assert.Equal(t, int64(100), summary.PlatformFee)
		assert.Equal(t, int64(1200), summary.Total)
		mockClient.AssertExpectations(t)
	})

	t.Run("Delisted Book Blocks Checkout", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		buyerAV, _ := attributevalue.MarshalMap(buyer)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: buyerAV}, nil)

		soldBook := &models.Book{Id: "b1", SellerId: "s1", ListStatus: false}
		soldAV, _ := attributevalue.MarshalMap(soldBook)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: soldAV}, nil)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
			Return(&dynamodb.GetItemOutput{Item: availableBookItem(t, "b2", "s2")}, nil)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
			Return(&dynamodb.GetItemOutput{Item: availableBookItem(t, "b3", "s1")}, nil)

		_, err := store.PlaceOrder(context.Background(), checkout)

		assert.ErrorIs(t, err, storage.ErrBookUnavailable)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Lost Race Cancels Batch", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		buyerAV, _ := attributevalue.MarshalMap(buyer)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: buyerAV}, nil)
		for _, item := range checkout.Items {
			mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
				Return(&dynamodb.GetItemOutput{Item: availableBookItem(t, item.BookId, item.SellerId)}, nil)
		}

		cancellationReasons := []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().
			Return(nil, &types.TransactionCanceledException{CancellationReasons: cancellationReasons})

		_, err := store.PlaceOrder(context.Background(), checkout)

		assert.ErrorIs(t, err, storage.ErrBookUnavailable)
		mockClient.AssertExpectations(t)
	})

	t.Run("Batch Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		buyerAV, _ := attributevalue.MarshalMap(buyer)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: buyerAV}, nil)
		for _, item := range checkout.Items {
			mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
				Return(&dynamodb.GetItemOutput{Item: availableBookItem(t, item.BookId, item.SellerId)}, nil)
		}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().Return(nil, errors.New("batch failed"))

		_, err := store.PlaceOrder(context.Background(), checkout)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute checkout batch")
		mockClient.AssertExpectations(t)
	})

	t.Run("Empty Checkout", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		_, err := store.PlaceOrder(context.Background(), &models.Checkout{UserId: "buyer1"})

		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})
}
