package dynamodb

import (
	"context"
	"testing"
	"time"

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

func TestSavePaymentIntent(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, Tables: testTables()}

	mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.PutItemOutput{}, nil)

	intent, err := store.SavePaymentIntent(context.Background(), &models.PaymentIntent{
		PurchaseOrderId: "po1",
		UserId:          "u1",
		Amount:          1200,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.INTENT_PENDING, intent.Status)
	mockClient.AssertExpectations(t)
}

func TestCompletePaymentIntent(t *testing.T) {
	intent := &models.PaymentIntent{PurchaseOrderId: "po1", UserId: "u1", Pidx: "pidx-1", Amount: 1200}
	order := &models.Order{Id: "order1", UserId: "u1", Amount: 1200, Status: models.PENDING, PaymentRef: "pidx-1"}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			return len(input.TransactItems) == 2 &&
				input.TransactItems[0].Put != nil &&
				*input.TransactItems[0].Put.TableName == "orders" &&
				input.TransactItems[1].Update != nil
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.CompletePaymentIntent(context.Background(), intent, order)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Finalized", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		cancellationReasons := []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().
			Return(nil, &types.TransactionCanceledException{CancellationReasons: cancellationReasons})

		err := store.CompletePaymentIntent(context.Background(), intent, order)

		assert.ErrorIs(t, err, storage.ErrIntentNotPending)
		mockClient.AssertExpectations(t)
	})
}

func TestGetStalePaymentIntents(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, Tables: testTables()}

	stale := models.PaymentIntent{PurchaseOrderId: "po1", Status: models.INTENT_PENDING, CreatedAt: time.Now().Add(-time.Hour)}
	staleAV, _ := attributevalue.MarshalMap(stale)
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return *input.IndexName == stalePaymentIntentGSI
	})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{staleAV}}, nil)

	intents, err := store.GetStalePaymentIntents(context.Background(), 20*time.Minute)

	assert.NoError(t, err)
	assert.Len(t, intents, 1)
	assert.Equal(t, "po1", intents[0].PurchaseOrderId)
	mockClient.AssertExpectations(t)
}
