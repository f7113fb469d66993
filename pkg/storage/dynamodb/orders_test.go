package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/storage"
	"github.com/kiran/bookbazaar/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAcceptOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		accepted := &models.Order{Id: "order1", SellerId: "s1", UserId: "u1", Status: models.ACCEPTED}
		acceptedAV, _ := attributevalue.MarshalMap(accepted)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().
			Return(&dynamodb.UpdateItemOutput{Attributes: acceptedAV}, nil)

		order, err := store.AcceptOrder(context.Background(), "order1")

		assert.NoError(t, err)
		assert.Equal(t, models.ACCEPTED, order.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Pending", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.AcceptOrder(context.Background(), "order1")

		assert.ErrorIs(t, err, storage.ErrOrderNotPending)
		mockClient.AssertExpectations(t)
	})
}

func TestCancelOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		cancelled := &models.Order{Id: "order1", Status: models.CANCELLED, CancelReason: "out of stock"}
		cancelledAV, _ := attributevalue.MarshalMap(cancelled)
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			reason, ok := input.ExpressionAttributeValues[":reason"].(*types.AttributeValueMemberS)
			return ok && reason.Value == "out of stock"
		})).Once().Return(&dynamodb.UpdateItemOutput{Attributes: cancelledAV}, nil)

		order, err := store.CancelOrder(context.Background(), "order1", "out of stock")

		assert.NoError(t, err)
		assert.Equal(t, models.CANCELLED, order.Status)
		assert.Equal(t, "out of stock", order.CancelReason)
		mockClient.AssertExpectations(t)
	})

	t.Run("Empty Reason Rejected Before Any Write", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		_, err := store.CancelOrder(context.Background(), "order1", "   ")

		assert.ErrorIs(t, err, storage.ErrCancelReasonRequired)
		mockClient.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})
}

func TestListOrdersBySeller(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, Tables: testTables()}

	orders := []models.Order{
		{Id: "o1", SellerId: "s1", Status: models.PENDING},
		{Id: "o2", SellerId: "s1", Status: models.ACCEPTED},
	}
	items := make([]map[string]types.AttributeValue, len(orders))
	for i, o := range orders {
		items[i], _ = attributevalue.MarshalMap(o)
	}
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return *input.IndexName == sellerOrdersGSI
	})).Once().Return(&dynamodb.QueryOutput{Items: items}, nil)

	result, err := store.ListOrdersBySeller(context.Background(), "s1")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	mockClient.AssertExpectations(t)
}
