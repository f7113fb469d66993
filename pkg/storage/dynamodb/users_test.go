package dynamodb

import (
	"context"
	"errors"
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

func userItem(t *testing.T, user *models.User) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(user)
	assert.NoError(t, err)
	return item
}

func TestAddToCart(t *testing.T) {
	user := &models.User{UserId: "user1", Cart: []string{"b1"}}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: userItem(t, user)}, nil)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.AddToCart(context.Background(), "user1", "b2")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already In Cart Is A NoOp", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: userItem(t, user)}, nil)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(nil, &types.ConditionalCheckFailedException{})

		err := store.AddToCart(context.Background(), "user1", "b1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("User Missing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		err := store.AddToCart(context.Background(), "ghost", "b1")

		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})
}

func TestRemoveFromCart(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, Tables: testTables()}

	mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
		remaining, ok := input.ExpressionAttributeValues[":remaining"].(*types.AttributeValueMemberL)
		return ok && len(remaining.Value) == 1
	})).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

	err := store.RemoveFromCart(context.Background(), "user1", []string{"b2"})

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestMoveToWishlist(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, Tables: testTables()}

	mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
		ids, ok := input.ExpressionAttributeValues[":ids"].(*types.AttributeValueMemberSS)
		return ok && len(ids.Value) == 1 && ids.Value[0] == "b1"
	})).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

	err := store.MoveToWishlist(context.Background(), "user1", "b1", []string{"b2"})

	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestToggleWishlist(t *testing.T) {
	t.Run("Adds When Absent", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		added, err := store.ToggleWishlist(context.Background(), "user1", "b1")

		assert.NoError(t, err)
		assert.True(t, added)
		mockClient.AssertExpectations(t)
	})

	t.Run("Removes When Present", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(nil, &types.ConditionalCheckFailedException{})
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		added, err := store.ToggleWishlist(context.Background(), "user1", "b1")

		assert.NoError(t, err)
		assert.False(t, added)
		mockClient.AssertExpectations(t)
	})

	t.Run("Update Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(nil, errors.New("boom"))

		_, err := store.ToggleWishlist(context.Background(), "user1", "b1")

		assert.Error(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestAddAddress(t *testing.T) {
	address := models.Address{Street: "Thamel Marg", City: "Kathmandu", Phone: "9800000000"}
	user := &models.User{UserId: "user1"}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: userItem(t, user)}, nil)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.AddAddress(context.Background(), "user1", address)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Limit Reached", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: userItem(t, user)}, nil)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().Return(nil, &types.ConditionalCheckFailedException{})

		err := store.AddAddress(context.Background(), "user1", address)

		assert.ErrorIs(t, err, storage.ErrAddressLimitReached)
		mockClient.AssertExpectations(t)
	})

	t.Run("User Missing Is Not The Limit", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		err := store.AddAddress(context.Background(), "ghost", address)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrAddressLimitReached)
		mockClient.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.PutItemOutput{}, nil)

		user, err := store.CreateUser(context.Background(), &models.User{UserId: "user1", Email: "u@example.com"})

		assert.NoError(t, err)
		assert.False(t, user.CreatedAt.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Exists", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.CreateUser(context.Background(), &models.User{UserId: "user1"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		mockClient.AssertExpectations(t)
	})
}
