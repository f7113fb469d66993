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

func pendingBookItem(t *testing.T) map[string]types.AttributeValue {
	t.Helper()
	book := &models.Book{
		Id: "book1", Title: "The Guide", SellerId: "seller1",
		Availability: models.SELL, ListStatus: true,
	}
	item, err := attributevalue.MarshalMap(book)
	assert.NoError(t, err)
	return item
}

func TestApproveBook(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
			Return(&dynamodb.GetItemOutput{Item: pendingBookItem(t)}, nil)

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 3 {
				return false
			}
			put := input.TransactItems[0].Put
			del := input.TransactItems[1].Delete
			notify := input.TransactItems[2].Put
			if put == nil || del == nil || notify == nil {
				return false
			}
			if *put.TableName != "approved_books" || *del.TableName != "pending_books" || *notify.TableName != "notifications" {
				return false
			}
			// The approved copy carries the approval stamp.
			if _, ok := put.Item["approved_at"]; !ok {
				return false
			}
			status, ok := notify.Item["status"].(*types.AttributeValueMemberS)
			return ok && status.Value == models.NotificationApproved
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		book, err := store.ApproveBook(context.Background(), "book1")

		assert.NoError(t, err)
		assert.NotNil(t, book.ApprovedAt)
		mockClient.AssertExpectations(t)
	})

	t.Run("Book Not Pending", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		_, err := store.ApproveBook(context.Background(), "missing")

		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
	})

	t.Run("Lost Moderation Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
			Return(&dynamodb.GetItemOutput{Item: pendingBookItem(t)}, nil)
		cancellationReasons := []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().
			Return(nil, &types.TransactionCanceledException{CancellationReasons: cancellationReasons})

		_, err := store.ApproveBook(context.Background(), "book1")

		assert.ErrorIs(t, err, storage.ErrAlreadyModerated)
		mockClient.AssertExpectations(t)
	})

	t.Run("Batch Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables()}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
			Return(&dynamodb.GetItemOutput{Item: pendingBookItem(t)}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().Return(nil, errors.New("boom"))

		_, err := store.ApproveBook(context.Background(), "book1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute moderation batch")
		mockClient.AssertExpectations(t)
	})
}

func TestDeclineBook(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, Tables: testTables()}

	mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
		Return(&dynamodb.GetItemOutput{Item: pendingBookItem(t)}, nil)
	mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
		return len(input.TransactItems) == 3 &&
			*input.TransactItems[0].Put.TableName == "declined_books" &&
			*input.TransactItems[1].Delete.TableName == "pending_books"
	})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

	book, err := store.DeclineBook(context.Background(), "book1")

	assert.NoError(t, err)
	assert.NotNil(t, book.DeclinedAt)
	mockClient.AssertExpectations(t)
}

func TestRemoveBook(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, Tables: testTables()}

	mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
		Return(&dynamodb.GetItemOutput{Item: pendingBookItem(t)}, nil)
	mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
		return len(input.TransactItems) == 3 &&
			*input.TransactItems[0].Put.TableName == "declined_books" &&
			*input.TransactItems[1].Delete.TableName == "approved_books"
	})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

	book, err := store.RemoveBook(context.Background(), "book1")

	assert.NoError(t, err)
	assert.NotNil(t, book.RemovedAt)
	mockClient.AssertExpectations(t)
}

func TestReinstateBook(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := &Store{Client: mockClient, Tables: testTables()}

	mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
		Return(&dynamodb.GetItemOutput{Item: pendingBookItem(t)}, nil)
	mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
		return len(input.TransactItems) == 3 &&
			*input.TransactItems[0].Put.TableName == "approved_books" &&
			*input.TransactItems[1].Delete.TableName == "declined_books"
	})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

	book, err := store.ReinstateBook(context.Background(), "book1")

	assert.NoError(t, err)
	assert.NotNil(t, book.ApprovedAt)
	mockClient.AssertExpectations(t)
}
