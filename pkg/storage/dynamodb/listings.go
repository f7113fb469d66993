package dynamodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/kiran/bookbazaar/pkg/models"
)

const statsDateLayout = "2006-01-02"

// availabilityCounter maps an availability to the counter attribute it
// increments on the analytics documents and the user profile.
func availabilityCounter(a models.Availability) string {
	switch a {
	case models.SELL:
		return "selling_books"
	case models.RENT:
		return "renting_books"
	default:
		return "donating_books"
	}
}

func profileCounter(a models.Availability) string {
	switch a {
	case models.SELL:
		return "selling_books_upload"
	case models.RENT:
		return "renting_books_upload"
	default:
		return "donating_books_upload"
	}
}

// SubmitListing creates the pending book document and applies the three
// counter increments (global-daily, user-daily, user profile) as one atomic
// batch. The counters use ADD so concurrent submissions by the same user on
// the same day never lose updates.
func (s *Store) SubmitListing(ctx context.Context, book *models.Book) (*models.Book, error) {
	now := time.Now()
	book.Id = uuid.New().String()
	book.ListStatus = true
	book.CreatedAt = now

	slog.Log(ctx, slog.LevelDebug, "submitting listing", "book_id", book.Id, "seller_id", book.SellerId)

	bookAV, err := attributevalue.MarshalMap(book)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal book: %w", err)
	}

	date := now.UTC().Format(statsDateLayout)
	one := &types.AttributeValueMemberN{Value: "1"}
	counterExpr := aws.String(fmt.Sprintf("ADD total_books :one, %s :one", availabilityCounter(book.Availability)))

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Create the pending book document.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.PendingBooks),
					Item:                bookAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 2: Increment the global daily counters.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Analytics),
					Key: map[string]types.AttributeValue{
						"date": &types.AttributeValueMemberS{Value: date},
					},
					UpdateExpression: counterExpr,
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":one": one,
					},
				},
			},
			{
				// Operation 3: Increment the per-user daily counters.
				Update: &types.Update{
					TableName: aws.String(s.Tables.UserStats),
					Key: map[string]types.AttributeValue{
						"key": &types.AttributeValueMemberS{Value: book.SellerId + "#" + date},
					},
					UpdateExpression: counterExpr,
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":one": one,
					},
				},
			},
			{
				// Operation 4: Increment the seller's profile totals.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Users),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: book.SellerId},
					},
					UpdateExpression:    aws.String(fmt.Sprintf("ADD total_books :one, %s :one", profileCounter(book.Availability))),
					ConditionExpression: aws.String("attribute_exists(user_id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":one": one,
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to execute listing submission batch: %w", err)
	}

	return book, nil
}

// GetApprovedBook retrieves a publicly visible book by its ID.
func (s *Store) GetApprovedBook(ctx context.Context, bookID string) (*models.Book, error) {
	return s.getBook(ctx, s.Tables.ApprovedBooks, bookID)
}

func (s *Store) getBook(ctx context.Context, table, bookID string) (*models.Book, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": bookID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal book ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get book from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("book with ID %s not found", bookID)
	}

	var book models.Book
	if err := attributevalue.UnmarshalMap(result.Item, &book); err != nil {
		return nil, fmt.Errorf("failed to unmarshal book: %w", err)
	}

	return &book, nil
}

// ListApprovedBooks retrieves the publicly visible catalogue.
func (s *Store) ListApprovedBooks(ctx context.Context) ([]models.Book, error) {
	return s.scanBooks(ctx, s.Tables.ApprovedBooks)
}

// ListPendingBooks retrieves listings awaiting moderation.
func (s *Store) ListPendingBooks(ctx context.Context) ([]models.Book, error) {
	return s.scanBooks(ctx, s.Tables.PendingBooks)
}

func (s *Store) scanBooks(ctx context.Context, table string) ([]models.Book, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan books table: %w", err)
	}

	var books []models.Book
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &books); err != nil {
		return nil, fmt.Errorf("failed to unmarshal books: %w", err)
	}

	return books, nil
}
