package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/storage"
)

// ApproveBook moves a book from pending to approved and notifies the seller.
func (s *Store) ApproveBook(ctx context.Context, bookID string) (*models.Book, error) {
	return s.transitionBook(ctx, bookID, bookTransition{
		From:   s.Tables.PendingBooks,
		To:     s.Tables.ApprovedBooks,
		Stamp:  stampApproved,
		Status: models.NotificationApproved,
	})
}

// DeclineBook moves a book from pending to declined and notifies the seller.
func (s *Store) DeclineBook(ctx context.Context, bookID string) (*models.Book, error) {
	return s.transitionBook(ctx, bookID, bookTransition{
		From:   s.Tables.PendingBooks,
		To:     s.Tables.DeclinedBooks,
		Stamp:  stampDeclined,
		Status: models.NotificationDeclined,
	})
}

// RemoveBook moves an already-approved book to declined and notifies the seller.
func (s *Store) RemoveBook(ctx context.Context, bookID string) (*models.Book, error) {
	return s.transitionBook(ctx, bookID, bookTransition{
		From:   s.Tables.ApprovedBooks,
		To:     s.Tables.DeclinedBooks,
		Stamp:  stampRemoved,
		Status: models.NotificationRemoved,
	})
}

// ReinstateBook moves a declined book back to approved and notifies the seller.
func (s *Store) ReinstateBook(ctx context.Context, bookID string) (*models.Book, error) {
	return s.transitionBook(ctx, bookID, bookTransition{
		From:   s.Tables.DeclinedBooks,
		To:     s.Tables.ApprovedBooks,
		Stamp:  stampApproved,
		Status: models.NotificationApproved,
	})
}

type stampField int

const (
	stampApproved stampField = iota
	stampDeclined
	stampRemoved
)

type bookTransition struct {
	From   string
	To     string
	Stamp  stampField
	Status string
}

// transitionBook executes one moderation transition as a single atomic batch:
// destination put, source delete, seller notification put. The delete is
// conditioned on the book still being in the source table, so two admins
// racing on the same book cannot duplicate it across states.
func (s *Store) transitionBook(ctx context.Context, bookID string, t bookTransition) (*models.Book, error) {
	book, err := s.getBook(ctx, t.From, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get book for moderation: %w", err)
	}

	now := time.Now()
	switch t.Stamp {
	case stampApproved:
		book.ApprovedAt = &now
	case stampDeclined:
		book.DeclinedAt = &now
	case stampRemoved:
		book.RemovedAt = &now
	}

	bookAV, err := attributevalue.MarshalMap(book)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal book for moderation: %w", err)
	}

	notification := models.Notification{
		Id:        uuid.New().String(),
		SellerId:  book.SellerId,
		Message:   fmt.Sprintf("Your book %q has been %s.", book.Title, t.Status),
		Status:    t.Status,
		CreatedAt: now,
	}
	notificationAV, err := attributevalue.MarshalMap(notification)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Insert the book into the destination state.
				Put: &types.Put{
					TableName: aws.String(t.To),
					Item:      bookAV,
				},
			},
			{
				// Operation 2: Delete it from the source state.
				Delete: &types.Delete{
					TableName:           aws.String(t.From),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: bookID}},
					ConditionExpression: aws.String("attribute_exists(id)"),
				},
			},
			{
				// Operation 3: Notify the seller.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Notifications),
					Item:                notificationAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return nil, storage.ErrAlreadyModerated
				}
			}
		}
		return nil, fmt.Errorf("failed to execute moderation batch: %w", err)
	}

	return book, nil
}
