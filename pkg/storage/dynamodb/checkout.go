package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/storage"
)

// maxTransactItems is the DynamoDB limit on writes in one TransactWriteItems call.
const maxTransactItems = 100

// PlaceOrder executes the immediate checkout path as one atomic batch:
// one order and one notification per distinct seller, list_status=false on
// every purchased book, and the purchased ids removed from the buyer's cart.
//
// Every delist carries a list_status=true condition, so a book that was
// sold or removed between the freshness check and the commit cancels the
// whole batch instead of double-selling the unit.
func (s *Store) PlaceOrder(ctx context.Context, checkout *models.Checkout) (*models.CheckoutSummary, error) {
	if len(checkout.Items) == 0 {
		return nil, fmt.Errorf("checkout contains no items")
	}

	buyer, err := s.GetUser(ctx, checkout.UserId)
	if err != nil {
		return nil, fmt.Errorf("failed to get buyer: %w", err)
	}

	// 1. Freshness re-check: every selected book must still be approved and
	// purchasable. Unavailable items block the checkout outright.
	var unavailable []string
	for _, item := range checkout.Items {
		book, err := s.GetApprovedBook(ctx, item.BookId)
		if err != nil || !book.ListStatus {
			unavailable = append(unavailable, item.BookId)
		}
	}
	if len(unavailable) > 0 {
		return nil, fmt.Errorf("%w: %v", storage.ErrBookUnavailable, unavailable)
	}

	// 2. Group the line items by seller, preserving item order.
	var sellerOrder []string
	bySeller := make(map[string][]models.OrderItem)
	purchased := make(map[string]bool, len(checkout.Items))
	var subtotal int64
	for _, item := range checkout.Items {
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		if _, ok := bySeller[item.SellerId]; !ok {
			sellerOrder = append(sellerOrder, item.SellerId)
		}
		bySeller[item.SellerId] = append(bySeller[item.SellerId], item)
		purchased[item.BookId] = true
		subtotal += item.UnitPrice * int64(item.Quantity)
	}

	// 3. Build the batch: per-seller order + notification, per-book delist,
	// and the buyer's trimmed cart.
	now := time.Now()
	var transactItems []types.TransactWriteItem
	var orders []models.Order

	for _, sellerID := range sellerOrder {
		items := bySeller[sellerID]
		var amount int64
		for _, item := range items {
			amount += item.UnitPrice * int64(item.Quantity)
		}

		order := models.Order{
			Id:             uuid.New().String(),
			SellerId:       sellerID,
			UserId:         checkout.UserId,
			ProductDetails: items,
			Amount:         amount,
			Status:         models.PENDING,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		orderAV, err := attributevalue.MarshalMap(order)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal order: %w", err)
		}

		notification := models.Notification{
			Id:        uuid.New().String(),
			SellerId:  sellerID,
			Message:   fmt.Sprintf("You have a new order of %d book(s).", len(items)),
			Status:    models.NotificationOrder,
			CreatedAt: now,
		}
		notificationAV, err := attributevalue.MarshalMap(notification)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification: %w", err)
		}

		transactItems = append(transactItems,
			types.TransactWriteItem{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Orders),
					Item:                orderAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			types.TransactWriteItem{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Notifications),
					Item:                notificationAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		)
		orders = append(orders, order)
	}

	for _, item := range checkout.Items {
		transactItems = append(transactItems, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(s.Tables.ApprovedBooks),
				Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: item.BookId}},
				UpdateExpression:    aws.String("SET list_status = :false"),
				ConditionExpression: aws.String("list_status = :true"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":false": &types.AttributeValueMemberBOOL{Value: false},
					":true":  &types.AttributeValueMemberBOOL{Value: true},
				},
			},
		})
	}

	remaining := make([]string, 0, len(buyer.Cart))
	for _, id := range buyer.Cart {
		if !purchased[id] {
			remaining = append(remaining, id)
		}
	}
	remainingAV, err := attributevalue.Marshal(remaining)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal remaining cart: %w", err)
	}
	transactItems = append(transactItems, types.TransactWriteItem{
		Update: &types.Update{
			TableName:        aws.String(s.Tables.Users),
			Key:              map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: checkout.UserId}},
			UpdateExpression: aws.String("SET cart = :remaining"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":remaining": remainingAV,
			},
		},
	})

	if len(transactItems) > maxTransactItems {
		return nil, storage.ErrCheckoutTooLarge
	}

	slog.Log(ctx, slog.LevelDebug, "placing order",
		"user_id", checkout.UserId, "sellers", len(sellerOrder), "items", len(checkout.Items))

	// 4. Commit. Nothing before this point has mutated any document.
	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: transactItems,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return nil, storage.ErrBookUnavailable
				}
			}
		}
		return nil, fmt.Errorf("failed to execute checkout batch: %w", err)
	}

	return &models.CheckoutSummary{
		Orders:      orders,
		Subtotal:    subtotal,
		ShippingFee: checkout.ShippingFee,
		PlatformFee: models.PlatformFee(subtotal),
		Total:       subtotal + checkout.ShippingFee + models.PlatformFee(subtotal),
	}, nil
}
