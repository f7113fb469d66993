package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/storage"
)

const (
	sellerOrdersGSI = "seller_id-index"
	buyerOrdersGSI  = "user_id-index"
)

// GetOrder retrieves an order from DynamoDB by its ID.
func (s *Store) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": orderID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Orders),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get order from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("order with ID %s not found", orderID)
	}

	var order models.Order
	if err := attributevalue.UnmarshalMap(result.Item, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}

	return &order, nil
}

// ListOrdersBySeller retrieves all orders addressed to a seller.
func (s *Store) ListOrdersBySeller(ctx context.Context, sellerID string) ([]models.Order, error) {
	return s.queryOrders(ctx, sellerOrdersGSI, "seller_id", sellerID)
}

// ListOrdersByBuyer retrieves all orders placed by a buyer.
func (s *Store) ListOrdersByBuyer(ctx context.Context, userID string) ([]models.Order, error) {
	return s.queryOrders(ctx, buyerOrdersGSI, "user_id", userID)
}

func (s *Store) queryOrders(ctx context.Context, index, attr, value string) ([]models.Order, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Orders),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(fmt.Sprintf("%s = :v", attr)),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	var orders []models.Order
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &orders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal orders: %w", err)
	}

	return orders, nil
}

// AcceptOrder transitions a pending order to accepted.
func (s *Store) AcceptOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.settleOrder(ctx, orderID, models.ACCEPTED, "")
}

// CancelOrder transitions a pending order to cancelled. The reason is
// mandatory and checked before any write is attempted.
func (s *Store) CancelOrder(ctx context.Context, orderID, reason string) (*models.Order, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, storage.ErrCancelReasonRequired
	}
	return s.settleOrder(ctx, orderID, models.CANCELLED, reason)
}

// settleOrder performs the single-document status transition, conditioned
// on the order still being pending. Accepted and cancelled are terminal.
func (s *Store) settleOrder(ctx context.Context, orderID string, status models.OrderStatus, reason string) (*models.Order, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	updateExpr := "SET #status = :status, updated_at = :now"
	values := map[string]types.AttributeValue{
		":status":  &types.AttributeValueMemberS{Value: string(status)},
		":pending": &types.AttributeValueMemberS{Value: string(models.PENDING)},
		":now":     nowAV,
	}
	if reason != "" {
		updateExpr += ", cancel_reason = :reason"
		values[":reason"] = &types.AttributeValueMemberS{Value: reason}
	}

	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(s.Tables.Orders),
		Key:                      map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: orderID}},
		UpdateExpression:         aws.String(updateExpr),
		ConditionExpression:      aws.String("attribute_exists(id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: values,
		ReturnValues:             types.ReturnValueAllNew,
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrOrderNotPending
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	var order models.Order
	if err := attributevalue.UnmarshalMap(result.Attributes, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated order: %w", err)
	}

	return &order, nil
}
