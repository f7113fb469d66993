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
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/storage"
)

const stalePaymentIntentGSI = "status-created_at-index"

// SavePaymentIntent persists the pending checkout payload before the buyer
// is redirected to the gateway. No storefront document changes here.
func (s *Store) SavePaymentIntent(ctx context.Context, intent *models.PaymentIntent) (*models.PaymentIntent, error) {
	now := time.Now()
	intent.Status = models.INTENT_PENDING
	intent.CreatedAt = now
	intent.UpdatedAt = now

	intentAV, err := attributevalue.MarshalMap(intent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment intent: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.PaymentIntents),
		Item:                intentAV,
		ConditionExpression: aws.String("attribute_not_exists(purchase_order_id)"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save payment intent: %w", err)
	}

	return intent, nil
}

// GetPaymentIntent retrieves a payment intent by its purchase order id.
func (s *Store) GetPaymentIntent(ctx context.Context, purchaseOrderID string) (*models.PaymentIntent, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"purchase_order_id": purchaseOrderID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal purchase order ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.PaymentIntents),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get payment intent from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("payment intent %s not found", purchaseOrderID)
	}

	var intent models.PaymentIntent
	if err := attributevalue.UnmarshalMap(result.Item, &intent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment intent: %w", err)
	}

	return &intent, nil
}

// CompletePaymentIntent atomically writes the order-intent document and
// marks the intent COMPLETED. The status update is conditioned on the
// intent still being PENDING so a verification retry can never write the
// order twice.
func (s *Store) CompletePaymentIntent(ctx context.Context, intent *models.PaymentIntent, order *models.Order) error {
	orderAV, err := attributevalue.MarshalMap(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order intent: %w", err)
	}

	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Write the order-intent document.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Orders),
					Item:                orderAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 2: Finalize the intent.
				Update: &types.Update{
					TableName:                aws.String(s.Tables.PaymentIntents),
					Key:                      map[string]types.AttributeValue{"purchase_order_id": &types.AttributeValueMemberS{Value: intent.PurchaseOrderId}},
					UpdateExpression:         aws.String("SET #status = :completed, pidx = :pidx, updated_at = :now"),
					ConditionExpression:      aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{"#status": "status"},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed": &types.AttributeValueMemberS{Value: string(models.INTENT_COMPLETED)},
						":pending":   &types.AttributeValueMemberS{Value: string(models.INTENT_PENDING)},
						":pidx":      &types.AttributeValueMemberS{Value: intent.Pidx},
						":now":       nowAV,
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return storage.ErrIntentNotPending
				}
			}
		}
		return fmt.Errorf("failed to execute payment completion batch: %w", err)
	}

	return nil
}

// FailPaymentIntent marks an intent FAILED after the gateway reported a
// terminal non-completed status.
func (s *Store) FailPaymentIntent(ctx context.Context, purchaseOrderID string) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(s.Tables.PaymentIntents),
		Key:                      map[string]types.AttributeValue{"purchase_order_id": &types.AttributeValueMemberS{Value: purchaseOrderID}},
		UpdateExpression:         aws.String("SET #status = :failed, updated_at = :now"),
		ConditionExpression:      aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":failed":  &types.AttributeValueMemberS{Value: string(models.INTENT_FAILED)},
			":pending": &types.AttributeValueMemberS{Value: string(models.INTENT_PENDING)},
			":now":     nowAV,
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrIntentNotPending
		}
		return fmt.Errorf("failed to fail payment intent: %w", err)
	}

	return nil
}

// GetStalePaymentIntents retrieves intents that have been PENDING for longer
// than the specified duration, for the reconciliation sweep.
func (s *Store) GetStalePaymentIntents(ctx context.Context, maxAge time.Duration) ([]models.PaymentIntent, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.PaymentIntents),
		IndexName:              aws.String(stalePaymentIntentGSI),
		KeyConditionExpression: aws.String("#status = :status AND created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.INTENT_PENDING)},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stale payment intents: %w", err)
	}

	var intents []models.PaymentIntent
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &intents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stale payment intents: %w", err)
	}

	return intents, nil
}
