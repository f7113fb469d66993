package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/kiran/bookbazaar/pkg/models"
)

const sellerNotificationsGSI = "seller_id-created_at-index"

// ListNotificationsBySeller retrieves a seller's most recent notifications,
// newest first.
func (s *Store) ListNotificationsBySeller(ctx context.Context, sellerID string, limit int32) ([]models.Notification, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Notifications),
		IndexName:              aws.String(sellerNotificationsGSI),
		KeyConditionExpression: aws.String("seller_id = :sellerID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sellerID": &types.AttributeValueMemberS{Value: sellerID},
		},
		ScanIndexForward: aws.Bool(false), // Sort by created_at in descending order
		Limit:            &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}

	var notifications []models.Notification
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &notifications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notifications: %w", err)
	}

	return notifications, nil
}

// MarkNotificationRead flips the read flag on a notification. Nothing else
// on a notification ever mutates.
func (s *Store) MarkNotificationRead(ctx context.Context, notificationID string) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(s.Tables.Notifications),
		Key:                      map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: notificationID}},
		UpdateExpression:         aws.String("SET #read = :true"),
		ConditionExpression:      aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{"#read": "read"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}
