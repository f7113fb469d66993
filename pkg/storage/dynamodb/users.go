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

// CreateUser creates a new user document in DynamoDB.
func (s *Store) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.CreatedAt = time.Now()

	userAV, err := attributevalue.MarshalMap(user)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Users),
		Item:                userAV,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"), // Prevent overwriting existing users.
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("user with ID %s already exists", user.UserId)
		}
		return nil, fmt.Errorf("failed to create user in DynamoDB: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user from DynamoDB by their user ID.
func (s *Store) GetUser(ctx context.Context, userID string) (*models.User, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Users),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("user with ID %s not found", userID)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(result.Item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// AddToCart union-inserts a book id into the user's cart. The append is
// conditioned on the id being absent, so calling it twice leaves the id in
// the cart exactly once.
func (s *Store) AddToCart(ctx context.Context, userID, bookID string) error {
	// Verify the user exists first so a condition failure below can only
	// mean "already in cart".
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}

	idAV, err := attributevalue.Marshal([]string{bookID})
	if err != nil {
		return fmt.Errorf("failed to marshal book ID: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Users),
		Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
		UpdateExpression:    aws.String("SET cart = list_append(if_not_exists(cart, :empty), :new)"),
		ConditionExpression: aws.String("attribute_not_exists(cart) OR NOT contains(cart, :id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new":   idAV,
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":id":    &types.AttributeValueMemberS{Value: bookID},
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Already in the cart; adding again is a no-op.
			return nil
		}
		return fmt.Errorf("failed to add book to cart: %w", err)
	}

	return nil
}

// RemoveFromCart replaces the cart with the complete remaining membership
// computed by the caller. Field-level last-write-wins, as with the rest of
// the cart operations.
func (s *Store) RemoveFromCart(ctx context.Context, userID string, remaining []string) error {
	if remaining == nil {
		remaining = []string{}
	}
	remainingAV, err := attributevalue.Marshal(remaining)
	if err != nil {
		return fmt.Errorf("failed to marshal remaining cart: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Users),
		Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
		UpdateExpression:    aws.String("SET cart = :remaining"),
		ConditionExpression: aws.String("attribute_exists(user_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":remaining": remainingAV,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to remove books from cart: %w", err)
	}

	return nil
}

// MoveToWishlist removes a book from the cart and adds it to the wishlist
// in one document update.
func (s *Store) MoveToWishlist(ctx context.Context, userID, bookID string, remaining []string) error {
	if remaining == nil {
		remaining = []string{}
	}
	remainingAV, err := attributevalue.Marshal(remaining)
	if err != nil {
		return fmt.Errorf("failed to marshal remaining cart: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Users),
		Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
		UpdateExpression:    aws.String("SET cart = :remaining ADD wishlist :ids"),
		ConditionExpression: aws.String("attribute_exists(user_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":remaining": remainingAV,
			":ids":       &types.AttributeValueMemberSS{Value: []string{bookID}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to move book to wishlist: %w", err)
	}

	return nil
}

// ToggleWishlist adds the book to the wishlist if absent, removes it if
// present. Both arms are conditional single-document updates, so two tabs
// toggling concurrently cannot double-add or double-remove.
func (s *Store) ToggleWishlist(ctx context.Context, userID, bookID string) (bool, error) {
	ids := &types.AttributeValueMemberSS{Value: []string{bookID}}
	id := &types.AttributeValueMemberS{Value: bookID}

	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Users),
		Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
		UpdateExpression:    aws.String("ADD wishlist :ids"),
		ConditionExpression: aws.String("attribute_exists(user_id) AND (attribute_not_exists(wishlist) OR NOT contains(wishlist, :id))"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ids": ids,
			":id":  id,
		},
	})
	if err == nil {
		return true, nil
	}

	var condCheckFailed *types.ConditionalCheckFailedException
	if !errors.As(err, &condCheckFailed) {
		return false, fmt.Errorf("failed to add book to wishlist: %w", err)
	}

	// Already present (or the user is missing, which the delete below
	// surfaces): remove it instead.
	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Users),
		Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
		UpdateExpression:    aws.String("DELETE wishlist :ids"),
		ConditionExpression: aws.String("attribute_exists(user_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ids": ids,
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to remove book from wishlist: %w", err)
	}

	return false, nil
}

// AddAddress appends an address to the user's embedded address list,
// rejecting the write once the cap is reached.
func (s *Store) AddAddress(ctx context.Context, userID string, address models.Address) error {
	// Verify the user exists first so a condition failure below can only
	// mean the address cap, not a missing document.
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}

	addrAV, err := attributevalue.Marshal([]models.Address{address})
	if err != nil {
		return fmt.Errorf("failed to marshal address: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Users),
		Key:                 map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
		UpdateExpression:    aws.String("SET addresses = list_append(if_not_exists(addresses, :empty), :addr)"),
		ConditionExpression: aws.String("attribute_not_exists(addresses) OR size(addresses) < :cap"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":addr":  addrAV,
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":cap":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", models.MaxAddresses)},
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrAddressLimitReached
		}
		return fmt.Errorf("failed to add address: %w", err)
	}

	return nil
}
