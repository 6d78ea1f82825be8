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

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// GetOrCreateWallet returns the user's active wallet, creating one with zero
// balances on first use. A concurrent create is resolved by re-reading.
func (s *Store) GetOrCreateWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	wallet, err := s.getWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	now := time.Now()
	fresh := &models.Wallet{
		Id:        uuid.New().String(),
		UserId:    userID,
		IsActive:  true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	walletAV, err := attributevalue.MarshalMap(fresh)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Wallets),
		Item:                walletAV,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Lost the create race; the other writer's wallet wins.
			existing, getErr := s.getWallet(ctx, userID)
			if getErr != nil {
				return nil, getErr
			}
			if existing == nil {
				return nil, fmt.Errorf("wallet for user %s vanished after create conflict", userID)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create wallet in DynamoDB: %w", err)
	}

	return fresh, nil
}

// getWallet retrieves a wallet by user id, returning nil when absent.
func (s *Store) getWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet user ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Wallets),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var wallet models.Wallet
	if err := attributevalue.UnmarshalMap(result.Item, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}
	return &wallet, nil
}

// ListWallets retrieves all wallets.
func (s *Store) ListWallets(ctx context.Context) ([]models.Wallet, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.Tables.Wallets),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan wallets table: %w", err)
	}

	var wallets []models.Wallet
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &wallets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallets: %w", err)
	}
	return wallets, nil
}

// UpdateWalletSettings replaces bank details and auto-payout configuration.
func (s *Store) UpdateWalletSettings(ctx context.Context, userID string, settings storage.WalletSettings) (*models.Wallet, error) {
	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Wallets),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression: aws.String("SET iban = :iban, bic = :bic, auto_payout_enabled = :ape, auto_payout_threshold = :apt, connected_account_id = :acct, version = version + :inc, updated_at = :now"),
		ConditionExpression: aws.String("version = :version AND is_active = :active"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iban":    &types.AttributeValueMemberS{Value: settings.Iban},
			":bic":     &types.AttributeValueMemberS{Value: settings.Bic},
			":ape":     &types.AttributeValueMemberBOOL{Value: settings.AutoPayoutEnabled},
			":apt":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", settings.AutoPayoutThreshold)},
			":acct":    &types.AttributeValueMemberS{Value: settings.ConnectedAccountId},
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
			":active":  &types.AttributeValueMemberBOOL{Value: true},
			":inc":     &types.AttributeValueMemberN{Value: "1"},
			":now":     nowAV,
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to update wallet settings: %w", err)
	}

	wallet.Iban = settings.Iban
	wallet.Bic = settings.Bic
	wallet.AutoPayoutEnabled = settings.AutoPayoutEnabled
	wallet.AutoPayoutThreshold = settings.AutoPayoutThreshold
	wallet.ConnectedAccountId = settings.ConnectedAccountId
	wallet.Version++
	return wallet, nil
}

// DeactivateWallet soft-disables a wallet. Wallets are never hard-deleted.
func (s *Store) DeactivateWallet(ctx context.Context, userID string) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Wallets),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:    aws.String("SET is_active = :inactive"),
		ConditionExpression: aws.String("attribute_exists(user_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inactive": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("wallet for user ID %s not found", userID)
		}
		return fmt.Errorf("failed to deactivate wallet: %w", err)
	}
	return nil
}

// ledgerPartition is the GSI partition shared by all ledger rows so they can
// be listed globally in timestamp order.
const ledgerPartition = "WALLET_TX"

// applyWalletMutation executes a balance mutation and its ledger row as one
// DynamoDB transaction. updateExpr mutates the wallet's balances; the version
// check serializes concurrent mutations on the same wallet, and extraCond
// re-asserts the balance guard at the storage layer. The ledger row's id is
// its idempotency key: a duplicate id makes the whole transaction fail.
func (s *Store) applyWalletMutation(ctx context.Context, wallet *models.Wallet, updateExpr, extraCond string, extraValues map[string]types.AttributeValue, entry *models.WalletTransaction) error {
	now := time.Now()
	entry.WalletId = wallet.Id
	entry.UserId = wallet.UserId
	entry.CreatedAt = now
	entry.UpdatedAt = now
	entry.GSI1PK = ledgerPartition

	entryAV, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	condition := "version = :version AND is_active = :active"
	if extraCond != "" {
		condition = condition + " AND " + extraCond
	}

	values := map[string]types.AttributeValue{
		":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
		":active":  &types.AttributeValueMemberBOOL{Value: true},
		":inc":     &types.AttributeValueMemberN{Value: "1"},
		":now":     nowAV,
		":amount":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", entry.Amount)},
	}
	for k, v := range extraValues {
		values[k] = v
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: mutate the wallet balances.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Wallets),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: wallet.UserId},
					},
					UpdateExpression:          aws.String(updateExpr + ", version = version + :inc, updated_at = :now"),
					ConditionExpression:       aws.String(condition),
					ExpressionAttributeValues: values,
				},
			},
			{
				// Operation 2: append the matching ledger row.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.WalletTransactions),
					Item:                entryAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if transactConditionFailedAt(err, 0) {
			return storage.ErrVersionConflict
		}
		return fmt.Errorf("failed to execute wallet mutation: %w", err)
	}
	return nil
}
