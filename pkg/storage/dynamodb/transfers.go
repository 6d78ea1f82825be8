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

// BeginTransfer debits the available balance together with a pending
// type=transfer ledger row. The row stays pending until the external transfer
// either completes (CompleteTransfer) or fails (FailTransfer); a wallet debit
// without one of those outcomes is a bug the reconciliation job can spot.
func (s *Store) BeginTransfer(ctx context.Context, userID string, amount int64, description string) (*models.Wallet, *models.WalletTransaction, error) {
	if amount <= 0 {
		return nil, nil, storage.ErrInvalidAmount
	}

	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if wallet.Available < amount {
		return nil, nil, storage.ErrInsufficientAvailableBalance
	}

	entry := &models.WalletTransaction{
		Id:            uuid.New().String(),
		Type:          models.TxTransfer,
		Amount:        amount,
		BalanceBefore: wallet.Available,
		BalanceAfter:  wallet.Available - amount,
		Description:   description,
		Status:        models.TxPending,
	}

	err = s.applyWalletMutation(ctx, wallet,
		"SET available_balance = available_balance - :amount",
		"available_balance >= :amount", nil, entry)
	if err != nil {
		return nil, nil, err
	}

	wallet.Available -= amount
	wallet.Version++
	return wallet, entry, nil
}

// CompleteTransfer marks a pending transfer row completed, attaching the
// provider's transfer id.
func (s *Store) CompleteTransfer(ctx context.Context, transactionID, transferID string) error {
	return s.finishTransfer(ctx, transactionID, models.TxCompleted, transferID)
}

// FailTransfer compensates a pending transfer: the debited amount is credited
// back and the transfer row is marked failed, in one transaction.
func (s *Store) FailTransfer(ctx context.Context, transactionID, userID string, amount int64) error {
	wallet, err := s.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: return the debited amount to the wallet.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Wallets),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: userID},
					},
					UpdateExpression:    aws.String("SET available_balance = available_balance + :amount, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
						":now":     nowAV,
					},
				},
			},
			{
				// Operation 2: mark the transfer row failed, but only while
				// still pending so a completed transfer is never clobbered.
				Update: &types.Update{
					TableName: aws.String(s.Tables.WalletTransactions),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: transactionID},
					},
					UpdateExpression:    aws.String("SET #status = :failed, updated_at = :now"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":failed":  &types.AttributeValueMemberS{Value: string(models.TxFailed)},
						":pending": &types.AttributeValueMemberS{Value: string(models.TxPending)},
						":now":     nowAV,
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if transactConditionFailedAt(err, 0) {
			return storage.ErrVersionConflict
		}
		return fmt.Errorf("failed to compensate transfer %s: %w", transactionID, err)
	}
	return nil
}

func (s *Store) finishTransfer(ctx context.Context, transactionID string, status models.WalletTransactionStatus, transferID string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.WalletTransactions),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: transactionID},
		},
		UpdateExpression:    aws.String("SET #status = :status, external_reference = :ref, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":ref":     &types.AttributeValueMemberS{Value: transferID},
			":pending": &types.AttributeValueMemberS{Value: string(models.TxPending)},
			":now":     nowAV,
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("transfer %s is not pending", transactionID)
		}
		return fmt.Errorf("failed to finish transfer %s: %w", transactionID, err)
	}
	return nil
}
