package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Wany917/leo-backend-pa-sub000/pkg/models"
	"github.com/Wany917/leo-backend-pa-sub000/pkg/storage"
)

// CreditSettlement applies the distribution of one captured payment: the
// recipient's wallet is credited with their share and two ledger rows are
// written, the recipient credit and the platform commission.
//
// The ledger row ids are derived from the payment's external id, so the whole
// transaction is the idempotency mechanism: a replayed capture webhook or a
// redelivered settlement job hits the attribute_not_exists condition and the
// call reports applied=false without touching any balance.
func (s *Store) CreditSettlement(ctx context.Context, recipientUserID string, recipientAmount, commission int64, paymentExternalID string, kind models.SettlementKind) (*models.Wallet, bool, error) {
	if recipientAmount <= 0 {
		return nil, false, storage.ErrInvalidAmount
	}

	wallet, err := s.GetOrCreateWallet(ctx, recipientUserID)
	if err != nil {
		return nil, false, err
	}

	now := time.Now()
	meta := map[string]string{
		"payment_intent_id": paymentExternalID,
		"kind":              string(kind),
	}

	creditEntry := models.WalletTransaction{
		Id:                "settle-" + paymentExternalID,
		WalletId:          wallet.Id,
		UserId:            recipientUserID,
		Type:              models.TxCredit,
		Amount:            recipientAmount,
		BalanceBefore:     wallet.Available,
		BalanceAfter:      wallet.Available + recipientAmount,
		Description:       fmt.Sprintf("Settlement for payment %s", paymentExternalID),
		ExternalReference: paymentExternalID,
		Status:            models.TxCompleted,
		Metadata:          meta,
		CreatedAt:         now,
		UpdatedAt:         now,
		GSI1PK:            ledgerPartition,
	}
	commissionEntry := models.WalletTransaction{
		Id:                "fee-" + paymentExternalID,
		WalletId:          models.PlatformAccountID,
		UserId:            models.PlatformAccountID,
		Type:              models.TxCommission,
		Amount:            commission,
		Description:       fmt.Sprintf("Platform commission for payment %s", paymentExternalID),
		ExternalReference: paymentExternalID,
		Status:            models.TxCompleted,
		Metadata:          meta,
		CreatedAt:         now,
		UpdatedAt:         now,
		GSI1PK:            ledgerPartition,
	}

	creditAV, err := attributevalue.MarshalMap(creditEntry)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal credit entry: %w", err)
	}
	commissionAV, err := attributevalue.MarshalMap(commissionEntry)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal commission entry: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: credit the recipient's wallet.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Wallets),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: recipientUserID},
					},
					UpdateExpression:    aws.String("SET available_balance = available_balance + :amount, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", recipientAmount)},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
						":now":     nowAV,
					},
				},
			},
			{
				// Operation 2: recipient credit row, keyed on the payment id.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.WalletTransactions),
					Item:                creditAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 3: durable platform commission row.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.WalletTransactions),
					Item:                commissionAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if transactConditionFailedAt(err, 1) || transactConditionFailedAt(err, 2) {
			// Already settled; replay is a no-op.
			return nil, false, nil
		}
		if transactConditionFailedAt(err, 0) {
			return nil, false, storage.ErrVersionConflict
		}
		return nil, false, fmt.Errorf("failed to execute settlement credit: %w", err)
	}

	wallet.Available += recipientAmount
	wallet.Version++
	wallet.UpdatedAt = now
	return wallet, true, nil
}
