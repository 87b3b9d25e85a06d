package repository

import (
	"context"
	"strconv"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDailySummariesTableName = "daily_summaries"

type dailySummaryItem struct {
	ID               string  `dynamodbav:"id"`
	TenantID         string  `dynamodbav:"tenant_id"`
	CollectorID      string  `dynamodbav:"collector_id"`
	Date             string  `dynamodbav:"date"`
	ChargesCollected int     `dynamodbav:"charges_collected"`
	CollectedAmount  float64 `dynamodbav:"collected_amount"`
	CommissionEarned float64 `dynamodbav:"commission_earned"`
}

// DailySummaryDynamoRepository aggregates settled charges per collector per
// day. Increment is a single UpdateItem with ADD, so concurrent webhook
// deliveries accumulate instead of overwriting each other.
type DailySummaryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDailySummaryRepository = (*DailySummaryDynamoRepository)(nil)

func NewDailySummaryDynamoRepository(ddb *dynamodb.Client) *DailySummaryDynamoRepository {
	return &DailySummaryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DAILY_SUMMARIES_TABLE", defaultDailySummariesTableName),
	}
}

func (r *DailySummaryDynamoRepository) Increment(ctx context.Context, tenantID, collectorID, date string, amount, commission float64) error {
	key := entities.DailySummaryKey(tenantID, collectorID, date)

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression: aws.String(
			"ADD charges_collected :one, collected_amount :amount, commission_earned :commission " +
				"SET tenant_id = if_not_exists(tenant_id, :tid), " +
				"collector_id = if_not_exists(collector_id, :cid), " +
				"#date = if_not_exists(#date, :date)",
		),
		ExpressionAttributeNames: map[string]string{
			"#date": "date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":amount":     &types.AttributeValueMemberN{Value: floatToString(amount)},
			":commission": &types.AttributeValueMemberN{Value: floatToString(commission)},
			":tid":        &types.AttributeValueMemberS{Value: tenantID},
			":cid":        &types.AttributeValueMemberS{Value: collectorID},
			":date":       &types.AttributeValueMemberS{Value: date},
		},
	})
	return err
}

func (r *DailySummaryDynamoRepository) Get(ctx context.Context, tenantID, collectorID, date string) (entities.DailySummary, error) {
	key := entities.DailySummaryKey(tenantID, collectorID, date)

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DailySummary{}, err
	}
	if len(out.Item) == 0 {
		return entities.DailySummary{}, nil
	}

	var it dailySummaryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DailySummary{}, err
	}
	return entities.DailySummary{
		ID:               it.ID,
		TenantID:         it.TenantID,
		CollectorID:      it.CollectorID,
		Date:             it.Date,
		ChargesCollected: it.ChargesCollected,
		CollectedAmount:  roundCents(it.CollectedAmount),
		CommissionEarned: roundCents(it.CommissionEarned),
	}, nil
}

// roundCents trims float drift accumulated across many ADD operations.
func roundCents(v float64) float64 {
	n, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return n
}
