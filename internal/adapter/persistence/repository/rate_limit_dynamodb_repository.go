package repository

import (
	"context"
	"time"

	"cobranca_campo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultRateLimitsTableName = "rate_limits"

// RateLimitDynamoRepository stores one row per request under a composite
// key (rl_key, created_at). The sort key carries a uuid suffix so two
// requests landing on the same nanosecond still get distinct rows.
type RateLimitDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateLimitRepository = (*RateLimitDynamoRepository)(nil)

func NewRateLimitDynamoRepository(ddb *dynamodb.Client) *RateLimitDynamoRepository {
	return &RateLimitDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATE_LIMITS_TABLE", defaultRateLimitsTableName),
	}
}

func (r *RateLimitDynamoRepository) PruneBefore(ctx context.Context, key string, cutoff time.Time) error {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("rl_key = :key AND created_at < :cutoff"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key":    &types.AttributeValueMemberS{Value: key},
			":cutoff": &types.AttributeValueMemberS{Value: timeToString(cutoff)},
		},
		ProjectionExpression: aws.String("rl_key, created_at"),
	})
	if err != nil {
		return err
	}

	for _, item := range out.Items {
		if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"rl_key":     item["rl_key"],
				"created_at": item["created_at"],
			},
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *RateLimitDynamoRepository) Count(ctx context.Context, key string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("rl_key = :key"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key": &types.AttributeValueMemberS{Value: key},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *RateLimitDynamoRepository) Add(ctx context.Context, key string, at time.Time) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"rl_key":     &types.AttributeValueMemberS{Value: key},
			"created_at": &types.AttributeValueMemberS{Value: timeToString(at) + "#" + uuid.NewString()},
		},
	})
	return err
}
