package repository

import (
	"context"
	"time"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultWebhookEventsTableName = "webhook_events"

type webhookEventItem struct {
	ID           string `dynamodbav:"id"`
	EventType    string `dynamodbav:"event_type"`
	Payload      string `dynamodbav:"payload"`
	Processed    bool   `dynamodbav:"processed"`
	ErrorMessage string `dynamodbav:"error_message,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	ProcessedAt  string `dynamodbav:"processed_at,omitempty"`
}

// WebhookEventDynamoRepository keeps the audit log of every gateway
// delivery. Rows are appended before dispatch and flipped to processed
// afterwards, so a crash mid-dispatch leaves a visible unprocessed row.
type WebhookEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb *dynamodb.Client) *WebhookEventDynamoRepository {
	return &WebhookEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBHOOK_EVENTS_TABLE", defaultWebhookEventsTableName),
	}
}

func (r *WebhookEventDynamoRepository) Append(ctx context.Context, rec entities.WebhookEventRecord) (entities.WebhookEventRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	av, err := attributevalue.MarshalMap(webhookEventItem{
		ID:        rec.ID,
		EventType: rec.EventType,
		Payload:   string(rec.Payload),
		Processed: rec.Processed,
		CreatedAt: timeToString(rec.CreatedAt),
	})
	if err != nil {
		return entities.WebhookEventRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WebhookEventRecord{}, err
	}
	return rec, nil
}

func (r *WebhookEventDynamoRepository) MarkProcessed(ctx context.Context, id string, errorMessage string) error {
	update := "SET processed = :processed, processed_at = :processed_at"
	values := map[string]types.AttributeValue{
		":processed":    &types.AttributeValueMemberBOOL{Value: errorMessage == ""},
		":processed_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
	}
	if errorMessage != "" {
		update += ", error_message = :error_message"
		values[":error_message"] = &types.AttributeValueMemberS{Value: errorMessage}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: values,
	})
	return err
}
