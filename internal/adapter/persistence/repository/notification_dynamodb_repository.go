package repository

import (
	"context"
	"log"
	"time"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const defaultNotificationsTableName = "notifications"

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Title     string `dynamodbav:"title"`
	Message   string `dynamodbav:"message"`
	Type      string `dynamodbav:"type"`
	CreatedAt string `dynamodbav:"created_at"`
}

// DynamoNotifier fans a notification out to every user in the tenant
// holding one of the given roles, one row per recipient.
type DynamoNotifier struct {
	ddb        *dynamodb.Client
	collectors interfaces.ICollectorRepository
	tableName  string
}

var _ interfaces.INotifier = (*DynamoNotifier)(nil)

func NewDynamoNotifier(ddb *dynamodb.Client, collectors interfaces.ICollectorRepository) *DynamoNotifier {
	return &DynamoNotifier{
		ddb:        ddb,
		collectors: collectors,
		tableName:  getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (n *DynamoNotifier) NotifyRoles(ctx context.Context, tenantID string, roles []entities.UserRole, title, message, kind string) error {
	recipients, err := n.collectors.ListByTenantAndRoles(ctx, tenantID, roles)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		log.Printf("[notifier][persistence] no recipients for tenant %s with roles %v", tenantID, roles)
		return nil
	}

	now := time.Now()
	for _, recipient := range recipients {
		av, err := attributevalue.MarshalMap(notificationItem{
			ID:        uuid.NewString(),
			UserID:    recipient.ID,
			Title:     title,
			Message:   message,
			Type:      kind,
			CreatedAt: timeToString(now),
		})
		if err != nil {
			return err
		}
		if _, err := n.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(n.tableName),
			Item:      av,
		}); err != nil {
			return err
		}
	}
	return nil
}
