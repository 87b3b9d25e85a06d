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
)

const (
	defaultCustomersTableName = "customers"
	payersTenantDocumentIndex = "tenant_document-index"
)

type payerItem struct {
	ID              string `dynamodbav:"id"`
	TenantID        string `dynamodbav:"tenant_id"`
	Name            string `dynamodbav:"name"`
	Document        string `dynamodbav:"document"`
	Email           string `dynamodbav:"email,omitempty"`
	Phone           string `dynamodbav:"phone,omitempty"`
	AsaasCustomerID string `dynamodbav:"asaas_customer_id,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// PayerDynamoRepository persists Payer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_document-index (PK: tenant_id, SK: document)
//
// The composite GSI makes the per-tenant uniqueness lookup a single Query.

type PayerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayerRepository = (*PayerDynamoRepository)(nil)

func NewPayerDynamoRepository(ddb *dynamodb.Client) *PayerDynamoRepository {
	return &PayerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *PayerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payer{}, nil
	}

	var it payerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payer{}, err
	}
	return fromPayerItem(it), nil
}

func (r *PayerDynamoRepository) GetByTenantAndDocument(ctx context.Context, tenantID, document string) (entities.Payer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(payersTenantDocumentIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid AND #doc = :doc"),
		ExpressionAttributeNames: map[string]string{
			"#doc": "document",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
			":doc": &types.AttributeValueMemberS{Value: document},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payer{}, nil
	}

	var it payerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payer{}, err
	}
	return fromPayerItem(it), nil
}

func (r *PayerDynamoRepository) Create(ctx context.Context, p entities.Payer) (entities.Payer, error) {
	av, err := attributevalue.MarshalMap(toPayerItem(p))
	if err != nil {
		return entities.Payer{}, err
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
		return entities.Payer{}, err
	}
	return p, nil
}

func (r *PayerDynamoRepository) UpdateAsaasCustomerID(ctx context.Context, id, asaasCustomerID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET asaas_customer_id = :cid, updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":        &types.AttributeValueMemberS{Value: asaasCustomerID},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
	})
	return err
}

func toPayerItem(p entities.Payer) payerItem {
	return payerItem{
		ID:              p.ID,
		TenantID:        p.TenantID,
		Name:            p.Name,
		Document:        p.Document,
		Email:           p.Email,
		Phone:           p.Phone,
		AsaasCustomerID: p.AsaasCustomerID,
		CreatedAt:       timeToString(p.CreatedAt),
		UpdatedAt:       timeToString(p.UpdatedAt),
	}
}

func fromPayerItem(it payerItem) entities.Payer {
	return entities.Payer{
		ID:              it.ID,
		TenantID:        it.TenantID,
		Name:            it.Name,
		Document:        it.Document,
		Email:           it.Email,
		Phone:           it.Phone,
		AsaasCustomerID: it.AsaasCustomerID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
