package repository

import (
	"context"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTenantsTableName = "tenants"

type tenantItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	AsaasAPIKey string `dynamodbav:"asaas_api_key,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// TenantDynamoRepository persists Tenant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TenantDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITenantRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb *dynamodb.Client) *TenantDynamoRepository {
	return &TenantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TENANTS_TABLE", defaultTenantsTableName),
	}
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tenant{}, nil
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tenant{}, err
	}
	return entities.Tenant{
		ID:          it.ID,
		Name:        it.Name,
		AsaasAPIKey: it.AsaasAPIKey,
		CreatedAt:   parseTime(it.CreatedAt),
	}, nil
}

func (r *TenantDynamoRepository) Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	av, err := attributevalue.MarshalMap(tenantItem{
		ID:          t.ID,
		Name:        t.Name,
		AsaasAPIKey: t.AsaasAPIKey,
		CreatedAt:   timeToString(t.CreatedAt),
	})
	if err != nil {
		return entities.Tenant{}, err
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
		return entities.Tenant{}, err
	}
	return t, nil
}
