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

const (
	defaultUsersTableName = "users"
	usersTenantIDIndex    = "tenant_id-index"
)

type collectorItem struct {
	ID                   string `dynamodbav:"id"`
	TenantID             string `dynamodbav:"tenant_id"`
	Name                 string `dynamodbav:"name"`
	Role                 string `dynamodbav:"role"`
	Branch               string `dynamodbav:"branch,omitempty"`
	CommissionPercentage string `dynamodbav:"commission_percentage,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
}

type CollectorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICollectorRepository = (*CollectorDynamoRepository)(nil)

func NewCollectorDynamoRepository(ddb *dynamodb.Client) *CollectorDynamoRepository {
	return &CollectorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *CollectorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Collector, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Collector{}, err
	}
	if len(out.Item) == 0 {
		return entities.Collector{}, nil
	}

	var it collectorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Collector{}, err
	}
	return fromCollectorItem(it), nil
}

// ListByTenantAndRoles queries the tenant GSI and filters by role. Role sets
// are small (at most three values) so the filter expression is built inline.
func (r *CollectorDynamoRepository) ListByTenantAndRoles(ctx context.Context, tenantID string, roles []entities.UserRole) ([]entities.Collector, error) {
	values := map[string]types.AttributeValue{
		":tid": &types.AttributeValueMemberS{Value: tenantID},
	}
	filter := ""
	for i, role := range roles {
		placeholder := ":role" + strconv.Itoa(i)
		values[placeholder] = &types.AttributeValueMemberS{Value: string(role)}
		if i > 0 {
			filter += ", "
		}
		filter += placeholder
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(usersTenantIDIndex),
		KeyConditionExpression:    aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: values,
	}
	if filter != "" {
		in.FilterExpression = aws.String("#role IN (" + filter + ")")
		in.ExpressionAttributeNames = map[string]string{"#role": "role"}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	collectors := make([]entities.Collector, 0, len(out.Items))
	for _, raw := range out.Items {
		var it collectorItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		collectors = append(collectors, fromCollectorItem(it))
	}
	return collectors, nil
}

func fromCollectorItem(it collectorItem) entities.Collector {
	pct, _ := strconv.ParseFloat(it.CommissionPercentage, 64)
	return entities.Collector{
		ID:                   it.ID,
		TenantID:             it.TenantID,
		Name:                 it.Name,
		Role:                 entities.UserRole(it.Role),
		Branch:               it.Branch,
		CommissionPercentage: pct,
		CreatedAt:            parseTime(it.CreatedAt),
	}
}
