package database

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// tableSpec declares one table plus its global secondary indexes. Attribute
// definitions cover every key attribute referenced by the table or a GSI.
type tableSpec struct {
	name       string
	hashKey    string
	rangeKey   string
	attributes []types.AttributeDefinition
	gsis       []types.GlobalSecondaryIndex
}

func stringAttr(name string) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
}

func gsi(indexName, hashKey string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName: aws.String(indexName),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(hashKey), KeyType: types.KeyTypeHash},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}

func gsiComposite(indexName, hashKey, rangeKey string) types.GlobalSecondaryIndex {
	idx := gsi(indexName, hashKey)
	idx.KeySchema = append(idx.KeySchema, types.KeySchemaElement{AttributeName: aws.String(rangeKey), KeyType: types.KeyTypeRange})
	return idx
}

func tableSpecs() []tableSpec {
	return []tableSpec{
		{
			name:       getenvDefault("TENANTS_TABLE", "tenants"),
			hashKey:    "id",
			attributes: []types.AttributeDefinition{stringAttr("id")},
		},
		{
			name:       getenvDefault("CUSTOMERS_TABLE", "customers"),
			hashKey:    "id",
			attributes: []types.AttributeDefinition{stringAttr("id"), stringAttr("tenant_id"), stringAttr("document")},
			gsis:       []types.GlobalSecondaryIndex{gsiComposite("tenant_document-index", "tenant_id", "document")},
		},
		{
			name:       getenvDefault("USERS_TABLE", "users"),
			hashKey:    "id",
			attributes: []types.AttributeDefinition{stringAttr("id"), stringAttr("tenant_id")},
			gsis:       []types.GlobalSecondaryIndex{gsi("tenant_id-index", "tenant_id")},
		},
		{
			name:       getenvDefault("CHARGES_TABLE", "charges"),
			hashKey:    "id",
			attributes: []types.AttributeDefinition{stringAttr("id"), stringAttr("asaas_payment_id"), stringAttr("tenant_id")},
			gsis: []types.GlobalSecondaryIndex{
				gsi("payment_id-index", "asaas_payment_id"),
				gsi("tenant_id-index", "tenant_id"),
			},
		},
		{
			name:       getenvDefault("WEBHOOK_EVENTS_TABLE", "webhook_events"),
			hashKey:    "id",
			attributes: []types.AttributeDefinition{stringAttr("id")},
		},
		{
			name:       getenvDefault("DAILY_SUMMARIES_TABLE", "daily_summaries"),
			hashKey:    "id",
			attributes: []types.AttributeDefinition{stringAttr("id")},
		},
		{
			name:       getenvDefault("NOTIFICATIONS_TABLE", "notifications"),
			hashKey:    "id",
			attributes: []types.AttributeDefinition{stringAttr("id")},
		},
		{
			name:       getenvDefault("RATE_LIMITS_TABLE", "rate_limits"),
			hashKey:    "rl_key",
			rangeKey:   "created_at",
			attributes: []types.AttributeDefinition{stringAttr("rl_key"), stringAttr("created_at")},
		},
	}
}

// EnsureTables creates any missing table. Meant for local/sandbox endpoints;
// in AWS proper the tables are provisioned by infrastructure tooling and this
// is a cheap sequence of DescribeTable calls.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client) error {
	for _, spec := range tableSpecs() {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.name)})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return err
		}

		keySchema := []types.KeySchemaElement{
			{AttributeName: aws.String(spec.hashKey), KeyType: types.KeyTypeHash},
		}
		if spec.rangeKey != "" {
			keySchema = append(keySchema, types.KeySchemaElement{AttributeName: aws.String(spec.rangeKey), KeyType: types.KeyTypeRange})
		}

		in := &dynamodb.CreateTableInput{
			TableName:            aws.String(spec.name),
			KeySchema:            keySchema,
			AttributeDefinitions: spec.attributes,
			BillingMode:          types.BillingModePayPerRequest,
		}
		if len(spec.gsis) > 0 {
			in.GlobalSecondaryIndexes = spec.gsis
		}

		if _, err := ddb.CreateTable(ctx, in); err != nil {
			return err
		}
		log.Printf("[database] created table %s", spec.name)
	}
	return nil
}
