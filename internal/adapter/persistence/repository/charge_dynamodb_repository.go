package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChargesTableName = "charges"
	chargesPaymentIDIndex   = "payment_id-index"
	chargesTenantIDIndex    = "tenant_id-index"
)

type chargeItem struct {
	ID            string `dynamodbav:"id"`
	TenantID      string `dynamodbav:"tenant_id"`
	PayerID       string `dynamodbav:"payer_id"`
	CollectorID   string `dynamodbav:"collector_id,omitempty"`
	Description   string `dynamodbav:"description"`
	Amount        string `dynamodbav:"amount"`
	DueDate       string `dynamodbav:"due_date"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Status        string `dynamodbav:"status"`
	Installments  int    `dynamodbav:"installments,omitempty"`

	AsaasPaymentID  string `dynamodbav:"asaas_payment_id,omitempty"`
	AsaasInvoiceURL string `dynamodbav:"asaas_invoice_url,omitempty"`
	AsaasPixCode    string `dynamodbav:"asaas_pix_code,omitempty"`

	PaidAt     string `dynamodbav:"paid_at,omitempty"`
	PaidAmount string `dynamodbav:"paid_amount,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ChargeDynamoRepository persists Charge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: asaas_payment_id)
//   - GSI: tenant_id-index (PK: tenant_id)
//
// Status transitions ride on ConditionExpression so racing webhook
// deliveries can never blindly overwrite each other; a failed condition is
// reported as (false, nil), not as an error.

type ChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb *dynamodb.Client) *ChargeDynamoRepository {
	return &ChargeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHARGES_TABLE", defaultChargesTableName),
	}
}

func (r *ChargeDynamoRepository) Create(ctx context.Context, c entities.Charge) (entities.Charge, error) {
	av, err := attributevalue.MarshalMap(toChargeItem(c))
	if err != nil {
		return entities.Charge{}, err
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
		return entities.Charge{}, err
	}
	return c, nil
}

func (r *ChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Item) == 0 {
		return entities.Charge{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func (r *ChargeDynamoRepository) GetByAsaasPaymentID(ctx context.Context, asaasPaymentID string) (entities.Charge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesPaymentIDIndex),
		KeyConditionExpression: aws.String("asaas_payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: asaasPaymentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Items) == 0 {
		return entities.Charge{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func (r *ChargeDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Charge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	charges := make([]entities.Charge, 0, len(out.Items))
	for _, raw := range out.Items {
		var it chargeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		charges = append(charges, fromChargeItem(it))
	}
	return charges, nil
}

func (r *ChargeDynamoRepository) MarkReceived(ctx context.Context, id string, paidAt time.Time, paidAmount float64) (bool, error) {
	return r.conditionalUpdate(ctx, id,
		"SET #status = :to, paid_at = :paid_at, paid_amount = :paid_amount, updated_at = :updated_at",
		"attribute_exists(#id) AND #status <> :to",
		map[string]types.AttributeValue{
			":to":          &types.AttributeValueMemberS{Value: string(entities.ChargeStatusReceived)},
			":paid_at":     &types.AttributeValueMemberS{Value: timeToString(paidAt)},
			":paid_amount": &types.AttributeValueMemberS{Value: floatToString(paidAmount)},
			":updated_at":  &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
	)
}

func (r *ChargeDynamoRepository) MarkOverdue(ctx context.Context, id string) (bool, error) {
	return r.conditionalUpdate(ctx, id,
		"SET #status = :to, updated_at = :updated_at",
		"attribute_exists(#id) AND #status = :pending",
		map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(entities.ChargeStatusOverdue)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.ChargeStatusPending)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
	)
}

func (r *ChargeDynamoRepository) MarkCancelled(ctx context.Context, id string) (bool, error) {
	return r.conditionalUpdate(ctx, id,
		"SET #status = :to, updated_at = :updated_at",
		"attribute_exists(#id) AND #status <> :to",
		map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(entities.ChargeStatusCancelled)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
		},
	)
}

func (r *ChargeDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// conditionalUpdate applies the update only while the condition holds. A
// ConditionalCheckFailedException means another delivery got there first (or
// the charge is gone) and reads as (false, nil).
func (r *ChargeDynamoRepository) conditionalUpdate(ctx context.Context, id, updateExpr, conditionExpr string, values map[string]types.AttributeValue) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String(conditionExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toChargeItem(c entities.Charge) chargeItem {
	it := chargeItem{
		ID:              c.ID,
		TenantID:        c.TenantID,
		PayerID:         c.PayerID,
		CollectorID:     c.CollectorID,
		Description:     c.Description,
		Amount:          floatToString(c.Amount),
		DueDate:         timeToString(c.DueDate),
		PaymentMethod:   string(c.PaymentMethod),
		Status:          string(c.Status),
		Installments:    c.Installments,
		AsaasPaymentID:  c.AsaasPaymentID,
		AsaasInvoiceURL: c.AsaasInvoiceURL,
		AsaasPixCode:    c.AsaasPixCode,
		CreatedAt:       timeToString(c.CreatedAt),
		UpdatedAt:       timeToString(c.UpdatedAt),
	}
	if c.PaidAt != nil {
		it.PaidAt = timeToString(*c.PaidAt)
		it.PaidAmount = floatToString(c.PaidAmount)
	}
	return it
}

func fromChargeItem(it chargeItem) entities.Charge {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	c := entities.Charge{
		ID:              it.ID,
		TenantID:        it.TenantID,
		PayerID:         it.PayerID,
		CollectorID:     it.CollectorID,
		Description:     it.Description,
		Amount:          amount,
		DueDate:         parseTime(it.DueDate),
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		Status:          entities.ChargeStatus(it.Status),
		Installments:    it.Installments,
		AsaasPaymentID:  it.AsaasPaymentID,
		AsaasInvoiceURL: it.AsaasInvoiceURL,
		AsaasPixCode:    it.AsaasPixCode,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
	if it.PaidAt != "" {
		paidAt := parseTime(it.PaidAt)
		c.PaidAt = &paidAt
		c.PaidAmount, _ = strconv.ParseFloat(it.PaidAmount, 64)
	}
	return c
}
