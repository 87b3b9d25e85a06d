package interfaces

import (
	"context"

	"cobranca_campo/internal/domain/entities"
)

// IPayerRepository abstracts DynamoDB persistence for Payer.
//
// GetByTenantAndDocument is the uniqueness lookup behind the "one payer per
// (tenant, document)" invariant; a zero-ID result means no local record yet.

type IPayerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Payer, error)
	GetByTenantAndDocument(ctx context.Context, tenantID, document string) (entities.Payer, error)
	Create(ctx context.Context, p entities.Payer) (entities.Payer, error)
	UpdateAsaasCustomerID(ctx context.Context, id, asaasCustomerID string) error
}
