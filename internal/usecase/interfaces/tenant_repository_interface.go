package interfaces

import (
	"context"

	"cobranca_campo/internal/domain/entities"
)

// ITenantRepository abstracts DynamoDB persistence for Tenant.
// A zero-ID result with nil error means the tenant does not exist.

type ITenantRepository interface {
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
}
