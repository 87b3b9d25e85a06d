package interfaces

import (
	"context"

	"cobranca_campo/internal/domain/entities"
)

// ICollectorRepository abstracts DynamoDB persistence for tenant users
// (collectors, managers, admins).

type ICollectorRepository interface {
	GetByID(ctx context.Context, id string) (entities.Collector, error)
	ListByTenantAndRoles(ctx context.Context, tenantID string, roles []entities.UserRole) ([]entities.Collector, error)
}
