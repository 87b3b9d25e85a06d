package interfaces

import (
	"context"

	"cobranca_campo/internal/domain/entities"
)

// INotifier delivers an in-app message to every tenant user holding one of
// the given roles. The engine decides when to notify; how notifications reach
// users is the notification subsystem's problem.

type INotifier interface {
	NotifyRoles(ctx context.Context, tenantID string, roles []entities.UserRole, title, message, kind string) error
}
