package interfaces

import (
	"context"
	"time"

	"cobranca_campo/internal/domain/entities"
)

// IChargeRepository abstracts DynamoDB persistence for Charge.
//
// The Mark* methods are conditional single-item updates: they succeed and
// return true only when the current status satisfies the transition's
// precondition, and return false (nil error) when the condition fails or the
// charge is gone. Webhook deliveries are at-least-once and may race, so a
// blind status overwrite is never exposed.

type IChargeRepository interface {
	Create(ctx context.Context, c entities.Charge) (entities.Charge, error)
	GetByID(ctx context.Context, id string) (entities.Charge, error)
	GetByAsaasPaymentID(ctx context.Context, asaasPaymentID string) (entities.Charge, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Charge, error)

	// MarkReceived: status <> RECEIVED -> RECEIVED, sets paid_at/paid_amount.
	MarkReceived(ctx context.Context, id string, paidAt time.Time, paidAmount float64) (bool, error)
	// MarkOverdue: PENDING -> OVERDUE only; a late overdue never regresses a
	// settled charge.
	MarkOverdue(ctx context.Context, id string) (bool, error)
	// MarkCancelled: status <> CANCELLED -> CANCELLED.
	MarkCancelled(ctx context.Context, id string) (bool, error)

	Delete(ctx context.Context, id string) error
}
