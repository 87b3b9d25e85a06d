package interfaces

import (
	"context"

	"cobranca_campo/internal/domain/entities"
)

// IWebhookEventRepository is the append-only audit log of gateway
// notifications. Append must succeed before any dispatch runs; records are
// never deleted.

type IWebhookEventRepository interface {
	Append(ctx context.Context, rec entities.WebhookEventRecord) (entities.WebhookEventRecord, error)
	MarkProcessed(ctx context.Context, id string, errorMessage string) error
}
