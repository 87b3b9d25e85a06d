package interfaces

import (
	"context"

	"cobranca_campo/internal/domain/entities"
)

// IDailySummaryRepository abstracts the per-collector daily aggregates.
//
// Increment must be a single atomic insert-or-add against the store (not a
// read-modify-write), so concurrent settlement events for the same collector
// and day cannot lose updates.

type IDailySummaryRepository interface {
	Increment(ctx context.Context, tenantID, collectorID, date string, amount, commission float64) error
	Get(ctx context.Context, tenantID, collectorID, date string) (entities.DailySummary, error)
}
