package entities

// DailySummary aggregates one collector's settled charges for one calendar
// day. Rows are created/incremented only by the webhook processor, via an
// atomic insert-or-add keyed on (tenant, collector, date), never replaced
// wholesale. History stays even if the underlying charge is later removed.
//
// Storage model (DynamoDB):
//   - PK: id = tenant_id#collector_id#date (date as YYYY-MM-DD)
//   - counters maintained with UpdateItem ADD

type DailySummary struct {
	ID               string  `json:"id"`
	TenantID         string  `json:"tenant_id"`
	CollectorID      string  `json:"collector_id"`
	Date             string  `json:"date"`
	ChargesCollected int     `json:"charges_collected"`
	CollectedAmount  float64 `json:"collected_amount"`
	CommissionEarned float64 `json:"commission_earned"`
}

// DailySummaryKey builds the composite PK for a summary row.
func DailySummaryKey(tenantID, collectorID, date string) string {
	return tenantID + "#" + collectorID + "#" + date
}
