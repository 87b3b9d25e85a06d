package response

import "cobranca_campo/internal/domain/entities"

type DailySummaryResponse struct {
	TenantID         string  `json:"tenant_id"`
	CollectorID      string  `json:"collector_id"`
	Date             string  `json:"date"`
	ChargesCollected int     `json:"charges_collected"`
	CollectedAmount  float64 `json:"collected_amount"`
	CommissionEarned float64 `json:"commission_earned"`
}

func FromDailySummary(s entities.DailySummary) DailySummaryResponse {
	return DailySummaryResponse{
		TenantID:         s.TenantID,
		CollectorID:      s.CollectorID,
		Date:             s.Date,
		ChargesCollected: s.ChargesCollected,
		CollectedAmount:  s.CollectedAmount,
		CommissionEarned: s.CommissionEarned,
	}
}
