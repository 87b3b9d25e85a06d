package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// IReportUseCase reads the per-collector daily aggregates maintained by the
// webhook processor.

type IReportUseCase interface {
	DailySummary(ctx context.Context, tenantID, collectorID, date string) (entities.DailySummary, error)
}

type ReportUseCase struct {
	summaries interfaces.IDailySummaryRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(summaries interfaces.IDailySummaryRepository) *ReportUseCase {
	return &ReportUseCase{summaries: summaries}
}

func (u *ReportUseCase) DailySummary(ctx context.Context, tenantID, collectorID, date string) (entities.DailySummary, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return entities.DailySummary{}, ErrInvalidDate
	}
	s, err := u.summaries.Get(ctx, tenantID, collectorID, date)
	if err != nil {
		return entities.DailySummary{}, err
	}
	if s.ID == "" {
		// An empty day reads as zeroes, not as an error.
		s = entities.DailySummary{
			ID:          entities.DailySummaryKey(tenantID, collectorID, date),
			TenantID:    tenantID,
			CollectorID: collectorID,
			Date:        date,
		}
	}
	return s, nil
}
