package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cobranca_campo/internal/adapter/http/handlers/mocks"
	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_DailySummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewReportHandler(mocks.NewMockIReportUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/reports/daily", h.DailySummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/daily?date=2026-01-15", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/daily", withPrincipal(collector()), h.DailySummary)

		uc.EXPECT().DailySummary(gomock.Any(), "t-1", "col-1", "15/01/2026").
			Return(entities.DailySummary{}, usecase.ErrInvalidDate)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/daily?date=15/01/2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("collector id defaults to caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/daily", withPrincipal(collector()), h.DailySummary)

		uc.EXPECT().DailySummary(gomock.Any(), "t-1", "col-1", "2026-01-15").Return(entities.DailySummary{
			ID:               entities.DailySummaryKey("t-1", "col-1", "2026-01-15"),
			TenantID:         "t-1",
			CollectorID:      "col-1",
			Date:             "2026-01-15",
			ChargesCollected: 3,
			CollectedAmount:  1350.00,
			CommissionEarned: 135.00,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/daily?date=2026-01-15", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["charges_collected"].(float64) != 3 {
			t.Errorf("unexpected charges_collected %v", resp["charges_collected"])
		}
	})

	t.Run("explicit collector id wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		manager := entities.Principal{UserID: "mgr-1", TenantID: "t-1", Role: entities.RoleManager}
		r := gin.New()
		r.GET("/v1/reports/daily", withPrincipal(manager), h.DailySummary)

		uc.EXPECT().DailySummary(gomock.Any(), "t-1", "col-2", "2026-01-15").
			Return(entities.DailySummary{TenantID: "t-1", CollectorID: "col-2", Date: "2026-01-15"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/daily?collector_id=col-2&date=2026-01-15", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
