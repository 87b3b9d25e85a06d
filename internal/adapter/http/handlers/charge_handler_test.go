package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cobranca_campo/internal/adapter/http/handlers/mocks"
	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// withPrincipal stands in for the identity middleware on the test router.
func withPrincipal(p entities.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(PrincipalKey, p)
		c.Next()
	}
}

func collector() entities.Principal {
	return entities.Principal{UserID: "col-1", TenantID: "t-1", Role: entities.RoleCollector, Branch: "north"}
}

func TestChargeHandler_CreateCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewChargeHandler(mocks.NewMockIChargeUseCase(ctrl), mocks.NewMockICancellationUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/charges", h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewChargeHandler(mocks.NewMockIChargeUseCase(ctrl), mocks.NewMockICancellationUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/charges", withPrincipal(collector()), h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewChargeHandler(mocks.NewMockIChargeUseCase(ctrl), mocks.NewMockICancellationUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/charges", withPrincipal(collector()), h.CreateCharge)

		body := `{"payer_name":"Maria","document":"12345678909","amount":450.00,"description":"Mensalidade","due_date":"20/01/2026"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with degraded pix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		h := NewChargeHandler(uc, mocks.NewMockICancellationUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/charges", withPrincipal(collector()), h.CreateCharge)

		due := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateChargeInput) (usecase.ChargeResult, error) {
				if in.TenantID != "t-1" || in.CollectorID != "col-1" {
					t.Fatalf("principal not propagated: %+v", in)
				}
				if in.DueDate == nil || !in.DueDate.Equal(due) {
					t.Fatalf("unexpected due date %v", in.DueDate)
				}
				return usecase.ChargeResult{
					Charge:     entities.Charge{ID: "c-1", TenantID: "t-1", Amount: 450.00, Status: entities.ChargeStatusPending},
					PaymentID:  "pay_1",
					InvoiceURL: "https://inv/pay_1",
					PixFetch:   usecase.OutcomeDegraded("gateway timeout"),
				}, nil
			})

		body := `{"payer_name":"Maria","document":"12345678909","amount":450.00,"description":"Mensalidade","due_date":"2026-01-20","payment_method":"PIX"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			PaymentID string   `json:"payment_id"`
			Warnings  []string `json:"warnings"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.PaymentID != "pay_1" {
			t.Errorf("expected pay_1, got %q", resp.PaymentID)
		}
		if len(resp.Warnings) != 1 {
			t.Errorf("expected a pix warning, got %v", resp.Warnings)
		}
	})

	t.Run("gateway error maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		h := NewChargeHandler(uc, mocks.NewMockICancellationUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/charges", withPrincipal(collector()), h.CreateCharge)

		uc.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
			Return(usecase.ChargeResult{}, &entities.GatewayError{StatusCode: 500, Message: "internal"})

		body := `{"payer_name":"Maria","document":"12345678909","amount":450.00,"description":"Mensalidade","due_date":"2026-01-20"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("gateway not configured maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		h := NewChargeHandler(uc, mocks.NewMockICancellationUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/charges", withPrincipal(collector()), h.CreateCharge)

		uc.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
			Return(usecase.ChargeResult{}, usecase.ErrPaymentNotConfigured)

		body := `{"payer_name":"Maria","document":"12345678909","amount":450.00,"description":"Mensalidade","due_date":"2026-01-20"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestChargeHandler_GetCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		h := NewChargeHandler(uc, mocks.NewMockICancellationUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/charges/:id", withPrincipal(collector()), h.GetCharge)

		uc.EXPECT().GetByID(gomock.Any(), "t-1", "c-missing").Return(entities.Charge{}, usecase.ErrChargeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/charges/c-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		h := NewChargeHandler(uc, mocks.NewMockICancellationUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/charges/:id", withPrincipal(collector()), h.GetCharge)

		uc.EXPECT().GetByID(gomock.Any(), "t-1", "c-1").
			Return(entities.Charge{ID: "c-1", TenantID: "t-1", Amount: 450.00, Status: entities.ChargeStatusReceived}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/charges/c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestChargeHandler_ListCharges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIChargeUseCase(ctrl)
	h := NewChargeHandler(uc, mocks.NewMockICancellationUseCase(ctrl))

	r := gin.New()
	r.GET("/v1/charges", withPrincipal(collector()), h.ListCharges)

	uc.EXPECT().ListByTenant(gomock.Any(), "t-1").Return([]entities.Charge{
		{ID: "c-1", TenantID: "t-1"},
		{ID: "c-2", TenantID: "t-1"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/charges", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 charges, got %d", len(list))
	}
}

func TestChargeHandler_CancelCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	manager := entities.Principal{UserID: "mgr-1", TenantID: "t-1", Role: entities.RoleManager, Branch: "north"}

	t.Run("forbidden for collectors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cancel := mocks.NewMockICancellationUseCase(ctrl)
		h := NewChargeHandler(mocks.NewMockIChargeUseCase(ctrl), cancel)

		r := gin.New()
		r.DELETE("/v1/charges/:id", withPrincipal(collector()), h.CancelCharge)

		cancel.EXPECT().Cancel(gomock.Any(), collector(), "c-1", false).Return(usecase.ErrRoleNotAllowed)

		req := httptest.NewRequest(http.MethodDelete, "/v1/charges/c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("force flag reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cancel := mocks.NewMockICancellationUseCase(ctrl)
		h := NewChargeHandler(mocks.NewMockIChargeUseCase(ctrl), cancel)

		r := gin.New()
		r.DELETE("/v1/charges/:id", withPrincipal(manager), h.CancelCharge)

		cancel.EXPECT().Cancel(gomock.Any(), manager, "c-1", true).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/charges/c-1?force=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
