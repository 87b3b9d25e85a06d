package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cobranca_campo/internal/adapter/http/handlers/mocks"
	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase"
	"cobranca_campo/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:payment_id/status", h.GetStatus)

		uc.EXPECT().GetStatus(gomock.Any(), "pay_missing").Return(entities.GatewayPayment{}, usecase.ErrChargeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay_missing/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("bank slip url wins over invoice url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:payment_id/status", h.GetStatus)

		uc.EXPECT().GetStatus(gomock.Any(), "pay_1").Return(entities.GatewayPayment{
			ID:          "pay_1",
			Status:      "PENDING",
			Value:       450.00,
			InvoiceURL:  "https://inv/pay_1",
			BankSlipURL: "https://slip/pay_1",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay_1/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["invoice_url"] != "https://slip/pay_1" {
			t.Errorf("unexpected invoice_url %v", resp["invoice_url"])
		}
	})
}

func TestPaymentHandler_PayWithCreditCard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing card fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:payment_id/credit-card", h.PayWithCreditCard)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay_1/credit-card", bytes.NewBufferString(`{"holder_name":"MARIA S"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:payment_id/credit-card", h.PayWithCreditCard)

		uc.EXPECT().ChargeCreditCard(gomock.Any(), "pay_1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, card interfaces.CreditCardInput) (entities.GatewayPayment, error) {
				if card.Number != "5162306219378829" || card.HolderInfo.CpfCnpj != "12345678909" {
					t.Fatalf("card payload not forwarded: %+v", card)
				}
				return entities.GatewayPayment{ID: "pay_1", Status: "CONFIRMED", Value: 450.00}, nil
			})

		body := `{
			"holder_name": "MARIA S",
			"number": "5162306219378829",
			"expiry_month": "05",
			"expiry_year": "2028",
			"ccv": "318",
			"holder": {
				"name": "Maria Silva",
				"email": "maria@example.com",
				"cpf_cnpj": "12345678909",
				"postal_code": "89223-005",
				"address_number": "277"
			}
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay_1/credit-card", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["status"] != "CONFIRMED" {
			t.Errorf("expected CONFIRMED, got %v", resp["status"])
		}
	})
}
