package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cobranca_campo/internal/domain/entities"
	mock_interfaces "cobranca_campo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type webhookTestEnv struct {
	events     *mock_interfaces.MockIWebhookEventRepository
	charges    *mock_interfaces.MockIChargeRepository
	collectors *mock_interfaces.MockICollectorRepository
	summaries  *mock_interfaces.MockIDailySummaryRepository
	notifier   *mock_interfaces.MockINotifier
	uc         *WebhookUseCase
}

func newWebhookTestEnv(ctrl *gomock.Controller) webhookTestEnv {
	env := webhookTestEnv{
		events:     mock_interfaces.NewMockIWebhookEventRepository(ctrl),
		charges:    mock_interfaces.NewMockIChargeRepository(ctrl),
		collectors: mock_interfaces.NewMockICollectorRepository(ctrl),
		summaries:  mock_interfaces.NewMockIDailySummaryRepository(ctrl),
		notifier:   mock_interfaces.NewMockINotifier(ctrl),
	}
	env.uc = NewWebhookUseCase(env.events, env.charges, env.collectors, env.summaries, env.notifier)
	return env
}

func (env webhookTestEnv) expectAppend(t *testing.T, eventType string) {
	t.Helper()
	env.events.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.WebhookEventRecord{})).DoAndReturn(
		func(_ context.Context, rec entities.WebhookEventRecord) (entities.WebhookEventRecord, error) {
			if rec.EventType != eventType {
				t.Fatalf("unexpected event type %q, want %q", rec.EventType, eventType)
			}
			return rec, nil
		},
	)
}

func TestWebhookUseCase_Process_Settlement(t *testing.T) {
	payload := json.RawMessage(`{
		"event": "PAYMENT_RECEIVED",
		"payment": {"id": "pay_1", "value": 450.00, "paymentDate": "2026-01-14"}
	}`)

	t.Run("first delivery settles, notifies and increments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.expectAppend(t, "PAYMENT_RECEIVED")
		env.charges.EXPECT().GetByAsaasPaymentID(gomock.Any(), "pay_1").
			Return(entities.Charge{ID: "c-1", TenantID: "t-1", CollectorID: "col-1", AsaasPaymentID: "pay_1"}, nil)
		env.charges.EXPECT().MarkReceived(gomock.Any(), "c-1", time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), 450.00).
			Return(true, nil)
		env.notifier.EXPECT().NotifyRoles(gomock.Any(), "t-1",
			[]entities.UserRole{entities.RoleCompanyAdmin, entities.RoleManager},
			"Pagamento Recebido", "Cobrança de R$ 450.00 foi paga.", "payment").
			Return(nil)
		env.collectors.EXPECT().GetByID(gomock.Any(), "col-1").
			Return(entities.Collector{ID: "col-1", CommissionPercentage: 10}, nil)
		env.summaries.EXPECT().Increment(gomock.Any(), "t-1", "col-1", "2026-01-14", 450.00, 45.00).
			Return(nil)
		env.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), "").Return(nil)

		if err := env.uc.Process(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate delivery is a no-op past the conditional update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.expectAppend(t, "PAYMENT_RECEIVED")
		env.charges.EXPECT().GetByAsaasPaymentID(gomock.Any(), "pay_1").
			Return(entities.Charge{ID: "c-1", TenantID: "t-1", CollectorID: "col-1"}, nil)
		env.charges.EXPECT().MarkReceived(gomock.Any(), "c-1", gomock.Any(), 450.00).
			Return(false, nil)
		env.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), "").Return(nil)

		if err := env.uc.Process(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown payment id is dropped and acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.expectAppend(t, "PAYMENT_RECEIVED")
		env.charges.EXPECT().GetByAsaasPaymentID(gomock.Any(), "pay_1").Return(entities.Charge{}, nil)
		env.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), "").Return(nil)

		if err := env.uc.Process(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("notification failure does not undo settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.expectAppend(t, "PAYMENT_RECEIVED")
		env.charges.EXPECT().GetByAsaasPaymentID(gomock.Any(), "pay_1").
			Return(entities.Charge{ID: "c-1", TenantID: "t-1", CollectorID: "col-1"}, nil)
		env.charges.EXPECT().MarkReceived(gomock.Any(), "c-1", gomock.Any(), 450.00).Return(true, nil)
		env.notifier.EXPECT().NotifyRoles(gomock.Any(), "t-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp down"))
		env.collectors.EXPECT().GetByID(gomock.Any(), "col-1").
			Return(entities.Collector{ID: "col-1", CommissionPercentage: 5}, nil)
		env.summaries.EXPECT().Increment(gomock.Any(), "t-1", "col-1", "2026-01-14", 450.00, 22.50).Return(nil)
		env.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), "").Return(nil)

		if err := env.uc.Process(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("append failure propagates so the gateway retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.events.EXPECT().Append(gomock.Any(), gomock.Any()).
			Return(entities.WebhookEventRecord{}, errors.New("db down"))

		if err := env.uc.Process(context.Background(), payload); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("dispatch failure is recorded but acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.expectAppend(t, "PAYMENT_RECEIVED")
		env.charges.EXPECT().GetByAsaasPaymentID(gomock.Any(), "pay_1").
			Return(entities.Charge{}, errors.New("db read failed"))
		env.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), "db read failed").Return(nil)

		if err := env.uc.Process(context.Background(), payload); err != nil {
			t.Fatalf("dispatch failures must not propagate, got %v", err)
		}
	})
}

func TestWebhookUseCase_Process_Overdue(t *testing.T) {
	payload := json.RawMessage(`{"event": "PAYMENT_OVERDUE", "payment": {"id": "pay_1", "value": 99.90}}`)

	t.Run("pending charge goes overdue with an alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.expectAppend(t, "PAYMENT_OVERDUE")
		env.charges.EXPECT().GetByAsaasPaymentID(gomock.Any(), "pay_1").
			Return(entities.Charge{ID: "c-1", TenantID: "t-1"}, nil)
		env.charges.EXPECT().MarkOverdue(gomock.Any(), "c-1").Return(true, nil)
		env.notifier.EXPECT().NotifyRoles(gomock.Any(), "t-1",
			[]entities.UserRole{entities.RoleCompanyAdmin, entities.RoleManager},
			"Cobrança Vencida", "Cobrança de R$ 99.90 está vencida.", "alert").
			Return(nil)
		env.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), "").Return(nil)

		if err := env.uc.Process(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("late overdue after settlement never regresses and never alerts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.expectAppend(t, "PAYMENT_OVERDUE")
		env.charges.EXPECT().GetByAsaasPaymentID(gomock.Any(), "pay_1").
			Return(entities.Charge{ID: "c-1", TenantID: "t-1", Status: entities.ChargeStatusReceived}, nil)
		env.charges.EXPECT().MarkOverdue(gomock.Any(), "c-1").Return(false, nil)
		env.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), "").Return(nil)

		if err := env.uc.Process(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWebhookUseCase_Process_RefundAndDelete(t *testing.T) {
	t.Run("refund cancels the charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.expectAppend(t, "PAYMENT_REFUNDED")
		env.charges.EXPECT().GetByAsaasPaymentID(gomock.Any(), "pay_1").
			Return(entities.Charge{ID: "c-1", TenantID: "t-1"}, nil)
		env.charges.EXPECT().MarkCancelled(gomock.Any(), "c-1").Return(true, nil)
		env.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), "").Return(nil)

		payload := json.RawMessage(`{"event": "PAYMENT_REFUNDED", "payment": {"id": "pay_1"}}`)
		if err := env.uc.Process(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway delete removes the local row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.expectAppend(t, "PAYMENT_DELETED")
		env.charges.EXPECT().GetByAsaasPaymentID(gomock.Any(), "pay_1").
			Return(entities.Charge{ID: "c-1", TenantID: "t-1"}, nil)
		env.charges.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)
		env.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), "").Return(nil)

		payload := json.RawMessage(`{"event": "PAYMENT_DELETED", "payment": {"id": "pay_1"}}`)
		if err := env.uc.Process(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWebhookUseCase_Process_IgnoredAndUnparseable(t *testing.T) {
	t.Run("informational event is logged only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.expectAppend(t, "PAYMENT_CREATED")
		env.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), "").Return(nil)

		payload := json.RawMessage(`{"event": "PAYMENT_CREATED", "payment": {"id": "pay_1"}}`)
		if err := env.uc.Process(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unparseable body is still recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newWebhookTestEnv(ctrl)

		env.expectAppend(t, "UNPARSEABLE")
		env.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), "").Return(nil)

		if err := env.uc.Process(context.Background(), json.RawMessage(`{not json`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSettlementDate(t *testing.T) {
	cases := []struct {
		name    string
		payment entities.WebhookPayment
		want    time.Time
		now     bool
	}{
		{"payment date wins", entities.WebhookPayment{PaymentDate: "2026-01-14", ConfirmedDate: "2026-01-13"}, time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), false},
		{"falls back to confirmed date", entities.WebhookPayment{ConfirmedDate: "2026-01-13"}, time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339 timestamp accepted", entities.WebhookPayment{PaymentDate: "2026-01-14T15:30:00Z"}, time.Date(2026, 1, 14, 15, 30, 0, 0, time.UTC), false},
		{"no dates falls back to now", entities.WebhookPayment{}, time.Time{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := settlementDate(tc.payment)
			if tc.now {
				if time.Since(got) > time.Minute {
					t.Fatalf("expected roughly now, got %v", got)
				}
				return
			}
			if !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
