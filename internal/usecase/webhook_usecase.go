package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IWebhookUseCase ingests asynchronous gateway notifications. Deliveries are
// at-least-once and may arrive out of order or concurrently for the same
// charge; every event must therefore be independently idempotent.

type IWebhookUseCase interface {
	Process(ctx context.Context, raw json.RawMessage) error
}

type WebhookUseCase struct {
	events     interfaces.IWebhookEventRepository
	charges    interfaces.IChargeRepository
	collectors interfaces.ICollectorRepository
	summaries  interfaces.IDailySummaryRepository
	notifier   interfaces.INotifier
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	events interfaces.IWebhookEventRepository,
	charges interfaces.IChargeRepository,
	collectors interfaces.ICollectorRepository,
	summaries interfaces.IDailySummaryRepository,
	notifier interfaces.INotifier,
) *WebhookUseCase {
	return &WebhookUseCase{events: events, charges: charges, collectors: collectors, summaries: summaries, notifier: notifier}
}

// Process persists the raw event first, dispatches by type, then marks the
// record. Only a failure to append the record itself propagates (the gateway
// redelivers on error); business-level failures are logged into the record
// and acknowledged, because redelivering an unprocessable event is wasted
// work on both sides.
func (u *WebhookUseCase) Process(ctx context.Context, raw json.RawMessage) error {
	var event entities.WebhookEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		event.Event = "UNPARSEABLE"
	}

	rec, err := u.events.Append(ctx, entities.WebhookEventRecord{
		ID:        uuid.NewString(),
		EventType: event.Event,
		Payload:   raw,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[webhook][usecase] event log append failed event=%s err=%v", event.Event, err)
		return err
	}

	dispatchErr := u.dispatch(ctx, event)
	errMsg := ""
	if dispatchErr != nil {
		errMsg = dispatchErr.Error()
		log.Printf("[webhook][usecase] dispatch failed event=%s payment=%s err=%v", event.Event, event.Payment.ID, dispatchErr)
	}

	if err := u.events.MarkProcessed(ctx, rec.ID, errMsg); err != nil {
		log.Printf("[webhook][usecase] mark processed failed record=%s err=%v", rec.ID, err)
	}
	return nil
}

func (u *WebhookUseCase) dispatch(ctx context.Context, event entities.WebhookEvent) error {
	switch event.Event {
	case entities.WebhookPaymentConfirmed, entities.WebhookPaymentReceived:
		return u.handleSettled(ctx, event)
	case entities.WebhookPaymentOverdue:
		return u.handleOverdue(ctx, event)
	case entities.WebhookPaymentRefunded:
		return u.handleRefunded(ctx, event)
	case entities.WebhookPaymentDeleted:
		return u.handleDeleted(ctx, event)
	default:
		log.Printf("[webhook][usecase] unhandled event type %s payment=%s", event.Event, event.Payment.ID)
		return nil
	}
}

// handleSettled advances PENDING/OVERDUE -> RECEIVED and updates the
// dependent aggregates. A duplicate settlement event finds the charge already
// RECEIVED, the conditional update refuses, and no aggregate is touched
// twice.
func (u *WebhookUseCase) handleSettled(ctx context.Context, event entities.WebhookEvent) error {
	charge, err := u.charges.GetByAsaasPaymentID(ctx, event.Payment.ID)
	if err != nil {
		return err
	}
	if charge.ID == "" {
		log.Printf("[webhook][usecase] unknown payment id %s, dropping %s", event.Payment.ID, event.Event)
		return nil
	}

	paidAt := settlementDate(event.Payment)
	transitioned, err := u.charges.MarkReceived(ctx, charge.ID, paidAt, event.Payment.Value)
	if err != nil {
		return err
	}
	if !transitioned {
		log.Printf("[webhook][usecase] charge %s already settled, %s is a no-op", charge.ID, event.Event)
		return nil
	}

	if err := u.notifier.NotifyRoles(ctx, charge.TenantID,
		[]entities.UserRole{entities.RoleCompanyAdmin, entities.RoleManager},
		"Pagamento Recebido",
		fmt.Sprintf("Cobrança de R$ %.2f foi paga.", event.Payment.Value),
		"payment",
	); err != nil {
		// Notification delivery must not undo settlement bookkeeping.
		log.Printf("[webhook][usecase] settlement notification failed charge=%s err=%v", charge.ID, err)
	}

	if charge.CollectorID == "" {
		return nil
	}

	collector, err := u.collectors.GetByID(ctx, charge.CollectorID)
	if err != nil {
		return err
	}
	commission := event.Payment.Value * collector.CommissionPercentage / 100

	date := paidAt.Format("2006-01-02")
	if err := u.summaries.Increment(ctx, charge.TenantID, charge.CollectorID, date, event.Payment.Value, commission); err != nil {
		return err
	}
	log.Printf("[webhook][usecase] settlement recorded charge=%s collector=%s date=%s value=%.2f commission=%.2f",
		charge.ID, charge.CollectorID, date, event.Payment.Value, commission)
	return nil
}

func (u *WebhookUseCase) handleOverdue(ctx context.Context, event entities.WebhookEvent) error {
	charge, err := u.charges.GetByAsaasPaymentID(ctx, event.Payment.ID)
	if err != nil {
		return err
	}
	if charge.ID == "" {
		log.Printf("[webhook][usecase] unknown payment id %s, dropping %s", event.Payment.ID, event.Event)
		return nil
	}

	transitioned, err := u.charges.MarkOverdue(ctx, charge.ID)
	if err != nil {
		return err
	}
	if !transitioned {
		// A late overdue after settlement; the charge stays RECEIVED.
		log.Printf("[webhook][usecase] overdue ignored for charge %s (status no longer PENDING)", charge.ID)
		return nil
	}

	if err := u.notifier.NotifyRoles(ctx, charge.TenantID,
		[]entities.UserRole{entities.RoleCompanyAdmin, entities.RoleManager},
		"Cobrança Vencida",
		fmt.Sprintf("Cobrança de R$ %.2f está vencida.", event.Payment.Value),
		"alert",
	); err != nil {
		log.Printf("[webhook][usecase] overdue notification failed charge=%s err=%v", charge.ID, err)
	}
	return nil
}

func (u *WebhookUseCase) handleRefunded(ctx context.Context, event entities.WebhookEvent) error {
	charge, err := u.charges.GetByAsaasPaymentID(ctx, event.Payment.ID)
	if err != nil {
		return err
	}
	if charge.ID == "" {
		log.Printf("[webhook][usecase] unknown payment id %s, dropping %s", event.Payment.ID, event.Event)
		return nil
	}
	if _, err := u.charges.MarkCancelled(ctx, charge.ID); err != nil {
		return err
	}
	return nil
}

// handleDeleted removes the local charge entirely. Settlement history lives
// in the event log and daily summaries, which stay.
func (u *WebhookUseCase) handleDeleted(ctx context.Context, event entities.WebhookEvent) error {
	charge, err := u.charges.GetByAsaasPaymentID(ctx, event.Payment.ID)
	if err != nil {
		return err
	}
	if charge.ID == "" {
		log.Printf("[webhook][usecase] unknown payment id %s, dropping %s", event.Payment.ID, event.Event)
		return nil
	}
	return u.charges.Delete(ctx, charge.ID)
}

// settlementDate picks paymentDate, then confirmedDate, then now. The gateway
// sends plain ISO dates but has used full timestamps in older payloads.
func settlementDate(p entities.WebhookPayment) time.Time {
	for _, candidate := range []string{p.PaymentDate, p.ConfirmedDate} {
		if candidate == "" {
			continue
		}
		if t, err := time.Parse("2006-01-02", candidate); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, candidate); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
