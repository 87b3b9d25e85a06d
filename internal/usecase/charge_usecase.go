package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrChargeNotFound       = errors.New("charge not found")
	ErrInvalidAmount        = errors.New("invalid charge amount")
	ErrInvalidDescription   = errors.New("invalid charge description")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrMissingTenant        = errors.New("user is not linked to a company")
)

const dueDateDefaultDays = 3

type CreateChargeInput struct {
	TenantID      string
	CollectorID   string
	PayerName     string
	Document      string
	Amount        float64
	Description   string
	DueDate       *time.Time
	PaymentMethod entities.PaymentMethod
	Installments  int
}

type PixData struct {
	QRCodeImage    string
	Payload        string
	ExpirationDate string
}

type ChargeResult struct {
	Charge     entities.Charge
	PaymentID  string
	InvoiceURL string
	Pix        *PixData
	// PixFetch is degraded when the QR fetch failed after the gateway payment
	// was already created; the charge still succeeds and the code can be
	// fetched again later.
	PixFetch StepOutcome
}

type IChargeUseCase interface {
	CreateCharge(ctx context.Context, in CreateChargeInput) (ChargeResult, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Charge, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Charge, error)
}

type ChargeUseCase struct {
	charges        interfaces.IChargeRepository
	credentials    ICredentialResolver
	payers         IPayerIdentityResolver
	gatewayFactory interfaces.IPaymentGatewayFactory
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(
	charges interfaces.IChargeRepository,
	credentials ICredentialResolver,
	payers IPayerIdentityResolver,
	gatewayFactory interfaces.IPaymentGatewayFactory,
) *ChargeUseCase {
	return &ChargeUseCase{charges: charges, credentials: credentials, payers: payers, gatewayFactory: gatewayFactory}
}

// CreateCharge mirrors a new local charge to the gateway under the tenant's
// credential. No local row is written until every gateway step that matters
// has succeeded; the single tolerated partial failure is the PIX code fetch,
// which degrades instead of failing because the payment already exists.
func (u *ChargeUseCase) CreateCharge(ctx context.Context, in CreateChargeInput) (ChargeResult, error) {
	log.Printf("[charge][usecase] create start tenant=%s collector=%s amount=%.2f method=%s", in.TenantID, in.CollectorID, in.Amount, in.PaymentMethod)

	if strings.TrimSpace(in.TenantID) == "" {
		return ChargeResult{}, ErrMissingTenant
	}
	if !validAmount(in.Amount) {
		return ChargeResult{}, ErrInvalidAmount
	}
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return ChargeResult{}, ErrInvalidDescription
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = entities.PaymentMethodUndefined
	}
	if !entities.ValidPaymentMethod(in.PaymentMethod) {
		return ChargeResult{}, ErrInvalidPaymentMethod
	}

	// Fail fast before any gateway call when the tenant has no credential.
	apiKey, err := u.credentials.ResolveAPIKey(ctx, in.TenantID)
	if err != nil {
		log.Printf("[charge][usecase] credential resolution failed tenant=%s err=%v", in.TenantID, err)
		return ChargeResult{}, err
	}
	gw := u.gatewayFactory.ClientFor(apiKey)

	resolved, err := u.payers.Resolve(ctx, gw, in.TenantID, PayerInput{Name: in.PayerName, Document: in.Document})
	if err != nil {
		log.Printf("[charge][usecase] payer resolution failed tenant=%s err=%v", in.TenantID, err)
		return ChargeResult{}, err
	}

	dueDate := time.Now().UTC().AddDate(0, 0, dueDateDefaultDays)
	if in.DueDate != nil {
		dueDate = in.DueDate.UTC()
	}

	payment, err := gw.CreatePayment(ctx, interfaces.CreatePaymentInput{
		Customer:    resolved.AsaasCustomerID,
		BillingType: string(in.PaymentMethod),
		Value:       in.Amount,
		DueDate:     dueDate.Format("2006-01-02"),
		Description: in.Description,
		// The description doubles as the external reference for later
		// correlation on the gateway side.
		ExternalReference: in.Description,
		InstallmentCount:  in.Installments,
	})
	if err != nil {
		log.Printf("[charge][usecase] gateway payment creation failed tenant=%s err=%v", in.TenantID, err)
		return ChargeResult{}, err
	}

	result := ChargeResult{PaymentID: payment.ID, InvoiceURL: payment.InvoiceURL, PixFetch: OutcomeOK()}

	pixCode := ""
	if in.PaymentMethod == entities.PaymentMethodPix {
		qr, qerr := gw.GetPixQRCode(ctx, payment.ID)
		if qerr != nil {
			// The payment exists on the gateway; the code can be fetched again
			// later. Degrade instead of failing the whole charge.
			log.Printf("[charge][usecase] pix qr fetch failed payment=%s err=%v", payment.ID, qerr)
			result.PixFetch = OutcomeDegraded(qerr.Error())
		} else {
			pixCode = qr.Payload
			result.Pix = &PixData{QRCodeImage: qr.EncodedImage, Payload: qr.Payload, ExpirationDate: qr.ExpirationDate}
		}
	}

	invoiceURL := payment.BankSlipURL
	if invoiceURL == "" {
		invoiceURL = payment.InvoiceURL
	}

	now := time.Now().UTC()
	charge := entities.Charge{
		ID:              uuid.NewString(),
		TenantID:        in.TenantID,
		PayerID:         resolved.PayerID,
		CollectorID:     in.CollectorID,
		Description:     in.Description,
		Amount:          in.Amount,
		DueDate:         dueDate,
		PaymentMethod:   in.PaymentMethod,
		Status:          entities.ChargeStatusPending,
		Installments:    in.Installments,
		AsaasPaymentID:  payment.ID,
		AsaasInvoiceURL: invoiceURL,
		AsaasPixCode:    pixCode,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.charges.Create(ctx, charge)
	if err != nil {
		log.Printf("[charge][usecase] charge persist failed tenant=%s payment=%s err=%v", in.TenantID, payment.ID, err)
		return ChargeResult{}, err
	}

	log.Printf("[charge][usecase] create success charge=%s payment=%s status=%s", created.ID, payment.ID, created.Status)
	result.Charge = created
	return result, nil
}

func (u *ChargeUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Charge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Charge{}, ErrChargeNotFound
	}
	c, err := u.charges.GetByID(ctx, id)
	if err != nil {
		return entities.Charge{}, err
	}
	if c.ID == "" || c.TenantID != tenantID {
		return entities.Charge{}, ErrChargeNotFound
	}
	return c, nil
}

func (u *ChargeUseCase) ListByTenant(ctx context.Context, tenantID string) ([]entities.Charge, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrMissingTenant
	}
	return u.charges.ListByTenantID(ctx, tenantID)
}

// validAmount accepts positive values with at most two fractional digits.
func validAmount(v float64) bool {
	if v <= 0 {
		return false
	}
	cents := v * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}
