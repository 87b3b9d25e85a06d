package entities

import "time"

// ChargeStatus follows the Asaas status convention (uppercase) so webhook
// payloads map onto local state without translation tables.

type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "PENDING"
	ChargeStatusReceived  ChargeStatus = "RECEIVED"
	ChargeStatusOverdue   ChargeStatus = "OVERDUE"
	ChargeStatusCancelled ChargeStatus = "CANCELLED"
)

// PaymentMethod is the billing type requested when the charge is mirrored to
// the gateway. CASH never reaches the gateway; it exists for field collections
// settled in person.

type PaymentMethod string

const (
	PaymentMethodUndefined  PaymentMethod = "UNDEFINED"
	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodBoleto     PaymentMethod = "BOLETO"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodCash       PaymentMethod = "CASH"
)

// ValidPaymentMethod reports whether m is one of the supported billing types.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodUndefined, PaymentMethodPix, PaymentMethodBoleto, PaymentMethodCreditCard, PaymentMethodCash:
		return true
	}
	return false
}

// Charge is a single debt instance owned by a tenant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_id-index): asaas_payment_id
//   - GSI2 (tenant_id-index): tenant_id
//
// AsaasPaymentID is immutable once set: a new gateway payment always means a
// new Charge, never a rewrite of the link. Status is mutated only by the
// webhook processor (or removed entirely by cancellation).

type Charge struct {
	ID            string        `json:"id"`
	TenantID      string        `json:"tenant_id"`
	PayerID       string        `json:"payer_id"`
	CollectorID   string        `json:"collector_id,omitempty"`
	Description   string        `json:"description"`
	Amount        float64       `json:"amount"`
	DueDate       time.Time     `json:"due_date"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        ChargeStatus  `json:"status"`
	Installments  int           `json:"installments,omitempty"`

	AsaasPaymentID  string `json:"asaas_payment_id,omitempty"`
	AsaasInvoiceURL string `json:"asaas_invoice_url,omitempty"`
	AsaasPixCode    string `json:"asaas_pix_code,omitempty"`

	PaidAt     *time.Time `json:"paid_at,omitempty"`
	PaidAmount float64    `json:"paid_amount,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
