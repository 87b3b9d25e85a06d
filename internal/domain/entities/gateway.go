package entities

import "fmt"

// Wire shapes of the Asaas payment gateway this engine depends on.
// Documentation: https://docs.asaas.com/

type GatewayCustomer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	CpfCnpj string `json:"cpfCnpj"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
}

type GatewayPayment struct {
	ID                string  `json:"id"`
	Customer          string  `json:"customer"`
	BillingType       string  `json:"billingType"`
	Value             float64 `json:"value"`
	DueDate           string  `json:"dueDate"`
	Description       string  `json:"description,omitempty"`
	ExternalReference string  `json:"externalReference,omitempty"`
	InstallmentCount  int     `json:"installmentCount,omitempty"`
	InvoiceURL        string  `json:"invoiceUrl,omitempty"`
	BankSlipURL       string  `json:"bankSlipUrl,omitempty"`
	Status            string  `json:"status"`
}

// PixQRCode is the instant-payment representation of a gateway payment.
// EncodedImage is a base64 PNG; Payload is the copy-paste code.

type PixQRCode struct {
	EncodedImage   string `json:"encodedImage"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expirationDate"`
}

// Webhook event types delivered by the gateway. Only a subset drives local
// state; the rest is logged and kept in the event record.
const (
	WebhookPaymentCreated   = "PAYMENT_CREATED"
	WebhookPaymentUpdated   = "PAYMENT_UPDATED"
	WebhookPaymentConfirmed = "PAYMENT_CONFIRMED"
	WebhookPaymentReceived  = "PAYMENT_RECEIVED"
	WebhookPaymentOverdue   = "PAYMENT_OVERDUE"
	WebhookPaymentDeleted   = "PAYMENT_DELETED"
	WebhookPaymentRestored  = "PAYMENT_RESTORED"
	WebhookPaymentRefunded  = "PAYMENT_REFUNDED"
)

type WebhookPayment struct {
	ID            string  `json:"id"`
	Customer      string  `json:"customer"`
	Value         float64 `json:"value"`
	NetValue      float64 `json:"netValue,omitempty"`
	DueDate       string  `json:"dueDate"`
	Description   string  `json:"description,omitempty"`
	BillingType   string  `json:"billingType"`
	Status        string  `json:"status"`
	ConfirmedDate string  `json:"confirmedDate,omitempty"`
	PaymentDate   string  `json:"paymentDate,omitempty"`
}

type WebhookEvent struct {
	Event   string         `json:"event"`
	Payment WebhookPayment `json:"payment"`
}

// GatewayError is a non-2xx answer from the gateway, carrying its own
// human-readable description so operators can tell "our bug" from "gateway
// said no". StatusCode lets callers branch on not-found without sniffing
// message substrings.

type GatewayError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("asaas: %s (%s, status %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("asaas: %s (status %d)", e.Message, e.StatusCode)
}

// NotFound reports whether the gateway answered 404 for the referenced
// resource: an expected branch for lookups and idempotent cancels.
func (e *GatewayError) NotFound() bool {
	return e.StatusCode == 404
}
